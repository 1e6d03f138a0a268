package syntax

import (
	"github.com/squawkhq/squawk/parser"
)

// Parse is the result of parsing one file: the CST root plus every lex and
// parse diagnostic. The tree is always complete and lossless, even for
// malformed input.
type Parse struct {
	green  *GreenNode
	errors []SyntaxError
}

// ParseSourceFile runs the full front end over text.
func ParseSourceFile(text string) Parse {
	lexed := parser.NewLexedStr(text)
	input := lexed.ToInput()
	output := parser.Parse(input)

	builder := newTreeBuilder()
	lexed.IntersperseTrivia(output, builder)
	green, errs := builder.Finish()

	for _, le := range lexed.Errors() {
		errs = append(errs, SyntaxError{
			Msg: le.Msg,
			Range: TextRange{
				Start: lexed.TextStart(le.Token),
				End:   lexed.TextStart(le.Token + 1),
			},
		})
	}
	return Parse{green: green, errors: errs}
}

// SyntaxNode returns the root of the red tree.
func (p Parse) SyntaxNode() *SyntaxNode {
	return &SyntaxNode{green: p.green}
}

// Errors returns the syntax diagnostics in collection order.
func (p Parse) Errors() []SyntaxError {
	return p.errors
}

// Ok reports whether the parse produced no diagnostics.
func (p Parse) Ok() bool {
	return len(p.errors) == 0
}
