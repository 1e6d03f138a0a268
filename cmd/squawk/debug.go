package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/squawkhq/squawk/lexer"
	"github.com/squawkhq/squawk/syntax"
)

// dumpDebug prints the token stream or syntax tree for a file; used when
// developing rules and the grammar.
func dumpDebug(opts *options, file, text string, parse syntax.Parse) {
	fmt.Printf("-- %s\n", file)
	if opts.DebugLex {
		tokens, errs := lexer.Tokenize(text)
		offset := 0
		for i, tok := range tokens {
			fmt.Printf("%4d @%d..%d %s\n", i, offset, offset+tok.Len, pp.Sprint(tok))
			offset += tok.Len
		}
		for _, e := range errs {
			fmt.Printf("error at token %d: %s\n", e.Token, e.Msg)
		}
	}
	if opts.DebugAst {
		fmt.Print(parse.SyntaxNode().Dump())
		for _, e := range parse.Errors() {
			fmt.Printf("error @%d..%d: %s\n", e.Range.Start, e.Range.End, e.Msg)
		}
	}
	_ = os.Stdout.Sync()
}
