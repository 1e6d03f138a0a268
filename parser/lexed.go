package parser

import (
	"strings"

	"github.com/squawkhq/squawk/lexer"
)

// LexedStr couples the source text with its raw token stream, converted to
// SyntaxKinds and positioned by cumulative offsets. It feeds both the parser
// input and the tree builder (which needs the trivia back).
type LexedStr struct {
	text    string
	kinds   []SyntaxKind
	offsets []int // offsets[i] is the byte start of token i; one extra entry for EOF
	errors  []LexError
}

// LexError is a lexing diagnostic carrying the index of the offending token.
type LexError struct {
	Token int
	Msg   string
}

// NewLexedStr tokenizes text and classifies identifiers against the keyword
// table.
func NewLexedStr(text string) *LexedStr {
	tokens, errs := lexer.Tokenize(text)
	l := &LexedStr{
		text:    text,
		kinds:   make([]SyntaxKind, 0, len(tokens)),
		offsets: make([]int, 0, len(tokens)+1),
	}
	offset := 0
	for _, tok := range tokens {
		l.offsets = append(l.offsets, offset)
		text := text[offset : offset+tok.Len]
		l.kinds = append(l.kinds, syntaxKindFor(tok, text))
		offset += tok.Len
	}
	l.offsets = append(l.offsets, offset)
	for _, e := range errs {
		l.errors = append(l.errors, LexError{Token: e.Token, Msg: e.Msg})
	}
	return l
}

func syntaxKindFor(tok lexer.Token, text string) SyntaxKind {
	switch tok.Kind {
	case lexer.Whitespace:
		return WHITESPACE
	case lexer.LineComment, lexer.BlockComment:
		return COMMENT
	case lexer.Ident:
		kind, _ := KeywordKind(text)
		return kind
	case lexer.QuotedIdent:
		return QUOTED_IDENT
	case lexer.Param:
		return PARAM_TOKEN
	case lexer.Literal:
		switch tok.Literal {
		case lexer.Int:
			return INT_NUMBER
		case lexer.Float:
			return FLOAT_NUMBER
		case lexer.Str:
			return STRING
		case lexer.ByteStr:
			return BYTE_STRING
		case lexer.BitStr:
			return BIT_STRING
		case lexer.DollarQuotedStr:
			return DOLLAR_QUOTED_STRING
		case lexer.UnicodeEscStr:
			return UNICODE_ESC_STRING
		case lexer.EscStr:
			return ESC_STRING
		}
		return ERROR_TOKEN
	case lexer.Semi:
		return SEMICOLON
	case lexer.Comma:
		return COMMA
	case lexer.Dot:
		return DOT
	case lexer.OpenParen:
		return L_PAREN
	case lexer.CloseParen:
		return R_PAREN
	case lexer.OpenBracket:
		return L_BRACK
	case lexer.CloseBracket:
		return R_BRACK
	case lexer.Eq:
		return EQ
	case lexer.Gt:
		return GT
	case lexer.Lt:
		return LT
	case lexer.Bang:
		return BANG
	case lexer.Plus:
		return PLUS
	case lexer.Minus:
		return MINUS
	case lexer.Star:
		return STAR
	case lexer.Slash:
		return SLASH
	case lexer.Percent:
		return PERCENT
	case lexer.Caret:
		return CARET
	case lexer.Tilde:
		return TILDE
	case lexer.Pound:
		return POUND
	case lexer.Question:
		return QUESTION
	case lexer.Colon:
		return COLON
	case lexer.Amp:
		return AMP
	case lexer.Pipe:
		return PIPE
	case lexer.At:
		return AT
	case lexer.Backtick:
		return BACKTICK
	}
	return ERROR_TOKEN
}

// Len returns the number of tokens.
func (l *LexedStr) Len() int { return len(l.kinds) }

// Kind returns the kind of token i.
func (l *LexedStr) Kind(i int) SyntaxKind {
	if i >= len(l.kinds) {
		return EOF
	}
	return l.kinds[i]
}

// Text returns the text of token i.
func (l *LexedStr) Text(i int) string {
	return l.text[l.offsets[i]:l.offsets[i+1]]
}

// RangeText returns the text covered by tokens [from, to).
func (l *LexedStr) RangeText(from, to int) string {
	return l.text[l.offsets[from]:l.offsets[to]]
}

// TextStart returns the byte offset where token i begins.
func (l *LexedStr) TextStart(i int) int {
	if i >= len(l.offsets) {
		return len(l.text)
	}
	return l.offsets[i]
}

// Errors returns the lexing diagnostics.
func (l *LexedStr) Errors() []LexError { return l.errors }

// ToInput strips trivia and produces the parser input, recording jointness and
// which float literals end in a trailing dot (for FloatSplit).
func (l *LexedStr) ToInput() *Input {
	inp := &Input{}
	wasJoint := false
	for i := 0; i < len(l.kinds); i++ {
		kind := l.kinds[i]
		if kind.IsTrivia() {
			wasJoint = false
			continue
		}
		inp.push(kind)
		if wasJoint {
			inp.wasJoint()
		}
		if kind == FLOAT_NUMBER && strings.HasSuffix(l.Text(i), ".") {
			inp.markFloatDot()
		}
		wasJoint = true
	}
	return inp
}
