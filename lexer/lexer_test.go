package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, _ := Tokenize(src)
	return tokens
}

func TestTokenLengthsSumToInput(t *testing.T) {
	inputs := []string{
		"",
		"select 1;",
		"SELECT * FROM users WHERE id = $1;",
		"create table t (a varchar(100), b timestamptz default now());",
		"-- a comment\nselect 1",
		"/* block /* nested */ comment */ select 1",
		"/* unterminated",
		"'unterminated string",
		`"quoted ident"`,
		`"unterminated ident`,
		"$$dollar quoted$$",
		"$tag$Dianne's horse$tag$",
		"$tag$never closed",
		"E'esc \\' string'",
		"U&'d\\0061t\\+000061'",
		"B'1001' X'1FF' b'0' x'ff'",
		"0x2A 0o17 0b101 1.5 1e10 1.e10 .5 1_000_000",
		"a.b.c a.1 1.",
		"foo::bar->baz->>'qux' #>> '{a,b}'",
		"SELECT 'a' || 'b' FROM t WHERE x <> y AND z != w;",
		"\t \n\r\n  ",
		"select \x00weird",
	}
	for _, input := range inputs {
		tokens, _ := Tokenize(input)
		total := 0
		for _, tok := range tokens {
			assert.NotZero(t, tok.Len, "zero-length token in %q", input)
			total += tok.Len
		}
		assert.Equal(t, len(input), total, "lengths must sum to input size for %q", input)
	}
}

func TestFloatLiteral(t *testing.T) {
	tokens := lex(t, "SELECT 1.5")
	require.Len(t, tokens, 3)
	tok := tokens[2]
	assert.Equal(t, Literal, tok.Kind)
	assert.Equal(t, Float, tok.Literal)
	assert.Equal(t, Decimal, tok.Base)
	assert.False(t, tok.EmptyExponent)
	assert.True(t, tok.Terminated)
}

func TestNumberForms(t *testing.T) {
	tests := []struct {
		src  string
		lit  LiteralKind
		base Base
	}{
		{"42", Int, Decimal},
		{"0x2A", Int, Hexadecimal},
		{"0o17", Int, Octal},
		{"0b101", Int, Binary},
		{"1.5", Float, Decimal},
		{"1e10", Float, Decimal},
		{"1e+3", Float, Decimal},
		{"1.e10", Float, Decimal},
		{".5", Float, Decimal},
	}
	for _, tt := range tests {
		tokens := lex(t, tt.src)
		require.NotEmpty(t, tokens, tt.src)
		tok := tokens[0]
		assert.Equal(t, Literal, tok.Kind, tt.src)
		assert.Equal(t, tt.lit, tok.Literal, tt.src)
		assert.Equal(t, tt.base, tok.Base, tt.src)
		assert.Equal(t, len(tt.src), tok.Len, tt.src)
	}
}

func TestTrailingDotIsIntegerPlusDot(t *testing.T) {
	tokens := lex(t, "1.")
	require.Len(t, tokens, 2)
	assert.Equal(t, Int, tokens[0].Literal)
	assert.Equal(t, Dot, tokens[1].Kind)
}

func TestEmptyIntReportsError(t *testing.T) {
	tokens, errs := Tokenize("0x")
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].EmptyInt)
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Token)
}

func TestUnterminatedBlockComment(t *testing.T) {
	tokens, errs := Tokenize("/* unterminated")
	require.Len(t, tokens, 1)
	assert.Equal(t, BlockComment, tokens[0].Kind)
	assert.False(t, tokens[0].Terminated)
	require.Len(t, errs, 1)
}

func TestNestedBlockComment(t *testing.T) {
	tokens, errs := Tokenize("/* a /* b */ c */")
	require.Len(t, tokens, 1)
	assert.Equal(t, BlockComment, tokens[0].Kind)
	assert.True(t, tokens[0].Terminated)
	assert.Empty(t, errs)
}

func TestLineComment(t *testing.T) {
	tokens := lex(t, "-- hello\nselect")
	require.GreaterOrEqual(t, len(tokens), 3)
	assert.Equal(t, LineComment, tokens[0].Kind)
	assert.Equal(t, len("-- hello"), tokens[0].Len)
	assert.Equal(t, Whitespace, tokens[1].Kind)
}

func TestDollarQuotedStrings(t *testing.T) {
	tokens, errs := Tokenize("$tag$Dianne's horse$tag$")
	require.Len(t, tokens, 1)
	assert.Equal(t, DollarQuotedStr, tokens[0].Literal)
	assert.True(t, tokens[0].Terminated)
	assert.Empty(t, errs)

	tokens, errs = Tokenize("$$empty tag$$")
	require.Len(t, tokens, 1)
	assert.Equal(t, DollarQuotedStr, tokens[0].Literal)
	assert.Empty(t, errs)

	// The closing tag must match exactly.
	tokens, errs = Tokenize("$a$body$b$")
	require.Len(t, tokens, 1)
	assert.False(t, tokens[0].Terminated)
	require.Len(t, errs, 1)
}

func TestStringPrefixes(t *testing.T) {
	tests := []struct {
		src string
		lit LiteralKind
	}{
		{"'plain'", Str},
		{"E'esc'", EscStr},
		{"e'esc'", EscStr},
		{"U&'uni'", UnicodeEscStr},
		{"u&'uni'", UnicodeEscStr},
		{"B'1001'", BitStr},
		{"b'1001'", BitStr},
		{"X'1FF'", ByteStr},
		{"x'1ff'", ByteStr},
	}
	for _, tt := range tests {
		tokens := lex(t, tt.src)
		require.Len(t, tokens, 1, tt.src)
		assert.Equal(t, Literal, tokens[0].Kind, tt.src)
		assert.Equal(t, tt.lit, tokens[0].Literal, tt.src)
	}
}

func TestPrefixWithoutQuoteIsIdent(t *testing.T) {
	tokens := lex(t, "end")
	require.Len(t, tokens, 1)
	assert.Equal(t, Ident, tokens[0].Kind)

	tokens = lex(t, "user")
	require.Len(t, tokens, 1)
	assert.Equal(t, Ident, tokens[0].Kind)
}

func TestEscapedQuoteInString(t *testing.T) {
	tokens := lex(t, "'it''s'")
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].Terminated)
	assert.Equal(t, len("'it''s'"), tokens[0].Len)
}

func TestQuotedIdent(t *testing.T) {
	tokens := lex(t, `"My ""Table"""`)
	require.Len(t, tokens, 1)
	assert.Equal(t, QuotedIdent, tokens[0].Kind)
	assert.True(t, tokens[0].Terminated)

	tokens, errs := Tokenize(`"unterminated`)
	require.Len(t, tokens, 1)
	assert.False(t, tokens[0].Terminated)
	require.Len(t, errs, 1)
}

func TestPositionalParam(t *testing.T) {
	tokens := lex(t, "$1 $42")
	require.Len(t, tokens, 3)
	assert.Equal(t, Param, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Len)
	assert.Equal(t, Param, tokens[2].Kind)
	assert.Equal(t, 3, tokens[2].Len)
}

func TestInvalidUnicodeEscape(t *testing.T) {
	_, errs := Tokenize(`U&'\12'`)
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid unicode escape", errs[0].Msg)
}

func TestOperatorsAreSingleCharTokens(t *testing.T) {
	tokens := lex(t, "::")
	require.Len(t, tokens, 2)
	assert.Equal(t, Colon, tokens[0].Kind)
	assert.Equal(t, Colon, tokens[1].Kind)

	tokens = lex(t, "->>")
	require.Len(t, tokens, 3)
	assert.Equal(t, Minus, tokens[0].Kind)
	assert.Equal(t, Gt, tokens[1].Kind)
	assert.Equal(t, Gt, tokens[2].Kind)
}
