package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordKindIsCaseInsensitive(t *testing.T) {
	for _, s := range []string{"select", "SELECT", "Select", "sElEcT"} {
		kind, ok := KeywordKind(s)
		require.True(t, ok, s)
		assert.Equal(t, SELECT_KW, kind, s)
	}
}

func TestKeywordKindRejectsNonKeywords(t *testing.T) {
	for _, s := range []string{"users", "mytable", "selects", ""} {
		kind, ok := KeywordKind(s)
		assert.False(t, ok, s)
		assert.Equal(t, IDENT, kind, s)
	}
}

func TestKeywordCategories(t *testing.T) {
	tests := []struct {
		word     string
		category KeywordCategory
	}{
		{"select", Reserved},
		{"table", Reserved},
		{"where", Reserved},
		{"concurrently", TypeFuncName},
		{"like", TypeFuncName},
		{"varchar", ColName},
		{"integer", ColName},
		{"timestamp", ColName},
		{"valid", Unreserved},
		{"begin", Unreserved},
		{"logged", Unreserved},
	}
	for _, tt := range tests {
		kind, ok := KeywordKind(tt.word)
		require.True(t, ok, tt.word)
		cat, ok := KeywordCategoryOf(kind)
		require.True(t, ok, tt.word)
		assert.Equal(t, tt.category, cat, tt.word)
	}
}

func TestDerivedKeywordSets(t *testing.T) {
	// Reserved keywords cannot be column or table names; unreserved and
	// col-name keywords can.
	assert.False(t, ColumnOrTableKeywords.Contains(SELECT_KW))
	assert.False(t, ColumnOrTableKeywords.Contains(CONCURRENTLY_KW))
	assert.True(t, ColumnOrTableKeywords.Contains(VALID_KW))
	assert.True(t, ColumnOrTableKeywords.Contains(VARCHAR_KW))

	// Type names allow everything but reserved keywords.
	assert.True(t, TypeKeywords.Contains(VARCHAR_KW))
	assert.True(t, TypeKeywords.Contains(CONCURRENTLY_KW))
	assert.True(t, TypeKeywords.Contains(BEGIN_KW))
	assert.False(t, TypeKeywords.Contains(SELECT_KW))

	assert.True(t, ReservedKeywords.Contains(SELECT_KW))
	assert.False(t, ReservedKeywords.Contains(BEGIN_KW))
	assert.True(t, UnreservedKeywords.Contains(BEGIN_KW))

	assert.True(t, AllKeywords.Contains(SELECT_KW))
	assert.True(t, AllKeywords.Contains(BEGIN_KW))
	assert.False(t, AllKeywords.Contains(IDENT))
}

func TestBareLabelKeywords(t *testing.T) {
	// `select 1 varchar` is invalid; varchar needs AS to be an alias.
	assert.False(t, BareLabelKeywords.Contains(VARCHAR_KW))
	assert.False(t, BareLabelKeywords.Contains(AS_KW))
	// `select 1 between` is fine as a bare label.
	assert.True(t, BareLabelKeywords.Contains(BETWEEN_KW))
	assert.True(t, BareLabelKeywords.Contains(NULL_KW))
}

func TestKeywordString(t *testing.T) {
	assert.Equal(t, "select", KeywordString(SELECT_KW))
	assert.Equal(t, "analyze", KeywordString(ANALYZE_KW))
	assert.Equal(t, "", KeywordString(IDENT))
	assert.Equal(t, "", KeywordString(CREATE_TABLE))
}

func TestTokenSet(t *testing.T) {
	ts := NewTokenSet(EOF, WHITESPACE)
	assert.True(t, ts.Contains(EOF))
	assert.True(t, ts.Contains(WHITESPACE))
	assert.False(t, ts.Contains(PLUS))

	union := ts.Union(NewTokenSet(PLUS))
	assert.True(t, union.Contains(PLUS))
	assert.True(t, union.Contains(EOF))

	// Node kinds never appear in token sets.
	assert.False(t, union.Contains(SOURCE_FILE))
}

func TestInputJointness(t *testing.T) {
	lexed := NewLexedStr("a::b c :: d")
	inp := lexed.ToInput()
	// Tokens: a : : b c : : d
	require.Equal(t, 8, inp.Len())
	assert.False(t, inp.IsJoint(0))
	assert.True(t, inp.IsJoint(1))  // `:` touches `a`
	assert.True(t, inp.IsJoint(2))  // `::` is joined
	assert.True(t, inp.IsJoint(3))  // `b` touches `::`
	assert.False(t, inp.IsJoint(4)) // space before c
	assert.False(t, inp.IsJoint(5)) // space before :
	assert.True(t, inp.IsJoint(6))
	assert.False(t, inp.IsJoint(7))
}

func TestInputEOFPastEnd(t *testing.T) {
	lexed := NewLexedStr("select")
	inp := lexed.ToInput()
	assert.Equal(t, SELECT_KW, inp.Kind(0))
	assert.Equal(t, EOF, inp.Kind(1))
	assert.Equal(t, EOF, inp.Kind(100))
	assert.False(t, inp.IsJoint(100))
}

func TestLexedStrSkipsTriviaInInput(t *testing.T) {
	lexed := NewLexedStr("select -- comment\n 1")
	inp := lexed.ToInput()
	require.Equal(t, 2, inp.Len())
	assert.Equal(t, SELECT_KW, inp.Kind(0))
	assert.Equal(t, INT_NUMBER, inp.Kind(1))
}
