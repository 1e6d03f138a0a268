package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squawkhq/squawk/syntax"
)

func TestSingleIgnore(t *testing.T) {
	sql := `
-- squawk-ignore ban-drop-column
alter table t drop column c cascade;
`
	parse := syntax.ParseSourceFile(sql)
	l := New()
	findIgnores(l, parse.SyntaxNode())
	require.Len(t, l.ignores, 1)
	assert.True(t, l.ignores[0].Rules[BanDropColumn])
	assert.False(t, l.ignores[0].File)
}

func TestSingleIgnoreCStyleComment(t *testing.T) {
	sql := `
/* squawk-ignore ban-drop-column */
alter table t drop column c cascade;
`
	parse := syntax.ParseSourceFile(sql)
	l := New()
	findIgnores(l, parse.SyntaxNode())
	require.Len(t, l.ignores, 1)
	assert.True(t, l.ignores[0].Rules[BanDropColumn])
}

func TestMultiIgnore(t *testing.T) {
	sql := `
-- squawk-ignore ban-drop-column, renaming-column,ban-drop-database
alter table t drop column c cascade;
`
	parse := syntax.ParseSourceFile(sql)
	l := New()
	findIgnores(l, parse.SyntaxNode())
	require.Len(t, l.ignores, 1)
	ig := l.ignores[0]
	assert.True(t, ig.Rules[BanDropColumn])
	assert.True(t, ig.Rules[RenamingColumn])
	assert.True(t, ig.Rules[BanDropDatabase])
}

func TestIgnoreSuppressesViolation(t *testing.T) {
	sql := "-- squawk-ignore prefer-text-field\nCREATE TABLE t (a varchar(100));"
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(PreferTextField).Lint(parse, sql)
	assert.Empty(t, violations)
}

func TestIgnoreSameLine(t *testing.T) {
	sql := `alter table t drop column c; -- squawk-ignore ban-drop-column`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(BanDropColumn).Lint(parse, sql)
	assert.Empty(t, violations)
}

func TestIgnoreOnlyAppliesToNextLine(t *testing.T) {
	sql := `-- squawk-ignore ban-drop-column
alter table t drop column a;
alter table t drop column b;`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(BanDropColumn).Lint(parse, sql)
	require.Len(t, violations, 1)
}

func TestIgnoreDifferentRuleStillReports(t *testing.T) {
	sql := "-- squawk-ignore renaming-column\nCREATE TABLE t (a varchar(100));"
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(PreferTextField).Lint(parse, sql)
	require.Len(t, violations, 1)
}

func TestIgnoreFile(t *testing.T) {
	sql := `-- squawk-ignore-file ban-drop-column
alter table a drop column x;

select 1;

alter table b drop column y;`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(BanDropColumn).Lint(parse, sql)
	assert.Empty(t, violations)
}

func TestIgnoreFileMultipleRules(t *testing.T) {
	sql := `-- squawk-ignore-file ban-drop-column, prefer-text-field
alter table a drop column x;
create table t (a varchar(10));
alter table t rename to t2;`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := WithAllRules().Lint(parse, sql)
	require.Len(t, violations, 1)
	assert.Equal(t, RenamingTable, violations[0].Code)
}

func TestUnknownIgnoreNameReported(t *testing.T) {
	sql := "-- squawk-ignore ban-drop-column, not-a-rule\nalter table t drop column c;"
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := WithAllRules().Lint(parse, sql)
	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, UnusedIgnore, v.Code)
	assert.Equal(t, "unknown name not-a-rule", v.Message)
	// The range covers exactly the unknown name.
	assert.Equal(t, "not-a-rule", sql[v.Range.Start:v.Range.End])
}

func TestUnknownNameDoesNotInvalidateRest(t *testing.T) {
	sql := "-- squawk-ignore not-a-rule, ban-drop-column\nalter table t drop column c;"
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(BanDropColumn).Lint(parse, sql)
	// The drop-column violation is still suppressed by the valid name.
	for _, v := range violations {
		assert.NotEqual(t, BanDropColumn, v.Code)
	}
}

func TestIgnoreMultipleStatements(t *testing.T) {
	sql := `
-- squawk-ignore ban-char-field, prefer-big-int
alter table t add column c char;

-- squawk-ignore adding-field-with-default
ALTER TABLE foo ADD COLUMN bar numeric GENERATED ALWAYS AS (bar + baz) STORED;

-- squawk-ignore prefer-text-field
create table users (a varchar(50));
`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(BanCharField, AddingFieldWithDefault, PreferTextField, PreferBigInt).Lint(parse, sql)
	assert.Empty(t, violations)
}

func TestNoIgnoreOnFirstLineStillLints(t *testing.T) {
	sql := `alter table t add column c char;`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := New(BanCharField).Lint(parse, sql)
	require.Len(t, violations, 1)
}
