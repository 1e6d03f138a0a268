package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squawkhq/squawk/linter"
	"github.com/squawkhq/squawk/syntax"
)

func lintFixture(t *testing.T, sql string) (syntax.Parse, []linter.Violation) {
	t.Helper()
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	l := linter.WithAllRules()
	return parse, l.Lint(parse, sql)
}

func TestGccReporter(t *testing.T) {
	sql := "ALTER TABLE t DROP COLUMN c;"
	parse, violations := lintFixture(t, sql)
	require.NotEmpty(t, violations)

	var buf bytes.Buffer
	gccReporter{}.report(&buf, "mig.sql", sql, parse.Errors(), violations)
	out := buf.String()
	assert.Contains(t, out, "mig.sql:1:")
	assert.Contains(t, out, "warning: ban-drop-column")
}

func TestJSONReporter(t *testing.T) {
	sql := "CREATE TABLE t (a varchar(100));"
	parse, violations := lintFixture(t, sql)
	require.NotEmpty(t, violations)

	var buf bytes.Buffer
	jsonReporter{}.report(&buf, "mig.sql", sql, parse.Errors(), violations)

	var decoded struct {
		File       string             `json:"file"`
		Violations []linter.Violation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "mig.sql", decoded.File)
	require.NotEmpty(t, decoded.Violations)
	assert.Equal(t, linter.PreferTextField, decoded.Violations[0].Code)
}

func TestTtyReporterSnippet(t *testing.T) {
	sql := "TRUNCATE a CASCADE;"
	parse, violations := lintFixture(t, sql)
	require.NotEmpty(t, violations)

	var buf bytes.Buffer
	ttyReporter{color: false}.report(&buf, "mig.sql", sql, parse.Errors(), violations)
	out := buf.String()
	assert.Contains(t, out, "warning: ban-truncate-cascade mig.sql:1:12")
	assert.Contains(t, out, "TRUNCATE a CASCADE;")
	assert.True(t, strings.Contains(out, "^^^^^^^"), "range must be underlined")
	assert.Contains(t, out, "note:")
	assert.Contains(t, out, "help:")
}

func TestLineCol(t *testing.T) {
	text := "ab\ncd\nef"
	line, col := lineCol(text, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
	line, col = lineCol(text, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)
	line, col = lineCol(text, 6)
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
}
