package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squawkhq/squawk/parser"
)

var losslessInputs = []string{
	"",
	";",
	"select 1;",
	"SELECT 1.5",
	"-- leading comment\nSELECT 1;\n-- trailing comment\n",
	"/* block */ SELECT /* inline */ 1; -- eol\n",
	"SELECT a, b AS c FROM t WHERE a > 1 GROUP BY b HAVING count(*) > 2 ORDER BY a LIMIT 1 OFFSET 2;",
	"WITH cte AS (SELECT 1) SELECT * FROM cte;",
	"INSERT INTO t (a) VALUES (1) ON CONFLICT (a) DO NOTHING;",
	"UPDATE t SET a = DEFAULT WHERE b IS NOT NULL RETURNING *;",
	"DELETE FROM t USING u WHERE t.id = u.id;",
	"TRUNCATE ONLY a, b RESTART IDENTITY CASCADE;",
	"CREATE TABLE \"recipe\" (\"id\" serial PRIMARY KEY, \"created\" timestamp with time zone);",
	"CREATE TABLE t (LIKE other INCLUDING ALL, a bigint REFERENCES o (id) ON DELETE CASCADE);",
	"CREATE TABLE measurements (logdate date NOT NULL) PARTITION BY RANGE (logdate);",
	"CREATE UNLOGGED TABLE scratch (a text);",
	"CREATE INDEX CONCURRENTLY IF NOT EXISTS i ON ONLY s.t USING gin (a, b DESC NULLS LAST) WITH (fastupdate = off) WHERE a > 0;",
	"CREATE DOMAIN d AS text CONSTRAINT nonempty CHECK (VALUE <> '');",
	"CREATE OR REPLACE FUNCTION add(a integer, b integer) RETURNS integer LANGUAGE sql AS $$select a + b$$;",
	"CREATE TYPE mood AS ENUM ('sad', 'ok', 'happy');",
	"CREATE TYPE pair AS (x integer, y integer);",
	"CREATE MATERIALIZED VIEW mv AS SELECT * FROM t;",
	"CREATE SCHEMA app AUTHORIZATION owner_role;",
	"ALTER TABLE \"recipe\" ADD COLUMN \"public\" boolean NOT NULL;",
	"ALTER TABLE t ADD COLUMN c numeric GENERATED ALWAYS AS (a + b) STORED;",
	"ALTER TABLE t ADD CONSTRAINT u UNIQUE USING INDEX idx;",
	"ALTER TABLE t DROP COLUMN IF EXISTS c CASCADE, DROP CONSTRAINT chk;",
	"ALTER TABLE t ALTER COLUMN c TYPE bigint, ALTER COLUMN d SET DEFAULT 0, ALTER COLUMN e DROP NOT NULL;",
	"ALTER TABLE t VALIDATE CONSTRAINT fk;",
	"ALTER TABLE t SET LOGGED;",
	"ALTER DOMAIN d DROP CONSTRAINT c;",
	"ALTER DOMAIN d SET NOT NULL;",
	"DROP TABLE a; DROP INDEX i; DROP DATABASE db; DROP TYPE ty; DROP TRIGGER trg ON t; DROP DOMAIN dom;",
	"BEGIN ISOLATION LEVEL SERIALIZABLE; COMMIT AND CHAIN;",
	"START TRANSACTION; ROLLBACK;",
	"SET LOCAL search_path TO app, public;",
	"COMMENT ON COLUMN t.c IS NULL;",
	"SELECT CASE a WHEN 1 THEN 'one' ELSE 'many' END, CAST(a AS text), a::text;",
	"SELECT ARRAY[1, 2], (SELECT max(x) FROM t), EXISTS (SELECT 1);",
	"SELECT x FROM t WHERE a BETWEEN SYMMETRIC 1 AND 2 AND b NOT IN (1, 2) AND c ILIKE '%z%' ESCAPE '!';",
	"SELECT payload -> 'a' ->> 'b', meta #> '{x}', tags && ARRAY['go'];",
	"SELECT u&'d\\0061t\\+000061', E'\\n', B'1010', X'FF', $1, $$dq$$;",
	"SELECT schema.tbl.col, a.1, tab.2.b;",
	"select 1e10, 1.e10, .5, 0x1F;",
	"this is garbage ( with ; nested parens);",
	"CREATE;",
	"ALTER TABLE t FROB the knob;",
	"SELECT FROM;",
	"/* unterminated",
	"'lost string\nSELECT 1;",
	"select \x01;",
}

func TestLosslessParse(t *testing.T) {
	for _, input := range losslessInputs {
		parse := ParseSourceFile(input)
		got := parse.SyntaxNode().Text()
		if diff := cmp.Diff(input, got); diff != "" {
			t.Errorf("parse is not lossless (-want +got):\n%s", diff)
		}
	}
}

func TestRootCoversWholeInput(t *testing.T) {
	for _, input := range losslessInputs {
		parse := ParseSourceFile(input)
		root := parse.SyntaxNode()
		assert.Equal(t, parser.SOURCE_FILE, root.Kind())
		assert.Equal(t, TextRange{Start: 0, End: len(input)}, root.Range(), "input: %q", input)
	}
}

func TestIdempotentParse(t *testing.T) {
	for _, input := range losslessInputs {
		first := ParseSourceFile(input)
		second := ParseSourceFile(first.SyntaxNode().Text())
		assert.Equal(t, first.SyntaxNode().Dump(), second.SyntaxNode().Dump(), "input: %q", input)
	}
}

func TestValidInputHasNoErrors(t *testing.T) {
	inputs := []string{
		"SELECT 1.5",
		"ALTER TABLE \"recipe\" ADD COLUMN \"public\" boolean NOT NULL;",
		"ALTER TABLE \"recipe\" ADD COLUMN \"public\" boolean NOT NULL DEFAULT true;",
		"BEGIN; CREATE TABLE t(id serial PRIMARY KEY); CREATE INDEX idx ON t(id); COMMIT;",
		"CREATE INDEX \"ix\" ON \"t\" (\"c\");",
	}
	for _, input := range inputs {
		parse := ParseSourceFile(input)
		assert.Empty(t, parse.Errors(), "input: %q", input)
	}
}

func TestUnterminatedCommentProducesError(t *testing.T) {
	parse := ParseSourceFile("/* unterminated")
	require.NotEmpty(t, parse.Errors())
	assert.Equal(t, "unterminated block comment", parse.Errors()[0].Msg)
	// The rest of the (empty) file still parses.
	assert.Equal(t, parser.SOURCE_FILE, parse.SyntaxNode().Kind())
	assert.Equal(t, "/* unterminated", parse.SyntaxNode().Text())
}

func TestGarbageProducesParseErrors(t *testing.T) {
	parse := ParseSourceFile("this is garbage;")
	assert.NotEmpty(t, parse.Errors())
}

func TestTokenAtOffset(t *testing.T) {
	input := "SELECT abc FROM t;"
	parse := ParseSourceFile(input)
	root := parse.SyntaxNode()

	tok := root.TokenAtOffset(8) // inside "abc"
	require.NotNil(t, tok)
	assert.Equal(t, "abc", tok.Text())
	assert.Equal(t, TextRange{Start: 7, End: 10}, tok.Range())

	assert.Nil(t, root.TokenAtOffset(len(input)))
}

func TestAncestors(t *testing.T) {
	parse := ParseSourceFile("SELECT abc;")
	root := parse.SyntaxNode()
	tok := root.TokenAtOffset(8)
	require.NotNil(t, tok)
	chain := tok.Parent().Ancestors()
	require.NotEmpty(t, chain)
	assert.Equal(t, parser.SOURCE_FILE, chain[len(chain)-1].Kind())
}

func TestGreenSharing(t *testing.T) {
	// Red nodes are views; regenerating children yields equal structure over
	// the same green nodes.
	parse := ParseSourceFile("SELECT 1;")
	root := parse.SyntaxNode()
	a := root.Children()
	b := root.Children()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Same(t, a[i].Green(), b[i].Green())
		assert.Equal(t, a[i].Range(), b[i].Range())
	}
}

func TestStatementNodesPresent(t *testing.T) {
	parse := ParseSourceFile("BEGIN; CREATE TABLE t(id int); COMMIT;")
	var kinds []parser.SyntaxKind
	for _, c := range parse.SyntaxNode().Children() {
		kinds = append(kinds, c.Kind())
	}
	assert.Equal(t, []parser.SyntaxKind{parser.BEGIN_STMT, parser.CREATE_TABLE, parser.COMMIT_STMT}, kinds)
}

func TestLeadingCommentAttachesToStatement(t *testing.T) {
	input := "-- squawk-ignore ban-drop-column\nALTER TABLE t DROP COLUMN c;"
	parse := ParseSourceFile(input)
	children := parse.SyntaxNode().Children()
	require.Len(t, children, 1)
	alter := children[0]
	assert.Equal(t, parser.ALTER_TABLE, alter.Kind())
	// The comment is leading trivia of the statement node.
	assert.Equal(t, 0, alter.Range().Start)
	first := alter.FirstToken()
	require.NotNil(t, first)
	assert.Equal(t, parser.COMMENT, first.Kind())
}

func TestBlankLineDetachesComment(t *testing.T) {
	input := "-- standalone note\n\nSELECT 1;"
	parse := ParseSourceFile(input)
	children := parse.SyntaxNode().Children()
	require.Len(t, children, 1)
	sel := children[0]
	// The blank line keeps the comment out of the statement.
	assert.Greater(t, sel.Range().Start, 0)
}

func TestDocCommentCrossesBlankLine(t *testing.T) {
	input := "--- documented table\n\nCREATE TABLE t (a int);"
	parse := ParseSourceFile(input)
	children := parse.SyntaxNode().Children()
	require.Len(t, children, 1)
	create := children[0]
	assert.Equal(t, parser.CREATE_TABLE, create.Kind())
	assert.Equal(t, 0, create.Range().Start)
}
