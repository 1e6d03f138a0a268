package linter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squawkhq/squawk/syntax"
)

// lintRule parses sql, requires it to be syntactically clean, and runs the
// single rule.
func lintRule(t *testing.T, sql string, rule Rule) []Violation {
	t.Helper()
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors(), "parse errors for %q", sql)
	l := New(rule)
	return l.Lint(parse, sql)
}

func lintRuleAssumeInTransaction(t *testing.T, sql string, rule Rule) []Violation {
	t.Helper()
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors(), "parse errors for %q", sql)
	l := New(rule)
	l.Settings.AssumeInTransaction = true
	return l.Lint(parse, sql)
}

func TestAddingRequiredFieldErr(t *testing.T) {
	sql := `ALTER TABLE "recipe" ADD COLUMN "public" boolean NOT NULL;`
	violations := lintRule(t, sql, AddingRequiredField)
	require.Len(t, violations, 1)
	assert.Equal(t, AddingRequiredField, violations[0].Code)
}

func TestAddingRequiredFieldIsTheOnlyFinding(t *testing.T) {
	sql := `ALTER TABLE "recipe" ADD COLUMN "public" boolean NOT NULL;`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := WithAllRules().Lint(parse, sql)
	require.Len(t, violations, 1)
	assert.Equal(t, AddingRequiredField, violations[0].Code)
}

func TestAddingRequiredFieldWithDefaultOk(t *testing.T) {
	sql := `ALTER TABLE "recipe" ADD COLUMN "public" boolean NOT NULL DEFAULT true;`
	assert.Empty(t, lintRule(t, sql, AddingRequiredField))
	assert.Empty(t, lintRule(t, sql, AddingFieldWithDefault))
}

func TestAddingRequiredFieldGeneratedOk(t *testing.T) {
	sql := `ALTER TABLE t ADD COLUMN c numeric GENERATED ALWAYS AS (1 + 2) STORED NOT NULL;`
	assert.Empty(t, lintRule(t, sql, AddingRequiredField))
}

func TestAddingFieldWithDefault(t *testing.T) {
	ok := []string{
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" integer DEFAULT 10;`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" boolean DEFAULT true;`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" text DEFAULT 'some-str';`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" jsonb DEFAULT '{}'::jsonb;`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" timestamptz DEFAULT now();`,
	}
	for _, sql := range ok {
		assert.Empty(t, lintRule(t, sql, AddingFieldWithDefault), sql)
	}

	bad := []string{
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" integer DEFAULT uuid();`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" boolean DEFAULT random();`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" jsonb DEFAULT myjsonb();`,
		`ALTER TABLE "core_recipe" ADD COLUMN "foo" timestamptz DEFAULT now(123);`,
		`ALTER TABLE foo ADD COLUMN bar numeric GENERATED ALWAYS AS (bar + baz) STORED;`,
	}
	for _, sql := range bad {
		assert.NotEmpty(t, lintRule(t, sql, AddingFieldWithDefault), sql)
	}
}

func TestAddingForeignKeyConstraint(t *testing.T) {
	bad := `ALTER TABLE distributors ADD CONSTRAINT distfk FOREIGN KEY (address) REFERENCES addresses (address);`
	require.Len(t, lintRule(t, bad, AddingForeignKeyConstraint), 1)

	badColumn := `ALTER TABLE emails ADD COLUMN user_id integer REFERENCES users (id);`
	require.Len(t, lintRule(t, badColumn, AddingForeignKeyConstraint), 1)

	ok := `ALTER TABLE distributors ADD CONSTRAINT distfk FOREIGN KEY (address) REFERENCES addresses (address) NOT VALID;`
	assert.Empty(t, lintRule(t, ok, AddingForeignKeyConstraint))
}

func TestAddingPrimaryKeyConstraint(t *testing.T) {
	bad := `ALTER TABLE t ADD PRIMARY KEY (id);`
	require.Len(t, lintRule(t, bad, AddingPrimaryKeyConstraint), 1)

	ok := `ALTER TABLE t ADD CONSTRAINT pk PRIMARY KEY USING INDEX idx;`
	assert.Empty(t, lintRule(t, ok, AddingPrimaryKeyConstraint))
}

func TestBanAlterDomainWithAddConstraint(t *testing.T) {
	bad := `ALTER DOMAIN code ADD CONSTRAINT nonempty CHECK (VALUE <> '');`
	require.Len(t, lintRule(t, bad, BanAlterDomainWithAddConstraint), 1)

	ok := `ALTER DOMAIN code DROP CONSTRAINT nonempty;`
	assert.Empty(t, lintRule(t, ok, BanAlterDomainWithAddConstraint))
}

func TestBanCreateDomainWithConstraint(t *testing.T) {
	bad := `CREATE DOMAIN us_postal_code AS text CHECK (VALUE <> '');`
	require.Len(t, lintRule(t, bad, BanCreateDomainWithConstraint), 1)

	ok := `CREATE DOMAIN us_postal_code AS text;`
	assert.Empty(t, lintRule(t, ok, BanCreateDomainWithConstraint))
}

func TestBanCharField(t *testing.T) {
	bad := []string{
		`CREATE TABLE t (a char);`,
		`CREATE TABLE t (a char(10));`,
		`CREATE TABLE t (a character(10));`,
		`CREATE TABLE t (a bpchar);`,
		`CREATE TABLE t (a char(10)[]);`,
		`ALTER TABLE t ADD COLUMN a character;`,
	}
	for _, sql := range bad {
		assert.NotEmpty(t, lintRule(t, sql, BanCharField), sql)
	}
	ok := []string{
		`CREATE TABLE t (a varchar(10));`,
		`CREATE TABLE t (a character varying(10));`,
		`CREATE TABLE t (a text);`,
	}
	for _, sql := range ok {
		assert.Empty(t, lintRule(t, sql, BanCharField), sql)
	}
}

func TestBanDropRules(t *testing.T) {
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t DROP COLUMN c;`, BanDropColumn))
	assert.NotEmpty(t, lintRule(t, `DROP DATABASE app;`, BanDropDatabase))
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t ALTER COLUMN c DROP NOT NULL;`, BanDropNotNull))
	assert.NotEmpty(t, lintRule(t, `DROP TABLE users;`, BanDropTable))

	assert.Empty(t, lintRule(t, `ALTER TABLE t ALTER COLUMN c SET NOT NULL;`, BanDropNotNull))
	assert.Empty(t, lintRule(t, `DROP INDEX idx;`, BanDropTable))
}

func TestBanTruncateCascade(t *testing.T) {
	bad := `TRUNCATE a CASCADE;`
	violations := lintRule(t, bad, BanTruncateCascade)
	require.Len(t, violations, 1)
	// The range points at the CASCADE keyword itself.
	assert.Equal(t, len("TRUNCATE a "), violations[0].Range.Start)

	assert.Empty(t, lintRule(t, `TRUNCATE a;`, BanTruncateCascade))
	assert.Empty(t, lintRule(t, `TRUNCATE a RESTRICT;`, BanTruncateCascade))
}

func TestChangingColumnType(t *testing.T) {
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t ALTER COLUMN c SET DATA TYPE text;`, ChangingColumnType))
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t ALTER COLUMN c TYPE bigint;`, ChangingColumnType))
	assert.Empty(t, lintRule(t, `ALTER TABLE t ALTER COLUMN c SET DEFAULT 1;`, ChangingColumnType))
}

func TestConstraintMissingNotValid(t *testing.T) {
	bad := `ALTER TABLE "accounts" ADD CONSTRAINT "positive_balance" CHECK ("balance" >= 0);`
	require.Len(t, lintRule(t, bad, ConstraintMissingNotValid), 1)

	ok := `
ALTER TABLE distributors ADD CONSTRAINT distfk FOREIGN KEY (address) REFERENCES addresses (address) NOT VALID;
ALTER TABLE distributors VALIDATE CONSTRAINT distfk;
`
	assert.Empty(t, lintRule(t, ok, ConstraintMissingNotValid))

	newTable := `
BEGIN;
CREATE TABLE "core_foo" ("id" serial NOT NULL PRIMARY KEY, "age" integer NOT NULL);
ALTER TABLE "core_foo" ADD CONSTRAINT "age_restriction" CHECK ("age" >= 25);
COMMIT;
`
	assert.Empty(t, lintRule(t, newTable, ConstraintMissingNotValid))

	usingIndex := `ALTER TABLE "app_email" ADD CONSTRAINT "email_uniq" UNIQUE USING INDEX "email_idx";`
	assert.Empty(t, lintRule(t, usingIndex, ConstraintMissingNotValid))
}

func TestConstraintMissingNotValidSameTransaction(t *testing.T) {
	sql := `
BEGIN;
ALTER TABLE e ADD CONSTRAINT fk FOREIGN KEY (u) REFERENCES u(id) NOT VALID;
ALTER TABLE e VALIDATE CONSTRAINT fk;
COMMIT;
`
	violations := lintRule(t, sql, ConstraintMissingNotValid)
	require.Len(t, violations, 1)
	assert.Equal(t, ConstraintMissingNotValid, violations[0].Code)

	assumed := `
ALTER TABLE "app_email" ADD CONSTRAINT "fk_user" FOREIGN KEY (user_id) REFERENCES "app_user" (id) NOT VALID;
ALTER TABLE "app_email" VALIDATE CONSTRAINT "fk_user";
`
	assert.NotEmpty(t, lintRuleAssumeInTransaction(t, assumed, ConstraintMissingNotValid))
}

func TestPreferBigInt(t *testing.T) {
	for _, ty := range []string{"smallint", "integer", "int2", "int4", "serial", "serial2", "serial4", "smallserial"} {
		sql := "CREATE TABLE t (a " + ty + ");"
		assert.NotEmpty(t, lintRule(t, sql, PreferBigInt), ty)
	}
	for _, ty := range []string{"bigint", "bigserial", "int8", "text"} {
		sql := "CREATE TABLE t (a " + ty + ");"
		assert.Empty(t, lintRule(t, sql, PreferBigInt), ty)
	}
}

func TestPreferBigintOverIntVariants(t *testing.T) {
	assert.NotEmpty(t, lintRule(t, `CREATE TABLE t (a integer);`, PreferBigintOverInt))
	assert.Empty(t, lintRule(t, `CREATE TABLE t (a smallint);`, PreferBigintOverInt))

	assert.NotEmpty(t, lintRule(t, `CREATE TABLE t (a smallint);`, PreferBigintOverSmallint))
	assert.Empty(t, lintRule(t, `CREATE TABLE t (a integer);`, PreferBigintOverSmallint))
}

func TestPreferTextField(t *testing.T) {
	bad := `CREATE TABLE "core_recipe" ("name" varchar(255) NOT NULL);`
	require.Len(t, lintRule(t, bad, PreferTextField), 1)

	// Bare varchar is equivalent to text.
	assert.Empty(t, lintRule(t, `CREATE TABLE t (a varchar);`, PreferTextField))
	assert.Empty(t, lintRule(t, `CREATE TABLE t (a text);`, PreferTextField))

	qualified := `CREATE TABLE t (a pg_catalog.varchar(100));`
	assert.NotEmpty(t, lintRule(t, qualified, PreferTextField))
}

func TestPreferTimestampTz(t *testing.T) {
	bad := []string{
		`CREATE TABLE t (a timestamp);`,
		`CREATE TABLE t (a timestamp without time zone);`,
		`ALTER TABLE t ALTER COLUMN a SET DATA TYPE timestamp;`,
	}
	for _, sql := range bad {
		assert.NotEmpty(t, lintRule(t, sql, PreferTimestampTz), sql)
	}
	ok := []string{
		`CREATE TABLE t (a timestamp with time zone);`,
		`CREATE TABLE t (a timestamptz);`,
		`CREATE TABLE t (a time with time zone);`,
	}
	for _, sql := range ok {
		assert.Empty(t, lintRule(t, sql, PreferTimestampTz), sql)
	}
}

func TestRenaming(t *testing.T) {
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t RENAME COLUMN a TO b;`, RenamingColumn))
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t RENAME a TO b;`, RenamingColumn))
	assert.NotEmpty(t, lintRule(t, `ALTER TABLE t RENAME TO t2;`, RenamingTable))
	assert.Empty(t, lintRule(t, `ALTER TABLE t RENAME TO t2;`, RenamingColumn))
}

func TestRequireConcurrentIndexCreation(t *testing.T) {
	bad := `CREATE INDEX "ix" ON "t" ("c");`
	violations := lintRule(t, bad, RequireConcurrentIndexCreation)
	require.Len(t, violations, 1)
	assert.Equal(t, RequireConcurrentIndexCreation, violations[0].Code)

	ok := `CREATE INDEX CONCURRENTLY "field_name_idx" ON "table_name" ("field_name");`
	assert.Empty(t, lintRule(t, ok, RequireConcurrentIndexCreation))
}

func TestRequireConcurrentIndexCreationNewTableOk(t *testing.T) {
	sql := `BEGIN; CREATE TABLE t(id serial PRIMARY KEY); CREATE INDEX idx ON t(id); COMMIT;`
	assert.Empty(t, lintRule(t, sql, RequireConcurrentIndexCreation))

	assumed := `
CREATE TABLE "core_foo" ("id" serial NOT NULL PRIMARY KEY, "tenant_id" integer NULL);
CREATE INDEX "core_foo_tenant_id" ON "core_foo" ("tenant_id");
`
	assert.Empty(t, lintRuleAssumeInTransaction(t, assumed, RequireConcurrentIndexCreation))
}

func TestRequireConcurrentIndexCreationCaseFolding(t *testing.T) {
	// FOO, foo, and "foo" name the same table; "Foo" does not.
	same := `BEGIN; CREATE TABLE FOO(id int); CREATE INDEX i ON "foo"(id); COMMIT;`
	assert.Empty(t, lintRule(t, same, RequireConcurrentIndexCreation))

	different := `BEGIN; CREATE TABLE "Foo"(id int); CREATE INDEX i ON "foo"(id); COMMIT;`
	assert.NotEmpty(t, lintRule(t, different, RequireConcurrentIndexCreation))
}

func TestRequireConcurrentIndexDeletion(t *testing.T) {
	assert.NotEmpty(t, lintRule(t, `DROP INDEX "idx";`, RequireConcurrentIndexDeletion))
	assert.Empty(t, lintRule(t, `DROP INDEX CONCURRENTLY IF EXISTS "idx";`, RequireConcurrentIndexDeletion))
	assert.Empty(t, lintRule(t, `DROP TABLE IF EXISTS some_table;`, RequireConcurrentIndexDeletion))
	assert.Empty(t, lintRule(t, `DROP TRIGGER IF EXISTS trg ON foo_table;`, RequireConcurrentIndexDeletion))
}

func TestBanConcurrentIndexCreationInTransaction(t *testing.T) {
	bad := `
BEGIN;
CREATE INDEX CONCURRENTLY "field_name_idx" ON "table_name" ("field_name");
COMMIT;
`
	require.Len(t, lintRule(t, bad, BanConcurrentIndexCreationInTransaction), 1)

	ok := `CREATE INDEX CONCURRENTLY "field_name_idx" ON "table_name" ("field_name");`
	assert.Empty(t, lintRule(t, ok, BanConcurrentIndexCreationInTransaction))

	assumedBad := `
CREATE UNIQUE INDEX CONCURRENTLY "field_name_idx" ON "table_name" ("field_name");
ALTER TABLE "table_name" ADD CONSTRAINT "field_name_id" UNIQUE USING INDEX "field_name_idx";
`
	assert.NotEmpty(t, lintRuleAssumeInTransaction(t, assumedBad, BanConcurrentIndexCreationInTransaction))

	assumedOk := `CREATE UNIQUE INDEX CONCURRENTLY "field_name_idx" ON "table_name" ("field_name");`
	assert.Empty(t, lintRuleAssumeInTransaction(t, assumedOk, BanConcurrentIndexCreationInTransaction))
}

func TestTransactionNesting(t *testing.T) {
	nested := `BEGIN; BEGIN; SELECT 1; COMMIT;`
	assert.NotEmpty(t, lintRule(t, nested, TransactionNesting))

	repeatedCommit := `BEGIN; SELECT 1; COMMIT; COMMIT;`
	assert.NotEmpty(t, lintRule(t, repeatedCommit, TransactionNesting))

	ok := `BEGIN; SELECT 1; COMMIT;`
	assert.Empty(t, lintRule(t, ok, TransactionNesting))

	repeatedOk := `BEGIN; SELECT 1; COMMIT; BEGIN; SELECT 2; COMMIT;`
	assert.Empty(t, lintRule(t, repeatedOk, TransactionNesting))
}

func TestTransactionNestingAssumeInTransaction(t *testing.T) {
	violations := lintRuleAssumeInTransaction(t, `BEGIN; SELECT 1; COMMIT;`, TransactionNesting)
	require.NotEmpty(t, violations)
	// The message distinguishes tool-managed transactions so downstream
	// tooling can match on it.
	assert.Contains(t, violations[0].Message, "managed by your migration tool")

	commit := lintRuleAssumeInTransaction(t, `SELECT 1; COMMIT;`, TransactionNesting)
	require.Len(t, commit, 1)

	rollback := lintRuleAssumeInTransaction(t, `SELECT 1; ROLLBACK;`, TransactionNesting)
	require.Len(t, rollback, 1)

	assert.Empty(t, lintRuleAssumeInTransaction(t, `SELECT 1;`, TransactionNesting))
}

func TestViolationsSortedByRangeThenCode(t *testing.T) {
	sql := `
ALTER TABLE t RENAME COLUMN a TO b;
ALTER TABLE t DROP COLUMN c;
`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	violations := WithAllRules().Lint(parse, sql)
	require.GreaterOrEqual(t, len(violations), 2)
	for i := 1; i < len(violations); i++ {
		prev, cur := violations[i-1], violations[i]
		ordered := prev.Range.Start < cur.Range.Start ||
			(prev.Range.Start == cur.Range.Start && prev.Code <= cur.Code)
		assert.True(t, ordered, "violations must be sorted")
	}
}

func TestRuleDeterminism(t *testing.T) {
	sql := `
ALTER TABLE t ADD COLUMN a integer NOT NULL;
CREATE INDEX i ON t (a);
DROP TABLE old;
`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())
	first := WithAllRules().Lint(parse, sql)
	for i := 0; i < 5; i++ {
		again := WithAllRules().Lint(syntax.ParseSourceFile(sql), sql)
		assert.Equal(t, first, again)
	}
}

func TestSuppressionMonotonicity(t *testing.T) {
	sql := `
-- squawk-ignore ban-drop-column
ALTER TABLE t DROP COLUMN c;
CREATE INDEX i ON t (c);
`
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors())

	small := New(RequireConcurrentIndexCreation).Lint(parse, sql)
	large := WithAllRules().Lint(syntax.ParseSourceFile(sql), sql)

	// Everything reported under the smaller rule set appears under the
	// larger one.
	for _, v := range small {
		assert.Contains(t, large, v)
	}
}

func TestViolationJSONShape(t *testing.T) {
	sql := `CREATE TABLE t (a varchar(100));`
	violations := lintRule(t, sql, PreferTextField)
	require.Len(t, violations, 1)

	data, err := json.Marshal(violations[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "prefer-text-field", decoded["code"])
	assert.NotEmpty(t, decoded["message"])
	rangeObj := decoded["range"].(map[string]any)
	assert.Contains(t, rangeObj, "start")
	assert.Contains(t, rangeObj, "end")
	messages := decoded["messages"].([]any)
	require.NotEmpty(t, messages)
	first := messages[0].(map[string]any)
	assert.Contains(t, first, "Note")
	_, hasFix := decoded["fix"]
	assert.False(t, hasFix)
}
