package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squawkhq/squawk/syntax"
)

func parseFile(t *testing.T, sql string) SourceFile {
	t.Helper()
	parse := syntax.ParseSourceFile(sql)
	require.Empty(t, parse.Errors(), "parse errors for %q", sql)
	return File(parse.SyntaxNode())
}

func TestStmtsInSourceOrder(t *testing.T) {
	file := parseFile(t, "BEGIN; CREATE TABLE t(id int); COMMIT;")
	stmts := file.Stmts()
	require.Len(t, stmts, 3)
	_, ok := stmts[0].(Begin)
	assert.True(t, ok)
	_, ok = stmts[1].(CreateTable)
	assert.True(t, ok)
	_, ok = stmts[2].(Commit)
	assert.True(t, ok)
}

func TestCreateTableAccessors(t *testing.T) {
	file := parseFile(t, `CREATE TABLE app.users (id bigint PRIMARY KEY, email varchar(255) NOT NULL);`)
	create, ok := file.Stmts()[0].(CreateTable)
	require.True(t, ok)

	name, ok := create.Name()
	require.True(t, ok)
	assert.Equal(t, "users", name)

	path, ok := create.Path()
	require.True(t, ok)
	qualifier, ok := path.Qualifier()
	require.True(t, ok)
	assert.Equal(t, "app", qualifier)

	args, ok := create.TableArgList()
	require.True(t, ok)
	cols := args.Args()
	require.Len(t, cols, 2)

	id := cols[0].(ColumnDef)
	idName, ok := id.Name()
	require.True(t, ok)
	assert.Equal(t, "id", idName.Text())
	require.Len(t, id.Constraints(), 1)
	_, ok = id.Constraints()[0].(PrimaryKeyConstraint)
	assert.True(t, ok)

	email := cols[1].(ColumnDef)
	charType, ok := email.Ty().(CharType)
	require.True(t, ok)
	assert.Equal(t, "varchar", charType.Text())
	assert.NotNil(t, charType.ArgList())
}

func TestAlterTableActions(t *testing.T) {
	file := parseFile(t, `ALTER TABLE "recipe" ADD COLUMN "public" boolean NOT NULL, DROP COLUMN old, VALIDATE CONSTRAINT fk;`)
	alter, ok := file.Stmts()[0].(AlterTable)
	require.True(t, ok)

	tableName, ok := alter.Name()
	require.True(t, ok)
	assert.Equal(t, `"recipe"`, tableName)

	actions := alter.Actions()
	require.Len(t, actions, 3)

	add, ok := actions[0].(AddColumn)
	require.True(t, ok)
	colName, ok := add.Name()
	require.True(t, ok)
	assert.Equal(t, `"public"`, colName.Text())
	require.Len(t, add.Constraints(), 1)
	_, ok = add.Constraints()[0].(NotNullConstraint)
	assert.True(t, ok)

	_, ok = actions[1].(DropColumn)
	assert.True(t, ok)

	validate, ok := actions[2].(ValidateConstraint)
	require.True(t, ok)
	ref, ok := validate.NameRef()
	require.True(t, ok)
	assert.Equal(t, "fk", ref.Text())
}

func TestAddConstraintNotValid(t *testing.T) {
	file := parseFile(t, `ALTER TABLE e ADD CONSTRAINT fk FOREIGN KEY (u) REFERENCES u(id) NOT VALID;`)
	alter := file.Stmts()[0].(AlterTable)
	add, ok := alter.Actions()[0].(AddConstraint)
	require.True(t, ok)
	assert.NotNil(t, add.NotValid())

	fk, ok := add.Constraint().(ForeignKeyConstraint)
	require.True(t, ok)
	name, ok := fk.Name()
	require.True(t, ok)
	assert.Equal(t, "fk", name.Text())
}

func TestAlterColumnSetType(t *testing.T) {
	file := parseFile(t, `ALTER TABLE t ALTER COLUMN c SET DATA TYPE timestamp;`)
	alter := file.Stmts()[0].(AlterTable)
	alterColumn, ok := alter.Actions()[0].(AlterColumn)
	require.True(t, ok)
	setType, ok := alterColumn.Option().(SetType)
	require.True(t, ok)
	timeType, ok := setType.Ty().(TimeType)
	require.True(t, ok)
	ref, ok := timeType.NameRef()
	require.True(t, ok)
	assert.Equal(t, "timestamp", ref.Text())
	assert.Nil(t, timeType.WithTimezone())
}

func TestCreateIndexAccessors(t *testing.T) {
	file := parseFile(t, `CREATE UNIQUE INDEX CONCURRENTLY idx ON sch.tbl (col);`)
	createIndex, ok := file.Stmts()[0].(CreateIndex)
	require.True(t, ok)
	assert.NotNil(t, createIndex.ConcurrentlyToken())
	assert.NotNil(t, createIndex.UniqueToken())

	path, ok := createIndex.Path()
	require.True(t, ok)
	seg, ok := path.Segment()
	require.True(t, ok)
	assert.Equal(t, "tbl", seg.Text())
}

func TestDefaultConstraintExpr(t *testing.T) {
	file := parseFile(t, `ALTER TABLE t ADD COLUMN c timestamptz DEFAULT now();`)
	alter := file.Stmts()[0].(AlterTable)
	add := alter.Actions()[0].(AddColumn)
	var def DefaultConstraint
	found := false
	for _, c := range add.Constraints() {
		if d, ok := c.(DefaultConstraint); ok {
			def = d
			found = true
		}
	}
	require.True(t, found)

	call, ok := def.Expr().(CallExpr)
	require.True(t, ok)
	ref, ok := call.CalleeNameRef()
	require.True(t, ok)
	assert.Equal(t, "now", ref.Text())
	argList, ok := call.ArgList()
	require.True(t, ok)
	assert.Empty(t, argList.Args())
}

func TestCastOfLiteral(t *testing.T) {
	file := parseFile(t, `ALTER TABLE t ADD COLUMN c jsonb DEFAULT '{}'::jsonb;`)
	alter := file.Stmts()[0].(AlterTable)
	add := alter.Actions()[0].(AddColumn)
	require.NotEmpty(t, add.Constraints())
	def, ok := add.Constraints()[0].(DefaultConstraint)
	require.True(t, ok)
	cast, ok := def.Expr().(CastExpr)
	require.True(t, ok)
	_, ok = cast.Expr().(Literal)
	assert.True(t, ok)
	pathType, ok := cast.Ty().(PathType)
	require.True(t, ok)
	p, ok := pathType.Path()
	require.True(t, ok)
	seg, ok := p.Segment()
	require.True(t, ok)
	assert.Equal(t, "jsonb", seg.Text())
}

func TestArrayTypeElement(t *testing.T) {
	file := parseFile(t, `CREATE TABLE t (tags varchar(20)[]);`)
	create := file.Stmts()[0].(CreateTable)
	args, ok := create.TableArgList()
	require.True(t, ok)
	col := args.Args()[0].(ColumnDef)
	arr, ok := col.Ty().(ArrayType)
	require.True(t, ok)
	char, ok := arr.Ty().(CharType)
	require.True(t, ok)
	assert.Equal(t, "varchar", char.Text())
}
