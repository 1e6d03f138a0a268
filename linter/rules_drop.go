package linter

import "github.com/squawkhq/squawk/syntax/ast"

func banDropColumn(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			if dropColumn, ok := action.(ast.DropColumn); ok {
				ctx.Report(NewViolation(
					BanDropColumn,
					"Dropping a column may break existing clients.",
					dropColumn.Syntax().Range(),
					"",
				))
			}
		}
	}
}

// banDropDatabase is Brad's Rule: never drop a database in a migration.
func banDropDatabase(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		if dropDatabase, ok := stmt.(ast.DropDatabase); ok {
			ctx.Report(NewViolation(
				BanDropDatabase,
				"Dropping a database may break existing clients.",
				dropDatabase.Syntax().Range(),
				"",
			))
		}
	}
}

func banDropNotNull(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			alterColumn, ok := action.(ast.AlterColumn)
			if !ok {
				continue
			}
			if dropNotNull, ok := alterColumn.Option().(ast.DropNotNull); ok {
				ctx.Report(NewViolation(
					BanDropNotNull,
					"Dropping a `NOT NULL` constraint may break existing clients.",
					dropNotNull.Syntax().Range(),
					"",
				))
			}
		}
	}
}

func banDropTable(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		if dropTable, ok := stmt.(ast.DropTable); ok {
			ctx.Report(NewViolation(
				BanDropTable,
				"Dropping a table may break existing clients.",
				dropTable.Syntax().Range(),
				"",
			))
		}
	}
}

func banTruncateCascade(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		truncate, ok := stmt.(ast.Truncate)
		if !ok {
			continue
		}
		if cascade := truncate.CascadeToken(); cascade != nil {
			ctx.Report(NewViolation(
				BanTruncateCascade,
				"Using `CASCADE` will recursively truncate any tables that foreign key to the referenced tables! So if you had foreign keys setup as `a <- b <- c` and truncated `a`, then `b` & `c` would also be truncated!",
				cascade.Range(),
				"Remove the `CASCADE` and specify exactly which tables you want to truncate.",
			))
		}
	}
}

func requireConcurrentIndexDeletion(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		dropIndex, ok := stmt.(ast.DropIndex)
		if !ok {
			continue
		}
		if dropIndex.ConcurrentlyToken() == nil {
			ctx.Report(NewViolation(
				RequireConcurrentIndexDeletion,
				"A normal `DROP INDEX` acquires an `ACCESS EXCLUSIVE` lock on the table, blocking other accesses until the index drop can be completed.",
				dropIndex.Syntax().Range(),
				"Delete the index `CONCURRENTLY`.",
			))
		}
	}
}
