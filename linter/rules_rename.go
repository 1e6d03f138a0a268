package linter

import "github.com/squawkhq/squawk/syntax/ast"

func renamingColumn(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			if renameColumn, ok := action.(ast.RenameColumn); ok {
				ctx.Report(NewViolation(
					RenamingColumn,
					"Renaming a column may break existing clients.",
					renameColumn.Syntax().Range(),
					"",
				))
			}
		}
	}
}

func renamingTable(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			if renameTable, ok := action.(ast.RenameTable); ok {
				ctx.Report(NewViolation(
					RenamingTable,
					"Renaming a table may break existing clients.",
					renameTable.Syntax().Range(),
					"",
				))
			}
		}
	}
}

func changingColumnType(ctx *Linter, file ast.SourceFile) {
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
			if setType, ok := alterColumn.Option().(ast.SetType); ok {
				ctx.Report(NewViolation(
					ChangingColumnType,
					"Changing a column type requires an `ACCESS EXCLUSIVE` lock on the table which blocks reads and writes while the table is rewritten. Changing the type of the column may also break other clients reading from the table.",
					setType.Syntax().Range(),
					"",
				))
			}
		}
	}
}
