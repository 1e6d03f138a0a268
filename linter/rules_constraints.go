package linter

import (
	"github.com/squawkhq/squawk/syntax"
	"github.com/squawkhq/squawk/syntax/ast"
)

func addingForeignKeyConstraint(ctx *Linter, file ast.SourceFile) {
	const message = "Adding a foreign key constraint requires a table scan and a `SHARE ROW EXCLUSIVE` lock on both tables, which blocks writes to each table."
	const help = "Add `NOT VALID` to the constraint in one transaction and then `VALIDATE CONSTRAINT` in a separate transaction."
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			switch a := action.(type) {
			case ast.AddConstraint:
				if a.NotValid() != nil {
					// Adding a foreign key is okay when NOT VALID is given.
					continue
				}
				switch c := a.Constraint().(type) {
				case ast.ForeignKeyConstraint:
					ctx.Report(NewViolation(AddingForeignKeyConstraint, message, c.Syntax().Range(), help))
				case ast.ReferencesConstraint:
					ctx.Report(NewViolation(AddingForeignKeyConstraint, message, c.Syntax().Range(), help))
				}
			case ast.AddColumn:
				for _, c := range a.Constraints() {
					switch c := c.(type) {
					case ast.ForeignKeyConstraint:
						ctx.Report(NewViolation(AddingForeignKeyConstraint, message, c.Syntax().Range(), help))
					case ast.ReferencesConstraint:
						ctx.Report(NewViolation(AddingForeignKeyConstraint, message, c.Syntax().Range(), help))
					}
				}
			}
		}
	}
}

func addingPrimaryKeyConstraint(ctx *Linter, file ast.SourceFile) {
	const message = "Adding a primary key constraint requires an `ACCESS EXCLUSIVE` lock that will block all reads and writes to the table while the primary key index is built."
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			switch a := action.(type) {
			case ast.AddConstraint:
				if pk, ok := a.Constraint().(ast.PrimaryKeyConstraint); ok && pk.UsingIndex() == nil {
					ctx.Report(NewViolation(AddingPrimaryKeyConstraint, message, pk.Syntax().Range(), ""))
				}
			case ast.AddColumn:
				for _, c := range a.Constraints() {
					if pk, ok := c.(ast.PrimaryKeyConstraint); ok && pk.UsingIndex() == nil {
						ctx.Report(NewViolation(AddingPrimaryKeyConstraint, message, pk.Syntax().Range(), ""))
					}
				}
			}
		}
	}
}

// notValidValidateInTransaction flags NOT VALID + VALIDATE CONSTRAINT pairs
// inside one transaction, which defeats the point of NOT VALID.
func notValidValidateInTransaction(ctx *Linter, assumeInTransaction bool, file ast.SourceFile) {
	insideTransaction := assumeInTransaction
	notValidNames := make(map[string]bool)
	for _, stmt := range file.Stmts() {
		switch s := stmt.(type) {
		case ast.AlterTable:
			for _, action := range s.Actions() {
				switch a := action.(type) {
				case ast.ValidateConstraint:
					nameRef, ok := a.NameRef()
					if !ok {
						continue
					}
					if insideTransaction && notValidNames[string(NewIdentifier(nameRef.Text()))] {
						ctx.Report(NewViolation(
							ConstraintMissingNotValid,
							"Using `NOT VALID` and `VALIDATE CONSTRAINT` in the same transaction will block all reads while the constraint is validated.",
							a.Syntax().Range(),
							"Add constraint as `NOT VALID` in one transaction and `VALIDATE CONSTRAINT` in a separate transaction.",
						))
					}
				case ast.AddConstraint:
					if a.NotValid() == nil {
						continue
					}
					if name, ok := ast.ConstraintNameOf(a.Constraint()); ok {
						notValidNames[string(NewIdentifier(name.Text()))] = true
					}
				}
			}
		case ast.Begin:
			if !insideTransaction {
				notValidNames = make(map[string]bool)
			}
			insideTransaction = true
		case ast.Commit:
			insideTransaction = false
		}
	}
}

func constraintMissingNotValid(ctx *Linter, file ast.SourceFile) {
	assumeInTransaction := ctx.Settings.AssumeInTransaction

	notValidValidateInTransaction(ctx, assumeInTransaction, file)

	tablesCreated := tablesCreatedInTransaction(assumeInTransaction, file)
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		tableName, ok := alterTable.Name()
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			addConstraint, ok := action.(ast.AddConstraint)
			if !ok {
				continue
			}
			if tablesCreated[string(NewIdentifier(tableName))] || addConstraint.NotValid() != nil {
				continue
			}
			if uc, ok := addConstraint.Constraint().(ast.UniqueConstraint); ok && uc.UsingIndex() != nil {
				continue
			}
			ctx.Report(NewViolation(
				ConstraintMissingNotValid,
				"By default new constraints require a table scan and block writes to the table while that scan occurs.",
				addConstraint.Syntax().Range(),
				"Use `NOT VALID` with a later `VALIDATE CONSTRAINT` call.",
			))
		}
	}
}

func banAlterDomainWithAddConstraint(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		alterDomain, ok := stmt.(ast.AlterDomain)
		if !ok {
			continue
		}
		for _, action := range alterDomain.Actions() {
			if add, ok := action.(ast.AddDomainConstraint); ok {
				ctx.Report(NewViolation(
					BanAlterDomainWithAddConstraint,
					"Domains with constraints have poor support for online migrations. Use table and column constraints instead.",
					add.Syntax().Range(),
					"",
				))
			}
		}
	}
}

func banCreateDomainWithConstraint(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		createDomain, ok := stmt.(ast.CreateDomain)
		if !ok {
			continue
		}
		var merged *syntax.TextRange
		for _, c := range createDomain.Constraints() {
			r := c.Syntax().Range()
			if merged == nil {
				merged = &r
				continue
			}
			if r.Start < merged.Start {
				merged.Start = r.Start
			}
			if r.End > merged.End {
				merged.End = r.End
			}
		}
		if merged != nil {
			ctx.Report(NewViolation(
				BanCreateDomainWithConstraint,
				"Domains with constraints have poor support for online migrations. Use table and column constraints instead.",
				*merged,
				"",
			))
		}
	}
}
