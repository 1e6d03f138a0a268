package linter

import "github.com/squawkhq/squawk/syntax/ast"

func addingRequiredField(ctx *Linter, file ast.SourceFile) {
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			addColumn, ok := action.(ast.AddColumn)
			if !ok {
				continue
			}
			constraints := addColumn.Constraints()
			if hasGeneratedConstraint(constraints) {
				continue
			}
			if hasNotNullAndNoDefault(constraints) {
				ctx.Report(NewViolation(
					AddingRequiredField,
					"Adding a new column that is `NOT NULL` and has no default value to an existing table effectively makes it required.",
					addColumn.Syntax().Range(),
					"Make the field nullable or add a non-VOLATILE DEFAULT",
				))
			}
		}
	}
}

func hasGeneratedConstraint(constraints []ast.Constraint) bool {
	for _, c := range constraints {
		if _, ok := c.(ast.GeneratedConstraint); ok {
			return true
		}
	}
	return false
}

func hasNotNullAndNoDefault(constraints []ast.Constraint) bool {
	hasNotNull := false
	hasDefault := false
	for _, c := range constraints {
		switch c.(type) {
		case ast.NotNullConstraint:
			hasNotNull = true
		case ast.DefaultConstraint:
			hasDefault = true
		}
	}
	return hasNotNull && !hasDefault
}

// isConstExpr accepts a literal or a cast of a literal.
func isConstExpr(e ast.Expr) bool {
	switch e := e.(type) {
	case ast.Literal:
		return true
	case ast.CastExpr:
		_, ok := e.Expr().(ast.Literal)
		return ok
	}
	return false
}

// isNonVolatileCall accepts a zero-argument call to a shipped non-volatile
// builtin, e.g. now().
func isNonVolatileCall(e ast.Expr) bool {
	call, ok := e.(ast.CallExpr)
	if !ok {
		return false
	}
	argList, ok := call.ArgList()
	if !ok || len(argList.Args()) != 0 {
		return false
	}
	nameRef, ok := call.CalleeNameRef()
	if !ok {
		return false
	}
	return nonVolatileBuiltins[string(NewIdentifier(nameRef.Text()))]
}

func addingFieldWithDefault(ctx *Linter, file ast.SourceFile) {
	const message = "Adding a generated column requires a table rewrite with an `ACCESS EXCLUSIVE` lock."
	const help = "Add the column as nullable, backfill existing rows, and add a trigger to update the column on write instead."
	for _, stmt := range file.Stmts() {
		alterTable, ok := stmt.(ast.AlterTable)
		if !ok {
			continue
		}
		for _, action := range alterTable.Actions() {
			addColumn, ok := action.(ast.AddColumn)
			if !ok {
				continue
			}
			for _, constraint := range addColumn.Constraints() {
				switch c := constraint.(type) {
				case ast.DefaultConstraint:
					expr := c.Expr()
					if expr == nil {
						continue
					}
					if isConstExpr(expr) || isNonVolatileCall(expr) {
						continue
					}
					ctx.Report(NewViolation(AddingFieldWithDefault, message, expr.Syntax().Range(), help))
				case ast.GeneratedConstraint:
					ctx.Report(NewViolation(AddingFieldWithDefault, message, c.Syntax().Range(), help))
				}
			}
		}
	}
}
