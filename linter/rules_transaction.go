package linter

import "github.com/squawkhq/squawk/syntax/ast"

func transactionNesting(ctx *Linter, file ast.SourceFile) {
	const assumeInTransactionHelp = "Put migration statements in separate files to have them be in separate transactions or don't use the assume-in-transaction setting."
	inExplicitTransaction := false
	for _, stmt := range file.Stmts() {
		switch stmt.(type) {
		case ast.Begin:
			if ctx.Settings.AssumeInTransaction {
				ctx.Report(NewViolation(
					TransactionNesting,
					"There is an existing transaction already in progress, managed by your migration tool.",
					stmt.Syntax().Range(),
					assumeInTransactionHelp,
				))
			} else if inExplicitTransaction {
				ctx.Report(NewViolation(
					TransactionNesting,
					"There is an existing transaction already in progress.",
					stmt.Syntax().Range(),
					assumeInTransactionHelp,
				))
			}
			inExplicitTransaction = true
		case ast.Commit, ast.Rollback:
			if ctx.Settings.AssumeInTransaction {
				ctx.Report(NewViolation(
					TransactionNesting,
					"Attempting to end the transaction that is managed by your migration tool",
					stmt.Syntax().Range(),
					assumeInTransactionHelp,
				))
			} else if !inExplicitTransaction {
				ctx.Report(NewViolation(
					TransactionNesting,
					"There is no transaction to `COMMIT` or `ROLLBACK`.",
					stmt.Syntax().Range(),
					"`BEGIN` a transaction at an earlier point in the migration or remove this statement.",
				))
			}
			inExplicitTransaction = false
		}
	}
}

func banConcurrentIndexCreationInTransaction(ctx *Linter, file ast.SourceFile) {
	inTransaction := ctx.Settings.AssumeInTransaction
	var pending []Violation
	stmtCount := 0
	for _, stmt := range file.Stmts() {
		stmtCount++
		switch s := stmt.(type) {
		case ast.Begin:
			inTransaction = true
		case ast.Commit:
			inTransaction = false
		case ast.CreateIndex:
			if !inTransaction {
				continue
			}
			if concurrently := s.ConcurrentlyToken(); concurrently != nil {
				pending = append(pending, NewViolation(
					BanConcurrentIndexCreationInTransaction,
					"While regular index creation can happen inside a transaction, this is not allowed when the `CONCURRENTLY` option is used.",
					concurrently.Range(),
					"Build the index outside any transactions.",
				))
			}
		}
	}
	// A lone CREATE INDEX CONCURRENTLY under assume-in-transaction is how
	// migration tools that run each file in its own transaction look; only
	// multi-statement files are a problem.
	if stmtCount > 1 {
		for _, v := range pending {
			ctx.Report(v)
		}
	}
}

func requireConcurrentIndexCreation(ctx *Linter, file ast.SourceFile) {
	tablesCreated := tablesCreatedInTransaction(ctx.Settings.AssumeInTransaction, file)
	for _, stmt := range file.Stmts() {
		createIndex, ok := stmt.(ast.CreateIndex)
		if !ok {
			continue
		}
		path, ok := createIndex.Path()
		if !ok {
			continue
		}
		seg, ok := path.Segment()
		if !ok {
			continue
		}
		if createIndex.ConcurrentlyToken() == nil && !tablesCreated[string(NewIdentifier(seg.Text()))] {
			ctx.Report(NewViolation(
				RequireConcurrentIndexCreation,
				"During normal index creation, table updates are blocked, but reads are still allowed.",
				createIndex.Syntax().Range(),
				"Use `CONCURRENTLY` to avoid blocking writes.",
			))
		}
	}
}
