package linter

import (
	"github.com/squawkhq/squawk/syntax/ast"
)

// checkNotAllowedTypes visits every column type position in the file: CREATE
// TABLE columns, ADD COLUMN, and ALTER COLUMN ... SET DATA TYPE.
func checkNotAllowedTypes(ctx *Linter, file ast.SourceFile, checkTy func(ctx *Linter, ty ast.Type)) {
	for _, stmt := range file.Stmts() {
		switch s := stmt.(type) {
		case ast.CreateTable:
			if args, ok := s.TableArgList(); ok {
				for _, arg := range args.Args() {
					if col, ok := arg.(ast.ColumnDef); ok {
						checkTy(ctx, col.Ty())
					}
				}
			}
		case ast.AlterTable:
			for _, action := range s.Actions() {
				switch a := action.(type) {
				case ast.AddColumn:
					checkTy(ctx, a.Ty())
				case ast.AlterColumn:
					if st, ok := a.Option().(ast.SetType); ok {
						checkTy(ctx, st.Ty())
					}
				}
			}
		}
	}
}

// typeNameIn reports whether the type's (quote-stripped, case-folded) name is
// in the given set, looking through array types.
func typeNameIn(ty ast.Type, names map[string]bool) bool {
	switch t := ty.(type) {
	case ast.ArrayType:
		if el := t.Ty(); el != nil {
			return typeNameIn(el, names)
		}
	case ast.PathType:
		p, ok := t.Path()
		if !ok {
			return false
		}
		seg, ok := p.Segment()
		if !ok {
			return false
		}
		return names[string(NewIdentifier(seg.Text()))]
	}
	return false
}

// tablesCreatedInTransaction collects the normalized names of tables created
// between BEGIN and COMMIT (or anywhere, when the whole file is assumed to be
// one transaction). Index creation and constraint addition on a brand-new
// table is safe: nothing else can see it yet.
func tablesCreatedInTransaction(assumeInTransaction bool, file ast.SourceFile) map[string]bool {
	created := make(map[string]bool)
	inTransaction := assumeInTransaction
	for _, stmt := range file.Stmts() {
		switch s := stmt.(type) {
		case ast.Begin:
			inTransaction = true
		case ast.Commit:
			inTransaction = false
		case ast.CreateTable:
			if !inTransaction {
				continue
			}
			if name, ok := s.Name(); ok {
				created[string(NewIdentifier(name))] = true
			}
		}
	}
	return created
}
