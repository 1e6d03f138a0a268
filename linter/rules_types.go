package linter

import "github.com/squawkhq/squawk/syntax/ast"

var smallIntTypes = map[string]bool{
	"smallint":    true,
	"integer":     true,
	"int":         true,
	"int2":        true,
	"int4":        true,
	"serial":      true,
	"serial2":     true,
	"serial4":     true,
	"smallserial": true,
}

var int32Types = map[string]bool{
	"integer": true,
	"int":     true,
	"int4":    true,
	"serial":  true,
	"serial4": true,
}

var int16Types = map[string]bool{
	"smallint":    true,
	"int2":        true,
	"serial2":     true,
	"smallserial": true,
}

func preferBigInt(ctx *Linter, file ast.SourceFile) {
	checkNotAllowedTypes(ctx, file, func(ctx *Linter, ty ast.Type) {
		if ty != nil && typeNameIn(ty, smallIntTypes) {
			ctx.Report(NewViolation(
				PreferBigInt,
				"Using 32-bit integer fields can result in hitting the max `int` limit.",
				ty.Syntax().Range(),
				"Use 64-bit integer values instead to prevent hitting this limit.",
			))
		}
	})
}

func preferBigintOverInt(ctx *Linter, file ast.SourceFile) {
	checkNotAllowedTypes(ctx, file, func(ctx *Linter, ty ast.Type) {
		if ty != nil && typeNameIn(ty, int32Types) {
			ctx.Report(NewViolation(
				PreferBigintOverInt,
				"Using 32-bit integer fields can result in hitting the max `int` limit.",
				ty.Syntax().Range(),
				"Use 64-bit integer values instead to prevent hitting this limit.",
			))
		}
	})
}

func preferBigintOverSmallint(ctx *Linter, file ast.SourceFile) {
	checkNotAllowedTypes(ctx, file, func(ctx *Linter, ty ast.Type) {
		if ty != nil && typeNameIn(ty, int16Types) {
			ctx.Report(NewViolation(
				PreferBigintOverSmallint,
				"Using 16-bit integer fields can result in hitting the max `smallint` limit.",
				ty.Syntax().Range(),
				"Use 64-bit integer values instead to prevent hitting this limit.",
			))
		}
	})
}

// isSizedVarchar reports a varchar with an explicit length argument. A bare
// varchar is the same as text, which is fine.
func isSizedVarchar(ty ast.Type) bool {
	switch t := ty.(type) {
	case ast.ArrayType:
		if el := t.Ty(); el != nil {
			return isSizedVarchar(el)
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
		return string(NewIdentifier(seg.Text())) == "varchar" && t.ArgList() != nil
	case ast.CharType:
		return string(NewIdentifier(t.Text())) == "varchar" && t.ArgList() != nil
	}
	return false
}

func preferTextField(ctx *Linter, file ast.SourceFile) {
	checkNotAllowedTypes(ctx, file, func(ctx *Linter, ty ast.Type) {
		if ty != nil && isSizedVarchar(ty) {
			ctx.Report(NewViolation(
				PreferTextField,
				"Changing the size of a `varchar` field requires an `ACCESS EXCLUSIVE` lock, that will prevent all reads and writes to the table.",
				ty.Syntax().Range(),
				"Use a `TEXT` field with a `CHECK` constraint.",
			))
		}
	})
}

func isBareTimestamp(ty ast.Type) bool {
	switch t := ty.(type) {
	case ast.ArrayType:
		if el := t.Ty(); el != nil {
			return isBareTimestamp(el)
		}
	case ast.TimeType:
		nameRef, ok := t.NameRef()
		if !ok {
			return false
		}
		return string(NewIdentifier(nameRef.Text())) == "timestamp" && t.WithTimezone() == nil
	}
	return false
}

func preferTimestampTz(ctx *Linter, file ast.SourceFile) {
	checkNotAllowedTypes(ctx, file, func(ctx *Linter, ty ast.Type) {
		if ty != nil && isBareTimestamp(ty) {
			ctx.Report(NewViolation(
				PreferTimestampTz,
				"When Postgres stores a datetime in a `timestamp` field, Postgres drops the UTC offset. This means 2019-10-11 21:11:24+02 and 2019-10-11 21:11:24-06 will both be stored as 2019-10-11 21:11:24 in the database, even though they are eight hours apart in time.",
				ty.Syntax().Range(),
				"Use timestamptz instead of timestamp for your column type.",
			))
		}
	})
}

var charTypeNames = map[string]bool{
	"char":      true,
	"character": true,
	"bpchar":    true,
}

// isCharType matches char/character/bpchar whether they parsed as the SQL
// char syntax or as a (possibly qualified) plain type name, arrays included.
// `character varying` is varchar, not char.
func isCharType(ty ast.Type) bool {
	switch t := ty.(type) {
	case ast.ArrayType:
		if el := t.Ty(); el != nil {
			return isCharType(el)
		}
	case ast.CharType:
		return charTypeNames[string(NewIdentifier(t.Text()))] && t.VaryingToken() == nil
	case ast.PathType:
		p, ok := t.Path()
		if !ok {
			return false
		}
		seg, ok := p.Segment()
		if !ok {
			return false
		}
		return charTypeNames[string(NewIdentifier(seg.Text()))]
	}
	return false
}

func banCharField(ctx *Linter, file ast.SourceFile) {
	checkNotAllowedTypes(ctx, file, func(ctx *Linter, ty ast.Type) {
		if ty != nil && isCharType(ty) {
			ctx.Report(NewViolation(
				BanCharField,
				"Using `character` is likely a mistake and should almost always be replaced by `text` or `varchar`.",
				ty.Syntax().Range(),
				"",
			))
		}
	})
}
