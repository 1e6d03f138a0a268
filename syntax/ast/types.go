package ast

import (
	"github.com/squawkhq/squawk/parser"
	"github.com/squawkhq/squawk/syntax"
)

// Type is the union of type references.
type Type interface {
	Node
	typeNode()
}

func TypeCast(n *syntax.SyntaxNode) Type {
	switch n.Kind() {
	case parser.PATH_TYPE:
		return PathType{syntax: n}
	case parser.ARRAY_TYPE:
		return ArrayType{syntax: n}
	case parser.CHAR_TYPE:
		return CharType{syntax: n}
	case parser.BIT_TYPE:
		return BitType{syntax: n}
	case parser.DOUBLE_TYPE:
		return DoubleType{syntax: n}
	case parser.TIME_TYPE:
		return TimeType{syntax: n}
	case parser.INTERVAL_TYPE:
		return IntervalType{syntax: n}
	case parser.PERCENT_TYPE:
		return PercentType{syntax: n}
	}
	return nil
}

// typeChild returns the first type child of a node, or nil.
func typeChild(n *syntax.SyntaxNode) Type {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if t := TypeCast(c); t != nil {
			return t
		}
	}
	return nil
}

type PathType struct{ syntax *syntax.SyntaxNode }

func (t PathType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (PathType) typeNode()                    {}

func (t PathType) Path() (Path, bool) { return pathChild(t.syntax) }

// ArgList returns the type modifier list, e.g. the `(10, 2)` of numeric(10, 2).
func (t PathType) ArgList() *syntax.SyntaxNode {
	return childOfKind(t.syntax, parser.TYPE_ARG_LIST)
}

type ArrayType struct{ syntax *syntax.SyntaxNode }

func (t ArrayType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (ArrayType) typeNode()                    {}

// Ty returns the element type.
func (t ArrayType) Ty() Type { return typeChild(t.syntax) }

type CharType struct{ syntax *syntax.SyntaxNode }

func (t CharType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (CharType) typeNode()                    {}

// Text returns the leading keyword, e.g. "char" or "varchar".
func (t CharType) Text() string { return firstTokenText(t.syntax) }

// VaryingToken reports `character varying` / `char varying`.
func (t CharType) VaryingToken() *syntax.SyntaxToken {
	return tokenOfKind(t.syntax, parser.VARYING_KW)
}

func (t CharType) ArgList() *syntax.SyntaxNode {
	return childOfKind(t.syntax, parser.TYPE_ARG_LIST)
}

type BitType struct{ syntax *syntax.SyntaxNode }

func (t BitType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (BitType) typeNode()                    {}

type DoubleType struct{ syntax *syntax.SyntaxNode }

func (t DoubleType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (DoubleType) typeNode()                    {}

type TimeType struct{ syntax *syntax.SyntaxNode }

func (t TimeType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (TimeType) typeNode()                    {}

// NameRef returns the wrapped `time` or `timestamp` keyword.
func (t TimeType) NameRef() (NameRef, bool) {
	if c := childOfKind(t.syntax, parser.NAME_REF); c != nil {
		return NameRef{syntax: c}, true
	}
	return NameRef{}, false
}

// WithTimezone returns the WITH TIME ZONE node, if present.
func (t TimeType) WithTimezone() *syntax.SyntaxNode {
	return childOfKind(t.syntax, parser.WITH_TIMEZONE)
}

type IntervalType struct{ syntax *syntax.SyntaxNode }

func (t IntervalType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (IntervalType) typeNode()                    {}

type PercentType struct{ syntax *syntax.SyntaxNode }

func (t PercentType) Syntax() *syntax.SyntaxNode { return t.syntax }
func (PercentType) typeNode()                    {}
