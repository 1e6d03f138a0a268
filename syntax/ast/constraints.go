package ast

import (
	"github.com/squawkhq/squawk/parser"
	"github.com/squawkhq/squawk/syntax"
)

// Constraint is the union of column, table, and domain constraints.
type Constraint interface {
	Node
	constraint()
}

func ConstraintCast(n *syntax.SyntaxNode) Constraint {
	switch n.Kind() {
	case parser.NOT_NULL_CONSTRAINT:
		return NotNullConstraint{syntax: n}
	case parser.NULL_CONSTRAINT:
		return NullConstraint{syntax: n}
	case parser.DEFAULT_CONSTRAINT:
		return DefaultConstraint{syntax: n}
	case parser.PRIMARY_KEY_CONSTRAINT:
		return PrimaryKeyConstraint{syntax: n}
	case parser.UNIQUE_CONSTRAINT:
		return UniqueConstraint{syntax: n}
	case parser.CHECK_CONSTRAINT:
		return CheckConstraint{syntax: n}
	case parser.FOREIGN_KEY_CONSTRAINT:
		return ForeignKeyConstraint{syntax: n}
	case parser.REFERENCES_CONSTRAINT:
		return ReferencesConstraint{syntax: n}
	case parser.GENERATED_CONSTRAINT:
		return GeneratedConstraint{syntax: n}
	case parser.EXCLUDE_CONSTRAINT:
		return ExcludeConstraint{syntax: n}
	}
	return nil
}

// constraintChildren collects all constraint children of a node.
func constraintChildren(n *syntax.SyntaxNode) []Constraint {
	var out []Constraint
	for _, c := range n.Children() {
		if con := ConstraintCast(c); con != nil {
			out = append(out, con)
		}
	}
	return out
}

// constraintName returns the `CONSTRAINT name` child, if present.
func constraintName(n *syntax.SyntaxNode) (Name, bool) {
	cn := childOfKind(n, parser.CONSTRAINT_NAME)
	if cn == nil {
		return Name{}, false
	}
	if nm := childOfKind(cn, parser.NAME); nm != nil {
		return Name{syntax: nm}, true
	}
	return Name{}, false
}

type NotNullConstraint struct{ syntax *syntax.SyntaxNode }

func (c NotNullConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (NotNullConstraint) constraint()                  {}

type NullConstraint struct{ syntax *syntax.SyntaxNode }

func (c NullConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (NullConstraint) constraint()                  {}

type DefaultConstraint struct{ syntax *syntax.SyntaxNode }

func (c DefaultConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (DefaultConstraint) constraint()                  {}

// Expr returns the default expression.
func (c DefaultConstraint) Expr() Expr {
	for _, child := range c.syntax.Children() {
		if e := ExprCast(child); e != nil {
			return e
		}
	}
	return nil
}

type PrimaryKeyConstraint struct{ syntax *syntax.SyntaxNode }

func (c PrimaryKeyConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (PrimaryKeyConstraint) constraint()                  {}

func (c PrimaryKeyConstraint) Name() (Name, bool) { return constraintName(c.syntax) }

// UsingIndex returns the `USING INDEX name` child, if present.
func (c PrimaryKeyConstraint) UsingIndex() *syntax.SyntaxNode {
	return childOfKind(c.syntax, parser.USING_INDEX)
}

type UniqueConstraint struct{ syntax *syntax.SyntaxNode }

func (c UniqueConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (UniqueConstraint) constraint()                  {}

func (c UniqueConstraint) Name() (Name, bool) { return constraintName(c.syntax) }

func (c UniqueConstraint) UsingIndex() *syntax.SyntaxNode {
	return childOfKind(c.syntax, parser.USING_INDEX)
}

type CheckConstraint struct{ syntax *syntax.SyntaxNode }

func (c CheckConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (CheckConstraint) constraint()                  {}

func (c CheckConstraint) Name() (Name, bool) { return constraintName(c.syntax) }

type ForeignKeyConstraint struct{ syntax *syntax.SyntaxNode }

func (c ForeignKeyConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (ForeignKeyConstraint) constraint()                  {}

func (c ForeignKeyConstraint) Name() (Name, bool) { return constraintName(c.syntax) }

type ReferencesConstraint struct{ syntax *syntax.SyntaxNode }

func (c ReferencesConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (ReferencesConstraint) constraint()                  {}

type GeneratedConstraint struct{ syntax *syntax.SyntaxNode }

func (c GeneratedConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (GeneratedConstraint) constraint()                  {}

// StoredToken reports GENERATED ... STORED (as opposed to AS IDENTITY).
func (c GeneratedConstraint) StoredToken() *syntax.SyntaxToken {
	return tokenOfKind(c.syntax, parser.STORED_KW)
}

type ExcludeConstraint struct{ syntax *syntax.SyntaxNode }

func (c ExcludeConstraint) Syntax() *syntax.SyntaxNode { return c.syntax }
func (ExcludeConstraint) constraint()                  {}

// ConstraintNameOf returns the declared name of any constraint kind.
func ConstraintNameOf(c Constraint) (Name, bool) {
	if c == nil {
		return Name{}, false
	}
	return constraintName(c.Syntax())
}
