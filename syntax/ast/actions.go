package ast

import (
	"github.com/squawkhq/squawk/parser"
	"github.com/squawkhq/squawk/syntax"
)

// AlterTableAction is the union of ALTER TABLE actions.
type AlterTableAction interface {
	Node
	alterTableAction()
}

func AlterTableActionCast(n *syntax.SyntaxNode) AlterTableAction {
	switch n.Kind() {
	case parser.ADD_COLUMN:
		return AddColumn{syntax: n}
	case parser.DROP_COLUMN:
		return DropColumn{syntax: n}
	case parser.ADD_CONSTRAINT:
		return AddConstraint{syntax: n}
	case parser.DROP_CONSTRAINT:
		return DropConstraint{syntax: n}
	case parser.VALIDATE_CONSTRAINT:
		return ValidateConstraint{syntax: n}
	case parser.ALTER_COLUMN:
		return AlterColumn{syntax: n}
	case parser.RENAME_COLUMN:
		return RenameColumn{syntax: n}
	case parser.RENAME_TABLE:
		return RenameTable{syntax: n}
	case parser.RENAME_CONSTRAINT:
		return RenameConstraint{syntax: n}
	case parser.SET_LOGGED:
		return SetLogged{syntax: n}
	case parser.SET_UNLOGGED:
		return SetUnlogged{syntax: n}
	case parser.SET_SCHEMA:
		return SetSchema{syntax: n}
	case parser.OWNER_TO:
		return OwnerTo{syntax: n}
	}
	return nil
}

type AddColumn struct{ syntax *syntax.SyntaxNode }

func (a AddColumn) Syntax() *syntax.SyntaxNode { return a.syntax }
func (AddColumn) alterTableAction()            {}

func (a AddColumn) Name() (Name, bool) {
	if n := childOfKind(a.syntax, parser.NAME); n != nil {
		return Name{syntax: n}, true
	}
	return Name{}, false
}

func (a AddColumn) Ty() Type { return typeChild(a.syntax) }

func (a AddColumn) Constraints() []Constraint { return constraintChildren(a.syntax) }

type DropColumn struct{ syntax *syntax.SyntaxNode }

func (a DropColumn) Syntax() *syntax.SyntaxNode { return a.syntax }
func (DropColumn) alterTableAction()            {}

type AddConstraint struct{ syntax *syntax.SyntaxNode }

func (a AddConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (AddConstraint) alterTableAction()            {}

// Constraint returns the constraint being added.
func (a AddConstraint) Constraint() Constraint {
	for _, c := range a.syntax.Children() {
		if con := ConstraintCast(c); con != nil {
			return con
		}
	}
	return nil
}

// NotValid returns the NOT VALID node, if present.
func (a AddConstraint) NotValid() *syntax.SyntaxNode {
	return childOfKind(a.syntax, parser.NOT_VALID)
}

type DropConstraint struct{ syntax *syntax.SyntaxNode }

func (a DropConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (DropConstraint) alterTableAction()            {}

type ValidateConstraint struct{ syntax *syntax.SyntaxNode }

func (a ValidateConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (ValidateConstraint) alterTableAction()            {}

func (a ValidateConstraint) NameRef() (NameRef, bool) {
	if c := childOfKind(a.syntax, parser.NAME_REF); c != nil {
		return NameRef{syntax: c}, true
	}
	return NameRef{}, false
}

type AlterColumn struct{ syntax *syntax.SyntaxNode }

func (a AlterColumn) Syntax() *syntax.SyntaxNode { return a.syntax }
func (AlterColumn) alterTableAction()            {}

// Option returns the alteration applied to the column.
func (a AlterColumn) Option() AlterColumnOption {
	for _, c := range a.syntax.Children() {
		if o := AlterColumnOptionCast(c); o != nil {
			return o
		}
	}
	return nil
}

type RenameColumn struct{ syntax *syntax.SyntaxNode }

func (a RenameColumn) Syntax() *syntax.SyntaxNode { return a.syntax }
func (RenameColumn) alterTableAction()            {}

type RenameTable struct{ syntax *syntax.SyntaxNode }

func (a RenameTable) Syntax() *syntax.SyntaxNode { return a.syntax }
func (RenameTable) alterTableAction()            {}

type RenameConstraint struct{ syntax *syntax.SyntaxNode }

func (a RenameConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (RenameConstraint) alterTableAction()            {}

type SetLogged struct{ syntax *syntax.SyntaxNode }

func (a SetLogged) Syntax() *syntax.SyntaxNode { return a.syntax }
func (SetLogged) alterTableAction()            {}

type SetUnlogged struct{ syntax *syntax.SyntaxNode }

func (a SetUnlogged) Syntax() *syntax.SyntaxNode { return a.syntax }
func (SetUnlogged) alterTableAction()            {}

type SetSchema struct{ syntax *syntax.SyntaxNode }

func (a SetSchema) Syntax() *syntax.SyntaxNode { return a.syntax }
func (SetSchema) alterTableAction()            {}

type OwnerTo struct{ syntax *syntax.SyntaxNode }

func (a OwnerTo) Syntax() *syntax.SyntaxNode { return a.syntax }
func (OwnerTo) alterTableAction()            {}

// AlterColumnOption is the union of ALTER COLUMN forms.
type AlterColumnOption interface {
	Node
	alterColumnOption()
}

func AlterColumnOptionCast(n *syntax.SyntaxNode) AlterColumnOption {
	switch n.Kind() {
	case parser.SET_TYPE:
		return SetType{syntax: n}
	case parser.SET_DEFAULT:
		return SetDefault{syntax: n}
	case parser.DROP_DEFAULT:
		return DropDefault{syntax: n}
	case parser.SET_NOT_NULL:
		return SetNotNull{syntax: n}
	case parser.DROP_NOT_NULL:
		return DropNotNull{syntax: n}
	case parser.SET_STATISTICS:
		return SetStatistics{syntax: n}
	case parser.SET_STORAGE:
		return SetStorage{syntax: n}
	}
	return nil
}

type SetType struct{ syntax *syntax.SyntaxNode }

func (o SetType) Syntax() *syntax.SyntaxNode { return o.syntax }
func (SetType) alterColumnOption()           {}

func (o SetType) Ty() Type { return typeChild(o.syntax) }

type SetDefault struct{ syntax *syntax.SyntaxNode }

func (o SetDefault) Syntax() *syntax.SyntaxNode { return o.syntax }
func (SetDefault) alterColumnOption()           {}

type DropDefault struct{ syntax *syntax.SyntaxNode }

func (o DropDefault) Syntax() *syntax.SyntaxNode { return o.syntax }
func (DropDefault) alterColumnOption()           {}

type SetNotNull struct{ syntax *syntax.SyntaxNode }

func (o SetNotNull) Syntax() *syntax.SyntaxNode { return o.syntax }
func (SetNotNull) alterColumnOption()           {}

type DropNotNull struct{ syntax *syntax.SyntaxNode }

func (o DropNotNull) Syntax() *syntax.SyntaxNode { return o.syntax }
func (DropNotNull) alterColumnOption()           {}

type SetStatistics struct{ syntax *syntax.SyntaxNode }

func (o SetStatistics) Syntax() *syntax.SyntaxNode { return o.syntax }
func (SetStatistics) alterColumnOption()           {}

type SetStorage struct{ syntax *syntax.SyntaxNode }

func (o SetStorage) Syntax() *syntax.SyntaxNode { return o.syntax }
func (SetStorage) alterColumnOption()           {}

// AlterDomainAction is the union of ALTER DOMAIN actions.
type AlterDomainAction interface {
	Node
	alterDomainAction()
}

func AlterDomainActionCast(n *syntax.SyntaxNode) AlterDomainAction {
	switch n.Kind() {
	case parser.ADD_DOMAIN_CONSTRAINT:
		return AddDomainConstraint{syntax: n}
	case parser.DROP_DOMAIN_CONSTRAINT:
		return DropDomainConstraint{syntax: n}
	case parser.VALIDATE_DOMAIN_CONSTRAINT:
		return ValidateDomainConstraint{syntax: n}
	case parser.DOMAIN_DEFAULT:
		return DomainDefault{syntax: n}
	case parser.DOMAIN_NOT_NULL:
		return DomainNotNull{syntax: n}
	}
	return nil
}

type AddDomainConstraint struct{ syntax *syntax.SyntaxNode }

func (a AddDomainConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (AddDomainConstraint) alterDomainAction()           {}

func (a AddDomainConstraint) Constraint() Constraint {
	for _, c := range a.syntax.Children() {
		if con := ConstraintCast(c); con != nil {
			return con
		}
	}
	return nil
}

type DropDomainConstraint struct{ syntax *syntax.SyntaxNode }

func (a DropDomainConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (DropDomainConstraint) alterDomainAction()           {}

type ValidateDomainConstraint struct{ syntax *syntax.SyntaxNode }

func (a ValidateDomainConstraint) Syntax() *syntax.SyntaxNode { return a.syntax }
func (ValidateDomainConstraint) alterDomainAction()           {}

type DomainDefault struct{ syntax *syntax.SyntaxNode }

func (a DomainDefault) Syntax() *syntax.SyntaxNode { return a.syntax }
func (DomainDefault) alterDomainAction()           {}

type DomainNotNull struct{ syntax *syntax.SyntaxNode }

func (a DomainNotNull) Syntax() *syntax.SyntaxNode { return a.syntax }
func (DomainNotNull) alterDomainAction()           {}
