package ast

import (
	"github.com/squawkhq/squawk/parser"
	"github.com/squawkhq/squawk/syntax"
)

// Expr is the union of expression kinds.
type Expr interface {
	Node
	expr()
}

func ExprCast(n *syntax.SyntaxNode) Expr {
	switch n.Kind() {
	case parser.LITERAL:
		return Literal{syntax: n}
	case parser.PAREN_EXPR:
		return ParenExpr{syntax: n}
	case parser.TUPLE_EXPR:
		return TupleExpr{syntax: n}
	case parser.ARRAY_EXPR:
		return ArrayExpr{syntax: n}
	case parser.CASE_EXPR:
		return CaseExpr{syntax: n}
	case parser.CAST_EXPR:
		return CastExpr{syntax: n}
	case parser.CALL_EXPR:
		return CallExpr{syntax: n}
	case parser.FIELD_EXPR:
		return FieldExpr{syntax: n}
	case parser.INDEX_EXPR_SUBSCRIPT:
		return IndexExpr{syntax: n}
	case parser.BIN_EXPR:
		return BinExpr{syntax: n}
	case parser.PREFIX_EXPR:
		return PrefixExpr{syntax: n}
	case parser.POSTFIX_EXPR:
		return PostfixExpr{syntax: n}
	case parser.BETWEEN_EXPR:
		return BetweenExpr{syntax: n}
	case parser.IN_EXPR:
		return InExpr{syntax: n}
	case parser.LIKE_EXPR:
		return LikeExpr{syntax: n}
	case parser.IS_EXPR:
		return IsExpr{syntax: n}
	case parser.NAME_REF_EXPR:
		return NameRefExpr{syntax: n}
	case parser.PARAM_EXPR:
		return ParamExpr{syntax: n}
	case parser.STAR_EXPR:
		return StarExpr{syntax: n}
	}
	return nil
}

func exprChild(n *syntax.SyntaxNode) Expr {
	for _, c := range n.Children() {
		if e := ExprCast(c); e != nil {
			return e
		}
	}
	return nil
}

type Literal struct{ syntax *syntax.SyntaxNode }

func (e Literal) Syntax() *syntax.SyntaxNode { return e.syntax }
func (Literal) expr()                        {}

type ParenExpr struct{ syntax *syntax.SyntaxNode }

func (e ParenExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (ParenExpr) expr()                        {}

func (e ParenExpr) Expr() Expr { return exprChild(e.syntax) }

type TupleExpr struct{ syntax *syntax.SyntaxNode }

func (e TupleExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (TupleExpr) expr()                        {}

type ArrayExpr struct{ syntax *syntax.SyntaxNode }

func (e ArrayExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (ArrayExpr) expr()                        {}

type CaseExpr struct{ syntax *syntax.SyntaxNode }

func (e CaseExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (CaseExpr) expr()                        {}

type CastExpr struct{ syntax *syntax.SyntaxNode }

func (e CastExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (CastExpr) expr()                        {}

// Expr returns the operand being cast.
func (e CastExpr) Expr() Expr { return exprChild(e.syntax) }

// Ty returns the target type.
func (e CastExpr) Ty() Type { return typeChild(e.syntax) }

type CallExpr struct{ syntax *syntax.SyntaxNode }

func (e CallExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (CallExpr) expr()                        {}

// Callee returns the called expression: a NameRefExpr for plain calls, a
// FieldExpr for qualified ones.
func (e CallExpr) Callee() Expr {
	return exprChild(e.syntax)
}

// CalleeNameRef returns the NAME_REF of an unqualified callee.
func (e CallExpr) CalleeNameRef() (NameRef, bool) {
	for _, c := range e.syntax.Children() {
		if c.Kind() == parser.NAME_REF_EXPR {
			if nr := childOfKind(c, parser.NAME_REF); nr != nil {
				return NameRef{syntax: nr}, true
			}
			// Builtin keywords (EXISTS, COALESCE, ...) nest the NAME_REF
			// directly.
			return NameRef{syntax: c}, true
		}
		if c.Kind() == parser.NAME_REF {
			return NameRef{syntax: c}, true
		}
	}
	return NameRef{}, false
}

// ArgList returns the call's argument list, if parsed.
func (e CallExpr) ArgList() (ArgList, bool) {
	if c := childOfKind(e.syntax, parser.ARG_LIST); c != nil {
		return ArgList{syntax: c}, true
	}
	return ArgList{}, false
}

type ArgList struct{ syntax *syntax.SyntaxNode }

func (l ArgList) Syntax() *syntax.SyntaxNode { return l.syntax }

// Args returns the argument expressions.
func (l ArgList) Args() []Expr {
	var out []Expr
	for _, c := range l.syntax.Children() {
		if e := ExprCast(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

type FieldExpr struct{ syntax *syntax.SyntaxNode }

func (e FieldExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (FieldExpr) expr()                        {}

type IndexExpr struct{ syntax *syntax.SyntaxNode }

func (e IndexExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (IndexExpr) expr()                        {}

type BinExpr struct{ syntax *syntax.SyntaxNode }

func (e BinExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (BinExpr) expr()                        {}

type PrefixExpr struct{ syntax *syntax.SyntaxNode }

func (e PrefixExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (PrefixExpr) expr()                        {}

type PostfixExpr struct{ syntax *syntax.SyntaxNode }

func (e PostfixExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (PostfixExpr) expr()                        {}

type BetweenExpr struct{ syntax *syntax.SyntaxNode }

func (e BetweenExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (BetweenExpr) expr()                        {}

type InExpr struct{ syntax *syntax.SyntaxNode }

func (e InExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (InExpr) expr()                        {}

type LikeExpr struct{ syntax *syntax.SyntaxNode }

func (e LikeExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (LikeExpr) expr()                        {}

type IsExpr struct{ syntax *syntax.SyntaxNode }

func (e IsExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (IsExpr) expr()                        {}

type NameRefExpr struct{ syntax *syntax.SyntaxNode }

func (e NameRefExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (NameRefExpr) expr()                        {}

func (e NameRefExpr) NameRef() (NameRef, bool) {
	if c := childOfKind(e.syntax, parser.NAME_REF); c != nil {
		return NameRef{syntax: c}, true
	}
	return NameRef{}, false
}

func (e NameRefExpr) Text() string { return firstTokenText(e.syntax) }

type ParamExpr struct{ syntax *syntax.SyntaxNode }

func (e ParamExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (ParamExpr) expr()                        {}

type StarExpr struct{ syntax *syntax.SyntaxNode }

func (e StarExpr) Syntax() *syntax.SyntaxNode { return e.syntax }
func (StarExpr) expr()                        {}
