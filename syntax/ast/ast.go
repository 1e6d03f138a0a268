// Package ast is the typed facade over the concrete syntax tree. Every AST
// value wraps a SyntaxNode handle; accessors search children by kind, so they
// tolerate partially parsed trees by returning zero values.
package ast

import (
	"github.com/squawkhq/squawk/parser"
	"github.com/squawkhq/squawk/syntax"
)

// Node is implemented by every AST type.
type Node interface {
	Syntax() *syntax.SyntaxNode
}

// childOfKind returns the first child node of the given kind.
func childOfKind(n *syntax.SyntaxNode, kind parser.SyntaxKind) *syntax.SyntaxNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// childrenOfKinds returns all child nodes whose kind is in kinds.
func childrenOfKinds(n *syntax.SyntaxNode, kinds ...parser.SyntaxKind) []*syntax.SyntaxNode {
	if n == nil {
		return nil
	}
	var out []*syntax.SyntaxNode
	for _, c := range n.Children() {
		for _, k := range kinds {
			if c.Kind() == k {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// tokenOfKind returns the first direct child token of the given kind.
func tokenOfKind(n *syntax.SyntaxNode, kind parser.SyntaxKind) *syntax.SyntaxToken {
	if n == nil {
		return nil
	}
	for _, e := range n.ChildrenWithTokens() {
		if e.Token != nil && e.Token.Kind() == kind {
			return e.Token
		}
	}
	return nil
}

// firstTokenText returns the text of the node's first non-trivia token, which
// is how identifiers read their name.
func firstTokenText(n *syntax.SyntaxNode) string {
	if n == nil {
		return ""
	}
	tok := n.FirstNonTriviaToken()
	if tok == nil {
		return ""
	}
	return tok.Text()
}

// Name introduces a binding; NameRef mentions an existing one. Both expose
// the raw token text, quotes included.

type Name struct{ syntax *syntax.SyntaxNode }

func (n Name) Syntax() *syntax.SyntaxNode { return n.syntax }
func (n Name) Text() string               { return firstTokenText(n.syntax) }

type NameRef struct{ syntax *syntax.SyntaxNode }

func (n NameRef) Syntax() *syntax.SyntaxNode { return n.syntax }
func (n NameRef) Text() string               { return firstTokenText(n.syntax) }

// Path is a possibly-qualified name; Segment returns the last segment, which
// names the object itself.
type Path struct{ syntax *syntax.SyntaxNode }

func (p Path) Syntax() *syntax.SyntaxNode { return p.syntax }

func (p Path) Segments() []PathSegment {
	var out []PathSegment
	for _, c := range childrenOfKinds(p.syntax, parser.PATH_SEGMENT) {
		out = append(out, PathSegment{syntax: c})
	}
	return out
}

func (p Path) Segment() (PathSegment, bool) {
	segs := p.Segments()
	if len(segs) == 0 {
		return PathSegment{}, false
	}
	return segs[len(segs)-1], true
}

// Qualifier returns the text of the first segment when the path has more
// than one, e.g. the `pg_catalog` of pg_catalog.varchar.
func (p Path) Qualifier() (string, bool) {
	segs := p.Segments()
	if len(segs) < 2 {
		return "", false
	}
	return segs[0].Text(), true
}

type PathSegment struct{ syntax *syntax.SyntaxNode }

func (s PathSegment) Syntax() *syntax.SyntaxNode { return s.syntax }

func (s PathSegment) NameRef() (NameRef, bool) {
	if c := childOfKind(s.syntax, parser.NAME_REF); c != nil {
		return NameRef{syntax: c}, true
	}
	return NameRef{}, false
}

func (s PathSegment) Name() (Name, bool) {
	if c := childOfKind(s.syntax, parser.NAME); c != nil {
		return Name{syntax: c}, true
	}
	return Name{}, false
}

// Text returns the segment's identifier text whether it is a Name or NameRef.
func (s PathSegment) Text() string { return firstTokenText(s.syntax) }

func pathChild(n *syntax.SyntaxNode) (Path, bool) {
	if c := childOfKind(n, parser.PATH); c != nil {
		return Path{syntax: c}, true
	}
	return Path{}, false
}

// pathNameText resolves the object name of a node's path child: the text of
// the last segment.
func pathNameText(n *syntax.SyntaxNode) (string, bool) {
	p, ok := pathChild(n)
	if !ok {
		return "", false
	}
	seg, ok := p.Segment()
	if !ok {
		return "", false
	}
	return seg.Text(), true
}
