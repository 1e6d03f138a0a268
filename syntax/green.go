// Package syntax builds and exposes the lossless concrete syntax tree.
//
// The tree has two layers. Green nodes are immutable, position-free, and may
// be shared between trees; they know only their kind, byte length, and
// children. Red nodes (SyntaxNode, SyntaxToken) are lazily built views that
// carry an absolute offset and a parent pointer.
package syntax

import (
	"strings"

	"github.com/squawkhq/squawk/parser"
)

// GreenElement is either a *GreenNode or a *GreenToken.
type GreenElement interface {
	Kind() parser.SyntaxKind
	TextLen() int
}

// GreenToken is a leaf: a token kind plus its exact source text.
type GreenToken struct {
	kind parser.SyntaxKind
	text string
}

func NewGreenToken(kind parser.SyntaxKind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() parser.SyntaxKind { return t.kind }
func (t *GreenToken) TextLen() int            { return len(t.text) }
func (t *GreenToken) Text() string            { return t.text }

// GreenNode is an interior node; its length is the sum of its children's.
type GreenNode struct {
	kind     parser.SyntaxKind
	textLen  int
	children []GreenElement
}

func NewGreenNode(kind parser.SyntaxKind, children []GreenElement) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.textLen += c.TextLen()
	}
	return n
}

func (n *GreenNode) Kind() parser.SyntaxKind  { return n.kind }
func (n *GreenNode) TextLen() int             { return n.textLen }
func (n *GreenNode) Children() []GreenElement { return n.children }

// Text reconstructs the exact source text of the subtree.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		switch c := c.(type) {
		case *GreenToken:
			sb.WriteString(c.text)
		case *GreenNode:
			c.writeText(sb)
		}
	}
}
