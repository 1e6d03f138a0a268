package syntax

import (
	"strconv"
	"strings"

	"github.com/squawkhq/squawk/parser"
)

// TextRange is a half-open byte range into the source.
type TextRange struct {
	Start int
	End   int
}

func (r TextRange) Len() int { return r.End - r.Start }

func (r TextRange) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

// SyntaxNode is a red node: a green node plus absolute position and parent.
// Nodes are cheap to create; navigation materializes children on demand.
type SyntaxNode struct {
	green  *GreenNode
	parent *SyntaxNode
	offset int
}

// SyntaxToken is a red token.
type SyntaxToken struct {
	green  *GreenToken
	parent *SyntaxNode
	offset int
}

// SyntaxElement points at either a node or a token; exactly one is non-nil.
type SyntaxElement struct {
	Node  *SyntaxNode
	Token *SyntaxToken
}

func (e SyntaxElement) Kind() parser.SyntaxKind {
	if e.Node != nil {
		return e.Node.Kind()
	}
	return e.Token.Kind()
}

func (e SyntaxElement) Range() TextRange {
	if e.Node != nil {
		return e.Node.Range()
	}
	return e.Token.Range()
}

func (n *SyntaxNode) Kind() parser.SyntaxKind { return n.green.Kind() }
func (n *SyntaxNode) Green() *GreenNode       { return n.green }
func (n *SyntaxNode) Parent() *SyntaxNode     { return n.parent }

func (n *SyntaxNode) Range() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.TextLen()}
}

// Text returns the exact source text of the subtree, trivia included.
func (n *SyntaxNode) Text() string { return n.green.Text() }

func (t *SyntaxToken) Kind() parser.SyntaxKind { return t.green.Kind() }
func (t *SyntaxToken) Parent() *SyntaxNode     { return t.parent }
func (t *SyntaxToken) Text() string            { return t.green.Text() }

func (t *SyntaxToken) Range() TextRange {
	return TextRange{Start: t.offset, End: t.offset + t.green.TextLen()}
}

// ChildrenWithTokens materializes all direct children.
func (n *SyntaxNode) ChildrenWithTokens() []SyntaxElement {
	elems := make([]SyntaxElement, 0, len(n.green.children))
	offset := n.offset
	for _, c := range n.green.children {
		switch c := c.(type) {
		case *GreenNode:
			elems = append(elems, SyntaxElement{Node: &SyntaxNode{green: c, parent: n, offset: offset}})
		case *GreenToken:
			elems = append(elems, SyntaxElement{Token: &SyntaxToken{green: c, parent: n, offset: offset}})
		}
		offset += c.TextLen()
	}
	return elems
}

// Children materializes the direct child nodes, skipping tokens.
func (n *SyntaxNode) Children() []*SyntaxNode {
	var nodes []*SyntaxNode
	offset := n.offset
	for _, c := range n.green.children {
		if gn, ok := c.(*GreenNode); ok {
			nodes = append(nodes, &SyntaxNode{green: gn, parent: n, offset: offset})
		}
		offset += c.TextLen()
	}
	return nodes
}

// FirstToken returns the first token in the subtree, trivia included.
func (n *SyntaxNode) FirstToken() *SyntaxToken {
	offset := n.offset
	for _, c := range n.green.children {
		switch c := c.(type) {
		case *GreenToken:
			return &SyntaxToken{green: c, parent: n, offset: offset}
		case *GreenNode:
			child := &SyntaxNode{green: c, parent: n, offset: offset}
			if tok := child.FirstToken(); tok != nil {
				return tok
			}
		}
		offset += c.TextLen()
	}
	return nil
}

// FirstNonTriviaToken returns the first token that is not whitespace or a
// comment.
func (n *SyntaxNode) FirstNonTriviaToken() *SyntaxToken {
	offset := n.offset
	for _, c := range n.green.children {
		switch c := c.(type) {
		case *GreenToken:
			if !c.Kind().IsTrivia() {
				return &SyntaxToken{green: c, parent: n, offset: offset}
			}
		case *GreenNode:
			child := &SyntaxNode{green: c, parent: n, offset: offset}
			if tok := child.FirstNonTriviaToken(); tok != nil {
				return tok
			}
		}
		offset += c.TextLen()
	}
	return nil
}

// Ancestors returns the chain from this node up to the root, self included.
func (n *SyntaxNode) Ancestors() []*SyntaxNode {
	var out []*SyntaxNode
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Descendants walks the subtree in preorder, self included.
func (n *SyntaxNode) Descendants(visit func(*SyntaxNode) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children() {
		c.Descendants(visit)
	}
}

// PreorderTokens walks every token in the subtree in source order.
func (n *SyntaxNode) PreorderTokens(visit func(*SyntaxToken) bool) bool {
	offset := n.offset
	for _, c := range n.green.children {
		switch c := c.(type) {
		case *GreenToken:
			tok := &SyntaxToken{green: c, parent: n, offset: offset}
			if !visit(tok) {
				return false
			}
		case *GreenNode:
			child := &SyntaxNode{green: c, parent: n, offset: offset}
			if !child.PreorderTokens(visit) {
				return false
			}
		}
		offset += c.TextLen()
	}
	return true
}

// TokenAtOffset returns the token covering the byte offset, or nil.
func (n *SyntaxNode) TokenAtOffset(offset int) *SyntaxToken {
	if !n.Range().Contains(offset) {
		return nil
	}
	pos := n.offset
	for _, c := range n.green.children {
		end := pos + c.TextLen()
		if offset < end {
			switch c := c.(type) {
			case *GreenToken:
				return &SyntaxToken{green: c, parent: n, offset: pos}
			case *GreenNode:
				child := &SyntaxNode{green: c, parent: n, offset: pos}
				return child.TokenAtOffset(offset)
			}
		}
		pos = end
	}
	return nil
}

// Dump renders the tree structure with kinds and ranges, one element per
// line, for debugging and golden tests.
func (n *SyntaxNode) Dump() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *SyntaxNode) dump(sb *strings.Builder, depth int) {
	indent(sb, depth)
	r := n.Range()
	sb.WriteString(n.Kind().String())
	writeRange(sb, r)
	sb.WriteByte('\n')
	for _, e := range n.ChildrenWithTokens() {
		if e.Node != nil {
			e.Node.dump(sb, depth+1)
		} else {
			indent(sb, depth+1)
			sb.WriteString(e.Token.Kind().String())
			writeRange(sb, e.Token.Range())
			sb.WriteString(" ")
			sb.WriteString(quoteText(e.Token.Text()))
			sb.WriteByte('\n')
		}
	}
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func writeRange(sb *strings.Builder, r TextRange) {
	sb.WriteString("@")
	sb.WriteString(strconv.Itoa(r.Start))
	sb.WriteString("..")
	sb.WriteString(strconv.Itoa(r.End))
}

func quoteText(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
