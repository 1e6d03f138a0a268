package parser

import "strings"

// TreeSink receives the final, trivia-complete step stream. The syntax
// package implements it with a green-tree builder.
type TreeSink interface {
	Token(kind SyntaxKind, text string)
	Enter(kind SyntaxKind)
	Exit()
	Error(msg string, pos int)
}

type builderState uint8

const (
	statePendingEnter builderState = iota
	stateNormal
	statePendingExit
)

type strBuilder struct {
	lexed *LexedStr
	pos   int
	state builderState
	sink  TreeSink
	// kinds of the currently open nodes; the top decides whether a trailing
	// same-line comment is pulled into the node being closed.
	stack []SyntaxKind
}

// IntersperseTrivia replays the parser output over the full token stream,
// re-attaching whitespace and comments, and reports whether every token was
// consumed.
func (l *LexedStr) IntersperseTrivia(output *Output, sink TreeSink) bool {
	b := &strBuilder{lexed: l, state: statePendingEnter, sink: sink}
	for _, step := range output.Steps() {
		switch step.Kind {
		case StepToken:
			b.token(step.Syntax, step.NRawTokens)
		case StepFloatSplit:
			b.floatSplit(step.EndsInDot)
		case StepEnter:
			b.enter(step.Syntax)
		case StepExit:
			b.exit()
		case StepError:
			b.sink.Error(step.Msg, l.TextStart(b.pos))
		}
	}
	if b.state == statePendingExit {
		b.eatTrivias()
		b.doExit()
	}
	return b.pos == l.Len()
}

func (b *strBuilder) token(kind SyntaxKind, nTokens int) {
	if b.state == statePendingExit {
		b.flushExit()
	}
	b.state = stateNormal
	b.eatTrivias()
	b.doToken(kind, nTokens)
}

func (b *strBuilder) floatSplit(endsInDot bool) {
	if b.state == statePendingExit {
		b.flushExit()
	}
	b.state = stateNormal
	b.eatTrivias()

	text := b.lexed.Text(b.pos)
	left, right, _ := strings.Cut(text, ".")
	if left != "" {
		b.sink.Enter(NAME_REF)
		b.sink.Token(INT_NUMBER, left)
		b.sink.Exit()
	}
	b.sink.Token(DOT, ".")
	if !endsInDot && right != "" {
		b.sink.Enter(NAME_REF)
		b.sink.Token(INT_NUMBER, right)
		b.sink.Exit()
	}
	b.pos++
}

func (b *strBuilder) enter(kind SyntaxKind) {
	switch b.state {
	case statePendingEnter:
		// First node of the file; nothing to attach trivia to yet.
		b.doEnter(kind)
		b.state = stateNormal
		return
	case statePendingExit:
		b.flushExit()
	}
	b.state = stateNormal

	nTrivias := 0
	for b.pos+nTrivias < b.lexed.Len() && b.lexed.Kind(b.pos+nTrivias).IsTrivia() {
		nTrivias++
	}
	attached := nAttachedTrivias(b.lexed, kind, b.pos, nTrivias)
	b.eatNTrivias(nTrivias - attached)
	b.doEnter(kind)
	b.eatNTrivias(attached)
}

func (b *strBuilder) exit() {
	if b.state == statePendingExit {
		b.flushExit()
	}
	b.state = statePendingExit
}

func (b *strBuilder) doEnter(kind SyntaxKind) {
	b.stack = append(b.stack, kind)
	b.sink.Enter(kind)
}

func (b *strBuilder) doExit() {
	if n := len(b.stack); n > 0 {
		b.stack = b.stack[:n-1]
	}
	b.sink.Exit()
}

// flushExit closes the pending node. When the node is a statement, a line
// comment still on the closing token's line is pulled inside it first.
func (b *strBuilder) flushExit() {
	if n := len(b.stack); n > 0 && statementKinds[b.stack[n-1]] {
		b.eatNTrivias(trailingSameLineTrivias(b.lexed, b.pos))
	}
	b.doExit()
}

// trailingSameLineTrivias counts the trivia run, starting at pos, up to and
// including the last comment that begins before a newline.
func trailingSameLineTrivias(lexed *LexedStr, pos int) int {
	n := 0
	for i := pos; i < lexed.Len() && lexed.Kind(i).IsTrivia(); i++ {
		if lexed.Kind(i) == WHITESPACE {
			if strings.Contains(lexed.Text(i), "\n") {
				return n
			}
			continue
		}
		n = i - pos + 1
	}
	return n
}

func (b *strBuilder) eatTrivias() {
	for b.pos < b.lexed.Len() && b.lexed.Kind(b.pos).IsTrivia() {
		b.doToken(b.lexed.Kind(b.pos), 1)
	}
}

func (b *strBuilder) eatNTrivias(n int) {
	for i := 0; i < n; i++ {
		b.doToken(b.lexed.Kind(b.pos), 1)
	}
}

func (b *strBuilder) doToken(kind SyntaxKind, nTokens int) {
	text := b.lexed.RangeText(b.pos, b.pos+nTokens)
	b.pos += nTokens
	b.sink.Token(kind, text)
}

// statementKinds are the node kinds that claim a preceding doc comment, even
// across a blank line.
var statementKinds = map[SyntaxKind]bool{
	SELECT_STMT: true, INSERT_STMT: true, UPDATE_STMT: true, DELETE_STMT: true,
	TRUNCATE_STMT: true, CREATE_TABLE: true, CREATE_INDEX: true,
	CREATE_DOMAIN: true, CREATE_FUNCTION: true, CREATE_TYPE: true,
	CREATE_VIEW: true, CREATE_SCHEMA: true, ALTER_TABLE: true,
	ALTER_DOMAIN: true, DROP_TABLE: true, DROP_INDEX: true,
	DROP_DATABASE: true, DROP_TYPE: true, DROP_TRIGGER: true,
	DROP_DOMAIN: true, BEGIN_STMT: true, COMMIT_STMT: true,
	ROLLBACK_STMT: true, SAVEPOINT_STMT: true, SET_STMT: true,
	COMMENT_ON_STMT: true,
}

// nAttachedTrivias decides how many of the node's leading trivia belong
// inside it: everything up to the most recent blank line, except that a
// doc-style comment right before a statement stays with the statement.
func nAttachedTrivias(lexed *LexedStr, kind SyntaxKind, pos, nTrivias int) int {
	if !statementKinds[kind] {
		return 0
	}
	res := 0
	// Walk the trivia run backwards, from the token nearest the node.
	for i := nTrivias - 1; i >= 0; i-- {
		idx := pos + i
		tkind := lexed.Kind(idx)
		text := lexed.Text(idx)
		switch tkind {
		case WHITESPACE:
			if strings.Contains(text, "\n\n") {
				// A blank line separates the node from earlier trivia, unless
				// the comment beyond it is doc-like.
				if i > 0 && lexed.Kind(pos+i-1) == COMMENT && isDocComment(lexed.Text(pos+i-1)) {
					continue
				}
				return res
			}
		case COMMENT:
			res = nTrivias - i
		}
	}
	return res
}

func isDocComment(text string) bool {
	if strings.HasPrefix(text, "/***") {
		return false
	}
	return strings.HasPrefix(text, "---") || strings.HasPrefix(text, "/**")
}
