package parser

import "fmt"

// Parse runs the grammar over the input and returns the event stream. It is a
// pure function: the input is only read.
func Parse(inp *Input) *Output {
	p := &parser{inp: inp}
	sourceFile(p)
	return processEvents(p.events)
}

type parser struct {
	inp    *Input
	pos    int
	events []event
	// fuel guards against a grammar bug looping without consuming input.
	fuel int
}

// Marker identifies an open node whose kind is decided at close time.
type Marker struct {
	index int
}

// CompletedMarker remembers a closed node so that an expression parser can
// wrap it into a new parent (Precede).
type CompletedMarker struct {
	index int
	kind  SyntaxKind
}

func (p *parser) open() Marker {
	p.events = append(p.events, event{kind: evStart, syntax: TOMBSTONE})
	return Marker{index: len(p.events) - 1}
}

func (p *parser) close(m Marker, kind SyntaxKind) CompletedMarker {
	p.events[m.index].syntax = kind
	p.events = append(p.events, event{kind: evFinish})
	return CompletedMarker{index: m.index, kind: kind}
}

// precede opens a new node that will become the parent of the completed node.
func (p *parser) precede(cm CompletedMarker) Marker {
	m := p.open()
	p.events[cm.index].forwardParent = m.index + 1
	return m
}

func (p *parser) nth(n int) SyntaxKind {
	return p.inp.Kind(p.pos + n)
}

func (p *parser) current() SyntaxKind {
	return p.inp.Kind(p.pos)
}

func (p *parser) atEOF() bool {
	return p.current() == EOF
}

// at reports whether the current token (or joined token sequence, for
// compound kinds) matches kind.
func (p *parser) at(kind SyntaxKind) bool {
	switch kind {
	case COLONCOLON:
		return p.atComposite2(COLON, COLON)
	case CONCAT:
		return p.atComposite2(PIPE, PIPE)
	case ARROW:
		return p.atComposite2(MINUS, GT) && !p.atComposite3(MINUS, GT, GT)
	case ARROW_ARROW:
		return p.atComposite3(MINUS, GT, GT)
	case LT_EQ:
		return p.atComposite2(LT, EQ)
	case GT_EQ:
		return p.atComposite2(GT, EQ)
	case NEQ:
		return p.atComposite2(LT, GT) || p.atComposite2(BANG, EQ)
	default:
		return p.current() == kind
	}
}

func (p *parser) atComposite2(k1, k2 SyntaxKind) bool {
	return p.nth(0) == k1 && p.nth(1) == k2 && p.inp.IsJoint(p.pos+1)
}

func (p *parser) atComposite3(k1, k2, k3 SyntaxKind) bool {
	return p.atComposite2(k1, k2) && p.nth(2) == k3 && p.inp.IsJoint(p.pos+2)
}

func (p *parser) atAny(set TokenSet) bool {
	return set.Contains(p.current())
}

// bump consumes the current token, emitting it as kind. Compound kinds
// consume the matching number of raw tokens.
func (p *parser) bump(kind SyntaxKind) {
	n := 1
	switch kind {
	case COLONCOLON, CONCAT, ARROW, LT_EQ, GT_EQ, POUND_GT, AT_GT, LT_AT, AT_AT, AMP_AMP, TILDE_STAR, BANG_TILDE:
		n = 2
	case NEQ:
		n = 2
	case ARROW_ARROW, POUND_GT_GT, BANG_TILDE_STAR:
		n = 3
	}
	p.doBump(kind, n)
}

// bumpAny consumes the current token with its own kind.
func (p *parser) bumpAny() {
	p.doBump(p.current(), 1)
}

// bumpN consumes n raw tokens as a single token of the given kind.
func (p *parser) bumpN(kind SyntaxKind, n int) {
	p.doBump(kind, n)
}

func (p *parser) doBump(kind SyntaxKind, n int) {
	if p.atEOF() {
		return
	}
	p.events = append(p.events, event{kind: evToken, syntax: kind, nRaw: n})
	p.pos += n
	p.fuel = 0
}

// floatSplit consumes a float literal that actually spells a qualified-name
// continuation, asking the builder to re-segment it.
func (p *parser) floatSplit() {
	endsInDot := p.inp.FloatEndsInDot(p.pos)
	p.events = append(p.events, event{kind: evFloatSplit, endsInDot: endsInDot})
	p.pos++
	p.fuel = 0
}

func (p *parser) eat(kind SyntaxKind) bool {
	if !p.at(kind) {
		return false
	}
	p.bump(kind)
	return true
}

func (p *parser) expect(kind SyntaxKind) bool {
	if p.eat(kind) {
		return true
	}
	p.err(fmt.Sprintf("expected %s", kind))
	return false
}

func (p *parser) err(msg string) {
	p.events = append(p.events, event{kind: evError, msg: msg})
}

// errRecover reports an error and, unless the current token is a safe
// synchronization point, wraps it in an error node so parsing can continue.
func (p *parser) errRecover(msg string, recovery TokenSet) {
	p.err(msg)
	if p.atEOF() || p.atAny(recovery) {
		return
	}
	m := p.open()
	p.bumpAny()
	p.close(m, ERROR)
}

// stuck reports whether the parser failed to make progress; callers use it to
// force token consumption and avoid infinite loops on malformed input.
func (p *parser) stuck() bool {
	p.fuel++
	return p.fuel > 256
}
