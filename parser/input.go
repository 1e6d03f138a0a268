package parser

// Input is the parser's view of the token stream: kinds only, no text, no
// trivia. A joint bit marks tokens that were immediately adjacent to their
// predecessor, which is how compound operators and qualified names are
// recognized without ambiguity.
type Input struct {
	kind     []SyntaxKind
	joint    []uint64
	floatDot []uint64
}

func (inp *Input) push(kind SyntaxKind) {
	idx := len(inp.kind)
	if idx%64 == 0 {
		inp.joint = append(inp.joint, 0)
		inp.floatDot = append(inp.floatDot, 0)
	}
	inp.kind = append(inp.kind, kind)
}

// wasJoint sets jointness for the most recently pushed token.
func (inp *Input) wasJoint() {
	n := len(inp.kind) - 1
	inp.joint[n/64] |= 1 << (uint(n) % 64)
}

// markFloatDot records that the text of the most recently pushed float literal
// ends in a dot. (`1.` itself lexes as an integer followed by a dot.)
func (inp *Input) markFloatDot() {
	n := len(inp.kind) - 1
	inp.floatDot[n/64] |= 1 << (uint(n) % 64)
}

// Kind returns the kind of token idx; past the end it returns EOF.
func (inp *Input) Kind(idx int) SyntaxKind {
	if idx >= len(inp.kind) {
		return EOF
	}
	return inp.kind[idx]
}

// IsJoint reports whether token n follows its predecessor with no trivia in
// between.
func (inp *Input) IsJoint(n int) bool {
	if n >= len(inp.kind) {
		return false
	}
	return inp.joint[n/64]&(1<<(uint(n)%64)) != 0
}

// FloatEndsInDot reports whether float token n has a trailing dot.
func (inp *Input) FloatEndsInDot(n int) bool {
	if n >= len(inp.kind) {
		return false
	}
	return inp.floatDot[n/64]&(1<<(uint(n)%64)) != 0
}

// Len returns the number of tokens.
func (inp *Input) Len() int { return len(inp.kind) }
