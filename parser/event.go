package parser

// The parser does not build trees; it emits a flat stream of steps describing
// one. Steps are produced from the internal event list once parsing finishes,
// resolving the forward-parent links created by Marker.Precede.

// StepKind discriminates Output steps.
type StepKind uint8

const (
	StepToken StepKind = iota
	StepEnter
	StepExit
	StepFloatSplit
	StepError
)

// Step is one instruction for the tree builder.
type Step struct {
	Kind StepKind
	// Syntax is the node kind for Enter and the token kind for Token.
	Syntax SyntaxKind
	// NRawTokens is how many input tokens the Token step consumes (compound
	// operators consume more than one).
	NRawTokens int
	// EndsInDot is set on FloatSplit when the float's text ends in a dot.
	EndsInDot bool
	Msg       string
}

// Output is the parser's result: a well-nested step stream.
type Output struct {
	steps []Step
}

// Steps returns the step stream in order.
func (o *Output) Steps() []Step { return o.steps }

type eventKind uint8

const (
	evTombstone eventKind = iota
	evStart
	evFinish
	evToken
	evFloatSplit
	evError
)

type event struct {
	kind   eventKind
	syntax SyntaxKind
	// forwardParent holds (index of parent Start event)+1, or 0. Set by
	// Precede: the parent's Enter must be emitted before this node's.
	forwardParent int
	nRaw          int
	endsInDot     bool
	msg           string
}

// processEvents turns the event list into the final Output, emitting chained
// forward parents in the right order.
func processEvents(events []event) *Output {
	out := &Output{}
	var forward []SyntaxKind
	for i := range events {
		switch events[i].kind {
		case evTombstone:
			// skip
		case evStart:
			// Collect the chain of nodes that should open here, innermost
			// first, then emit them outermost first.
			forward = forward[:0]
			idx := i
			for {
				forward = append(forward, events[idx].syntax)
				fp := events[idx].forwardParent
				events[idx].kind = evTombstone
				if fp == 0 {
					break
				}
				idx = fp - 1
			}
			for j := len(forward) - 1; j >= 0; j-- {
				if forward[j] != TOMBSTONE {
					out.steps = append(out.steps, Step{Kind: StepEnter, Syntax: forward[j]})
				}
			}
		case evFinish:
			out.steps = append(out.steps, Step{Kind: StepExit})
		case evToken:
			out.steps = append(out.steps, Step{Kind: StepToken, Syntax: events[i].syntax, NRawTokens: events[i].nRaw})
		case evFloatSplit:
			out.steps = append(out.steps, Step{Kind: StepFloatSplit, NRawTokens: 1, EndsInDot: events[i].endsInDot})
		case evError:
			out.steps = append(out.steps, Step{Kind: StepError, Msg: events[i].msg})
		}
	}
	return out
}
