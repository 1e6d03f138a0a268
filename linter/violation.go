package linter

import (
	"encoding/json"

	"github.com/squawkhq/squawk/syntax"
)

// Range is the byte span of a finding, serialized as {start, end}.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func rangeOf(r syntax.TextRange) Range {
	return Range{Start: r.Start, End: r.End}
}

// MessageKind tags a violation footer.
type MessageKind string

const (
	MessageNote MessageKind = "Note"
	MessageHelp MessageKind = "Help"
)

// ViolationMessage is one tagged footer line. It serializes in the reporter
// wire shape, {"Note": "..."} or {"Help": "..."}.
type ViolationMessage struct {
	Kind MessageKind
	Text string
}

func (m ViolationMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{string(m.Kind): m.Text})
}

func (m *ViolationMessage) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		m.Kind = MessageKind(k)
		m.Text = v
	}
	return nil
}

// Edit is a single text replacement of an auto-fix.
type Edit struct {
	Range       Range  `json:"range"`
	Replacement string `json:"replacement"`
}

// Fix is an optional machine-applicable remedy.
type Fix struct {
	Title string `json:"title"`
	Edits []Edit `json:"edits"`
}

// Violation is a single finding: a rule code, a byte range, and its messages.
// The shape is serialized verbatim by JSON reporters.
type Violation struct {
	Code     Rule               `json:"code"`
	Message  string             `json:"message"`
	Messages []ViolationMessage `json:"messages"`
	Range    Range              `json:"range"`
	Fix      *Fix               `json:"fix,omitempty"`
}

// NewViolation builds a violation with a Note footer for the primary message
// and an optional Help footer.
func NewViolation(code Rule, message string, r syntax.TextRange, help string) Violation {
	messages := []ViolationMessage{{Kind: MessageNote, Text: message}}
	if help != "" {
		messages = append(messages, ViolationMessage{Kind: MessageHelp, Text: help})
	}
	return Violation{
		Code:     code,
		Message:  message,
		Messages: messages,
		Range:    rangeOf(r),
	}
}

// WithHelp appends an extra Help footer.
func (v Violation) WithHelp(help string) Violation {
	v.Messages = append(v.Messages, ViolationMessage{Kind: MessageHelp, Text: help})
	return v
}

// WithFix attaches an auto-fix.
func (v Violation) WithFix(fix Fix) Violation {
	v.Fix = &fix
	return v
}
