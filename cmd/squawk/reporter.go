package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/squawkhq/squawk/linter"
	"github.com/squawkhq/squawk/syntax"
)

type reporter interface {
	report(w io.Writer, file, text string, errors []syntax.SyntaxError, violations []linter.Violation)
}

func newReporter(name string, tty bool) reporter {
	switch name {
	case "json":
		return jsonReporter{}
	case "gcc":
		return gccReporter{}
	default:
		return ttyReporter{color: tty}
	}
}

// lineCol converts a byte offset to 1-based line and column numbers.
func lineCol(text string, offset int) (int, int) {
	line, col := 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

type ttyReporter struct {
	color bool
}

func (r ttyReporter) report(w io.Writer, file, text string, errors []syntax.SyntaxError, violations []linter.Violation) {
	warn := color.New(color.FgYellow, color.Bold)
	errc := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)
	if !r.color {
		warn.DisableColor()
		errc.DisableColor()
		dim.DisableColor()
	}

	for _, e := range errors {
		line, col := lineCol(text, e.Range.Start)
		errc.Fprintf(w, "error")
		fmt.Fprintf(w, ": %s:%d:%d: %s\n", file, line, col, e.Msg)
	}
	for _, v := range violations {
		line, col := lineCol(text, v.Range.Start)
		warn.Fprintf(w, "warning")
		fmt.Fprintf(w, ": %s %s:%d:%d\n", v.Code, file, line, col)
		printSnippet(w, text, v.Range, dim)
		for _, m := range v.Messages {
			switch m.Kind {
			case linter.MessageNote:
				fmt.Fprintf(w, "  note: %s\n", m.Text)
			case linter.MessageHelp:
				fmt.Fprintf(w, "  help: %s\n", m.Text)
			}
		}
		fmt.Fprintln(w)
	}
	if len(violations) > 0 {
		fmt.Fprintf(w, "find detailed examples and solutions for each rule at https://squawkhq.com/docs/rules\n")
	}
}

// printSnippet renders the offending lines with the violation range
// underlined.
func printSnippet(w io.Writer, text string, r linter.Range, dim *color.Color) {
	lines := strings.Split(text, "\n")
	startLine, startCol := lineCol(text, r.Start)
	endLine, _ := lineCol(text, r.End)
	for ln := startLine; ln <= endLine && ln <= len(lines); ln++ {
		lineText := lines[ln-1]
		dim.Fprintf(w, "%4d | ", ln)
		fmt.Fprintln(w, lineText)
		if ln == startLine {
			width := len(lineText) - (startCol - 1)
			if endLine == startLine {
				width = min(width, r.End-r.Start)
			}
			if width < 1 {
				width = 1
			}
			fmt.Fprintf(w, "     | %s%s\n", strings.Repeat(" ", startCol-1), strings.Repeat("^", width))
		}
	}
}

type jsonReporter struct{}

type jsonFileReport struct {
	File       string             `json:"file"`
	Errors     []jsonSyntaxError  `json:"errors"`
	Violations []linter.Violation `json:"violations"`
}

type jsonSyntaxError struct {
	Message string       `json:"message"`
	Range   linter.Range `json:"range"`
}

func (jsonReporter) report(w io.Writer, file, text string, errors []syntax.SyntaxError, violations []linter.Violation) {
	out := jsonFileReport{
		File:       file,
		Errors:     []jsonSyntaxError{},
		Violations: violations,
	}
	if out.Violations == nil {
		out.Violations = []linter.Violation{}
	}
	for _, e := range errors {
		out.Errors = append(out.Errors, jsonSyntaxError{
			Message: e.Msg,
			Range:   linter.Range{Start: e.Range.Start, End: e.Range.End},
		})
	}
	enc := json.NewEncoder(w)
	_ = enc.Encode(out)
}

type gccReporter struct{}

func (gccReporter) report(w io.Writer, file, text string, errors []syntax.SyntaxError, violations []linter.Violation) {
	type entry struct {
		offset int
		line   string
	}
	var entries []entry
	for _, e := range errors {
		line, col := lineCol(text, e.Range.Start)
		entries = append(entries, entry{e.Range.Start, fmt.Sprintf("%s:%d:%d: error: %s", file, line, col, e.Msg)})
	}
	for _, v := range violations {
		line, col := lineCol(text, v.Range.Start)
		entries = append(entries, entry{v.Range.Start, fmt.Sprintf("%s:%d:%d: warning: %s %s", file, line, col, v.Code, v.Message)})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].offset < entries[j].offset })
	for _, e := range entries {
		fmt.Fprintln(w, e.line)
	}
}
