package linter

import (
	"strings"

	"github.com/squawkhq/squawk/parser"
	"github.com/squawkhq/squawk/syntax"
)

// Ignore is one parsed suppression directive: the byte range of its rule list
// and the rules it names.
type Ignore struct {
	Range syntax.TextRange
	Rules map[Rule]bool
	// File marks a squawk-ignore-file directive, which applies to the whole
	// file rather than the following statement.
	File bool
}

const (
	ignoreText     = "squawk-ignore"
	ignoreFileText = "squawk-ignore-file"
)

// commentBody strips the comment markers and returns the body with its byte
// range.
func commentBody(tok *syntax.SyntaxToken) (string, syntax.TextRange, bool) {
	if tok.Kind() != parser.COMMENT {
		return "", syntax.TextRange{}, false
	}
	text := tok.Text()
	r := tok.Range()
	if body, ok := strings.CutPrefix(text, "--"); ok {
		return body, syntax.TextRange{Start: r.Start + 2, End: r.End}, true
	}
	if body, ok := strings.CutPrefix(text, "/*"); ok {
		if body, ok := strings.CutSuffix(body, "*/"); ok {
			return body, syntax.TextRange{Start: r.Start + 2, End: r.End - 2}, true
		}
	}
	return "", syntax.TextRange{}, false
}

// ignoreRuleNames returns the comma-separated rule list of a squawk-ignore
// comment, with its range, and whether the directive is file-scoped.
func ignoreRuleNames(tok *syntax.SyntaxToken) (string, syntax.TextRange, bool, bool) {
	body, r, ok := commentBody(tok)
	if !ok {
		return "", syntax.TextRange{}, false, false
	}
	withoutStart := strings.TrimLeft(body, " \t")
	trimStart := len(body) - len(withoutStart)
	trimmed := strings.TrimRight(withoutStart, " \t\r\n")
	trimEnd := len(withoutStart) - len(trimmed)

	prefix := ignoreText
	isFile := false
	if strings.HasPrefix(trimmed, ignoreFileText) {
		prefix = ignoreFileText
		isFile = true
	} else if !strings.HasPrefix(trimmed, ignoreText) {
		return "", syntax.TextRange{}, false, false
	}
	rest := trimmed[len(prefix):]
	restRange := syntax.TextRange{
		Start: r.Start + trimStart + len(prefix),
		End:   r.End - trimEnd,
	}
	return rest, restRange, isFile, true
}

// findIgnores scans every comment token in the file for suppression
// directives, recording them on the linter and reporting unknown rule names
// as unused-ignore.
func findIgnores(l *Linter, root *syntax.SyntaxNode) {
	root.PreorderTokens(func(tok *syntax.SyntaxToken) bool {
		names, r, isFile, ok := ignoreRuleNames(tok)
		if !ok {
			return true
		}
		rules := make(map[Rule]bool)
		offset := 0
		// Track the offset of each comma-separated piece so unknown names
		// get precise sub-ranges.
		for _, piece := range strings.Split(names, ",") {
			if piece == "" {
				offset++
				continue
			}
			name := strings.TrimSpace(piece)
			if rule, err := RuleFromName(name); err == nil {
				rules[rule] = true
			} else {
				withoutStart := strings.TrimLeft(piece, " \t")
				trimStart := len(piece) - len(withoutStart)
				start := r.Start + offset + trimStart
				l.Report(NewViolation(
					UnusedIgnore,
					"unknown name "+name,
					syntax.TextRange{Start: start, End: start + len(name)},
					"",
				))
			}
			offset += len(piece) + 1
		}
		l.addIgnore(Ignore{Range: r, Rules: rules, File: isFile})
		return true
	})
}
