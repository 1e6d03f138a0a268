package linter

import "sort"

// lineIndex maps byte offsets to zero-based line numbers.
type lineIndex struct {
	// starts[i] is the byte offset where line i begins.
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) line(offset int) int {
	return sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
}

// ignoreIndex answers "is rule R suppressed at range X" in O(1): a map from
// line number to the rules ignored there, plus the file-wide set.
type ignoreIndex struct {
	lineToRules map[int]map[Rule]bool
	fileRules   map[Rule]bool
	lines       *lineIndex
}

func newIgnoreIndex(text string, ignores []Ignore) *ignoreIndex {
	idx := &ignoreIndex{
		lineToRules: make(map[int]map[Rule]bool),
		fileRules:   make(map[Rule]bool),
		lines:       newLineIndex(text),
	}
	for _, ig := range ignores {
		if ig.File {
			for r := range ig.Rules {
				idx.fileRules[r] = true
			}
			continue
		}
		line := idx.lines.line(ig.Range.Start)
		set := idx.lineToRules[line]
		if set == nil {
			set = make(map[Rule]bool)
			idx.lineToRules[line] = set
		}
		for r := range ig.Rules {
			set[r] = true
		}
	}
	return idx
}

// contains reports whether the rule is suppressed for a violation at the
// given range: by a file-scoped ignore, or by a line-scoped ignore on the
// same line or the line directly above.
func (idx *ignoreIndex) contains(r Range, rule Rule) bool {
	if idx.fileRules[rule] {
		return true
	}
	line := idx.lines.line(r.Start)
	for _, l := range []int{line, line - 1} {
		if l < 0 {
			continue
		}
		if set, ok := idx.lineToRules[l]; ok && set[rule] {
			return true
		}
	}
	return false
}
