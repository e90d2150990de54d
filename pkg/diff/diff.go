package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stat counts changed lines.
type Stat struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stat) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// GenerateUnifiedDiff compares two texts line by line and returns a
// unified-style listing of every line, prefixed with ' ', '-' or '+'.
// Returns an empty string when the content is identical.
// Listings longer than 10,000 lines are truncated with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	diffs := lineDiffs(string(expected), string(actual))
	expectedLines := countLines(string(expected))
	actualLines := countLines(string(actual))

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", expectedLines, actualLines)

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}

// Summarize counts added and removed lines between two texts.
func Summarize(expected, actual []byte) Stat {
	var stat Stat
	if bytes.Equal(expected, actual) {
		return stat
	}
	for _, d := range lineDiffs(string(expected), string(actual)) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			stat.Removed += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			stat.Added += len(splitLines(d.Text))
		}
	}
	return stat
}

// lineDiffs runs the diff on whole lines so that a changed line is reported
// once as removed and once as added instead of as character fragments.
func lineDiffs(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(charsA, charsB, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func countLines(text string) int {
	return len(splitLines(text))
}
