// Package diff renders line-oriented differences between two transcripts.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Unified returns a unified-style diff of expected against actual, or an
// empty string when they are equal. Lines are compared whole; a trailing
// newline difference alone is ignored.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) string {
	exp := normalize(expected)
	act := normalize(actual)
	if exp == act {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(exp, act)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", expectedLabel, actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(exp), countLines(act))

	written := 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(strings.TrimSuffix(line, "\n"))
			buf.WriteString("\n")
			written++
		}
	}
	return buf.String()
}

func normalize(data []byte) string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

func countLines(text string) int {
	return strings.Count(text, "\n")
}
