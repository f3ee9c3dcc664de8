// Package stats derives writing statistics from the flattened document
// text.
package stats

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Stats holds the counts displayed in the status bar.
type Stats struct {
	Words      int
	Chars      int
	Paragraphs int
}

// Count computes statistics for the given text. Words are maximal runs
// of non-whitespace, so an empty or all-whitespace text has zero words.
// Chars counts grapheme clusters (user-perceived characters), including
// embedded whitespace. Paragraphs are blank-line separated segments that
// contain at least one non-whitespace rune.
func Count(text string) Stats {
	return Stats{
		Words:      len(strings.Fields(text)),
		Chars:      uniseg.GraphemeClusterCount(text),
		Paragraphs: countParagraphs(text),
	}
}

func countParagraphs(text string) int {
	count := 0
	for _, segment := range splitParagraphs(text) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

// splitParagraphs cuts the text at runs of two or more line breaks, the
// same boundary rule paragraph navigation uses.
func splitParagraphs(text string) []string {
	var segments []string
	var b strings.Builder
	run := 0
	for _, r := range text {
		if r == '\n' {
			run++
			if run == 2 {
				segments = append(segments, strings.TrimSuffix(b.String(), "\n"))
				b.Reset()
			}
			if run >= 2 {
				continue
			}
		} else {
			run = 0
		}
		b.WriteRune(r)
	}
	segments = append(segments, b.String())
	return segments
}
