package stats

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Stats
	}{
		{"empty", "", Stats{}},
		{"all whitespace", "  \t\n  ", Stats{Words: 0, Chars: 6, Paragraphs: 0}},
		{"three words", "Hello world test", Stats{Words: 3, Chars: 16, Paragraphs: 1}},
		{"leading and trailing space", "  hi there  ", Stats{Words: 2, Chars: 12, Paragraphs: 1}},
		{"two paragraphs", "Hello\n\nWorld", Stats{Words: 2, Chars: 12, Paragraphs: 2}},
		{"single newline is one paragraph", "Hello\nWorld", Stats{Words: 2, Chars: 11, Paragraphs: 1}},
		{"blank paragraph not counted", "a\n\n \n\nb", Stats{Words: 2, Chars: 7, Paragraphs: 2}},
		{"combining marks count once", "café", Stats{Words: 1, Chars: 4, Paragraphs: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Count(tc.text); got != tc.want {
				t.Errorf("Count(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}
