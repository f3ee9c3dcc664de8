package caret

import "testing"

func TestParagraphBoundaryHelloWorld(t *testing.T) {
	text := "Hello\n\nWorld" // boundary at 7, the start of "World"

	if got := ParagraphBoundary(text, 0, Forward); got != 7 {
		t.Errorf("forward from 0: got %d, want 7", got)
	}
	if got := ParagraphBoundary(text, 7, Forward); got != 12 {
		t.Errorf("forward from 7: got %d, want 12", got)
	}
	if got := ParagraphBoundary(text, 12, Backward); got != 0 {
		t.Errorf("backward from 12: got %d, want 0", got)
	}
}

func TestParagraphBoundaryForward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from int
		want int
	}{
		{"empty text", "", 0, 0},
		{"no boundary runs to end", "Hello World", 3, 11},
		{"single newline is not a boundary", "Hello\nWorld", 0, 11},
		{"three newlines form one boundary", "a\n\n\nb", 0, 4},
		{"from inside the separator", "Hello\n\nWorld", 6, 7},
		{"at end stays at end", "Hello\n\nWorld", 12, 12},
		{"trailing separator lands on end", "Hello\n\n", 0, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParagraphBoundary(tc.text, tc.from, Forward); got != tc.want {
				t.Errorf("forward(%q, %d): got %d, want %d", tc.text, tc.from, got, tc.want)
			}
		})
	}
}

func TestParagraphBoundaryBackward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from int
		want int
	}{
		{"empty text", "", 0, 0},
		{"inside first paragraph", "Hello\n\nWorld", 3, 0},
		{"at a paragraph start", "a\n\nb\n\nc", 6, 3},
		{"end of three paragraphs", "a\n\nb\n\nc", 7, 3},
		{"from inside a separator", "a\n\nb", 2, 0},
		{"at absolute start", "Hello\n\nWorld", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParagraphBoundary(tc.text, tc.from, Backward); got != tc.want {
				t.Errorf("backward(%q, %d): got %d, want %d", tc.text, tc.from, got, tc.want)
			}
		})
	}
}

func TestParagraphBoundaryForwardMonotonic(t *testing.T) {
	text := "first paragraph\n\nsecond one\n\nthird\nstill third\n\nlast"
	wantStarts := []int{17, 29, 48, 52} // subsequent paragraph starts, then end

	from := 0
	var visited []int
	for i := 0; i < 10; i++ {
		next := ParagraphBoundary(text, from, Forward)
		if next == from {
			break
		}
		if next < from {
			t.Fatalf("boundary moved backward: %d after %d", next, from)
		}
		visited = append(visited, next)
		from = next
	}

	if len(visited) != len(wantStarts) {
		t.Fatalf("visited %v, want %v", visited, wantStarts)
	}
	for i, v := range visited {
		if v != wantStarts[i] {
			t.Errorf("step %d: got %d, want %d (visited %v)", i, v, wantStarts[i], visited)
		}
	}
	if visited[len(visited)-1] != len([]rune(text)) {
		t.Errorf("walk did not terminate at text end: %v", visited)
	}
}

func TestParagraphBoundaryBackwardMonotonic(t *testing.T) {
	text := "one\n\ntwo\n\nthree"
	from := len([]rune(text))
	var visited []int
	for i := 0; i < 10; i++ {
		prev := ParagraphBoundary(text, from, Backward)
		if prev == from {
			break
		}
		if prev > from {
			t.Fatalf("boundary moved forward: %d after %d", prev, from)
		}
		visited = append(visited, prev)
		from = prev
	}

	// From the end of the third paragraph the scan first reaches the
	// start of the second, then the absolute start.
	want := []int{5, 0}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i, v := range visited {
		if v != want[i] {
			t.Errorf("step %d: got %d, want %d", i, v, want[i])
		}
	}
}
