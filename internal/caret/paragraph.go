package caret

// Direction selects which way a paragraph scan moves.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// ParagraphBoundary returns the offset of the nearest paragraph boundary
// from the given offset in the flattened text. A boundary is offset 0,
// the text end, or the position immediately following a run of two or
// more line breaks. Forward returns the start of the paragraph after the
// one containing from (text end when there is none); backward returns
// the start of the paragraph preceding the one containing from (0 when
// there is none). Repeated application therefore walks paragraph starts
// strictly monotonically and never gets stuck except at the ends.
func ParagraphBoundary(text string, from int, dir Direction) int {
	runes := []rune(text)
	n := len(runes)
	from = clamp(from, 0, n)

	if dir == Forward {
		return forwardBoundary(runes, from)
	}
	return backwardBoundary(runes, from)
}

func forwardBoundary(runes []rune, from int) int {
	n := len(runes)

	// Seed the run with line breaks immediately behind from, so a scan
	// starting inside a separator still lands on the boundary after it.
	run := 0
	for j := from - 1; j >= 0 && runes[j] == '\n'; j-- {
		run++
	}

	for i := from; i < n; i++ {
		if runes[i] == '\n' {
			run++
			continue
		}
		if run >= 2 && i > from {
			return i
		}
		run = 0
	}
	return n
}

func backwardBoundary(runes []rune, from int) int {
	cur := previousStart(runes, from)
	if cur == 0 {
		return 0
	}
	return previousStart(runes, cur-1)
}

// previousStart finds the largest paragraph start at or before from.
func previousStart(runes []rune, from int) int {
	for b := from; b > 0; b-- {
		if isParagraphStart(runes, b) {
			return b
		}
	}
	return 0
}

// isParagraphStart reports whether b is the position immediately
// following a run of two or more line breaks.
func isParagraphStart(runes []rune, b int) bool {
	if b < 2 || b > len(runes) {
		return false
	}
	if b < len(runes) && runes[b] == '\n' {
		return false
	}
	return runes[b-1] == '\n' && runes[b-2] == '\n'
}
