package surface

import (
	"github.com/inkwell-editor/inkwell/internal/caret"
	"github.com/inkwell-editor/inkwell/internal/doctree"
	"github.com/inkwell-editor/inkwell/internal/logger"
)

// InsertText inserts text at the caret and advances it past the
// insertion.
func (s *Surface) InsertText(text string) {
	if text == "" {
		return
	}
	offset := s.currentOffset()
	pos, err := caret.PositionFromOffset(s.tree, offset)
	if err != nil {
		logger.Errorf("surface: insert into detached tree: %v", err)
		return
	}

	kind, err := s.tree.Kind(pos.Node)
	if err != nil {
		logger.Errorf("surface: insert at stale position: %v", err)
		return
	}

	if kind == doctree.KindElement {
		// Degenerate position on an empty surface: grow the first leaf.
		if _, err := s.tree.AppendText(pos.Node, text); err != nil {
			logger.Errorf("surface: create first leaf: %v", err)
			return
		}
	} else {
		old, err := s.tree.Text(pos.Node)
		if err != nil {
			logger.Errorf("surface: read leaf text: %v", err)
			return
		}
		runes := []rune(old)
		spliced := string(runes[:pos.Offset]) + text + string(runes[pos.Offset:])
		if err := s.tree.SetText(pos.Node, spliced); err != nil {
			logger.Errorf("surface: write leaf text: %v", err)
			return
		}
	}

	s.markModified()
	s.SetCaret(offset + len([]rune(text)))
}

// InsertNewline inserts a single line break at the caret. Two in a row
// form a paragraph boundary.
func (s *Surface) InsertNewline() {
	s.InsertText("\n")
}

// DeleteBackward removes the character before the caret.
func (s *Surface) DeleteBackward() {
	offset := s.currentOffset()
	if offset == 0 {
		return
	}
	if s.deleteRuneBefore(offset) {
		s.markModified()
		s.SetCaret(offset - 1)
	}
}

// DeleteForward removes the character after the caret.
func (s *Surface) DeleteForward() {
	offset := s.currentOffset()
	if offset >= s.tree.TotalLen() {
		return
	}
	if s.deleteRuneBefore(offset + 1) {
		s.markModified()
		s.SetCaret(offset)
	}
}

// deleteRuneBefore removes the rune at global index end-1. Resolving
// end through the translator pins the leaf containing that rune: the
// earlier-leaf tie-break guarantees a local offset of at least one.
func (s *Surface) deleteRuneBefore(end int) bool {
	pos, err := caret.PositionFromOffset(s.tree, end)
	if err != nil {
		logger.Errorf("surface: delete in detached tree: %v", err)
		return false
	}
	kind, err := s.tree.Kind(pos.Node)
	if err != nil || kind != doctree.KindText || pos.Offset == 0 {
		return false
	}
	old, err := s.tree.Text(pos.Node)
	if err != nil {
		return false
	}
	runes := []rune(old)
	spliced := string(runes[:pos.Offset-1]) + string(runes[pos.Offset:])
	if err := s.tree.SetText(pos.Node, spliced); err != nil {
		logger.Errorf("surface: write leaf text: %v", err)
		return false
	}
	return true
}
