// Package surface implements the editable writing surface: one document
// tree, its selection, and the editing operations driven by the input
// layer. All caret math goes through the caret translator; the surface
// owns sequencing (mutate the tree first, then re-apply the caret).
package surface

import (
	"errors"
	"strings"

	"github.com/inkwell-editor/inkwell/internal/caret"
	"github.com/inkwell-editor/inkwell/internal/doctree"
	"github.com/inkwell-editor/inkwell/internal/event"
	"github.com/inkwell-editor/inkwell/internal/logger"
	"github.com/inkwell-editor/inkwell/internal/stats"
)

// Surface is the host of the document tree and its native selection.
type Surface struct {
	tree         *doctree.Tree
	sel          *doctree.Selection
	eventManager *event.Manager
	filePath     string
	modified     bool
}

// New creates an empty surface with the caret at the degenerate start
// position.
func New() *Surface {
	tree := doctree.New()
	s := &Surface{
		tree: tree,
		sel:  doctree.NewSelection(tree),
	}
	s.SetCaret(0)
	return s
}

// SetEventManager wires the event bus for dispatching surface events.
func (s *Surface) SetEventManager(mgr *event.Manager) {
	s.eventManager = mgr
}

// Tree exposes the document tree. Callers must not hold leaf handles
// across surface mutations.
func (s *Surface) Tree() *doctree.Tree {
	return s.tree
}

// Selection exposes the native selection primitive.
func (s *Surface) Selection() *doctree.Selection {
	return s.sel
}

// FilePath returns the backing file path, empty for an unsaved draft.
func (s *Surface) FilePath() string {
	return s.filePath
}

// IsModified reports whether the surface has unsaved changes.
func (s *Surface) IsModified() bool {
	return s.modified
}

// Flatten returns the flattened string view of the tree's text.
func (s *Surface) Flatten() string {
	return s.tree.Flatten()
}

// Stats computes the current writing statistics.
func (s *Surface) Stats() stats.Stats {
	return stats.Count(s.Flatten())
}

// CaretOffset computes the global caret offset from the live selection.
// ErrNoSelection means the caret position is unknown, not zero.
func (s *Surface) CaretOffset() (int, error) {
	return caret.OffsetFromSelection(s.tree, s.sel)
}

// currentOffset resolves the caret, re-anchoring at the document end
// when the selection has gone stale (for example after a removal).
func (s *Surface) currentOffset() int {
	offset, err := s.CaretOffset()
	if err != nil {
		if !errors.Is(err, caret.ErrNoSelection) {
			logger.Debugf("surface: caret offset unavailable: %v", err)
		}
		return s.SetCaret(s.tree.TotalLen())
	}
	return offset
}

// SetCaret places the caret at a global offset, clamping out-of-range
// values, and returns the effective offset. Placement failures are
// logged and swallowed: a missed caret move is cosmetic and must not
// interrupt typing.
func (s *Surface) SetCaret(offset int) int {
	pos, err := caret.PositionFromOffset(s.tree, offset)
	if err != nil {
		logger.Warnf("surface: no position for offset %d: %v", offset, err)
		s.sel.Clear()
		return 0
	}
	if err := caret.Apply(s.sel, pos); err != nil {
		logger.Warnf("surface: caret placement failed: %v", err)
		return offset
	}
	effective, err := s.CaretOffset()
	if err != nil {
		return offset
	}
	s.dispatch(event.TypeCaretMoved, event.CaretMovedData{Offset: effective})
	return effective
}

// MoveCaret shifts the caret by delta characters.
func (s *Surface) MoveCaret(delta int) int {
	return s.SetCaret(s.currentOffset() + delta)
}

// JumpParagraph moves the caret to the nearest paragraph boundary in
// the given direction: boundary scan, offset resolution, then apply.
func (s *Surface) JumpParagraph(dir caret.Direction) int {
	text := s.Flatten()
	from := s.currentOffset()
	return s.SetCaret(caret.ParagraphBoundary(text, from, dir))
}

// LineCol translates a global offset into a 0-based line and column in
// the flattened text, for the renderer and status bar.
func (s *Surface) LineCol(offset int) (line, col int) {
	runes := []rune(s.Flatten())
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// MoveLine moves the caret delta lines up or down, keeping the column
// when the target line is long enough.
func (s *Surface) MoveLine(delta int) int {
	text := s.Flatten()
	lines := strings.Split(text, "\n")
	line, col := s.LineCol(s.currentOffset())

	target := line + delta
	if target < 0 {
		target = 0
	}
	if target >= len(lines) {
		target = len(lines) - 1
	}

	targetLen := len([]rune(lines[target]))
	if col > targetLen {
		col = targetLen
	}

	offset := col
	for i := 0; i < target; i++ {
		offset += len([]rune(lines[i])) + 1
	}
	return s.SetCaret(offset)
}

// LineStart moves the caret to the beginning of the current line.
func (s *Surface) LineStart() int {
	_, col := s.LineCol(s.currentOffset())
	return s.MoveCaret(-col)
}

// LineEnd moves the caret to the end of the current line.
func (s *Surface) LineEnd() int {
	text := s.Flatten()
	lines := strings.Split(text, "\n")
	line, col := s.LineCol(s.currentOffset())
	rest := len([]rune(lines[line])) - col
	return s.MoveCaret(rest)
}

func (s *Surface) markModified() {
	s.modified = true
	s.dispatch(event.TypeSurfaceModified, event.SurfaceModifiedData{Stats: s.Stats()})
}

func (s *Surface) dispatch(t event.Type, data interface{}) {
	if s.eventManager != nil {
		s.eventManager.Dispatch(t, data)
	}
}
