package surface

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-editor/inkwell/internal/caret"
	"github.com/inkwell-editor/inkwell/internal/event"
)

func TestInsertIntoEmptySurface(t *testing.T) {
	s := New()

	s.InsertText("Hello")

	if got := s.Flatten(); got != "Hello" {
		t.Errorf("Flatten() = %q, want %q", got, "Hello")
	}
	offset, err := s.CaretOffset()
	if err != nil {
		t.Fatalf("caret offset: %v", err)
	}
	if offset != 5 {
		t.Errorf("caret at %d, want 5", offset)
	}
	if !s.IsModified() {
		t.Error("surface should be modified after insert")
	}
}

func TestInsertInMiddle(t *testing.T) {
	s := New()
	s.InsertText("Hlo")
	s.SetCaret(1)

	s.InsertText("el")

	if got := s.Flatten(); got != "Hello" {
		t.Errorf("Flatten() = %q, want %q", got, "Hello")
	}
	if offset, _ := s.CaretOffset(); offset != 3 {
		t.Errorf("caret at %d, want 3", offset)
	}
}

func TestDeleteBackward(t *testing.T) {
	s := New()
	s.InsertText("Hello")

	s.DeleteBackward()
	s.DeleteBackward()

	if got := s.Flatten(); got != "Hel" {
		t.Errorf("Flatten() = %q, want %q", got, "Hel")
	}
	if offset, _ := s.CaretOffset(); offset != 3 {
		t.Errorf("caret at %d, want 3", offset)
	}

	// At the start nothing happens.
	s.SetCaret(0)
	s.DeleteBackward()
	if got := s.Flatten(); got != "Hel" {
		t.Errorf("Flatten() = %q after no-op delete, want %q", got, "Hel")
	}
}

func TestDeleteForward(t *testing.T) {
	s := New()
	s.InsertText("Hello")
	s.SetCaret(0)

	s.DeleteForward()

	if got := s.Flatten(); got != "ello" {
		t.Errorf("Flatten() = %q, want %q", got, "ello")
	}
	if offset, _ := s.CaretOffset(); offset != 0 {
		t.Errorf("caret at %d, want 0", offset)
	}

	// At the end nothing happens.
	s.SetCaret(4)
	s.DeleteForward()
	if got := s.Flatten(); got != "ello" {
		t.Errorf("Flatten() = %q after no-op delete, want %q", got, "ello")
	}
}

func TestDeleteAcrossLeafBoundary(t *testing.T) {
	s := New()
	s.SetContent("abc\n\nde")

	// Caret at the start of "de" (offset 5); backspace eats the second
	// separator line break, which lives in the separator leaf.
	s.SetCaret(5)
	s.DeleteBackward()

	if got := s.Flatten(); got != "abc\nde" {
		t.Errorf("Flatten() = %q, want %q", got, "abc\nde")
	}
	if offset, _ := s.CaretOffset(); offset != 4 {
		t.Errorf("caret at %d, want 4", offset)
	}
}

func TestSetContentRoundTrips(t *testing.T) {
	texts := []string{
		"",
		"one paragraph",
		"Hello\n\nWorld",
		"a\n\n\nb",   // three-newline separator kept intact
		"tail\n\n",   // trailing separator
		"line\nwrap", // single newline stays inside a chunk
	}
	for _, text := range texts {
		s := New()
		s.SetContent(text)
		if got := s.Flatten(); got != text {
			t.Errorf("SetContent(%q) flattened to %q", text, got)
		}
	}
}

func TestSetCaretClampsStaleOffset(t *testing.T) {
	s := New()
	s.InsertText("Hello")

	if got := s.SetCaret(99); got != 5 {
		t.Errorf("SetCaret(99) = %d, want 5", got)
	}
	if got := s.SetCaret(-3); got != 0 {
		t.Errorf("SetCaret(-3) = %d, want 0", got)
	}
}

func TestJumpParagraph(t *testing.T) {
	s := New()
	s.SetContent("Hello\n\nWorld")

	if got := s.JumpParagraph(caret.Forward); got != 7 {
		t.Errorf("forward jump: caret at %d, want 7", got)
	}
	if got := s.JumpParagraph(caret.Forward); got != 12 {
		t.Errorf("second forward jump: caret at %d, want 12", got)
	}
	if got := s.JumpParagraph(caret.Backward); got != 0 {
		t.Errorf("backward jump: caret at %d, want 0", got)
	}
}

func TestLineColAndMoveLine(t *testing.T) {
	s := New()
	s.SetContent("short\n\nlonger line")

	line, col := s.LineCol(8) // the 'o' of "longer"
	if line != 2 || col != 1 {
		t.Errorf("LineCol(8) = (%d, %d), want (2, 1)", line, col)
	}

	s.SetCaret(10) // "longer line", col 3
	s.MoveLine(-2)
	if offset, _ := s.CaretOffset(); offset != 3 {
		t.Errorf("after MoveLine(-2): caret at %d, want 3", offset)
	}
	s.MoveLine(2)
	if offset, _ := s.CaretOffset(); offset != 10 {
		t.Errorf("after MoveLine(2): caret at %d, want 10", offset)
	}
}

func TestLineStartEnd(t *testing.T) {
	s := New()
	s.SetContent("abc\ndefgh")
	s.SetCaret(6)

	if got := s.LineStart(); got != 4 {
		t.Errorf("LineStart: caret at %d, want 4", got)
	}
	if got := s.LineEnd(); got != 9 {
		t.Errorf("LineEnd: caret at %d, want 9", got)
	}
}

func TestRoundTripThroughEditing(t *testing.T) {
	s := New()
	s.SetContent("Hello\n\nWorld")

	for o := 0; o <= 12; o++ {
		got := s.SetCaret(o)
		if got != o {
			t.Errorf("SetCaret(%d) landed at %d", o, got)
		}
		back, err := s.CaretOffset()
		if err != nil {
			t.Fatalf("caret offset at %d: %v", o, err)
		}
		if back != o {
			t.Errorf("offset %d read back as %d", o, back)
		}
	}
}

func TestSurfaceEvents(t *testing.T) {
	s := New()
	mgr := event.NewManager()
	s.SetEventManager(mgr)

	var modified, caretMoves int
	mgr.Subscribe(event.TypeSurfaceModified, func(e event.Event) bool {
		modified++
		return false
	})
	mgr.Subscribe(event.TypeCaretMoved, func(e event.Event) bool {
		caretMoves++
		return false
	})

	s.InsertText("hi")
	s.DeleteBackward()

	if modified != 2 {
		t.Errorf("got %d modification events, want 2", modified)
	}
	if caretMoves == 0 {
		t.Error("expected caret move events")
	}
}

func TestLoadSample(t *testing.T) {
	s := New()
	if err := s.LoadSample("welcome"); err != nil {
		t.Fatalf("load sample: %v", err)
	}
	st := s.Stats()
	if st.Words == 0 || st.Paragraphs < 2 {
		t.Errorf("sample stats look empty: %+v", st)
	}
	if offset, _ := s.CaretOffset(); offset != 0 {
		t.Errorf("caret at %d after sample load, want 0", offset)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")

	s := New()
	s.SetContent("Hello\n\nWorld")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.IsModified() {
		t.Error("surface should be clean after save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "Hello\n\nWorld" {
		t.Errorf("file content = %q", data)
	}

	loaded := New()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := loaded.Flatten(); got != "Hello\n\nWorld" {
		t.Errorf("loaded content = %q", got)
	}
	if loaded.FilePath() != path {
		t.Errorf("file path = %q, want %q", loaded.FilePath(), path)
	}
}

func TestLoadMissingFileStartsEmptyDraft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope.txt")

	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if got := s.Flatten(); got != "" {
		t.Errorf("content = %q, want empty", got)
	}
	if s.FilePath() != path {
		t.Errorf("file path = %q, want %q", s.FilePath(), path)
	}
}
