package surface

import (
	"errors"
	"fmt"
	"os"

	"github.com/inkwell-editor/inkwell/internal/doctree"
	"github.com/inkwell-editor/inkwell/internal/event"
	"github.com/inkwell-editor/inkwell/internal/sample"
)

// Load reads a plain-text document into the surface. A missing file
// starts an empty draft bound to that path.
func (s *Surface) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.tree.Clear()
			s.filePath = path
			s.modified = false
			s.SetCaret(0)
			return nil
		}
		return fmt.Errorf("load %q: %w", path, err)
	}

	s.SetContent(string(data))
	s.filePath = path
	s.modified = false
	s.SetCaret(0)
	s.dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{Source: path})
	return nil
}

// Save writes the flattened text to path, or to the stored path when
// path is empty.
func (s *Surface) Save(path string) error {
	if path == "" {
		path = s.filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}
	if err := os.WriteFile(path, []byte(s.Flatten()), 0644); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	s.filePath = path
	s.modified = false
	s.dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: path})
	return nil
}

// SetContent replaces the surface content with plain text. Paragraph
// chunks become element-wrapped leaves; separator runs of two or more
// line breaks become their own leaves, preserving their exact length so
// Flatten reproduces the input byte-for-byte.
func (s *Surface) SetContent(text string) {
	s.tree.Clear()
	root := s.tree.Root()
	if root == doctree.None {
		return
	}

	for _, seg := range splitSegments(text) {
		if seg.separator {
			s.tree.AppendText(root, seg.text)
			continue
		}
		el, err := s.tree.AppendElement(root)
		if err != nil {
			continue
		}
		s.tree.AppendText(el, seg.text)
	}
	s.SetCaret(0)
}

// LoadSample replaces the surface content with a named sample document.
func (s *Surface) LoadSample(name string) error {
	if err := sample.Fill(s.tree, name); err != nil {
		return err
	}
	s.modified = true
	s.SetCaret(0)
	s.dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{Source: "sample:" + name})
	s.dispatch(event.TypeSurfaceModified, event.SurfaceModifiedData{Stats: s.Stats()})
	return nil
}

// LoadRandomSample picks one of the embedded samples.
func (s *Surface) LoadRandomSample() (string, error) {
	name, err := sample.Random(s.tree)
	if err != nil {
		return "", err
	}
	s.modified = true
	s.SetCaret(0)
	s.dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{Source: "sample:" + name})
	s.dispatch(event.TypeSurfaceModified, event.SurfaceModifiedData{Stats: s.Stats()})
	return name, nil
}

type segment struct {
	text      string
	separator bool
}

// splitSegments cuts text into alternating content chunks and separator
// runs (two or more consecutive line breaks). Single line breaks stay
// inside content chunks.
func splitSegments(text string) []segment {
	runes := []rune(text)
	var segs []segment
	i := 0
	for i < len(runes) {
		// Measure a potential separator run.
		j := i
		for j < len(runes) && runes[j] == '\n' {
			j++
		}
		if j-i >= 2 {
			segs = append(segs, segment{text: string(runes[i:j]), separator: true})
			i = j
			continue
		}

		// Content chunk: runs up to the next separator.
		j = i
		for j < len(runes) {
			if runes[j] == '\n' && j+1 < len(runes) && runes[j+1] == '\n' {
				break
			}
			j++
		}
		segs = append(segs, segment{text: string(runes[i:j])})
		i = j
	}
	return segs
}
