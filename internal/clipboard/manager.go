// Package clipboard handles copy and paste between the writing surface,
// an internal register, and the system clipboard.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"

	"github.com/inkwell-editor/inkwell/internal/logger"
	"github.com/inkwell-editor/inkwell/internal/surface"
)

// Manager moves text in and out of the surface. When useSystem is set
// it goes through the OS clipboard; otherwise an internal register is
// used, which also serves as the fallback when the OS clipboard is
// unavailable (headless terminals).
type Manager struct {
	surface   *surface.Surface
	useSystem bool
	register  string
}

// NewManager creates a clipboard manager for a surface.
func NewManager(s *surface.Surface, useSystem bool) *Manager {
	return &Manager{surface: s, useSystem: useSystem}
}

// CopyDocument copies the whole flattened document.
func (m *Manager) CopyDocument() (int, error) {
	text := m.surface.Flatten()
	if text == "" {
		return 0, nil
	}
	if err := m.write(text); err != nil {
		return 0, fmt.Errorf("copy document: %w", err)
	}
	logger.Debugf("clipboard: copied %d characters", len([]rune(text)))
	return len([]rune(text)), nil
}

// Paste inserts the clipboard content at the caret.
func (m *Manager) Paste() (int, error) {
	text, err := m.read()
	if err != nil {
		return 0, fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return 0, nil
	}
	m.surface.InsertText(text)
	logger.Debugf("clipboard: pasted %d characters", len([]rune(text)))
	return len([]rune(text)), nil
}

func (m *Manager) write(text string) error {
	m.register = text
	if !m.useSystem {
		return nil
	}
	if err := sysclip.WriteAll(text); err != nil {
		logger.Warnf("clipboard: system clipboard write failed, using register: %v", err)
	}
	return nil
}

func (m *Manager) read() (string, error) {
	if m.useSystem {
		text, err := sysclip.ReadAll()
		if err == nil {
			return text, nil
		}
		logger.Warnf("clipboard: system clipboard read failed, using register: %v", err)
	}
	return m.register, nil
}
