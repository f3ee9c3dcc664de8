package app

import (
	"github.com/inkwell-editor/inkwell/internal/event"
	"github.com/inkwell-editor/inkwell/internal/logger"
)

// Event handlers keeping the status bar in sync with the surface.

func (a *App) handleCaretMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CaretMovedData); ok {
		line, col := a.surface.LineCol(data.Offset)
		a.statusBar.SetCaretInfo(line, col)
	}
	return false
}

func (a *App) handleSurfaceModified(e event.Event) bool {
	if data, ok := e.Data.(event.SurfaceModifiedData); ok {
		a.statusBar.SetStats(data.Stats)
	}
	a.statusBar.SetFileInfo(a.surface.FilePath(), a.surface.IsModified())
	return false
}

func (a *App) handleDocumentLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentLoadedData); ok {
		logger.Infof("document loaded from %s", data.Source)
	}
	a.viewportRow = 0
	a.syncStatusBar()
	return false
}

func (a *App) handleDocumentSaved(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentSavedData); ok {
		a.statusBar.SetTemporaryMessage("saved %s", data.FilePath)
	}
	a.syncStatusBar()
	return false
}
