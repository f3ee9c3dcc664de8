package event

import "github.com/inkwell-editor/inkwell/internal/stats"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Surface events
	TypeSurfaceModified // content of the writing surface changed
	TypeCaretMoved      // caret offset changed
	TypeDocumentLoaded  // a document or sample replaced the surface content
	TypeDocumentSaved   // surface content written to disk

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// SurfaceModifiedData carries the recomputed statistics after an edit.
type SurfaceModifiedData struct {
	Stats stats.Stats
}

// CaretMovedData carries the new global caret offset.
type CaretMovedData struct {
	Offset int
}

// DocumentLoadedData names the source of the new content.
type DocumentLoadedData struct {
	Source string // file path or sample name
}

// DocumentSavedData names the file written.
type DocumentSavedData struct {
	FilePath string
}

// AppReadyData is dispatched once startup wiring is complete.
type AppReadyData struct{}

// AppQuitData is dispatched just before termination.
type AppQuitData struct{}
