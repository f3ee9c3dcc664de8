// Package app wires the writing surface, input handling and terminal
// UI together and runs the main loop.
package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/inkwell-editor/inkwell/internal/caret"
	"github.com/inkwell-editor/inkwell/internal/clipboard"
	"github.com/inkwell-editor/inkwell/internal/config"
	"github.com/inkwell-editor/inkwell/internal/event"
	"github.com/inkwell-editor/inkwell/internal/input"
	"github.com/inkwell-editor/inkwell/internal/logger"
	"github.com/inkwell-editor/inkwell/internal/statusbar"
	"github.com/inkwell-editor/inkwell/internal/surface"
	"github.com/inkwell-editor/inkwell/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager     *tui.TUI
	surface        *surface.Surface
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.Processor
	clipboard      *clipboard.Manager
	cfg            *config.Config

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}

	viewportRow  int
	quitRequests int
}

// NewApp creates and initializes a new application instance. filePath
// may be empty, in which case the surface starts as an unsaved draft.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	surf := surface.New()
	eventManager := event.NewManager()
	surf.SetEventManager(eventManager)

	if filePath != "" {
		if err := surf.Load(filePath); err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("loading %q: %w", filePath, err)
		}
	}

	sbConfig := statusbar.DefaultConfig()
	sbConfig.MessageTimeout = config.MessageTimeout

	appInstance := &App{
		tuiManager:     tuiManager,
		surface:        surf,
		statusBar:      statusbar.New(sbConfig),
		eventManager:   eventManager,
		inputProcessor: input.NewProcessor(),
		clipboard:      clipboard.NewManager(surf, cfg.Surface.SystemClipboard),
		cfg:            cfg,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeCaretMoved, appInstance.handleCaretMoved)
	eventManager.Subscribe(event.TypeSurfaceModified, appInstance.handleSurfaceModified)
	eventManager.Subscribe(event.TypeDocumentLoaded, appInstance.handleDocumentLoaded)
	eventManager.Subscribe(event.TypeDocumentSaved, appInstance.handleDocumentSaved)

	return appInstance, nil
}

// Run starts the application's event and drawing loops. It blocks
// until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("inkwell - Ctrl+S save | Esc quit | Ctrl+G sample text")
	a.syncStatusBar()
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.surface.IsModified() {
				logger.Warnf("exited with unsaved changes")
			}
			logger.Infof("exiting application")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop polls terminal events and applies the resulting actions.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.handleKey(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	actionEvent := a.inputProcessor.ProcessEvent(ev)
	if actionEvent.Action == input.ActionUnknown {
		return false
	}
	return a.handleAction(actionEvent)
}

// handleAction applies a decoded input action to the surface. It
// returns true when the screen needs a redraw.
func (a *App) handleAction(ae input.ActionEvent) bool {
	if ae.Action != input.ActionQuit {
		a.quitRequests = 0
	}

	switch ae.Action {
	case input.ActionQuit:
		if a.surface.IsModified() && a.quitRequests == 0 {
			a.quitRequests++
			a.statusBar.SetTemporaryMessage("unsaved changes - Esc again to discard, Ctrl+S to save")
			return true
		}
		a.signalQuit()
		return false
	case input.ActionForceQuit:
		a.signalQuit()
		return false

	case input.ActionSave:
		if err := a.surface.Save(""); err != nil {
			logger.Errorf("save failed: %v", err)
			a.statusBar.SetTemporaryMessage("save failed: %v", err)
		}
		return true

	case input.ActionMoveLeft:
		a.surface.MoveCaret(-1)
	case input.ActionMoveRight:
		a.surface.MoveCaret(1)
	case input.ActionMoveUp:
		a.surface.MoveLine(-1)
	case input.ActionMoveDown:
		a.surface.MoveLine(1)
	case input.ActionMovePageUp:
		a.surface.MoveLine(-a.textHeight())
	case input.ActionMovePageDown:
		a.surface.MoveLine(a.textHeight())
	case input.ActionMoveHome:
		a.surface.LineStart()
	case input.ActionMoveEnd:
		a.surface.LineEnd()
	case input.ActionParagraphPrev:
		a.surface.JumpParagraph(caret.Backward)
	case input.ActionParagraphNext:
		a.surface.JumpParagraph(caret.Forward)

	case input.ActionInsertRune:
		a.surface.InsertText(string(ae.Rune))
	case input.ActionInsertNewLine:
		a.surface.InsertNewline()
	case input.ActionDeleteCharBackward:
		a.surface.DeleteBackward()
	case input.ActionDeleteCharForward:
		a.surface.DeleteForward()

	case input.ActionCopyDocument:
		n, err := a.clipboard.CopyDocument()
		if err != nil {
			a.statusBar.SetTemporaryMessage("copy failed: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("copied %d characters", n)
		}
	case input.ActionPaste:
		if _, err := a.clipboard.Paste(); err != nil {
			a.statusBar.SetTemporaryMessage("paste failed: %v", err)
		}
	case input.ActionInsertSample:
		name, err := a.surface.LoadRandomSample()
		if err != nil {
			a.statusBar.SetTemporaryMessage("sample failed: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("loaded sample %q", name)
		}

	default:
		return false
	}
	return true
}

// draw renders the surface text, caret and status bar.
func (a *App) draw() {
	width, height := a.tuiManager.Size()
	textHeight := height - config.StatusBarHeight
	if textHeight < 1 || width < 1 {
		return
	}

	rows := tui.Layout(a.surface.Flatten(), width)
	line, col := a.surface.LineCol(a.currentCaret())
	caretRow, _ := tui.CaretCell(rows, line, col)
	a.scrollTo(caretRow, len(rows), textHeight)

	a.tuiManager.Clear()
	tui.DrawRows(a.tuiManager, rows, a.viewportRow, width, textHeight)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	tui.DrawCaret(a.tuiManager, rows, line, col, a.viewportRow, textHeight)
	a.tuiManager.Show()
}

func (a *App) currentCaret() int {
	off, err := a.surface.CaretOffset()
	if err != nil {
		return 0
	}
	return off
}

// scrollTo adjusts the viewport so the caret row stays at least
// ScrollOff rows away from the visible edges where possible.
func (a *App) scrollTo(caretRow, totalRows, textHeight int) {
	scrollOff := a.cfg.Surface.ScrollOff
	if scrollOff*2 >= textHeight {
		scrollOff = (textHeight - 1) / 2
	}

	if caretRow < a.viewportRow+scrollOff {
		a.viewportRow = caretRow - scrollOff
	}
	if caretRow >= a.viewportRow+textHeight-scrollOff {
		a.viewportRow = caretRow - textHeight + scrollOff + 1
	}

	maxTop := totalRows - textHeight
	if a.viewportRow > maxTop {
		a.viewportRow = maxTop
	}
	if a.viewportRow < 0 {
		a.viewportRow = 0
	}
}

func (a *App) textHeight() int {
	_, height := a.tuiManager.Size()
	if h := height - config.StatusBarHeight; h > 1 {
		return h
	}
	return 1
}

// syncStatusBar pushes the full surface state to the status bar.
func (a *App) syncStatusBar() {
	a.statusBar.SetFileInfo(a.surface.FilePath(), a.surface.IsModified())
	a.statusBar.SetStats(a.surface.Stats())
	line, col := a.surface.LineCol(a.currentCaret())
	a.statusBar.SetCaretInfo(line, col)
}

func (a *App) signalQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}
