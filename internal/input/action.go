// Package input translates terminal key events into surface actions.
package input

// Action represents an operation to be performed by the application.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit
	ActionSave

	// Caret movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd
	ActionParagraphPrev
	ActionParagraphNext

	// Text manipulation
	ActionInsertRune // carries the rune to insert
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// Clipboard and samples
	ActionCopyDocument
	ActionPaste
	ActionInsertSample
)

// ActionEvent is a decoded input event. Rune is set for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
