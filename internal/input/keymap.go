package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions; ModKeymap handles keys combined
// with modifiers (Ctrl+arrow for paragraph jumps).
type Keymap map[tcell.Key]Action
type ModKeymap map[tcell.ModMask]Keymap

// Processor translates tcell events into ActionEvents.
type Processor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewProcessor creates a processor with the default bindings.
func NewProcessor() *Processor {
	p := &Processor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *Processor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit

	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlY] = ActionCopyDocument
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlG] = ActionInsertSample

	// Ctrl+arrow moves by paragraph.
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyUp] = ActionParagraphPrev
	ctrlMap[tcell.KeyDown] = ActionParagraphNext
	p.modKeymap[tcell.ModCtrl] = ctrlMap
}

// ProcessEvent decodes a tcell key event into an ActionEvent. Plain
// runes fall through to ActionInsertRune.
func (p *Processor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}

	if key == tcell.KeyRune && mod&tcell.ModCtrl == 0 && mod&tcell.ModAlt == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
