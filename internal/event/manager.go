// Package event provides the synchronous event bus connecting the
// writing surface to the UI components.
package event

import (
	"sync"

	"github.com/inkwell-editor/inkwell/internal/logger"
)

// Handler is the function signature for event subscribers. Returning
// true marks the event as consumed; dispatch currently ignores it but
// subscribers should return false unless they mean to claim the event.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch sends an event synchronously to all handlers for its type.
// Handlers run on the caller's goroutine; a copy of the handler list is
// taken so a handler subscribing during dispatch cannot corrupt the walk.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	e := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	m.mu.RUnlock()

	if len(handlersCopy) == 0 {
		return
	}
	logger.Debugf("event: dispatching type %v to %d handler(s)", eventType, len(handlersCopy))

	for _, handler := range handlersCopy {
		handler(e)
	}
}
