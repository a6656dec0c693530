package binding

import (
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangedMsg tells the model that the named stores changed.
type ChangedMsg struct {
	Stores []string
}

// Has reports whether store is among the changed stores.
func (m ChangedMsg) Has(store string) bool {
	return slices.Contains(m.Stores, store)
}

// Queue collects change notifications from several bindings.
type Queue struct {
	mu      sync.Mutex
	pending []string
}

// Watch returns an onChange callback that marks store as changed.
func Watch[S any](q *Queue, store string) func(S) {
	return func(S) { q.mark(store) }
}

func (q *Queue) mark(store string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if slices.Contains(q.pending, store) {
		return
	}
	q.pending = append(q.pending, store)
}

// Len returns the number of stores waiting to be flushed.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush drains the queue. It returns nil when nothing changed.
func (q *Queue) Flush() tea.Cmd {
	q.mu.Lock()
	stores := q.pending
	q.pending = nil
	q.mu.Unlock()

	if len(stores) == 0 {
		return nil
	}
	msg := ChangedMsg{Stores: stores}
	return func() tea.Msg { return msg }
}
