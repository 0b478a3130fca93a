package todo

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"Trellis/internal/core/event"
	"Trellis/internal/core/mvc"
)

// MemoryModel keeps the todo list in process memory. It is the reference
// Model backend: handlers mutate the list synchronously under the lock and
// FetchData returns a snapshot copy, never the backing slice.
type MemoryModel struct {
	mvc.ModelBase
	log zerolog.Logger

	mu     sync.Mutex
	nextID int
	items  []Item
}

var _ mvc.Model[[]Item] = (*MemoryModel)(nil)

// NewMemoryModel creates an empty in-memory todo Model with handlers
// registered for the full todo event map.
func NewMemoryModel(baseLogger *zerolog.Logger) *MemoryModel {
	m := &MemoryModel{
		ModelBase: mvc.NewModelBase(),
		log:       baseLogger.With().Str("component", "memory_model").Logger(),
	}

	event.Handle(m.Events(), Add, m.add)
	event.Handle(m.Events(), Remove, m.remove)
	event.Handle(m.Events(), Toggle, m.toggle)
	event.Handle(m.Events(), Clear, m.clear)

	return m
}

func (m *MemoryModel) add(ctx context.Context, name string) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := Item{ID: m.nextID, Name: name}
	m.nextID++
	m.items = append(m.items, item)

	m.log.Debug().Int("id", item.ID).Str("name", name).Msg("Item added")
	return item, nil
}

func (m *MemoryModel) remove(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.log.Debug().Int("id", id).Msg("Item removed")
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryModel) toggle(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Done = !m.items[i].Done
			m.log.Debug().Int("id", id).Bool("done", m.items[i].Done).Msg("Item toggled")
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryModel) clear(ctx context.Context, _ struct{}) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := len(m.items)
	m.items = nil

	m.log.Debug().Int("removed", removed).Msg("List cleared")
	return removed, nil
}

// FetchData returns a copy of the current list in insertion order.
func (m *MemoryModel) FetchData(ctx context.Context) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]Item, len(m.items))
	copy(snapshot, m.items)
	return snapshot, nil
}
