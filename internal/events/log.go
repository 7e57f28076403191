package events

import (
	model "escrow-engine/internal/models"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Log is an append-only in-memory event log indexed by item
type Log struct {
	mu     sync.RWMutex
	events []model.Event
	byItem map[uint64][]int
}

// NewLog creates an empty event log
func NewLog() *Log {
	return &Log{byItem: make(map[uint64][]int)}
}

// Publish assigns a ULID to the event and appends it
func (l *Log) Publish(event model.Event) model.Event {
	event.EventID = ulid.Make().String()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.byItem[event.ItemID] = append(l.byItem[event.ItemID], len(l.events))
	l.events = append(l.events, event)
	return event
}

// ForItem returns the events of one item in emission order
func (l *Log) ForItem(itemID uint64) []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.byItem[itemID]
	out := make([]model.Event, 0, len(idx))
	for _, i := range idx {
		out = append(out, l.events[i])
	}
	return out
}

// All returns every event in emission order
func (l *Log) All() []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Event(nil), l.events...)
}
