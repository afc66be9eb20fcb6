package store

import (
	"context"
	"sync"

	"tableflip.dev/beyond/pkg/entry"
)

// Memory is an in-process Persistence. Watch reports every Save.
type Memory struct {
	mu       sync.Mutex
	entries  []entry.Entry
	watchers []chan Event
	// Err, when set, is returned by Save.
	Err error
}

// NewMemory returns a Memory seeded with entries.
func NewMemory(entries ...entry.Entry) *Memory {
	return &Memory{entries: entry.Clone(entries)}
}

func (m *Memory) Load(context.Context) []entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := entry.Clone(m.entries)
	if out == nil {
		out = []entry.Entry{}
	}
	return out
}

func (m *Memory) Save(_ context.Context, entries []entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.entries = entry.Clone(entries)
	for _, w := range m.watchers {
		select {
		case w <- Event{Type: EventSlotChanged}:
		default:
		}
	}
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 8)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) Path() string {
	return ""
}
