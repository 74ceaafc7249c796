package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and ephemeral use. Records are
// deep-copied on both Put and Get so callers can never alias stored data.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*Session)}
}

// Put implements Store.
func (m *Memory) Put(ctx context.Context, s *Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Name] = copySession(s)
	return nil
}

// Get implements Store.
func (m *Memory) Get(ctx context.Context, name string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[name]
	if !ok {
		return nil, ErrNotFound
	}
	return copySession(s), nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

func copySession(s *Session) *Session {
	c := &Session{
		Name:    s.Name,
		SavedAt: s.SavedAt,
		Pages:   make([][]byte, len(s.Pages)),
	}
	for i, p := range s.Pages {
		c.Pages[i] = append([]byte(nil), p...)
	}
	return c
}
