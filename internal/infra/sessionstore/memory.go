package sessionstore

import (
	"context"
	"sync"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// Memory keeps sessions in a map. No TTL; the process lifetime is the TTL.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]session.Session)}
}

func (m *Memory) Get(ctx context.Context, id string) (session.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok, nil
}

func (m *Memory) Save(ctx context.Context, s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
