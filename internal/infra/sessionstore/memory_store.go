package sessionstore

import (
	"context"
	"sync"

	"github.com/yanqian/travel-proxy/internal/domain/chat"
)

// MemoryStore keeps chat history in process memory. History is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]chat.Message
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]chat.Message)}
}

// Load implements chat.SessionStore. Unknown sessions yield an empty history.
func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.sessions[sessionID]), nil
}

// Save replaces the stored history for the session.
func (s *MemoryStore) Save(_ context.Context, sessionID string, history []chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = clone(history)
	return nil
}

func clone(history []chat.Message) []chat.Message {
	out := make([]chat.Message, len(history))
	copy(out, history)
	return out
}

var _ chat.SessionStore = (*MemoryStore)(nil)
