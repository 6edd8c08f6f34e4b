package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-proxy/internal/domain/chat"
)

// ValkeyStore shares chat history through a Valkey-compatible database.
// Every save refreshes the key TTL so idle sessions expire on their own.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "chat"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

// Load implements chat.SessionStore.
func (s *ValkeyStore) Load(ctx context.Context, sessionID string) ([]chat.Message, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.sessionKey(sessionID)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return []chat.Message{}, nil
		}
		return nil, fmt.Errorf("load chat session: %w", err)
	}
	var history []chat.Message
	if err := json.Unmarshal([]byte(payload), &history); err != nil {
		return nil, fmt.Errorf("decode chat session: %w", err)
	}
	return history, nil
}

// Save implements chat.SessionStore.
func (s *ValkeyStore) Save(ctx context.Context, sessionID string, history []chat.Message) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode chat session: %w", err)
	}
	builder := s.client.B().Set().Key(s.sessionKey(sessionID)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("save chat session: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *ValkeyStore) Close() {
	s.client.Close()
}

func (s *ValkeyStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, sessionID)
}

var _ chat.SessionStore = (*ValkeyStore)(nil)
