package store

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryConversationStore is the fallback history store when Redis is not
// configured. Sessions expire after the same 24h TTL the Redis store uses.
type MemoryConversationStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

var _ ConversationStore = &MemoryConversationStore{}

func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		cache: gocache.New(sessionTTL, 10*time.Minute),
	}
}

func (s *MemoryConversationStore) history(sessionID string) []Message {
	if v, ok := s.cache.Get(sessionID); ok {
		return v.([]Message)
	}
	return nil
}

func (s *MemoryConversationStore) Append(_ context.Context, sessionID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Set(sessionID, append(s.history(sessionID), msg), sessionTTL)
	return nil
}

func (s *MemoryConversationStore) AppendTurn(_ context.Context, sessionID string, user, assistant Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Set(sessionID, append(s.history(sessionID), user, assistant), sessionTTL)
	return nil
}

func (s *MemoryConversationStore) ReadRecent(_ context.Context, sessionID string, limit int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.history(sessionID)
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]Message, len(history))
	copy(out, history)
	return out, nil
}

func (s *MemoryConversationStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(sessionID)
	return nil
}

func (s *MemoryConversationStore) Length(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.history(sessionID))), nil
}

func (s *MemoryConversationStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cache.Get(sessionID)
	return ok, nil
}
