package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// RedisConversationStore keeps each session's history in a Redis list under
// chat:session:<id>. Every write refreshes a 24h TTL on the whole list.
type RedisConversationStore struct {
	client *redis.Client
}

var _ ConversationStore = &RedisConversationStore{}

func NewRedisConversationStore(client *redis.Client) *RedisConversationStore {
	return &RedisConversationStore{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:session:%s", sessionID)
}

func (s *RedisConversationStore) Append(ctx context.Context, sessionID string, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	key := sessionKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, sessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// AppendTurn pushes both messages in one transaction so a cancelled request
// never leaves a user message without its reply.
func (s *RedisConversationStore) AppendTurn(ctx context.Context, sessionID string, user, assistant Message) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user message: %w", err)
	}
	assistantData, err := json.Marshal(assistant)
	if err != nil {
		return fmt.Errorf("marshal assistant message: %w", err)
	}
	key := sessionKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, userData, assistantData)
	pipe.Expire(ctx, key, sessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisConversationStore) ReadRecent(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	key := sessionKey(sessionID)
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}
	raw, err := s.client.LRange(ctx, key, start, -1).Result()
	if err != nil {
		return nil, err
	}
	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			// Skip entries that don't parse rather than failing the read.
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *RedisConversationStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *RedisConversationStore) Length(ctx context.Context, sessionID string) (int64, error) {
	return s.client.LLen(ctx, sessionKey(sessionID)).Result()
}

func (s *RedisConversationStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
