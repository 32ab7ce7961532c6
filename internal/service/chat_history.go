package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/redis/go-redis/v9"
)

const (
	// chatHistoryLimit is the number of messages kept per user.
	chatHistoryLimit = 50
	chatHistoryTTL   = 24 * time.Hour
)

// ChatHistory keeps the recent agent conversation of each user.
type ChatHistory interface {
	Append(ctx context.Context, userID string, msgs ...types.ChatMessage) error
	Recent(ctx context.Context, userID string) ([]types.ChatMessage, error)
}

// RedisChatHistory stores each conversation as a capped Redis list that
// expires a day after the last message.
type RedisChatHistory struct {
	redis     *redis.Client
	keyPrefix string
}

func NewRedisChatHistory(client *redis.Client) *RedisChatHistory {
	return &RedisChatHistory{
		redis:     client,
		keyPrefix: "agent:history",
	}
}

func (h *RedisChatHistory) key(userID string) string {
	return fmt.Sprintf("%s:%s", h.keyPrefix, userID)
}

func (h *RedisChatHistory) Append(ctx context.Context, userID string, msgs ...types.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]interface{}, len(msgs))
	for i, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values[i] = b
	}

	key := h.key(userID)
	pipe := h.redis.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -chatHistoryLimit, -1)
	pipe.Expire(ctx, key, chatHistoryTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (h *RedisChatHistory) Recent(ctx context.Context, userID string) ([]types.ChatMessage, error) {
	raw, err := h.redis.LRange(ctx, h.key(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	msgs := make([]types.ChatMessage, 0, len(raw))
	for _, r := range raw {
		var m types.ChatMessage
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, fmt.Errorf("corrupt chat history entry: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// MemoryChatHistory is the single-process fallback used when Redis is not
// configured. It keeps the same cap but never expires.
type MemoryChatHistory struct {
	mu    sync.Mutex
	byKey map[string][]types.ChatMessage
}

func NewMemoryChatHistory() *MemoryChatHistory {
	return &MemoryChatHistory{byKey: make(map[string][]types.ChatMessage)}
}

func (h *MemoryChatHistory) Append(_ context.Context, userID string, msgs ...types.ChatMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := append(h.byKey[userID], msgs...)
	if n := len(list); n > chatHistoryLimit {
		list = append([]types.ChatMessage(nil), list[n-chatHistoryLimit:]...)
	}
	h.byKey[userID] = list
	return nil
}

func (h *MemoryChatHistory) Recent(_ context.Context, userID string) ([]types.ChatMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]types.ChatMessage{}, h.byKey[userID]...), nil
}
