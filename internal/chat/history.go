package chat

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/oklog/ulid/v2"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// conversation is one player's message log
type conversation struct {
	mu       sync.Mutex
	messages []domain.ChatMessage
}

// historyStore keeps recent conversations, evicting idle players
type historyStore struct {
	mu    sync.Mutex
	lru   *expirable.LRU[string, *conversation]
	limit int
}

func newHistoryStore(size int, ttl time.Duration, limit int) *historyStore {
	return &historyStore{
		lru:   expirable.NewLRU[string, *conversation](size, nil, ttl),
		limit: limit,
	}
}

func (h *historyStore) get(playerID string, create bool) *conversation {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.lru.Get(playerID); ok {
		return c
	}
	if !create {
		return nil
	}
	c := &conversation{}
	h.lru.Add(playerID, c)
	return c
}

// append records a message and returns it with its id and timestamp filled in
func (h *historyStore) append(playerID string, from domain.ChatSender, text string) domain.ChatMessage {
	now := time.Now().UTC()
	msg := domain.ChatMessage{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		From:      from,
		Text:      text,
		CreatedAt: now,
	}

	c := h.get(playerID, true)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	if over := len(c.messages) - h.limit; h.limit > 0 && over > 0 {
		c.messages = append([]domain.ChatMessage(nil), c.messages[over:]...)
	}
	return msg
}

// list returns a copy of the player's messages in the order they were added
func (h *historyStore) list(playerID string) []domain.ChatMessage {
	c := h.get(playerID, false)
	if c == nil {
		return []domain.ChatMessage{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage{}, c.messages...)
}
