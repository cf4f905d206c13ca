package farm

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// selectionStore keeps each player's armed tool and highlighted tile in memory.
// Entries expire after ttl of inactivity; an expired player falls back to the default tool.
type selectionStore struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, domain.Selection]
}

func newSelectionStore(size int, ttl time.Duration) *selectionStore {
	return &selectionStore{
		lru: expirable.NewLRU[string, domain.Selection](size, nil, ttl),
	}
}

// Get returns the player's selection, or the default one
func (s *selectionStore) Get(playerID string) domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(playerID)
}

func (s *selectionStore) getLocked(playerID string) domain.Selection {
	if sel, ok := s.lru.Get(playerID); ok {
		return sel
	}
	return domain.Selection{Tool: domain.DefaultTool}
}

// SetTool arms a tool and keeps the highlighted tile
func (s *selectionStore) SetTool(playerID string, tool domain.Tool) domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.getLocked(playerID)
	sel.Tool = tool
	s.lru.Add(playerID, sel)
	return sel
}

// Toggle highlights tileID, or clears the highlight when tileID is already selected.
// It returns the selection after the change and whether tileID is now selected.
func (s *selectionStore) Toggle(playerID, tileID string) (domain.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.getLocked(playerID)
	selected := sel.SelectedTileID != tileID
	if selected {
		sel.SelectedTileID = tileID
	} else {
		sel.SelectedTileID = ""
	}
	s.lru.Add(playerID, sel)
	return sel, selected
}

// ClearTile drops the highlight but keeps the tool
func (s *selectionStore) ClearTile(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel, ok := s.lru.Get(playerID); ok {
		sel.SelectedTileID = ""
		s.lru.Add(playerID, sel)
	}
}
