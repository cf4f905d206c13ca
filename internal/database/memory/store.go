// Package memory is the in-process game-state store used for sessions that
// do not need to survive a restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/repository"
)

var (
	_ repository.FieldRepository = (*Store)(nil)
	_ repository.TaskRepository  = (*Store)(nil)
)

// Store keeps fields, tasks and points in maps guarded by one RWMutex.
// Values handed out are copies; the store is only changed through its methods.
type Store struct {
	mu            sync.RWMutex
	fields        map[string]*domain.Field // fieldID -> field
	fieldByPlayer map[string]string        // playerID -> fieldID
	tasks         map[string][]domain.Task // playerID -> tasks in list order
	points        map[string]int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		fields:        make(map[string]*domain.Field),
		fieldByPlayer: make(map[string]string),
		tasks:         make(map[string][]domain.Task),
		points:        make(map[string]int),
	}
}

// GetFieldByPlayer returns a copy of the player's field
func (s *Store) GetFieldByPlayer(_ context.Context, playerID string) (*domain.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fieldID, ok := s.fieldByPlayer[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: player %s", domain.ErrFieldNotFound, playerID)
	}
	return copyField(s.fields[fieldID]), nil
}

// GetFieldByID returns a copy of the field
func (s *Store) GetFieldByID(_ context.Context, fieldID string) (*domain.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fields[fieldID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotFound, fieldID)
	}
	return copyField(f), nil
}

// SaveField stores the field and drops the player's previous one
func (s *Store) SaveField(_ context.Context, field *domain.Field) error {
	if field == nil || field.ID == "" || field.PlayerID == "" {
		return fmt.Errorf("%w: field requires id and player id", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.fieldByPlayer[field.PlayerID]; ok {
		delete(s.fields, old)
	}
	s.fields[field.ID] = copyField(field)
	s.fieldByPlayer[field.PlayerID] = field.ID
	return nil
}

// CompareAndSetTileType moves the tile only if it is still at from
func (s *Store) CompareAndSetTileType(_ context.Context, fieldID, tileID string, from, to domain.TileType) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fields[fieldID]
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrFieldNotFound, fieldID)
	}
	tile, ok := f.Tile(tileID)
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrTileNotFound, tileID)
	}
	if tile.Type != from {
		return false, nil
	}
	tile.Type = to
	return true, nil
}

// ListTasks returns a copy of the player's tasks
func (s *Store) ListTasks(_ context.Context, playerID string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyTasks(s.tasks[playerID]), nil
}

// SeedTasks installs tasks unless the player already has a list
func (s *Store) SeedTasks(_ context.Context, playerID string, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks[playerID]) > 0 {
		return nil
	}
	seeded := copyTasks(tasks)
	for i := range seeded {
		seeded[i].PlayerID = playerID
		seeded[i].Position = i
	}
	s.tasks[playerID] = seeded
	return nil
}

// CompleteFirstIncomplete scans in list order and completes the first match
func (s *Store) CompleteFirstIncomplete(_ context.Context, playerID string, taskType domain.Tool, at time.Time) (*domain.TaskCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tasks[playerID]
	for i := range list {
		if !list[i].Completed && list[i].Type == taskType {
			return s.completeLocked(playerID, &list[i], at), nil
		}
	}
	return nil, nil
}

// CompleteTask completes a single task by id
func (s *Store) CompleteTask(_ context.Context, playerID, taskID string, at time.Time) (*domain.TaskCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tasks[playerID]
	for i := range list {
		if list[i].ID != taskID {
			continue
		}
		if list[i].Completed {
			return &domain.TaskCompletion{
				Task:        copyTask(list[i]),
				TotalPoints: s.points[playerID],
				Newly:       false,
			}, nil
		}
		return s.completeLocked(playerID, &list[i], at), nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
}

// GetPoints returns the player's points total
func (s *Store) GetPoints(_ context.Context, playerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.points[playerID], nil
}

// completeLocked marks t complete and credits its points. Caller holds s.mu.
func (s *Store) completeLocked(playerID string, t *domain.Task, at time.Time) *domain.TaskCompletion {
	completedAt := at
	t.Completed = true
	t.CompletedAt = &completedAt
	s.points[playerID] += t.Points

	return &domain.TaskCompletion{
		Task:        copyTask(*t),
		TotalPoints: s.points[playerID],
		Newly:       true,
	}
}

func copyField(f *domain.Field) *domain.Field {
	if f == nil {
		return nil
	}
	out := *f
	out.Tiles = append([]domain.FieldTile(nil), f.Tiles...)
	return &out
}

func copyTask(t domain.Task) domain.Task {
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		t.CompletedAt = &at
	}
	return t
}

func copyTasks(in []domain.Task) []domain.Task {
	if in == nil {
		return []domain.Task{}
	}
	out := make([]domain.Task, len(in))
	for i := range in {
		out[i] = copyTask(in[i])
	}
	return out
}
