package farm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/krishiquest/KrishiQuest_Go/internal/concurrency"
	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
	"github.com/krishiquest/KrishiQuest_Go/internal/repository"
)

// Service defines the farm mini-game business logic
type Service interface {
	// ScanField creates a fresh all-empty field for the player, replacing any previous one
	ScanField(ctx context.Context, req domain.ScanRequest) (*domain.Field, error)

	// GetField returns the player's current field
	GetField(ctx context.Context, playerID string) (*domain.Field, error)

	// Progress summarises the player's field
	Progress(ctx context.Context, playerID string) (*domain.FieldProgress, error)

	// SelectTool arms a tool for the player
	SelectTool(ctx context.Context, playerID string, tool domain.Tool) (*domain.Selection, error)

	// GetSelection returns the player's armed tool and highlighted tile
	GetSelection(ctx context.Context, playerID string) (*domain.Selection, error)

	// ClickTile applies the armed tool to a tile
	ClickTile(ctx context.Context, playerID, tileID string) (*domain.ClickResult, error)

	// CompleteGrowth moves a watered tile to grown. It reports false when the tile
	// has left the watered stage in the meantime.
	CompleteGrowth(ctx context.Context, fieldID, tileID string) (bool, error)
}

// TaskCoupler completes tasks in response to tile changes
type TaskCoupler interface {
	SeedPlayer(ctx context.Context, playerID string) error
	CompleteFirstMatching(ctx context.Context, playerID string, tool domain.Tool) (*domain.TaskCompletion, error)
}

// GrowthScheduler runs the delayed watered to grown step
type GrowthScheduler interface {
	Schedule(fieldID, tileID string, delay time.Duration)
	Cancel(tileID string)
	CancelField(fieldID string)
}

// Options tunes the farm service
type Options struct {
	GrowthDelay      time.Duration
	SessionCacheSize int
	SessionTTL       time.Duration
}

type service struct {
	fields      repository.FieldRepository
	tasks       TaskCoupler
	growth      GrowthScheduler
	bus         event.Bus
	locks       *concurrency.LockManager
	selections  *selectionStore
	growthDelay time.Duration
}

// NewService creates a new farm service
func NewService(
	fields repository.FieldRepository,
	tasks TaskCoupler,
	growth GrowthScheduler,
	bus event.Bus,
	opts Options,
) Service {
	if opts.GrowthDelay <= 0 {
		opts.GrowthDelay = DefaultGrowthDelay
	}
	if opts.SessionCacheSize <= 0 {
		opts.SessionCacheSize = DefaultSessionCacheSize
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	return &service{
		fields:      fields,
		tasks:       tasks,
		growth:      growth,
		bus:         bus,
		locks:       concurrency.NewLockManager(),
		selections:  newSelectionStore(opts.SessionCacheSize, opts.SessionTTL),
		growthDelay: opts.GrowthDelay,
	}
}

func (s *service) lockPlayer(playerID string) func() {
	mu := s.locks.GetLock(lockKeyPrefix + playerID)
	mu.Lock()
	return mu.Unlock
}

// ScanField builds a width x height grid of empty tiles in row-major order
func (s *service) ScanField(ctx context.Context, req domain.ScanRequest) (*domain.Field, error) {
	log := logger.FromContext(ctx)

	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if req.Width < 1 || req.Height < 1 || req.Width > MaxFieldDimension || req.Height > MaxFieldDimension {
		return nil, fmt.Errorf("%w: %dx%d, each side must be 1-%d",
			domain.ErrInvalidFieldSize, req.Width, req.Height, MaxFieldDimension)
	}
	if req.MoistureLevel < 0 || req.MoistureLevel > MaxMoistureLevel {
		return nil, fmt.Errorf("%w: moisture level must be 0-%d", domain.ErrInvalidInput, MaxMoistureLevel)
	}

	unlock := s.lockPlayer(req.PlayerID)
	defer unlock()

	if old, err := s.fields.GetFieldByPlayer(ctx, req.PlayerID); err == nil {
		s.growth.CancelField(old.ID)
	}

	field := &domain.Field{
		ID:            uuid.NewString(),
		PlayerID:      req.PlayerID,
		Tiles:         make([]domain.FieldTile, 0, req.Width*req.Height),
		MoistureLevel: req.MoistureLevel,
		SoilCondition: req.SoilCondition,
		CreatedAt:     time.Now().UTC(),
	}
	for y := 0; y < req.Height; y++ {
		for x := 0; x < req.Width; x++ {
			field.Tiles = append(field.Tiles, domain.FieldTile{
				ID:   uuid.NewString(),
				X:    x,
				Y:    y,
				Type: domain.TileEmpty,
			})
		}
	}

	if err := s.fields.SaveField(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to save field: %w", err)
	}
	s.selections.ClearTile(req.PlayerID)

	if err := s.tasks.SeedPlayer(ctx, req.PlayerID); err != nil {
		log.Warn(LogMsgTaskSeedFailed, "playerID", req.PlayerID, "error", err)
	}

	event.PublishBestEffort(ctx, s.bus, event.NewFieldScannedEvent(field.PlayerID, field.ID, len(field.Tiles)))
	log.Info(LogMsgFieldScanned, "playerID", field.PlayerID, "fieldID", field.ID,
		"width", req.Width, "height", req.Height)
	return field, nil
}

// GetField returns the player's current field
func (s *service) GetField(ctx context.Context, playerID string) (*domain.Field, error) {
	return s.fields.GetFieldByPlayer(ctx, playerID)
}

// Progress summarises the player's field
func (s *service) Progress(ctx context.Context, playerID string) (*domain.FieldProgress, error) {
	field, err := s.fields.GetFieldByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	p := computeProgress(field.Tiles)
	return &p, nil
}

// SelectTool arms a tool for the player
func (s *service) SelectTool(ctx context.Context, playerID string, tool domain.Tool) (*domain.Selection, error) {
	if !tool.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTool, tool)
	}
	sel := s.selections.SetTool(playerID, tool)
	logger.FromContext(ctx).Debug(LogMsgToolSelected, "playerID", playerID, "tool", tool)
	return &sel, nil
}

// GetSelection returns the player's armed tool and highlighted tile
func (s *service) GetSelection(_ context.Context, playerID string) (*domain.Selection, error) {
	sel := s.selections.Get(playerID)
	return &sel, nil
}

// ClickTile toggles the highlight on the tile and, when it becomes selected,
// applies the armed tool through the transition table
func (s *service) ClickTile(ctx context.Context, playerID, tileID string) (*domain.ClickResult, error) {
	log := logger.FromContext(ctx)

	unlock := s.lockPlayer(playerID)
	defer unlock()

	field, err := s.fields.GetFieldByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	tile, ok := field.Tile(tileID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTileNotFound, tileID)
	}

	sel, selected := s.selections.Toggle(playerID, tileID)
	result := &domain.ClickResult{
		Tile:         *tile,
		Tool:         sel.Tool,
		Selected:     selected,
		PreviousType: tile.Type,
	}
	if !selected {
		log.Debug(LogMsgSelectionCleared, "playerID", playerID, "tileID", tileID)
		return result, nil
	}

	tr, ok := NextStage(tile.Type, sel.Tool)
	if !ok {
		metrics.RejectedActions.WithLabelValues(string(sel.Tool)).Inc()
		log.Debug(LogMsgActionRejected, "playerID", playerID, "tileID", tileID,
			"tileType", tile.Type, "tool", sel.Tool)
		return result, nil
	}

	swapped, err := s.fields.CompareAndSetTileType(ctx, field.ID, tileID, tr.From, tr.To)
	if err != nil {
		return nil, fmt.Errorf("failed to update tile: %w", err)
	}
	if !swapped {
		log.Debug(LogMsgStaleTransition, "playerID", playerID, "tileID", tileID)
		return result, nil
	}

	result.Changed = true
	result.Tile.Type = tr.To

	s.growth.Cancel(tileID)
	if tr.SchedulesGrowth {
		s.growth.Schedule(field.ID, tileID, s.growthDelay)
		result.GrowthPending = true
	}

	completion, err := s.tasks.CompleteFirstMatching(ctx, playerID, sel.Tool)
	if err != nil {
		log.Error(LogMsgTaskCouplingFailed, "playerID", playerID, "tool", sel.Tool, "error", err)
	} else if completion != nil {
		task := completion.Task
		result.CompletedTask = &task
		result.Notification = domain.TaskCompletedMessage(task.Title)
	}

	event.PublishBestEffort(ctx, s.bus,
		event.NewTileChangedEvent(playerID, field.ID, tileID, tr.From, tr.To, sel.Tool))
	log.Info(LogMsgTileChanged, "playerID", playerID, "tileID", tileID, "from", tr.From, "to", tr.To)
	return result, nil
}

// CompleteGrowth performs the watered to grown compare-and-set
func (s *service) CompleteGrowth(ctx context.Context, fieldID, tileID string) (bool, error) {
	log := logger.FromContext(ctx)

	field, err := s.fields.GetFieldByID(ctx, fieldID)
	if err != nil {
		return false, err
	}

	unlock := s.lockPlayer(field.PlayerID)
	defer unlock()

	swapped, err := s.fields.CompareAndSetTileType(ctx, fieldID, tileID, GrowthTransition.From, GrowthTransition.To)
	if err != nil {
		return false, err
	}
	if !swapped {
		log.Debug(LogMsgGrowthSkipped, "fieldID", fieldID, "tileID", tileID)
		return false, nil
	}

	event.PublishBestEffort(ctx, s.bus, event.NewTileGrownEvent(field.PlayerID, fieldID, tileID))
	log.Info(LogMsgTileGrown, "playerID", field.PlayerID, "fieldID", fieldID, "tileID", tileID)
	return true, nil
}
