package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/repository"
)

// Service defines the task list and points logic
type Service interface {
	// SeedPlayer gives a player the catalogue's tasks if they have none yet
	SeedPlayer(ctx context.Context, playerID string) error

	// ListTasks returns the player's tasks in list order
	ListTasks(ctx context.Context, playerID string) ([]domain.Task, error)

	// CompleteFirstMatching completes the first incomplete task of the tool's type.
	// It returns nil when nothing matches.
	CompleteFirstMatching(ctx context.Context, playerID string, tool domain.Tool) (*domain.TaskCompletion, error)

	// CompleteTask completes one task directly
	CompleteTask(ctx context.Context, playerID, taskID string) (*domain.TaskCompletion, error)

	// GetPoints returns the player's points total
	GetPoints(ctx context.Context, playerID string) (int, error)
}

type service struct {
	repo      repository.TaskRepository
	catalogue *domain.TaskCatalogue
	bus       event.Bus
	now       func() time.Time
}

// NewService creates a new task service. A nil catalogue means DefaultCatalogue.
func NewService(repo repository.TaskRepository, catalogue *domain.TaskCatalogue, bus event.Bus) Service {
	if catalogue == nil {
		catalogue = DefaultCatalogue()
	}
	return &service{
		repo:      repo,
		catalogue: catalogue,
		bus:       bus,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) SeedPlayer(ctx context.Context, playerID string) error {
	tasks := make([]domain.Task, len(s.catalogue.Tasks))
	for i, tmpl := range s.catalogue.Tasks {
		tasks[i] = domain.Task{
			ID:          uuid.NewString(),
			PlayerID:    playerID,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Type:        tmpl.Type,
			Points:      tmpl.Points,
			Position:    i,
		}
	}
	if err := s.repo.SeedTasks(ctx, playerID, tasks); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgTasksSeeded, "playerID", playerID, "count", len(tasks))
	return nil
}

func (s *service) ListTasks(ctx context.Context, playerID string) ([]domain.Task, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	return s.repo.ListTasks(ctx, playerID)
}

func (s *service) CompleteFirstMatching(ctx context.Context, playerID string, tool domain.Tool) (*domain.TaskCompletion, error) {
	if !tool.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTool, tool)
	}

	completion, err := s.repo.CompleteFirstIncomplete(ctx, playerID, tool, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	if completion == nil {
		return nil, nil
	}

	s.announce(ctx, completion)
	return completion, nil
}

func (s *service) CompleteTask(ctx context.Context, playerID, taskID string) (*domain.TaskCompletion, error) {
	if strings.TrimSpace(playerID) == "" || strings.TrimSpace(taskID) == "" {
		return nil, fmt.Errorf("%w: player id and task id are required", domain.ErrInvalidInput)
	}

	completion, err := s.repo.CompleteTask(ctx, playerID, taskID, s.now())
	if err != nil {
		return nil, err
	}
	if !completion.Newly {
		logger.FromContext(ctx).Debug(LogMsgTaskAlreadyDone, "playerID", playerID, "taskID", taskID)
		return completion, nil
	}

	s.announce(ctx, completion)
	return completion, nil
}

func (s *service) GetPoints(ctx context.Context, playerID string) (int, error) {
	return s.repo.GetPoints(ctx, playerID)
}

// announce publishes the completion notification
func (s *service) announce(ctx context.Context, c *domain.TaskCompletion) {
	event.PublishBestEffort(ctx, s.bus, event.NewTaskCompletedEvent(c.Task, c.TotalPoints))
	logger.FromContext(ctx).Info(LogMsgTaskCompleted,
		"playerID", c.Task.PlayerID, "taskID", c.Task.ID, "points", c.Task.Points, "total", c.TotalPoints)
}
