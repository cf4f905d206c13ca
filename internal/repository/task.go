package repository

import (
	"context"
	"time"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// TaskRepository stores each player's task list and points total
type TaskRepository interface {
	// ListTasks returns the player's tasks in list order
	ListTasks(ctx context.Context, playerID string) ([]domain.Task, error)

	// SeedTasks installs tasks for a player that has none yet; existing lists are left alone
	SeedTasks(ctx context.Context, playerID string, tasks []domain.Task) error

	// CompleteFirstIncomplete completes the first incomplete task of the given type
	// and credits its points. It returns nil when no task matches.
	CompleteFirstIncomplete(ctx context.Context, playerID string, taskType domain.Tool, at time.Time) (*domain.TaskCompletion, error)

	// CompleteTask completes one task by id. Completing an already completed task
	// returns it with Newly=false and awards nothing.
	CompleteTask(ctx context.Context, playerID, taskID string, at time.Time) (*domain.TaskCompletion, error)

	// GetPoints returns the player's points total (0 for unknown players)
	GetPoints(ctx context.Context, playerID string) (int, error)
}
