package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/repository"
)

var _ repository.TaskRepository = (*TaskRepository)(nil)

// TaskRepository implements repository.TaskRepository for PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const selectTaskColumns = `SELECT task_id, player_id, position, title, description, task_type, points, completed, completed_at FROM tasks`

func scanTask(row pgx.Row) (domain.Task, error) {
	var (
		t           domain.Task
		completedAt pgtype.Timestamptz
	)
	err := row.Scan(&t.ID, &t.PlayerID, &t.Position, &t.Title, &t.Description,
		&t.Type, &t.Points, &t.Completed, &completedAt)
	t.CompletedAt = ptrTime(completedAt)
	return t, err
}

// ListTasks returns the player's tasks in list order
func (r *TaskRepository) ListTasks(ctx context.Context, playerID string) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, selectTaskColumns+` WHERE player_id = $1 ORDER BY position`, playerID)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListTasks, err)
	}
	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToListTasks, err)
	}
	return tasks, nil
}

// SeedTasks inserts the list only when the player has no tasks yet
func (r *TaskRepository) SeedTasks(ctx context.Context, playerID string, tasks []domain.Task) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	// serialise concurrent seeds for the same player
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, playerID); err != nil {
		return dbError(ErrMsgFailedToCountTasks, err)
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE player_id = $1`, playerID).Scan(&count); err != nil {
		return dbError(ErrMsgFailedToCountTasks, err)
	}
	if count > 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, t := range tasks {
		batch.Queue(
			`INSERT INTO tasks (task_id, player_id, position, title, description, task_type, points)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, playerID, i, t.Title, t.Description, string(t.Type), t.Points)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return dbError(ErrMsgFailedToInsertTasks, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommit, err)
	}
	return nil
}

// CompleteFirstIncomplete completes the lowest-positioned incomplete task of the type
func (r *TaskRepository) CompleteFirstIncomplete(ctx context.Context, playerID string, taskType domain.Tool, at time.Time) (*domain.TaskCompletion, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	task, err := scanTask(tx.QueryRow(ctx,
		selectTaskColumns+` WHERE player_id = $1 AND task_type = $2 AND NOT completed
		 ORDER BY position LIMIT 1 FOR UPDATE`, playerID, string(taskType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError(ErrMsgFailedToFindTask, err)
	}

	completion, err := completeInTx(ctx, tx, task, at)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, dbError(ErrMsgFailedToCommit, err)
	}
	return completion, nil
}

// CompleteTask completes a task by id; a completed task is returned unchanged
func (r *TaskRepository) CompleteTask(ctx context.Context, playerID, taskID string, at time.Time) (*domain.TaskCompletion, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	task, err := scanTask(tx.QueryRow(ctx,
		selectTaskColumns+` WHERE player_id = $1 AND task_id = $2 FOR UPDATE`, playerID, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
		}
		return nil, dbError(ErrMsgFailedToFindTask, err)
	}

	if task.Completed {
		total, err := getPoints(ctx, tx, playerID)
		if err != nil {
			return nil, err
		}
		return &domain.TaskCompletion{Task: task, TotalPoints: total, Newly: false}, nil
	}

	completion, err := completeInTx(ctx, tx, task, at)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, dbError(ErrMsgFailedToCommit, err)
	}
	return completion, nil
}

// GetPoints returns the player's points total
func (r *TaskRepository) GetPoints(ctx context.Context, playerID string) (int, error) {
	return getPoints(ctx, r.db, playerID)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getPoints(ctx context.Context, q queryRower, playerID string) (int, error) {
	var points int
	err := q.QueryRow(ctx, `SELECT points FROM player_points WHERE player_id = $1`, playerID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, dbError(ErrMsgFailedToGetPoints, err)
	}
	return points, nil
}

func completeInTx(ctx context.Context, tx pgx.Tx, task domain.Task, at time.Time) (*domain.TaskCompletion, error) {
	_, err := tx.Exec(ctx,
		`UPDATE tasks SET completed = TRUE, completed_at = $3 WHERE player_id = $1 AND task_id = $2`,
		task.PlayerID, task.ID, at)
	if err != nil {
		return nil, dbError(ErrMsgFailedToCompleteTask, err)
	}

	var total int
	err = tx.QueryRow(ctx,
		`INSERT INTO player_points (player_id, points, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (player_id) DO UPDATE
		 SET points = player_points.points + EXCLUDED.points, updated_at = EXCLUDED.updated_at
		 RETURNING points`,
		task.PlayerID, task.Points, at).Scan(&total)
	if err != nil {
		return nil, dbError(ErrMsgFailedToAddPoints, err)
	}

	completedAt := at
	task.Completed = true
	task.CompletedAt = &completedAt
	return &domain.TaskCompletion{Task: task, TotalPoints: total, Newly: true}, nil
}
