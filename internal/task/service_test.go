package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/database/memory"
	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
)

func testCatalogue() *domain.TaskCatalogue {
	return &domain.TaskCatalogue{Tasks: []domain.TaskTemplate{
		{Title: "Sow wheat", Type: domain.ToolSow, Points: 5},
		{Title: "Plough row one", Type: domain.ToolPlough, Points: 10},
		{Title: "Plough row two", Type: domain.ToolPlough, Points: 15},
	}}
}

func setup(t *testing.T) (Service, *[]event.Event) {
	t.Helper()
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.TaskCompleted, func(_ context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})
	svc := NewService(memory.NewStore(), testCatalogue(), bus)
	require.NoError(t, svc.SeedPlayer(context.Background(), "p1"))
	return svc, &published
}

func TestSeedPlayer_PreservesOrderAndIsIdempotent(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedPlayer(ctx, "p1"))

	tasks, err := svc.ListTasks(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Sow wheat", tasks[0].Title)
	assert.Equal(t, "Plough row one", tasks[1].Title)
	for _, task := range tasks {
		assert.False(t, task.Completed)
		assert.NotEmpty(t, task.ID)
	}
}

func TestCompleteFirstMatching_FirstInListOrder(t *testing.T) {
	svc, published := setup(t)
	ctx := context.Background()

	c, err := svc.CompleteFirstMatching(ctx, "p1", domain.ToolPlough)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Plough row one", c.Task.Title)
	assert.Equal(t, 10, c.TotalPoints)

	tasks, err := svc.ListTasks(ctx, "p1")
	require.NoError(t, err)
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
			assert.NotNil(t, task.CompletedAt)
		}
	}
	assert.Equal(t, 1, completed, "exactly one task transitions per action")

	require.Len(t, *published, 1)
	payload := (*published)[0].Payload.(domain.TaskCompletedPayload)
	assert.Equal(t, "🎉 Task completed: Plough row one", payload.Message)
	assert.Equal(t, 10, payload.TotalPoints)
}

func TestCompleteFirstMatching_NoMatch(t *testing.T) {
	svc, published := setup(t)

	c, err := svc.CompleteFirstMatching(context.Background(), "p1", domain.ToolHarvest)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Empty(t, *published)

	points, err := svc.GetPoints(context.Background(), "p1")
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestCompleteFirstMatching_InvalidTool(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.CompleteFirstMatching(context.Background(), "p1", "axe")
	assert.ErrorIs(t, err, domain.ErrInvalidTool)
}

func TestCompleteTask_AlreadyCompletedKeepsPoints(t *testing.T) {
	svc, published := setup(t)
	ctx := context.Background()

	tasks, err := svc.ListTasks(ctx, "p1")
	require.NoError(t, err)
	sowID := tasks[0].ID

	first, err := svc.CompleteTask(ctx, "p1", sowID)
	require.NoError(t, err)
	assert.True(t, first.Newly)

	second, err := svc.CompleteTask(ctx, "p1", sowID)
	require.NoError(t, err)
	assert.False(t, second.Newly)

	points, err := svc.GetPoints(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, points)
	assert.Len(t, *published, 1)
}

func TestCompleteTask_Errors(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.CompleteTask(ctx, "p1", "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = svc.CompleteTask(ctx, "", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ListTasks(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewService_NilCatalogueUsesDefault(t *testing.T) {
	svc := NewService(memory.NewStore(), nil, nil)
	ctx := context.Background()
	require.NoError(t, svc.SeedPlayer(ctx, "p1"))

	tasks, err := svc.ListTasks(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, tasks, len(DefaultCatalogue().Tasks))
}
