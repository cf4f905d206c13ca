package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func newField(id, player string) *domain.Field {
	return &domain.Field{
		ID:       id,
		PlayerID: player,
		Tiles: []domain.FieldTile{
			{ID: "a", X: 0, Y: 0, Type: domain.TileEmpty},
			{ID: "b", X: 1, Y: 0, Type: domain.TileEmpty},
		},
		MoistureLevel: 40,
	}
}

func TestStore_SaveAndGetField(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.SaveField(ctx, newField("f1", "p1")))

	byPlayer, err := s.GetFieldByPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "f1", byPlayer.ID)

	byID, err := s.GetFieldByID(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, byID.Tiles, 2)
}

func TestStore_ReturnedFieldIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveField(ctx, newField("f1", "p1")))

	f, err := s.GetFieldByID(ctx, "f1")
	require.NoError(t, err)
	f.Tiles[0].Type = domain.TileHarvested

	again, err := s.GetFieldByID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, domain.TileEmpty, again.Tiles[0].Type)
}

func TestStore_RescanReplacesField(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveField(ctx, newField("f1", "p1")))
	require.NoError(t, s.SaveField(ctx, newField("f2", "p1")))

	_, err := s.GetFieldByID(ctx, "f1")
	assert.True(t, errors.Is(err, domain.ErrFieldNotFound))

	f, err := s.GetFieldByPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "f2", f.ID)
}

func TestStore_SaveFieldValidation(t *testing.T) {
	s := NewStore()
	err := s.SaveField(context.Background(), &domain.Field{ID: "f1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_CompareAndSetTileType(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveField(ctx, newField("f1", "p1")))

	ok, err := s.CompareAndSetTileType(ctx, "f1", "a", domain.TileEmpty, domain.TileSoil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CompareAndSetTileType(ctx, "f1", "a", domain.TileEmpty, domain.TileSoil)
	require.NoError(t, err)
	assert.False(t, ok, "stale from-stage must not write")

	_, err = s.CompareAndSetTileType(ctx, "f1", "zzz", domain.TileEmpty, domain.TileSoil)
	assert.ErrorIs(t, err, domain.ErrTileNotFound)

	_, err = s.CompareAndSetTileType(ctx, "nope", "a", domain.TileEmpty, domain.TileSoil)
	assert.ErrorIs(t, err, domain.ErrFieldNotFound)
}

func seedTasks() []domain.Task {
	return []domain.Task{
		{ID: "t1", Title: "Sow wheat", Type: domain.ToolSow, Points: 5},
		{ID: "t2", Title: "Plough row one", Type: domain.ToolPlough, Points: 10},
		{ID: "t3", Title: "Plough row two", Type: domain.ToolPlough, Points: 15},
	}
}

func TestStore_SeedTasksOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.SeedTasks(ctx, "p1", seedTasks()))
	require.NoError(t, s.SeedTasks(ctx, "p1", []domain.Task{{ID: "other"}}))

	tasks, err := s.ListTasks(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, i, task.Position)
		assert.Equal(t, "p1", task.PlayerID)
	}
}

func TestStore_CompleteFirstIncompleteFollowsListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SeedTasks(ctx, "p1", seedTasks()))
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := s.CompleteFirstIncomplete(ctx, "p1", domain.ToolPlough, now)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "t2", first.Task.ID)
	assert.Equal(t, 10, first.TotalPoints)
	assert.True(t, first.Newly)

	second, err := s.CompleteFirstIncomplete(ctx, "p1", domain.ToolPlough, now)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "t3", second.Task.ID)
	assert.Equal(t, 25, second.TotalPoints)

	none, err := s.CompleteFirstIncomplete(ctx, "p1", domain.ToolPlough, now)
	require.NoError(t, err)
	assert.Nil(t, none)

	points, err := s.GetPoints(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 25, points)
}

func TestStore_CompleteTaskIsTerminal(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SeedTasks(ctx, "p1", seedTasks()))

	done, err := s.CompleteTask(ctx, "p1", "t1", time.Now())
	require.NoError(t, err)
	assert.True(t, done.Newly)
	assert.Equal(t, 5, done.TotalPoints)

	again, err := s.CompleteTask(ctx, "p1", "t1", time.Now())
	require.NoError(t, err)
	assert.False(t, again.Newly)
	assert.Equal(t, 5, again.TotalPoints)

	_, err = s.CompleteTask(ctx, "p1", "missing", time.Now())
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestStore_ListTasksUnknownPlayer(t *testing.T) {
	tasks, err := NewStore().ListTasks(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
}
