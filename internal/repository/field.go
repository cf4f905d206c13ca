package repository

import (
	"context"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// FieldRepository is the game-state store for scanned fields and their tiles
type FieldRepository interface {
	// GetFieldByPlayer returns the player's current field or domain.ErrFieldNotFound
	GetFieldByPlayer(ctx context.Context, playerID string) (*domain.Field, error)

	// GetFieldByID returns a field by id or domain.ErrFieldNotFound
	GetFieldByID(ctx context.Context, fieldID string) (*domain.Field, error)

	// SaveField stores a new field, replacing any previous field of the same player
	SaveField(ctx context.Context, field *domain.Field) error

	// CompareAndSetTileType moves a tile from one stage to another.
	// It returns false without writing when the tile is no longer at from.
	CompareAndSetTileType(ctx context.Context, fieldID, tileID string, from, to domain.TileType) (bool, error)
}
