package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/repository"
)

var _ repository.FieldRepository = (*FieldRepository)(nil)

// FieldRepository implements repository.FieldRepository for PostgreSQL
type FieldRepository struct {
	db *pgxpool.Pool
}

// NewFieldRepository creates a new field repository
func NewFieldRepository(db *pgxpool.Pool) *FieldRepository {
	return &FieldRepository{db: db}
}

const selectFieldColumns = `SELECT field_id, player_id, moisture_level, soil_condition, created_at FROM fields`

// GetFieldByPlayer returns the player's current field
func (r *FieldRepository) GetFieldByPlayer(ctx context.Context, playerID string) (*domain.Field, error) {
	return r.getField(ctx, selectFieldColumns+` WHERE player_id = $1`, playerID)
}

// GetFieldByID returns a field by id
func (r *FieldRepository) GetFieldByID(ctx context.Context, fieldID string) (*domain.Field, error) {
	return r.getField(ctx, selectFieldColumns+` WHERE field_id = $1`, fieldID)
}

func (r *FieldRepository) getField(ctx context.Context, query, key string) (*domain.Field, error) {
	var f domain.Field
	err := r.db.QueryRow(ctx, query, key).
		Scan(&f.ID, &f.PlayerID, &f.MoistureLevel, &f.SoilCondition, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFieldNotFound, key)
		}
		return nil, dbError(ErrMsgFailedToGetField, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT tile_id, x, y, tile_type FROM field_tiles WHERE field_id = $1 ORDER BY y, x`, f.ID)
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetTiles, err)
	}
	tiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FieldTile, error) {
		var t domain.FieldTile
		err := row.Scan(&t.ID, &t.X, &t.Y, &t.Type)
		return t, err
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetTiles, err)
	}
	f.Tiles = tiles
	return &f, nil
}

// SaveField replaces the player's field and its tiles in one transaction
func (r *FieldRepository) SaveField(ctx context.Context, field *domain.Field) error {
	if field == nil || field.ID == "" || field.PlayerID == "" {
		return fmt.Errorf("%w: field requires id and player id", domain.ErrInvalidInput)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM fields WHERE player_id = $1`, field.PlayerID); err != nil {
		return dbError(ErrMsgFailedToDeleteField, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO fields (field_id, player_id, moisture_level, soil_condition, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		field.ID, field.PlayerID, field.MoistureLevel, field.SoilCondition, field.CreatedAt)
	if err != nil {
		return dbError(ErrMsgFailedToInsertField, err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"field_tiles"},
		[]string{"field_id", "tile_id", "x", "y", "tile_type"},
		pgx.CopyFromSlice(len(field.Tiles), func(i int) ([]any, error) {
			t := field.Tiles[i]
			return []any{field.ID, t.ID, t.X, t.Y, string(t.Type)}, nil
		}),
	)
	if err != nil {
		return dbError(ErrMsgFailedToInsertTiles, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommit, err)
	}
	return nil
}

// CompareAndSetTileType updates the tile only while it is still at from
func (r *FieldRepository) CompareAndSetTileType(ctx context.Context, fieldID, tileID string, from, to domain.TileType) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE field_tiles SET tile_type = $4 WHERE field_id = $1 AND tile_id = $2 AND tile_type = $3`,
		fieldID, tileID, string(from), string(to))
	if err != nil {
		return false, dbError(ErrMsgFailedToUpdateTile, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Nothing updated: tell a stale stage apart from a missing tile or field.
	var fieldExists, tileExists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM fields WHERE field_id = $1),
		        EXISTS (SELECT 1 FROM field_tiles WHERE field_id = $1 AND tile_id = $2)`,
		fieldID, tileID).Scan(&fieldExists, &tileExists)
	if err != nil {
		return false, dbError(ErrMsgFailedToLookupTile, err)
	}
	switch {
	case !fieldExists:
		return false, fmt.Errorf("%w: %s", domain.ErrFieldNotFound, fieldID)
	case !tileExists:
		return false, fmt.Errorf("%w: %s", domain.ErrTileNotFound, tileID)
	}
	return false, nil
}
