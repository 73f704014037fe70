package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type WatchlistRepository interface {
	Add(ctx context.Context, entry domain.WatchlistEntry) error
	ListByProfileID(ctx context.Context, profileID string) ([]domain.WatchlistEntry, error)
	Remove(ctx context.Context, profileID, watchableID string) error
}

type PgWatchlistRepository struct {
	pool *pgxpool.Pool
}

func NewPgWatchlistRepository(pool *pgxpool.Pool) *PgWatchlistRepository {
	return &PgWatchlistRepository{pool: pool}
}

// Add es idempotente: volver a guardar un contenido ya listado no falla.
func (r *PgWatchlistRepository) Add(ctx context.Context, entry domain.WatchlistEntry) error {
	const query = `
		INSERT INTO watchlist (profile_id, watchable_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, watchable_id) DO NOTHING
	`
	addedAt := entry.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, query, entry.ProfileID, entry.WatchableID, addedAt)
	return err
}

func (r *PgWatchlistRepository) ListByProfileID(ctx context.Context, profileID string) ([]domain.WatchlistEntry, error) {
	const query = `
		SELECT profile_id, watchable_id, added_at
		FROM watchlist
		WHERE profile_id = $1
		ORDER BY added_at DESC
	`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WatchlistEntry
	for rows.Next() {
		var e domain.WatchlistEntry
		if err := rows.Scan(&e.ProfileID, &e.WatchableID, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgWatchlistRepository) Remove(ctx context.Context, profileID, watchableID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM watchlist WHERE profile_id = $1 AND watchable_id = $2`,
		profileID, watchableID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
