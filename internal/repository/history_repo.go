package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type WatchHistoryRepository interface {
	Upsert(ctx context.Context, entry domain.WatchHistoryEntry) error
	ListByProfileID(ctx context.Context, profileID string) ([]domain.WatchHistoryEntry, error)
	UpdatePosition(ctx context.Context, profileID, watchableID string, timeStopped int) (domain.WatchHistoryEntry, error)
	Delete(ctx context.Context, profileID, watchableID string) error
}

type PgWatchHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewPgWatchHistoryRepository(pool *pgxpool.Pool) *PgWatchHistoryRepository {
	return &PgWatchHistoryRepository{pool: pool}
}

// Upsert registra o actualiza la posicion de reproduccion de un perfil
// sobre un contenido.
func (r *PgWatchHistoryRepository) Upsert(ctx context.Context, entry domain.WatchHistoryEntry) error {
	const query = `
		INSERT INTO watch_history (profile_id, watchable_id, time_stopped, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, watchable_id)
		DO UPDATE SET time_stopped = EXCLUDED.time_stopped, updated_at = EXCLUDED.updated_at
	`
	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, query, entry.ProfileID, entry.WatchableID, entry.TimeStopped, updatedAt)
	return err
}

func (r *PgWatchHistoryRepository) ListByProfileID(ctx context.Context, profileID string) ([]domain.WatchHistoryEntry, error) {
	const query = `
		SELECT profile_id, watchable_id, time_stopped, updated_at
		FROM watch_history
		WHERE profile_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WatchHistoryEntry
	for rows.Next() {
		var e domain.WatchHistoryEntry
		if err := rows.Scan(&e.ProfileID, &e.WatchableID, &e.TimeStopped, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgWatchHistoryRepository) UpdatePosition(ctx context.Context, profileID, watchableID string, timeStopped int) (domain.WatchHistoryEntry, error) {
	const query = `
		UPDATE watch_history
		SET time_stopped = $1, updated_at = now()
		WHERE profile_id = $2 AND watchable_id = $3
		RETURNING profile_id, watchable_id, time_stopped, updated_at
	`
	var e domain.WatchHistoryEntry
	err := r.pool.QueryRow(ctx, query, timeStopped, profileID, watchableID).
		Scan(&e.ProfileID, &e.WatchableID, &e.TimeStopped, &e.UpdatedAt)
	return e, err
}

func (r *PgWatchHistoryRepository) Delete(ctx context.Context, profileID, watchableID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM watch_history WHERE profile_id = $1 AND watchable_id = $2`,
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
