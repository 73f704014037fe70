package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type PreferenceRepository interface {
	Add(ctx context.Context, pref domain.Preference) error
	ListByProfileID(ctx context.Context, profileID string) ([]domain.Preference, error)
	Remove(ctx context.Context, profileID string, genreID int) error
}

type PgPreferenceRepository struct {
	pool *pgxpool.Pool
}

func NewPgPreferenceRepository(pool *pgxpool.Pool) *PgPreferenceRepository {
	return &PgPreferenceRepository{pool: pool}
}

// Add es idempotente: repetir una preferencia ya registrada no falla.
func (r *PgPreferenceRepository) Add(ctx context.Context, pref domain.Preference) error {
	const query = `
		INSERT INTO preferences (profile_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT (profile_id, genre_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, pref.ProfileID, pref.GenreID)
	return err
}

func (r *PgPreferenceRepository) ListByProfileID(ctx context.Context, profileID string) ([]domain.Preference, error) {
	const query = `
		SELECT profile_id, genre_id
		FROM preferences
		WHERE profile_id = $1
		ORDER BY genre_id ASC
	`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []domain.Preference
	for rows.Next() {
		var p domain.Preference
		if err := rows.Scan(&p.ProfileID, &p.GenreID); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *PgPreferenceRepository) Remove(ctx context.Context, profileID string, genreID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM preferences WHERE profile_id = $1 AND genre_id = $2`,
		profileID, genreID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
