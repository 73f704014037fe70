package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type SubtitleRepository interface {
	Create(ctx context.Context, sub domain.Subtitle) error
	ListByWatchableID(ctx context.Context, watchableID string) ([]domain.Subtitle, error)
	UpdateLink(ctx context.Context, watchableID string, languageID int, link string) (domain.Subtitle, error)
	Delete(ctx context.Context, watchableID string, languageID int) error
}

type PgSubtitleRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubtitleRepository(pool *pgxpool.Pool) *PgSubtitleRepository {
	return &PgSubtitleRepository{pool: pool}
}

func (r *PgSubtitleRepository) Create(ctx context.Context, sub domain.Subtitle) error {
	const query = `
		INSERT INTO subtitles (watchable_id, language_id, link)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query, sub.WatchableID, sub.LanguageID, sub.Link)
	return err
}

func (r *PgSubtitleRepository) ListByWatchableID(ctx context.Context, watchableID string) ([]domain.Subtitle, error) {
	const query = `
		SELECT watchable_id, language_id, link
		FROM subtitles
		WHERE watchable_id = $1
		ORDER BY language_id ASC
	`
	rows, err := r.pool.Query(ctx, query, watchableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subtitle
	for rows.Next() {
		var s domain.Subtitle
		if err := rows.Scan(&s.WatchableID, &s.LanguageID, &s.Link); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *PgSubtitleRepository) UpdateLink(ctx context.Context, watchableID string, languageID int, link string) (domain.Subtitle, error) {
	const query = `
		UPDATE subtitles
		SET link = $1
		WHERE watchable_id = $2 AND language_id = $3
		RETURNING watchable_id, language_id, link
	`
	var s domain.Subtitle
	err := r.pool.QueryRow(ctx, query, link, watchableID, languageID).Scan(&s.WatchableID, &s.LanguageID, &s.Link)
	return s, err
}

func (r *PgSubtitleRepository) Delete(ctx context.Context, watchableID string, languageID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM subtitles WHERE watchable_id = $1 AND language_id = $2`,
		watchableID, languageID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
