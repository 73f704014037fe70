package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

// WatchableRepository define el contrato de persistencia del catalogo.
type WatchableRepository interface {
	Create(ctx context.Context, w domain.Watchable) error
	GetByID(ctx context.Context, id string) (domain.Watchable, error)
	List(ctx context.Context, kind domain.WatchableKind) ([]domain.Watchable, error)
	SearchByTitle(ctx context.Context, kind domain.WatchableKind, title string) ([]domain.Watchable, error)
	ListByGenreName(ctx context.Context, kind domain.WatchableKind, genreName string) ([]domain.Watchable, error)
	GetSeriesByTitleAndSeason(ctx context.Context, title string, season int) ([]domain.Watchable, error)
	ListByProfilePreferences(ctx context.Context, kind domain.WatchableKind, profileID string) ([]domain.Watchable, error)
	Update(ctx context.Context, id string, update domain.WatchableUpdate) (domain.Watchable, error)
	Delete(ctx context.Context, id string) error
}

// PgWatchableRepository implementa WatchableRepository usando pgxpool.
type PgWatchableRepository struct {
	pool *pgxpool.Pool
}

func NewPgWatchableRepository(pool *pgxpool.Pool) *PgWatchableRepository {
	return &PgWatchableRepository{pool: pool}
}

const watchableColumns = `w.watchable_id, w.title, w.description, w.genre_id, w.duration, w.season, w.episode, w.created_at`

// kindClause restringe una consulta a peliculas o series. Las consultas
// que lo usan siempre llevan un WHERE previo.
func kindClause(kind domain.WatchableKind) string {
	switch kind {
	case domain.KindMovie:
		return ` AND w.season IS NULL`
	case domain.KindSeries:
		return ` AND w.season IS NOT NULL`
	}
	return ``
}

func scanWatchable(row pgx.Row) (domain.Watchable, error) {
	var w domain.Watchable
	err := row.Scan(
		&w.ID,
		&w.Title,
		&w.Description,
		&w.GenreID,
		&w.Duration,
		&w.Season,
		&w.Episode,
		&w.CreatedAt,
	)
	return w, err
}

func (r *PgWatchableRepository) Create(ctx context.Context, w domain.Watchable) error {
	const query = `
		INSERT INTO watchables (watchable_id, title, description, genre_id, duration, season, episode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		w.ID,
		w.Title,
		w.Description,
		w.GenreID,
		w.Duration,
		w.Season,
		w.Episode,
		w.CreatedAt,
	)
	return err
}

func (r *PgWatchableRepository) GetByID(ctx context.Context, id string) (domain.Watchable, error) {
	const query = `SELECT ` + watchableColumns + ` FROM watchables w WHERE w.watchable_id = $1`
	return scanWatchable(r.pool.QueryRow(ctx, query, id))
}

func (r *PgWatchableRepository) List(ctx context.Context, kind domain.WatchableKind) ([]domain.Watchable, error) {
	query := `SELECT ` + watchableColumns + ` FROM watchables w WHERE TRUE` +
		kindClause(kind) + ` ORDER BY w.created_at ASC`
	return r.queryWatchables(ctx, query)
}

func (r *PgWatchableRepository) SearchByTitle(ctx context.Context, kind domain.WatchableKind, title string) ([]domain.Watchable, error) {
	query := `SELECT ` + watchableColumns + ` FROM watchables w WHERE w.title ILIKE $1` +
		kindClause(kind) + ` ORDER BY w.title ASC`
	return r.queryWatchables(ctx, query, "%"+title+"%")
}

func (r *PgWatchableRepository) ListByGenreName(ctx context.Context, kind domain.WatchableKind, genreName string) ([]domain.Watchable, error) {
	query := `
		SELECT ` + watchableColumns + `
		FROM watchables w
		JOIN genres g ON g.genre_id = w.genre_id
		WHERE g.genre_name ILIKE $1` + kindClause(kind) + `
		ORDER BY w.title ASC
	`
	return r.queryWatchables(ctx, query, "%"+genreName+"%")
}

func (r *PgWatchableRepository) GetSeriesByTitleAndSeason(ctx context.Context, title string, season int) ([]domain.Watchable, error) {
	const query = `
		SELECT ` + watchableColumns + `
		FROM watchables w
		WHERE lower(w.title) = lower($1) AND w.season = $2
		ORDER BY w.episode ASC
	`
	return r.queryWatchables(ctx, query, title, season)
}

// ListByProfilePreferences devuelve contenido cuyos generos coinciden
// con las preferencias del perfil.
func (r *PgWatchableRepository) ListByProfilePreferences(ctx context.Context, kind domain.WatchableKind, profileID string) ([]domain.Watchable, error) {
	query := `
		SELECT ` + watchableColumns + `
		FROM watchables w
		JOIN preferences p ON p.genre_id = w.genre_id
		WHERE p.profile_id = $1` + kindClause(kind) + `
		ORDER BY w.created_at DESC
	`
	return r.queryWatchables(ctx, query, profileID)
}

func (r *PgWatchableRepository) Update(ctx context.Context, id string, update domain.WatchableUpdate) (domain.Watchable, error) {
	const query = `
		UPDATE watchables w
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    genre_id = COALESCE($3, genre_id),
		    duration = COALESCE($4, duration),
		    season = COALESCE($5, season),
		    episode = COALESCE($6, episode)
		WHERE w.watchable_id = $7
		RETURNING ` + watchableColumns
	return scanWatchable(r.pool.QueryRow(ctx, query,
		update.Title,
		update.Description,
		update.GenreID,
		update.Duration,
		update.Season,
		update.Episode,
		id,
	))
}

func (r *PgWatchableRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM watchables WHERE watchable_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgWatchableRepository) queryWatchables(ctx context.Context, query string, args ...interface{}) ([]domain.Watchable, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var watchables []domain.Watchable
	for rows.Next() {
		w, err := scanWatchable(rows)
		if err != nil {
			return nil, err
		}
		watchables = append(watchables, w)
	}
	return watchables, rows.Err()
}
