package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type GenreRepository interface {
	Create(ctx context.Context, name string) (domain.Genre, error)
	GetByID(ctx context.Context, id int) (domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Update(ctx context.Context, id int, name string) (domain.Genre, error)
	Delete(ctx context.Context, id int) error
}

type PgGenreRepository struct {
	pool *pgxpool.Pool
}

func NewPgGenreRepository(pool *pgxpool.Pool) *PgGenreRepository {
	return &PgGenreRepository{pool: pool}
}

func (r *PgGenreRepository) Create(ctx context.Context, name string) (domain.Genre, error) {
	const query = `INSERT INTO genres (genre_name) VALUES ($1) RETURNING genre_id, genre_name`
	var g domain.Genre
	err := r.pool.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name)
	return g, err
}

func (r *PgGenreRepository) GetByID(ctx context.Context, id int) (domain.Genre, error) {
	const query = `SELECT genre_id, genre_name FROM genres WHERE genre_id = $1`
	var g domain.Genre
	err := r.pool.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name)
	return g, err
}

func (r *PgGenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	const query = `SELECT genre_id, genre_name FROM genres ORDER BY genre_id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *PgGenreRepository) Update(ctx context.Context, id int, name string) (domain.Genre, error) {
	const query = `UPDATE genres SET genre_name = $1 WHERE genre_id = $2 RETURNING genre_id, genre_name`
	var g domain.Genre
	err := r.pool.QueryRow(ctx, query, name, id).Scan(&g.ID, &g.Name)
	return g, err
}

func (r *PgGenreRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE genre_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
