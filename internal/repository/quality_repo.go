package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type QualityRepository interface {
	Create(ctx context.Context, name string) (domain.Quality, error)
	List(ctx context.Context) ([]domain.Quality, error)
	Update(ctx context.Context, id int, name string) (domain.Quality, error)
	Delete(ctx context.Context, id int) error
}

type PgQualityRepository struct {
	pool *pgxpool.Pool
}

func NewPgQualityRepository(pool *pgxpool.Pool) *PgQualityRepository {
	return &PgQualityRepository{pool: pool}
}

func (r *PgQualityRepository) Create(ctx context.Context, name string) (domain.Quality, error) {
	const query = `INSERT INTO qualities (name) VALUES ($1) RETURNING quality_id, name`
	var q domain.Quality
	err := r.pool.QueryRow(ctx, query, name).Scan(&q.ID, &q.Name)
	return q, err
}

func (r *PgQualityRepository) List(ctx context.Context) ([]domain.Quality, error) {
	const query = `SELECT quality_id, name FROM qualities ORDER BY quality_id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var qualities []domain.Quality
	for rows.Next() {
		var q domain.Quality
		if err := rows.Scan(&q.ID, &q.Name); err != nil {
			return nil, err
		}
		qualities = append(qualities, q)
	}
	return qualities, rows.Err()
}

func (r *PgQualityRepository) Update(ctx context.Context, id int, name string) (domain.Quality, error) {
	const query = `UPDATE qualities SET name = $1 WHERE quality_id = $2 RETURNING quality_id, name`
	var q domain.Quality
	err := r.pool.QueryRow(ctx, query, name, id).Scan(&q.ID, &q.Name)
	return q, err
}

func (r *PgQualityRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM qualities WHERE quality_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
