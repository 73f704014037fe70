package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

type LanguageRepository interface {
	Create(ctx context.Context, name string) (domain.Language, error)
	GetByID(ctx context.Context, id int) (domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)
	Update(ctx context.Context, id int, name string) (domain.Language, error)
	Delete(ctx context.Context, id int) error
}

type PgLanguageRepository struct {
	pool *pgxpool.Pool
}

func NewPgLanguageRepository(pool *pgxpool.Pool) *PgLanguageRepository {
	return &PgLanguageRepository{pool: pool}
}

func (r *PgLanguageRepository) Create(ctx context.Context, name string) (domain.Language, error) {
	const query = `INSERT INTO languages (name) VALUES ($1) RETURNING language_id, name`
	var l domain.Language
	err := r.pool.QueryRow(ctx, query, name).Scan(&l.ID, &l.Name)
	return l, err
}

func (r *PgLanguageRepository) GetByID(ctx context.Context, id int) (domain.Language, error) {
	const query = `SELECT language_id, name FROM languages WHERE language_id = $1`
	var l domain.Language
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name)
	return l, err
}

func (r *PgLanguageRepository) List(ctx context.Context) ([]domain.Language, error) {
	const query = `SELECT language_id, name FROM languages ORDER BY language_id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}

func (r *PgLanguageRepository) Update(ctx context.Context, id int, name string) (domain.Language, error) {
	const query = `UPDATE languages SET name = $1 WHERE language_id = $2 RETURNING language_id, name`
	var l domain.Language
	err := r.pool.QueryRow(ctx, query, name, id).Scan(&l.ID, &l.Name)
	return l, err
}

func (r *PgLanguageRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM languages WHERE language_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
