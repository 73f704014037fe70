package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Profile, error)
	ListByUserEmail(ctx context.Context, email string) ([]domain.Profile, error)
	Update(ctx context.Context, id string, update domain.ProfileUpdate) (domain.Profile, error)
	Delete(ctx context.Context, id string) error
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `profile_id, user_id, profile_name, profile_photo_link, age, language_id, created_at`

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	var languageID *int
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.PhotoLink,
		&p.Age,
		&languageID,
		&p.CreatedAt,
	)
	if languageID != nil {
		p.LanguageID = *languageID
	}
	return p, err
}

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const query = `
		INSERT INTO profiles (profile_id, user_id, profile_name, profile_photo_link, age, language_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var languageID interface{}
	if profile.LanguageID != 0 {
		languageID = profile.LanguageID
	}
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Name,
		profile.PhotoLink,
		profile.Age,
		languageID,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

func (r *PgProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC`
	return r.queryProfiles(ctx, query)
}

func (r *PgProfileRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 ORDER BY created_at ASC`
	return r.queryProfiles(ctx, query, userID)
}

// ListByUserEmail devuelve las proyecciones de perfil asociadas a la
// cuenta con ese email; se usa en la respuesta de login.
func (r *PgProfileRepository) ListByUserEmail(ctx context.Context, email string) ([]domain.Profile, error) {
	const query = `
		SELECT p.profile_id, p.user_id, p.profile_name, p.profile_photo_link, p.age, p.language_id, p.created_at
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		WHERE u.email = $1
		ORDER BY p.created_at ASC
	`
	return r.queryProfiles(ctx, query, email)
}

func (r *PgProfileRepository) Update(ctx context.Context, id string, update domain.ProfileUpdate) (domain.Profile, error) {
	const query = `
		UPDATE profiles
		SET profile_name = COALESCE($1, profile_name),
		    profile_photo_link = COALESCE($2, profile_photo_link),
		    age = COALESCE($3, age),
		    language_id = COALESCE($4, language_id)
		WHERE profile_id = $5
		RETURNING ` + profileColumns
	return scanProfile(r.pool.QueryRow(ctx, query,
		update.Name,
		update.PhotoLink,
		update.Age,
		update.LanguageID,
		id,
	))
}

func (r *PgProfileRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE profile_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgProfileRepository) queryProfiles(ctx context.Context, query string, args ...interface{}) ([]domain.Profile, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
