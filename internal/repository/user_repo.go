package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

// UserRepository define el contrato de persistencia para cuentas.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, update domain.UserUpdate, passwordHash *string) (domain.User, error)
	DeleteCascade(ctx context.Context, id string) error
	IncrementFailedLogins(ctx context.Context, email string) error
	ResetFailedLogins(ctx context.Context, email string) error
	FillOAuthFields(ctx context.Context, email, name, picture string) (domain.User, error)
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = `user_id, email, password_hash, name, profile_picture, subscription_type_id, failed_login_attempts, created_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.ProfilePicture,
		&u.SubscriptionTypeID,
		&u.FailedLoginAttempts,
		&u.CreatedAt,
	)
	return u, err
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (user_id, email, password_hash, name, profile_picture, subscription_type_id, failed_login_attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.ProfilePicture,
		user.SubscriptionTypeID,
		user.FailedLoginAttempts,
		user.CreatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *PgUserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update aplica una actualizacion parcial; los campos nil conservan el
// valor previo via COALESCE. La password ya llega hasheada.
func (r *PgUserRepository) Update(ctx context.Context, id string, update domain.UserUpdate, passwordHash *string) (domain.User, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($1, email),
		    password_hash = COALESCE($2, password_hash),
		    subscription_type_id = COALESCE($3, subscription_type_id),
		    failed_login_attempts = COALESCE($4, failed_login_attempts)
		WHERE user_id = $5
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query,
		update.Email,
		passwordHash,
		update.SubscriptionTypeID,
		update.FailedLoginAttempts,
		id,
	))
}

// DeleteCascade elimina los perfiles de la cuenta y luego la cuenta,
// dentro de una misma transaccion. Si la cuenta no existe devuelve
// pgx.ErrNoRows y no se confirma nada.
func (r *PgUserRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *PgUserRepository) IncrementFailedLogins(ctx context.Context, email string) error {
	const query = `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1
		WHERE email = $1
	`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}

func (r *PgUserRepository) ResetFailedLogins(ctx context.Context, email string) error {
	const query = `
		UPDATE users
		SET failed_login_attempts = 0
		WHERE email = $1
	`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}

// FillOAuthFields completa nombre y foto solo cuando estan vacios.
// Nunca pisa valores ya establecidos.
func (r *PgUserRepository) FillOAuthFields(ctx context.Context, email, name, picture string) (domain.User, error) {
	const query = `
		UPDATE users
		SET name = CASE WHEN name = '' THEN $1 ELSE name END,
		    profile_picture = CASE WHEN profile_picture = '' THEN $2 ELSE profile_picture END
		WHERE email = $3
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, name, picture, email))
}
