package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

// InvitationRepository define el contrato de persistencia para invitaciones.
type InvitationRepository interface {
	Exists(ctx context.Context, invitedEmail, invitedBy string) (bool, error)
	Create(ctx context.Context, inv domain.Invitation) error
}

// PgInvitationRepository implementa InvitationRepository usando pgxpool.
type PgInvitationRepository struct {
	pool *pgxpool.Pool
}

func NewPgInvitationRepository(pool *pgxpool.Pool) *PgInvitationRepository {
	return &PgInvitationRepository{pool: pool}
}

func (r *PgInvitationRepository) Exists(ctx context.Context, invitedEmail, invitedBy string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM invitations
			WHERE invited_user_email = $1 AND invite_by_user_id = $2
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, invitedEmail, invitedBy).Scan(&exists)
	return exists, err
}

func (r *PgInvitationRepository) Create(ctx context.Context, inv domain.Invitation) error {
	const query = `
		INSERT INTO invitations (invited_user_email, invite_by_user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query, inv.InvitedEmail, inv.InvitedByUserID, inv.CreatedAt)
	return err
}
