package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stream-catalog/internal/domain"
)

// SubscriptionRepository define el contrato de persistencia para niveles
// de suscripcion y su cobro.
type SubscriptionRepository interface {
	Create(ctx context.Context, name string, priceEuro float64) (domain.Subscription, error)
	GetByID(ctx context.Context, typeID int) (domain.Subscription, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Update(ctx context.Context, typeID int, name *string, priceEuro *float64) (domain.Subscription, error)
	Delete(ctx context.Context, typeID int) error
	Pay(ctx context.Context, userID string, typeID int) (domain.PaymentStatus, error)
}

// PgSubscriptionRepository implementa SubscriptionRepository usando pgxpool.
type PgSubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubscriptionRepository(pool *pgxpool.Pool) *PgSubscriptionRepository {
	return &PgSubscriptionRepository{pool: pool}
}

func scanSubscription(row pgx.Row) (domain.Subscription, error) {
	var s domain.Subscription
	err := row.Scan(&s.TypeID, &s.Name, &s.PriceEuro)
	return s, err
}

func (r *PgSubscriptionRepository) Create(ctx context.Context, name string, priceEuro float64) (domain.Subscription, error) {
	const query = `
		INSERT INTO subscriptions (subscription_name, subscription_price_euro)
		VALUES ($1, $2)
		RETURNING subscription_type_id, subscription_name, subscription_price_euro
	`
	return scanSubscription(r.pool.QueryRow(ctx, query, name, priceEuro))
}

func (r *PgSubscriptionRepository) GetByID(ctx context.Context, typeID int) (domain.Subscription, error) {
	const query = `
		SELECT subscription_type_id, subscription_name, subscription_price_euro
		FROM subscriptions
		WHERE subscription_type_id = $1
	`
	return scanSubscription(r.pool.QueryRow(ctx, query, typeID))
}

func (r *PgSubscriptionRepository) List(ctx context.Context) ([]domain.Subscription, error) {
	const query = `
		SELECT subscription_type_id, subscription_name, subscription_price_euro
		FROM subscriptions
		ORDER BY subscription_type_id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *PgSubscriptionRepository) Update(ctx context.Context, typeID int, name *string, priceEuro *float64) (domain.Subscription, error) {
	const query = `
		UPDATE subscriptions
		SET subscription_name = COALESCE($1, subscription_name),
		    subscription_price_euro = COALESCE($2, subscription_price_euro)
		WHERE subscription_type_id = $3
		RETURNING subscription_type_id, subscription_name, subscription_price_euro
	`
	return scanSubscription(r.pool.QueryRow(ctx, query, name, priceEuro, typeID))
}

func (r *PgSubscriptionRepository) Delete(ctx context.Context, typeID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE subscription_type_id = $1`, typeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Pay ejecuta la funcion de cobro y traduce su codigo de estado a un
// resultado tipado en esta frontera, para que ninguna capa superior
// tenga que interpretar filas.
func (r *PgSubscriptionRepository) Pay(ctx context.Context, userID string, typeID int) (domain.PaymentStatus, error) {
	var code int
	if err := r.pool.QueryRow(ctx, `SELECT pay_subscription($1, $2)`, userID, typeID).Scan(&code); err != nil {
		return 0, err
	}
	switch code {
	case 200:
		return domain.PaymentOK, nil
	case 404:
		return domain.PaymentUserNotFound, nil
	case 422:
		return domain.PaymentInvalidType, nil
	case 403:
		return domain.PaymentStillActive, nil
	}
	return 0, fmt.Errorf("unexpected payment status code %d", code)
}
