package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/repository"
)

// SubscriptionService administra niveles de suscripcion y su cobro.
type SubscriptionService struct {
	logger *zap.Logger
	subs   repository.SubscriptionRepository
}

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPaymentUserNotFound  = errors.New("payment user not found")
	ErrPaymentInvalidType   = errors.New("payment subscription type invalid")
	ErrPaymentStillActive   = errors.New("subscription still active")
)

func NewSubscriptionService(logger *zap.Logger, subs repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{logger: logger, subs: subs}
}

func (s *SubscriptionService) Create(ctx context.Context, name string, priceEuro float64) (domain.Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" || priceEuro < 0 {
		return domain.Subscription{}, ErrInvalidInput
	}
	return s.subs.Create(ctx, name, priceEuro)
}

func (s *SubscriptionService) Get(ctx context.Context, typeID int) (domain.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, typeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, err
}

func (s *SubscriptionService) List(ctx context.Context) ([]domain.Subscription, error) {
	return s.subs.List(ctx)
}

func (s *SubscriptionService) Update(ctx context.Context, typeID int, name *string, priceEuro *float64) (domain.Subscription, error) {
	sub, err := s.subs.Update(ctx, typeID, name, priceEuro)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, err
}

func (s *SubscriptionService) Delete(ctx context.Context, typeID int) error {
	err := s.subs.Delete(ctx, typeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSubscriptionNotFound
	}
	return err
}

// Pay cobra la suscripcion y traduce el resultado tipado del store al
// error correspondiente de la taxonomia.
func (s *SubscriptionService) Pay(ctx context.Context, userID string, typeID int) error {
	if userID == "" || typeID <= 0 {
		return ErrInvalidInput
	}
	status, err := s.subs.Pay(ctx, userID, typeID)
	if err != nil {
		return err
	}
	switch status {
	case domain.PaymentOK:
		return nil
	case domain.PaymentUserNotFound:
		return ErrPaymentUserNotFound
	case domain.PaymentInvalidType:
		return ErrPaymentInvalidType
	case domain.PaymentStillActive:
		return ErrPaymentStillActive
	}
	return errors.New("unexpected payment status")
}
