package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
)

type mockSubscriptionRepo struct {
	subs       map[int]domain.Subscription
	nextID     int
	payStatus  domain.PaymentStatus
	payErr     error
	lastPaidBy string
}

func newMockSubscriptionRepo() *mockSubscriptionRepo {
	return &mockSubscriptionRepo{subs: make(map[int]domain.Subscription), nextID: 1}
}

func (m *mockSubscriptionRepo) Create(_ context.Context, name string, priceEuro float64) (domain.Subscription, error) {
	sub := domain.Subscription{TypeID: m.nextID, Name: name, PriceEuro: priceEuro}
	m.subs[m.nextID] = sub
	m.nextID++
	return sub, nil
}

func (m *mockSubscriptionRepo) GetByID(_ context.Context, typeID int) (domain.Subscription, error) {
	sub, ok := m.subs[typeID]
	if !ok {
		return domain.Subscription{}, pgx.ErrNoRows
	}
	return sub, nil
}

func (m *mockSubscriptionRepo) List(_ context.Context) ([]domain.Subscription, error) {
	out := make([]domain.Subscription, 0, len(m.subs))
	for _, s := range m.subs {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSubscriptionRepo) Update(_ context.Context, typeID int, name *string, priceEuro *float64) (domain.Subscription, error) {
	sub, ok := m.subs[typeID]
	if !ok {
		return domain.Subscription{}, pgx.ErrNoRows
	}
	if name != nil {
		sub.Name = *name
	}
	if priceEuro != nil {
		sub.PriceEuro = *priceEuro
	}
	m.subs[typeID] = sub
	return sub, nil
}

func (m *mockSubscriptionRepo) Delete(_ context.Context, typeID int) error {
	if _, ok := m.subs[typeID]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.subs, typeID)
	return nil
}

func (m *mockSubscriptionRepo) Pay(_ context.Context, userID string, _ int) (domain.PaymentStatus, error) {
	m.lastPaidBy = userID
	return m.payStatus, m.payErr
}

func TestSubscriptionCRUD(t *testing.T) {
	repo := newMockSubscriptionRepo()
	svc := NewSubscriptionService(zap.NewNop(), repo)
	ctx := context.Background()

	sub, err := svc.Create(ctx, "Premium", 17.99)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, sub.TypeID)
	if err != nil || got.Name != "Premium" {
		t.Fatalf("get: %v %+v", err, got)
	}

	newPrice := 19.99
	updated, err := svc.Update(ctx, sub.TypeID, nil, &newPrice)
	if err != nil || updated.PriceEuro != 19.99 {
		t.Fatalf("update: %v %+v", err, updated)
	}
	if updated.Name != "Premium" {
		t.Fatalf("partial update touched the name: %+v", updated)
	}

	if err := svc.Delete(ctx, sub.TypeID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, sub.TypeID); err != ErrSubscriptionNotFound {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}
}

func TestSubscriptionCreateInvalid(t *testing.T) {
	svc := NewSubscriptionService(zap.NewNop(), newMockSubscriptionRepo())

	if _, err := svc.Create(context.Background(), "  ", 5); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "Basic", -1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
}

func TestPayStatusMapping(t *testing.T) {
	cases := []struct {
		status domain.PaymentStatus
		want   error
	}{
		{domain.PaymentOK, nil},
		{domain.PaymentUserNotFound, ErrPaymentUserNotFound},
		{domain.PaymentInvalidType, ErrPaymentInvalidType},
		{domain.PaymentStillActive, ErrPaymentStillActive},
	}

	for _, tc := range cases {
		repo := newMockSubscriptionRepo()
		repo.payStatus = tc.status
		svc := NewSubscriptionService(zap.NewNop(), repo)

		err := svc.Pay(context.Background(), "user-1", 2)
		if err != tc.want {
			t.Fatalf("status %v: expected %v, got %v", tc.status, tc.want, err)
		}
		if repo.lastPaidBy != "user-1" {
			t.Fatalf("status %v: repo not called with user id", tc.status)
		}
	}
}

func TestPayInvalidInput(t *testing.T) {
	svc := NewSubscriptionService(zap.NewNop(), newMockSubscriptionRepo())

	if err := svc.Pay(context.Background(), "", 1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty user, got %v", err)
	}
	if err := svc.Pay(context.Background(), "user-1", 0); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for zero type, got %v", err)
	}
}
