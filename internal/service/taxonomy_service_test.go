package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
)

type mockGenreRepo struct {
	genres map[int]domain.Genre
	nextID int
}

func newMockGenreRepo() *mockGenreRepo {
	return &mockGenreRepo{genres: make(map[int]domain.Genre), nextID: 1}
}

func (m *mockGenreRepo) Create(_ context.Context, name string) (domain.Genre, error) {
	g := domain.Genre{ID: m.nextID, Name: name}
	m.genres[m.nextID] = g
	m.nextID++
	return g, nil
}

func (m *mockGenreRepo) GetByID(_ context.Context, id int) (domain.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return domain.Genre{}, pgx.ErrNoRows
	}
	return g, nil
}

func (m *mockGenreRepo) List(_ context.Context) ([]domain.Genre, error) {
	out := make([]domain.Genre, 0, len(m.genres))
	for _, g := range m.genres {
		out = append(out, g)
	}
	return out, nil
}

func (m *mockGenreRepo) Update(_ context.Context, id int, name string) (domain.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return domain.Genre{}, pgx.ErrNoRows
	}
	g.Name = name
	m.genres[id] = g
	return g, nil
}

func (m *mockGenreRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.genres[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.genres, id)
	return nil
}

type mockLanguageRepo struct {
	langs  map[int]domain.Language
	nextID int
}

func newMockLanguageRepo() *mockLanguageRepo {
	return &mockLanguageRepo{langs: make(map[int]domain.Language), nextID: 1}
}

func (m *mockLanguageRepo) Create(_ context.Context, name string) (domain.Language, error) {
	l := domain.Language{ID: m.nextID, Name: name}
	m.langs[m.nextID] = l
	m.nextID++
	return l, nil
}

func (m *mockLanguageRepo) GetByID(_ context.Context, id int) (domain.Language, error) {
	l, ok := m.langs[id]
	if !ok {
		return domain.Language{}, pgx.ErrNoRows
	}
	return l, nil
}

func (m *mockLanguageRepo) List(_ context.Context) ([]domain.Language, error) {
	out := make([]domain.Language, 0, len(m.langs))
	for _, l := range m.langs {
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLanguageRepo) Update(_ context.Context, id int, name string) (domain.Language, error) {
	l, ok := m.langs[id]
	if !ok {
		return domain.Language{}, pgx.ErrNoRows
	}
	l.Name = name
	m.langs[id] = l
	return l, nil
}

func (m *mockLanguageRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.langs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.langs, id)
	return nil
}

type mockQualityRepo struct {
	qualities map[int]domain.Quality
	nextID    int
}

func newMockQualityRepo() *mockQualityRepo {
	return &mockQualityRepo{qualities: make(map[int]domain.Quality), nextID: 1}
}

func (m *mockQualityRepo) Create(_ context.Context, name string) (domain.Quality, error) {
	q := domain.Quality{ID: m.nextID, Name: name}
	m.qualities[m.nextID] = q
	m.nextID++
	return q, nil
}

func (m *mockQualityRepo) List(_ context.Context) ([]domain.Quality, error) {
	out := make([]domain.Quality, 0, len(m.qualities))
	for _, q := range m.qualities {
		out = append(out, q)
	}
	return out, nil
}

func (m *mockQualityRepo) Update(_ context.Context, id int, name string) (domain.Quality, error) {
	q, ok := m.qualities[id]
	if !ok {
		return domain.Quality{}, pgx.ErrNoRows
	}
	q.Name = name
	m.qualities[id] = q
	return q, nil
}

func (m *mockQualityRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.qualities[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.qualities, id)
	return nil
}

func newTestTaxonomyService() *TaxonomyService {
	return NewTaxonomyService(zap.NewNop(), newMockGenreRepo(), newMockLanguageRepo(), newMockQualityRepo())
}

func TestGenreCRUD(t *testing.T) {
	svc := newTestTaxonomyService()
	ctx := context.Background()

	g, err := svc.CreateGenre(ctx, "Drama")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetGenre(ctx, g.ID)
	if err != nil || got.Name != "Drama" {
		t.Fatalf("get: %v %+v", err, got)
	}

	updated, err := svc.UpdateGenre(ctx, g.ID, "Thriller")
	if err != nil || updated.Name != "Thriller" {
		t.Fatalf("update: %v %+v", err, updated)
	}

	if err := svc.DeleteGenre(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetGenre(ctx, g.ID); err != ErrGenreNotFound {
		t.Fatalf("expected ErrGenreNotFound, got %v", err)
	}
}

func TestGenreBlankNameRejected(t *testing.T) {
	svc := newTestTaxonomyService()

	if _, err := svc.CreateGenre(context.Background(), "  "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateGenre(context.Background(), 1, ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput on update, got %v", err)
	}
}

func TestLanguageCRUD(t *testing.T) {
	svc := newTestTaxonomyService()
	ctx := context.Background()

	l, err := svc.CreateLanguage(ctx, "Spanish")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.GetLanguage(ctx, l.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := svc.DeleteLanguage(ctx, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteLanguage(ctx, l.ID); err != ErrLanguageNotFound {
		t.Fatalf("expected ErrLanguageNotFound, got %v", err)
	}
}

func TestQualityCRUD(t *testing.T) {
	svc := newTestTaxonomyService()
	ctx := context.Background()

	q, err := svc.CreateQuality(ctx, "4K")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := svc.ListQualities(ctx)
	if err != nil || len(listed) != 1 {
		t.Fatalf("list: %v %+v", err, listed)
	}

	updated, err := svc.UpdateQuality(ctx, q.ID, "8K")
	if err != nil || updated.Name != "8K" {
		t.Fatalf("update: %v %+v", err, updated)
	}

	if err := svc.DeleteQuality(ctx, q.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteQuality(ctx, q.ID); err != ErrQualityNotFound {
		t.Fatalf("expected ErrQualityNotFound, got %v", err)
	}
}
