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

// TaxonomyService agrupa los catalogos chicos: generos, idiomas y
// calidades de reproduccion.
type TaxonomyService struct {
	logger    *zap.Logger
	genres    repository.GenreRepository
	languages repository.LanguageRepository
	qualities repository.QualityRepository
}

var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrLanguageNotFound = errors.New("language not found")
	ErrQualityNotFound  = errors.New("quality not found")
)

func NewTaxonomyService(logger *zap.Logger, genres repository.GenreRepository, languages repository.LanguageRepository, qualities repository.QualityRepository) *TaxonomyService {
	return &TaxonomyService{logger: logger, genres: genres, languages: languages, qualities: qualities}
}

func (s *TaxonomyService) CreateGenre(ctx context.Context, name string) (domain.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Genre{}, ErrInvalidInput
	}
	return s.genres.Create(ctx, name)
}

func (s *TaxonomyService) GetGenre(ctx context.Context, id int) (domain.Genre, error) {
	g, err := s.genres.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Genre{}, ErrGenreNotFound
	}
	return g, err
}

func (s *TaxonomyService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.List(ctx)
}

func (s *TaxonomyService) UpdateGenre(ctx context.Context, id int, name string) (domain.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Genre{}, ErrInvalidInput
	}
	g, err := s.genres.Update(ctx, id, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Genre{}, ErrGenreNotFound
	}
	return g, err
}

func (s *TaxonomyService) DeleteGenre(ctx context.Context, id int) error {
	err := s.genres.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrGenreNotFound
	}
	return err
}

func (s *TaxonomyService) CreateLanguage(ctx context.Context, name string) (domain.Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Language{}, ErrInvalidInput
	}
	return s.languages.Create(ctx, name)
}

func (s *TaxonomyService) GetLanguage(ctx context.Context, id int) (domain.Language, error) {
	l, err := s.languages.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Language{}, ErrLanguageNotFound
	}
	return l, err
}

func (s *TaxonomyService) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return s.languages.List(ctx)
}

func (s *TaxonomyService) UpdateLanguage(ctx context.Context, id int, name string) (domain.Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Language{}, ErrInvalidInput
	}
	l, err := s.languages.Update(ctx, id, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Language{}, ErrLanguageNotFound
	}
	return l, err
}

func (s *TaxonomyService) DeleteLanguage(ctx context.Context, id int) error {
	err := s.languages.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrLanguageNotFound
	}
	return err
}

func (s *TaxonomyService) CreateQuality(ctx context.Context, name string) (domain.Quality, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Quality{}, ErrInvalidInput
	}
	return s.qualities.Create(ctx, name)
}

func (s *TaxonomyService) ListQualities(ctx context.Context) ([]domain.Quality, error) {
	return s.qualities.List(ctx)
}

func (s *TaxonomyService) UpdateQuality(ctx context.Context, id int, name string) (domain.Quality, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Quality{}, ErrInvalidInput
	}
	q, err := s.qualities.Update(ctx, id, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quality{}, ErrQualityNotFound
	}
	return q, err
}

func (s *TaxonomyService) DeleteQuality(ctx context.Context, id int) error {
	err := s.qualities.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrQualityNotFound
	}
	return err
}
