package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/repository"
)

// CatalogService expone el catalogo de contenido: altas, busquedas y
// recomendaciones por preferencias de perfil.
type CatalogService struct {
	logger     *zap.Logger
	watchables repository.WatchableRepository
}

var ErrWatchableNotFound = errors.New("watchable not found")

func NewCatalogService(logger *zap.Logger, watchables repository.WatchableRepository) *CatalogService {
	return &CatalogService{logger: logger, watchables: watchables}
}

type CreateWatchableInput struct {
	Title       string
	Description string
	GenreID     int
	Duration    int
	Season      *int
	Episode     *int
}

func (s *CatalogService) Create(ctx context.Context, input CreateWatchableInput) (domain.Watchable, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.GenreID <= 0 {
		return domain.Watchable{}, ErrInvalidInput
	}
	// Un episodio sin temporada no es representable.
	if input.Episode != nil && input.Season == nil {
		return domain.Watchable{}, ErrInvalidInput
	}

	w := domain.Watchable{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		GenreID:     input.GenreID,
		Duration:    input.Duration,
		Season:      input.Season,
		Episode:     input.Episode,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.watchables.Create(ctx, w); err != nil {
		return domain.Watchable{}, err
	}
	return w, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Watchable, error) {
	w, err := s.watchables.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Watchable{}, ErrWatchableNotFound
	}
	return w, err
}

func (s *CatalogService) List(ctx context.Context, kind domain.WatchableKind) ([]domain.Watchable, error) {
	return s.watchables.List(ctx, kind)
}

func (s *CatalogService) SearchByTitle(ctx context.Context, kind domain.WatchableKind, title string) ([]domain.Watchable, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	return s.watchables.SearchByTitle(ctx, kind, title)
}

func (s *CatalogService) ListByGenreName(ctx context.Context, kind domain.WatchableKind, genreName string) ([]domain.Watchable, error) {
	genreName = strings.TrimSpace(genreName)
	if genreName == "" {
		return nil, ErrInvalidInput
	}
	return s.watchables.ListByGenreName(ctx, kind, genreName)
}

func (s *CatalogService) GetSeriesByTitleAndSeason(ctx context.Context, title string, season int) ([]domain.Watchable, error) {
	title = strings.TrimSpace(title)
	if title == "" || season <= 0 {
		return nil, ErrInvalidInput
	}
	return s.watchables.GetSeriesByTitleAndSeason(ctx, title, season)
}

// Recommendations devuelve contenido que coincide con los generos
// preferidos del perfil.
func (s *CatalogService) Recommendations(ctx context.Context, kind domain.WatchableKind, profileID string) ([]domain.Watchable, error) {
	if profileID == "" {
		return nil, ErrInvalidInput
	}
	return s.watchables.ListByProfilePreferences(ctx, kind, profileID)
}

func (s *CatalogService) Update(ctx context.Context, id string, update domain.WatchableUpdate) (domain.Watchable, error) {
	w, err := s.watchables.Update(ctx, id, update)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Watchable{}, ErrWatchableNotFound
	}
	return w, err
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	err := s.watchables.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWatchableNotFound
	}
	return err
}
