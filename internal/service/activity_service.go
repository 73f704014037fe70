package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/repository"
)

// ActivityService cubre lo que hace cada perfil con el catalogo:
// preferencias de genero, historial de reproduccion y lista de pendientes.
type ActivityService struct {
	logger      *zap.Logger
	preferences repository.PreferenceRepository
	history     repository.WatchHistoryRepository
	watchlist   repository.WatchlistRepository
}

var ErrHistoryEntryNotFound = errors.New("watch history entry not found")

func NewActivityService(logger *zap.Logger, preferences repository.PreferenceRepository, history repository.WatchHistoryRepository, watchlist repository.WatchlistRepository) *ActivityService {
	return &ActivityService{
		logger:      logger,
		preferences: preferences,
		history:     history,
		watchlist:   watchlist,
	}
}

// AddPreference es idempotente: repetir el par (perfil, genero) no falla.
func (s *ActivityService) AddPreference(ctx context.Context, profileID string, genreID int) error {
	if profileID == "" || genreID <= 0 {
		return ErrInvalidInput
	}
	return s.preferences.Add(ctx, domain.Preference{ProfileID: profileID, GenreID: genreID})
}

func (s *ActivityService) ListPreferences(ctx context.Context, profileID string) ([]domain.Preference, error) {
	if profileID == "" {
		return nil, ErrInvalidInput
	}
	return s.preferences.ListByProfileID(ctx, profileID)
}

func (s *ActivityService) RemovePreference(ctx context.Context, profileID string, genreID int) error {
	if profileID == "" || genreID <= 0 {
		return ErrInvalidInput
	}
	return s.preferences.Remove(ctx, profileID, genreID)
}

// RecordHistory guarda o pisa la posicion de reproduccion del par
// (perfil, contenido).
func (s *ActivityService) RecordHistory(ctx context.Context, profileID, watchableID string, timeStopped int) (domain.WatchHistoryEntry, error) {
	if profileID == "" || watchableID == "" || timeStopped < 0 {
		return domain.WatchHistoryEntry{}, ErrInvalidInput
	}
	entry := domain.WatchHistoryEntry{
		ProfileID:   profileID,
		WatchableID: watchableID,
		TimeStopped: timeStopped,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.history.Upsert(ctx, entry); err != nil {
		return domain.WatchHistoryEntry{}, err
	}
	return entry, nil
}

func (s *ActivityService) ListHistory(ctx context.Context, profileID string) ([]domain.WatchHistoryEntry, error) {
	if profileID == "" {
		return nil, ErrInvalidInput
	}
	return s.history.ListByProfileID(ctx, profileID)
}

func (s *ActivityService) UpdateHistoryPosition(ctx context.Context, profileID, watchableID string, timeStopped int) (domain.WatchHistoryEntry, error) {
	if profileID == "" || watchableID == "" || timeStopped < 0 {
		return domain.WatchHistoryEntry{}, ErrInvalidInput
	}
	entry, err := s.history.UpdatePosition(ctx, profileID, watchableID, timeStopped)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WatchHistoryEntry{}, ErrHistoryEntryNotFound
	}
	return entry, err
}

func (s *ActivityService) DeleteHistory(ctx context.Context, profileID, watchableID string) error {
	if profileID == "" || watchableID == "" {
		return ErrInvalidInput
	}
	err := s.history.Delete(ctx, profileID, watchableID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrHistoryEntryNotFound
	}
	return err
}

// AddToWatchlist es idempotente igual que AddPreference.
func (s *ActivityService) AddToWatchlist(ctx context.Context, profileID, watchableID string) error {
	if profileID == "" || watchableID == "" {
		return ErrInvalidInput
	}
	return s.watchlist.Add(ctx, domain.WatchlistEntry{
		ProfileID:   profileID,
		WatchableID: watchableID,
		AddedAt:     time.Now().UTC(),
	})
}

func (s *ActivityService) ListWatchlist(ctx context.Context, profileID string) ([]domain.WatchlistEntry, error) {
	if profileID == "" {
		return nil, ErrInvalidInput
	}
	return s.watchlist.ListByProfileID(ctx, profileID)
}

func (s *ActivityService) RemoveFromWatchlist(ctx context.Context, profileID, watchableID string) error {
	if profileID == "" || watchableID == "" {
		return ErrInvalidInput
	}
	return s.watchlist.Remove(ctx, profileID, watchableID)
}
