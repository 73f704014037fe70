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

// SubtitleService administra los subtitulos de cada contenido.
type SubtitleService struct {
	logger    *zap.Logger
	subtitles repository.SubtitleRepository
}

var ErrSubtitleNotFound = errors.New("subtitle not found")

func NewSubtitleService(logger *zap.Logger, subtitles repository.SubtitleRepository) *SubtitleService {
	return &SubtitleService{logger: logger, subtitles: subtitles}
}

func (s *SubtitleService) Create(ctx context.Context, watchableID string, languageID int, link string) (domain.Subtitle, error) {
	link = strings.TrimSpace(link)
	if watchableID == "" || languageID <= 0 || link == "" {
		return domain.Subtitle{}, ErrInvalidInput
	}
	sub := domain.Subtitle{
		WatchableID: watchableID,
		LanguageID:  languageID,
		Link:        link,
	}
	if err := s.subtitles.Create(ctx, sub); err != nil {
		return domain.Subtitle{}, err
	}
	return sub, nil
}

func (s *SubtitleService) ListByWatchable(ctx context.Context, watchableID string) ([]domain.Subtitle, error) {
	if watchableID == "" {
		return nil, ErrInvalidInput
	}
	return s.subtitles.ListByWatchableID(ctx, watchableID)
}

func (s *SubtitleService) UpdateLink(ctx context.Context, watchableID string, languageID int, link string) (domain.Subtitle, error) {
	link = strings.TrimSpace(link)
	if watchableID == "" || languageID <= 0 || link == "" {
		return domain.Subtitle{}, ErrInvalidInput
	}
	sub, err := s.subtitles.UpdateLink(ctx, watchableID, languageID, link)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Subtitle{}, ErrSubtitleNotFound
	}
	return sub, err
}

func (s *SubtitleService) Delete(ctx context.Context, watchableID string, languageID int) error {
	if watchableID == "" || languageID <= 0 {
		return ErrInvalidInput
	}
	err := s.subtitles.Delete(ctx, watchableID, languageID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSubtitleNotFound
	}
	return err
}
