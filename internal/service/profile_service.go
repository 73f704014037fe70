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

// ProfileService administra los perfiles de visualizacion de una cuenta.
type ProfileService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

var ErrProfileNotFound = errors.New("profile not found")

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository, users repository.UserRepository) *ProfileService {
	return &ProfileService{logger: logger, profiles: profiles, users: users}
}

type CreateProfileInput struct {
	UserID     string
	Name       string
	PhotoLink  string
	Age        int
	LanguageID int
}

func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (domain.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if input.UserID == "" || name == "" || input.Age < 0 {
		return domain.Profile{}, ErrInvalidInput
	}

	// La cuenta dueña tiene que existir antes de colgarle un perfil.
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrUserNotFound
		}
		return domain.Profile{}, err
	}

	p := domain.Profile{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		Name:       name,
		PhotoLink:  strings.TrimSpace(input.PhotoLink),
		Age:        input.Age,
		LanguageID: input.LanguageID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	return p, err
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *ProfileService) ListByUser(ctx context.Context, userID string) ([]domain.Profile, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.profiles.ListByUserID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, id string, update domain.ProfileUpdate) (domain.Profile, error) {
	p, err := s.profiles.Update(ctx, id, update)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	return p, err
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	err := s.profiles.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}
	return err
}
