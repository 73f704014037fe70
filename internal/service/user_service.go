package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/email"
	"stream-catalog/internal/repository"
)

// UserService es dueño del ciclo de vida de las cuentas: registro,
// login, upsert OAuth, invitaciones y baja con cascada.
type UserService struct {
	logger       *zap.Logger
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	invitations  repository.InvitationRepository
	emailSender  email.Sender
	loginLimiter RateLimiter
}

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvitationExists   = errors.New("invitation already exists")
	ErrRateLimited        = errors.New("rate limited")
)

const (
	defaultSubscriptionType = 1
	loginAttemptWindow      = 10 * time.Minute
	loginAttemptMax         = 10
	oauthFallbackName       = "Unknown"
)

func NewUserService(
	logger *zap.Logger,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	invitations repository.InvitationRepository,
	emailSender email.Sender,
	loginLimiter RateLimiter,
) *UserService {
	if loginLimiter == nil {
		loginLimiter = NewLoginRateLimiter(loginAttemptWindow, loginAttemptMax)
	}
	return &UserService{
		logger:       logger,
		users:        users,
		profiles:     profiles,
		invitations:  invitations,
		emailSender:  emailSender,
		loginLimiter: loginLimiter,
	}
}

type RegisterInput struct {
	Email               string
	Password            string
	SubscriptionTypeID  *int
	FailedLoginAttempts *int
}

// Register crea una cuenta nueva con password hasheada. El chequeo de
// duplicado ocurre antes de hashear; el hash nunca sale del servicio.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	emailAddr := normalizeEmail(input.Email)
	password := strings.TrimSpace(input.Password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidInput
	}
	if !strings.Contains(emailAddr, "@") {
		return domain.User{}, ErrInvalidEmail
	}

	_, err := s.users.GetByEmail(ctx, emailAddr)
	if err == nil {
		return domain.User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:                 uuid.NewString(),
		Email:              emailAddr,
		PasswordHash:       string(hashBytes),
		SubscriptionTypeID: defaultSubscriptionType,
		CreatedAt:          time.Now().UTC(),
	}
	if input.SubscriptionTypeID != nil {
		user.SubscriptionTypeID = *input.SubscriptionTypeID
	}
	if input.FailedLoginAttempts != nil {
		user.FailedLoginAttempts = *input.FailedLoginAttempts
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login verifica credenciales y devuelve la cuenta junto a sus perfiles.
// Email desconocido y password incorrecta producen el mismo error, sin
// distinguir el caso ante el cliente.
func (s *UserService) Login(ctx context.Context, emailAddr, password string) (domain.User, []domain.Profile, error) {
	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, nil, ErrInvalidCredentials
	}

	if s.loginLimiter != nil && !s.loginLimiter.Allow(emailAddr) {
		return domain.User{}, nil, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, nil, ErrInvalidCredentials
		}
		return domain.User{}, nil, err
	}

	// Cuentas creadas solo via OAuth no tienen credencial propia.
	if user.PasswordHash == "" {
		return domain.User{}, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.bumpFailedLogins(ctx, emailAddr)
		return domain.User{}, nil, ErrInvalidCredentials
	}

	if err := s.users.ResetFailedLogins(ctx, emailAddr); err != nil && s.logger != nil {
		s.logger.Warn("reset failed logins", zap.Error(err), zap.String("email", emailAddr))
	}

	profiles, err := s.profiles.ListByUserEmail(ctx, emailAddr)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, profiles, nil
}

// OAuthLogin emite sesion para una cuenta ya existente, despues de que
// el proveedor externo verifico la identidad.
func (s *UserService) OAuthLogin(ctx context.Context, emailAddr string) (domain.User, []domain.Profile, error) {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.User{}, nil, ErrInvalidEmail
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, nil, ErrUserNotFound
		}
		return domain.User{}, nil, err
	}

	profiles, err := s.profiles.ListByUserEmail(ctx, emailAddr)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, profiles, nil
}

type OAuthInput struct {
	Email   string
	Name    string
	Picture string
}

// UpsertOAuthUser crea la cuenta si no existe y, si existe, completa
// solo los campos vacios. Repetir la llamada con el mismo perfil no
// duplica cuentas ni pisa valores ya establecidos.
func (s *UserService) UpsertOAuthUser(ctx context.Context, input OAuthInput) (domain.User, error) {
	emailAddr := normalizeEmail(input.Email)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = oauthFallbackName
	}
	picture := strings.TrimSpace(input.Picture)

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err == nil {
		if user.Name != "" && user.ProfilePicture != "" {
			return user, nil
		}
		return s.users.FillOAuthFields(ctx, emailAddr, name, picture)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	user = domain.User{
		ID:                 uuid.NewString(),
		Email:              emailAddr,
		Name:               name,
		ProfilePicture:     picture,
		SubscriptionTypeID: defaultSubscriptionType,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Invite registra una invitacion unica por par (invitador, invitado) y
// notifica por correo sin bloquear la operacion si el envio falla.
func (s *UserService) Invite(ctx context.Context, inviterID, inviteeEmail string) error {
	inviteeEmail = normalizeEmail(inviteeEmail)
	if inviterID == "" || inviteeEmail == "" {
		return ErrInvalidInput
	}

	exists, err := s.invitations.Exists(ctx, inviteeEmail, inviterID)
	if err != nil {
		return err
	}
	if exists {
		return ErrInvitationExists
	}

	inv := domain.Invitation{
		InvitedEmail:    inviteeEmail,
		InvitedByUserID: inviterID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		return err
	}

	if s.emailSender != nil {
		inviter, err := s.users.GetByID(ctx, inviterID)
		if err == nil {
			if err := s.emailSender.SendInvitation(ctx, inviteeEmail, inviter.Email); err != nil && s.logger != nil {
				s.logger.Warn("send invitation email", zap.Error(err), zap.String("email", inviteeEmail))
			}
		}
	}
	return nil
}

// UpdateUser aplica cambios parciales; una password nueva se vuelve a
// hashear y nunca se guarda en claro.
func (s *UserService) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error) {
	if id == "" {
		return domain.User{}, ErrInvalidInput
	}
	if update.Email != nil {
		normalized := normalizeEmail(*update.Email)
		if normalized == "" {
			return domain.User{}, ErrInvalidEmail
		}
		update.Email = &normalized
	}

	var passwordHash *string
	if update.Password != nil && strings.TrimSpace(*update.Password) != "" {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(*update.Password)), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		hashed := string(hashBytes)
		passwordHash = &hashed
	}

	user, err := s.users.Update(ctx, id, update, passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// DeleteUser elimina la cuenta y todos sus perfiles en una sola unidad
// de trabajo; si la cuenta no existe nada queda confirmado.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	err := s.users.DeleteCascade(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	return err
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// bumpFailedLogins incrementa el contador de intentos fallidos sin
// bloquear la respuesta de login.
func (s *UserService) bumpFailedLogins(ctx context.Context, emailAddr string) {
	if err := s.users.IncrementFailedLogins(ctx, emailAddr); err != nil && s.logger != nil {
		s.logger.Warn("increment failed logins", zap.Error(err), zap.String("email", emailAddr))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
