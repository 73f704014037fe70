package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.usersByID[id], nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(m.usersByID))
	for _, u := range m.usersByID {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) Update(_ context.Context, id string, update domain.UserUpdate, passwordHash *string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	if update.Email != nil {
		delete(m.usersByEmail, user.Email)
		user.Email = *update.Email
		m.usersByEmail[user.Email] = id
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	m.usersByID[id] = user
	return user, nil
}

func (m *mockUserRepo) DeleteCascade(_ context.Context, id string) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(m.usersByEmail, user.Email)
	delete(m.usersByID, id)
	return nil
}

func (m *mockUserRepo) IncrementFailedLogins(_ context.Context, _ string) error { return nil }
func (m *mockUserRepo) ResetFailedLogins(_ context.Context, _ string) error    { return nil }

func (m *mockUserRepo) FillOAuthFields(_ context.Context, email, name, picture string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	user := m.usersByID[id]
	if user.Name == "" {
		user.Name = name
	}
	if user.ProfilePicture == "" {
		user.ProfilePicture = picture
	}
	m.usersByID[id] = user
	return user, nil
}

type mockProfileRepo struct {
	profiles []domain.Profile
}

func (m *mockProfileRepo) Create(_ context.Context, profile domain.Profile) error {
	m.profiles = append(m.profiles, profile)
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (domain.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Profile{}, pgx.ErrNoRows
}

func (m *mockProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	return m.profiles, nil
}

func (m *mockProfileRepo) ListByUserID(_ context.Context, userID string) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range m.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProfileRepo) ListByUserEmail(_ context.Context, _ string) ([]domain.Profile, error) {
	return m.profiles, nil
}

func (m *mockProfileRepo) Update(_ context.Context, _ string, _ domain.ProfileUpdate) (domain.Profile, error) {
	return domain.Profile{}, pgx.ErrNoRows
}

func (m *mockProfileRepo) Delete(_ context.Context, _ string) error {
	return pgx.ErrNoRows
}

type mockInvitationRepo struct {
	invitations map[string]bool
}

func newMockInvitationRepo() *mockInvitationRepo {
	return &mockInvitationRepo{invitations: make(map[string]bool)}
}

func (m *mockInvitationRepo) Exists(_ context.Context, invitedEmail, invitedBy string) (bool, error) {
	return m.invitations[invitedEmail+"|"+invitedBy], nil
}

func (m *mockInvitationRepo) Create(_ context.Context, inv domain.Invitation) error {
	m.invitations[inv.InvitedEmail+"|"+inv.InvitedByUserID] = true
	return nil
}

type noopEmailSender struct{}

func (noopEmailSender) SendInvitation(_ context.Context, _, _ string) error { return nil }

func newTestRouterEnv(t *testing.T) (*gin.Engine, *mockUserRepo, *service.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	users := newMockUserRepo()
	profiles := &mockProfileRepo{}
	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour)
	userSvc := service.NewUserService(logger, users, profiles, newMockInvitationRepo(), noopEmailSender{}, nil)
	userH := NewUserHandler(logger, userSvc, jwtSvc)

	r := gin.New()
	r.POST("/users/register", userH.Register)
	r.POST("/users/login", userH.Login)
	r.POST("/users/login/oauth", userH.OAuthLogin)
	r.POST("/users/invite", userH.Invite)
	r.POST("/auth/oauth", userH.OAuthUpsert)
	r.POST("/auth/refresh", userH.RefreshToken)
	r.GET("/users/:id", userH.GetUser)
	r.DELETE("/users/:id", userH.DeleteUser)
	return r, users, jwtSvc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]any)
	if !ok || user["email"] != "ana@example.com" {
		t.Fatalf("unexpected body: %v", body)
	}
	if user["id"] == "" || user["id"] == nil {
		t.Fatalf("expected generated id in response")
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	payload := gin.H{"email": "ana@example.com", "password": "secret123"}
	if w := doJSON(t, r, http.MethodPost, "/users/register", payload); w.Code != http.StatusCreated {
		t.Fatalf("first register: %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/users/register", payload); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", w.Code)
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{"email": "not-an-email", "password": "secret123"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/users/register", gin.H{"email": "ana@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, _, jwtSvc := newTestRouterEnv(t)

	if w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{"email": "ana@example.com", "password": "secret123"}); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/users/login", gin.H{"email": "ana@example.com", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected access token in response: %v", body)
	}
	if refresh, _ := body["refresh_token"].(string); refresh == "" {
		t.Fatalf("expected refresh token in response")
	}

	claims, err := jwtSvc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	if w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{"email": "ana@example.com", "password": "secret123"}); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}

	wrong := doJSON(t, r, http.MethodPost, "/users/login", gin.H{"email": "ana@example.com", "password": "nope12345"})
	unknown := doJSON(t, r, http.MethodPost, "/users/login", gin.H{"email": "nadie@example.com", "password": "secret123"})
	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both cases, got %d and %d", wrong.Code, unknown.Code)
	}
	if decodeBody(t, wrong)["message"] != decodeBody(t, unknown)["message"] {
		t.Fatalf("wrong password and unknown email should not be distinguishable")
	}
}

func TestOAuthLoginEndpointUnknownUser(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	w := doJSON(t, r, http.MethodPost, "/users/login/oauth", gin.H{"email": "nadie@example.com"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOAuthUpsertEndpointIssuesTokens(t *testing.T) {
	r, users, _ := newTestRouterEnv(t)

	w := doJSON(t, r, http.MethodPost, "/auth/oauth", gin.H{
		"email":   "ana@example.com",
		"name":    "Ana",
		"picture": "http://pic",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if token, _ := body["token"].(string); token == "" {
		t.Fatalf("expected token in upsert response")
	}
	if len(users.usersByID) != 1 {
		t.Fatalf("expected account created, got %d", len(users.usersByID))
	}

	// Repetir la llamada no duplica la cuenta.
	if w := doJSON(t, r, http.MethodPost, "/auth/oauth", gin.H{"email": "ana@example.com"}); w.Code != http.StatusOK {
		t.Fatalf("second upsert: %d", w.Code)
	}
	if len(users.usersByID) != 1 {
		t.Fatalf("upsert duplicated the account")
	}
}

func TestRefreshEndpointRotates(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	if w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{"email": "ana@example.com", "password": "secret123"}); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}
	login := doJSON(t, r, http.MethodPost, "/users/login", gin.H{"email": "ana@example.com", "password": "secret123"})
	refresh, _ := decodeBody(t, login)["refresh_token"].(string)

	first := doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": refresh})
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", first.Code, first.Body.String())
	}
	if newRefresh, _ := decodeBody(t, first)["refresh_token"].(string); newRefresh == refresh {
		t.Fatalf("refresh did not rotate the token")
	}

	// El refresh usado quedo revocado.
	second := doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": refresh})
	if second.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on reuse, got %d", second.Code)
	}
}

func TestInviteEndpointDuplicate(t *testing.T) {
	r, users, _ := newTestRouterEnv(t)

	if w := doJSON(t, r, http.MethodPost, "/users/register", gin.H{"email": "ana@example.com", "password": "secret123"}); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}
	var inviterID string
	for id := range users.usersByID {
		inviterID = id
	}

	payload := gin.H{"invited_user_email": "amiga@example.com", "invite_by_user_id": inviterID}
	if w := doJSON(t, r, http.MethodPost, "/users/invite", payload); w.Code != http.StatusCreated {
		t.Fatalf("first invite: %d (%s)", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/users/invite", payload); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate invite, got %d", w.Code)
	}
}

func TestGetUserEndpointNotFound(t *testing.T) {
	r, _, _ := newTestRouterEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/users/missing-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
