package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/service"
)

// UserHandler mantiene dependencias para endpoints de cuentas y sesion.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
	jwtServ  *service.JWTService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService, jwtServ *service.JWTService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
		jwtServ:  jwtServ,
	}
}

// Register maneja POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Email               string `json:"email" binding:"required,email"`
		Password            string `json:"password" binding:"required,min=6"`
		SubscriptionTypeID  *int   `json:"subscription_type_id"`
		FailedLoginAttempts *int   `json:"failed_login_attempts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Email and password are required.", "details": err.Error()})
		return
	}

	user, err := h.userServ.Register(c.Request.Context(), service.RegisterInput{
		Email:               req.Email,
		Password:            req.Password,
		SubscriptionTypeID:  req.SubscriptionTypeID,
		FailedLoginAttempts: req.FailedLoginAttempts,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respond(c, http.StatusConflict, M{"message": "Email is already registered."})
		case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidEmail):
			respond(c, http.StatusBadRequest, M{"message": "Email and password are required."})
		default:
			h.logger.Error("register failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Server error"})
		}
		return
	}

	respond(c, http.StatusCreated, M{
		"message": "User registered successfully.",
		"user":    M{"id": user.ID, "email": user.Email},
	})
}

// Login maneja POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Email and password are required."})
		return
	}

	user, profiles, err := h.userServ.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respond(c, http.StatusUnauthorized, M{"message": "Invalid email or password."})
		case errors.Is(err, service.ErrRateLimited):
			respond(c, http.StatusTooManyRequests, M{"message": "Too many login attempts."})
		default:
			h.logger.Error("login failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Server error"})
		}
		return
	}

	tokens, err := h.issueTokens(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Could not issue token."})
		return
	}

	respond(c, http.StatusOK, M{
		"message":       "Login successful!",
		"token":         tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          profiles,
	})
}

// OAuthLogin maneja POST /users/login/oauth. El email llega despues de
// que el proveedor externo verifico la identidad.
func (h *UserHandler) OAuthLogin(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid oauth login request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Email is required."})
		return
	}

	user, profiles, err := h.userServ.OAuthLogin(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respond(c, http.StatusNotFound, M{"message": "OAuth user not found."})
		case errors.Is(err, service.ErrInvalidEmail):
			respond(c, http.StatusBadRequest, M{"message": "Email is required."})
		default:
			h.logger.Error("oauth login failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Server error"})
		}
		return
	}

	tokens, err := h.issueTokens(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Could not issue token."})
		return
	}

	respond(c, http.StatusOK, M{
		"message":       "OAuth login successful!",
		"token":         tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          profiles,
	})
}

// OAuthUpsert maneja POST /auth/oauth: crea o completa la cuenta con el
// perfil que entrega el proveedor y emite sesion.
func (h *UserHandler) OAuthUpsert(c *gin.Context) {
	var req struct {
		Email   string `json:"email" binding:"required,email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid oauth upsert request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Email is required."})
		return
	}

	user, err := h.userServ.UpsertOAuthUser(c.Request.Context(), service.OAuthInput{
		Email:   req.Email,
		Name:    req.Name,
		Picture: req.Picture,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			respond(c, http.StatusBadRequest, M{"message": "Email is required."})
			return
		}
		h.logger.Error("oauth upsert failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Server error"})
		return
	}

	tokens, err := h.issueTokens(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Could not issue token."})
		return
	}

	respond(c, http.StatusOK, M{
		"message":       "OAuth login successful!",
		"token":         tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          user,
	})
}

// Invite maneja POST /users/invite.
func (h *UserHandler) Invite(c *gin.Context) {
	var req struct {
		InvitedUserEmail string `json:"invited_user_email" binding:"required,email"`
		InviteByUserID   string `json:"invite_by_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid invite request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Invited email and inviter id are required."})
		return
	}

	err := h.userServ.Invite(c.Request.Context(), req.InviteByUserID, req.InvitedUserEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationExists):
			respond(c, http.StatusConflict, M{"message": "Invitation already sent."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Invited email and inviter id are required."})
		default:
			h.logger.Error("invite failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Server error"})
		}
		return
	}

	respond(c, http.StatusCreated, M{"message": "Invitation sent successfully."})
}

// RefreshToken maneja POST /auth/refresh.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Refresh token is required."})
		return
	}
	if h.jwtServ == nil {
		respond(c, http.StatusInternalServerError, M{"message": "jwt not configured"})
		return
	}
	tokens, err := h.jwtServ.RefreshPair(req.RefreshToken)
	if err != nil {
		respond(c, http.StatusUnauthorized, M{"message": "Invalid token."})
		return
	}
	respond(c, http.StatusOK, M{
		"token":         tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// Logout maneja POST /auth/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Refresh token is required."})
		return
	}
	if h.jwtServ == nil {
		respond(c, http.StatusInternalServerError, M{"message": "jwt not configured"})
		return
	}
	_ = h.jwtServ.RevokeRefresh(req.RefreshToken)
	c.Status(http.StatusNoContent)
}

// ListUsers maneja GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userServ.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve users."})
		return
	}
	respond(c, http.StatusOK, M{"users": users})
}

// GetUser maneja GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userServ.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond(c, http.StatusNotFound, M{"message": "User not found."})
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve user."})
		return
	}
	respond(c, http.StatusOK, M{"user": user})
}

// UpdateUser maneja PUT /users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req struct {
		Email               *string `json:"email" binding:"omitempty,email"`
		Password            *string `json:"password" binding:"omitempty,min=6"`
		SubscriptionTypeID  *int    `json:"subscription_type_id"`
		FailedLoginAttempts *int    `json:"failed_login_attempts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update user request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Invalid request.", "details": err.Error()})
		return
	}

	user, err := h.userServ.UpdateUser(c.Request.Context(), c.Param("id"), domain.UserUpdate{
		Email:               req.Email,
		Password:            req.Password,
		SubscriptionTypeID:  req.SubscriptionTypeID,
		FailedLoginAttempts: req.FailedLoginAttempts,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respond(c, http.StatusNotFound, M{"message": "User not found."})
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Invalid request."})
		default:
			h.logger.Error("update user failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to update user."})
		}
		return
	}

	respond(c, http.StatusOK, M{
		"message": "User updated successfully.",
		"user":    user,
	})
}

// DeleteUser maneja DELETE /users/:id. Borra la cuenta y sus perfiles
// en una sola transaccion.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	err := h.userServ.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respond(c, http.StatusNotFound, M{"message": "User not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "User id is required."})
		default:
			h.logger.Error("delete user failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to delete user."})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) issueTokens(user domain.User) (service.TokenPair, error) {
	if h.jwtServ == nil {
		return service.TokenPair{}, errors.New("jwt not configured")
	}
	return h.jwtServ.GeneratePair(user)
}
