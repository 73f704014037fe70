package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/service"
)

// ProfileHandler expone los perfiles de visualizacion.
type ProfileHandler struct {
	logger      *zap.Logger
	profileServ *service.ProfileService
}

func NewProfileHandler(logger *zap.Logger, profileServ *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{logger: logger, profileServ: profileServ}
}

// Create maneja POST /profiles.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req struct {
		UserID     string `json:"user_id" binding:"required"`
		Name       string `json:"profile_name" binding:"required"`
		PhotoLink  string `json:"profile_photo_link"`
		Age        int    `json:"age" binding:"gte=0"`
		LanguageID int    `json:"language_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create profile request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "User id and profile name are required."})
		return
	}

	profile, err := h.profileServ.Create(c.Request.Context(), service.CreateProfileInput{
		UserID:     req.UserID,
		Name:       req.Name,
		PhotoLink:  req.PhotoLink,
		Age:        req.Age,
		LanguageID: req.LanguageID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respond(c, http.StatusNotFound, M{"message": "User not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "User id and profile name are required."})
		default:
			h.logger.Error("create profile failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to create profile."})
		}
		return
	}

	respond(c, http.StatusCreated, M{
		"message": "Profile created successfully.",
		"profile": profile,
	})
}

// List maneja GET /profiles.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve profiles."})
		return
	}
	respond(c, http.StatusOK, M{"profiles": profiles})
}

// Get maneja GET /profiles/:id.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Profile not found."})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve profile."})
		return
	}
	respond(c, http.StatusOK, M{"profile": profile})
}

// ListByUser maneja GET /profiles/user/:user_id.
func (h *ProfileHandler) ListByUser(c *gin.Context) {
	profiles, err := h.profileServ.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "User id is required."})
			return
		}
		h.logger.Error("list profiles by user failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve profiles."})
		return
	}
	respond(c, http.StatusOK, M{"profiles": profiles})
}

// Update maneja PUT /profiles/:id.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req struct {
		Name       *string `json:"profile_name"`
		PhotoLink  *string `json:"profile_photo_link"`
		Age        *int    `json:"age" binding:"omitempty,gte=0"`
		LanguageID *int    `json:"language_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update profile request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Invalid request."})
		return
	}

	profile, err := h.profileServ.Update(c.Request.Context(), c.Param("id"), domain.ProfileUpdate{
		Name:       req.Name,
		PhotoLink:  req.PhotoLink,
		Age:        req.Age,
		LanguageID: req.LanguageID,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Profile not found."})
			return
		}
		h.logger.Error("update profile failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to update profile."})
		return
	}

	respond(c, http.StatusOK, M{
		"message": "Profile updated successfully.",
		"profile": profile,
	})
}

// Delete maneja DELETE /profiles/:id.
func (h *ProfileHandler) Delete(c *gin.Context) {
	err := h.profileServ.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Profile not found."})
			return
		}
		h.logger.Error("delete profile failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to delete profile."})
		return
	}
	c.Status(http.StatusNoContent)
}
