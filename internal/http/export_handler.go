package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/service"
)

// ExportHandler sirve volcados completos de usuarios y perfiles, con la
// misma negociacion JSON/XML del resto de la API.
type ExportHandler struct {
	logger      *zap.Logger
	userServ    *service.UserService
	profileServ *service.ProfileService
}

func NewExportHandler(logger *zap.Logger, userServ *service.UserService, profileServ *service.ProfileService) *ExportHandler {
	return &ExportHandler{logger: logger, userServ: userServ, profileServ: profileServ}
}

// Users maneja GET /exports/users.
func (h *ExportHandler) Users(c *gin.Context) {
	users, err := h.userServ.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("export users failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to export users."})
		return
	}
	respond(c, http.StatusOK, M{
		"count": len(users),
		"users": users,
	})
}

// Profiles maneja GET /exports/profiles.
func (h *ExportHandler) Profiles(c *gin.Context) {
	profiles, err := h.profileServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("export profiles failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to export profiles."})
		return
	}
	respond(c, http.StatusOK, M{
		"count":    len(profiles),
		"profiles": profiles,
	})
}
