package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/service"
)

// SubtitleHandler expone los subtitulos por contenido e idioma.
type SubtitleHandler struct {
	logger       *zap.Logger
	subtitleServ *service.SubtitleService
}

func NewSubtitleHandler(logger *zap.Logger, subtitleServ *service.SubtitleService) *SubtitleHandler {
	return &SubtitleHandler{logger: logger, subtitleServ: subtitleServ}
}

// Create maneja POST /subtitles.
func (h *SubtitleHandler) Create(c *gin.Context) {
	var req struct {
		WatchableID string `json:"watchable_id" binding:"required"`
		LanguageID  int    `json:"language_id" binding:"required"`
		Link        string `json:"link" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Watchable id, language id and link are required."})
		return
	}

	sub, err := h.subtitleServ.Create(c.Request.Context(), req.WatchableID, req.LanguageID, req.Link)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Watchable id, language id and link are required."})
			return
		}
		h.logger.Error("create subtitle failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to create subtitle."})
		return
	}

	respond(c, http.StatusCreated, M{
		"message":  "Subtitle created successfully.",
		"subtitle": sub,
	})
}

// ListByWatchable maneja GET /subtitles/watchable/:watchable_id.
func (h *SubtitleHandler) ListByWatchable(c *gin.Context) {
	subs, err := h.subtitleServ.ListByWatchable(c.Request.Context(), c.Param("watchable_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Watchable id is required."})
			return
		}
		h.logger.Error("list subtitles failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve subtitles."})
		return
	}
	respond(c, http.StatusOK, M{"subtitles": subs})
}

// Update maneja PUT /subtitles/:watchable_id/:language_id.
func (h *SubtitleHandler) Update(c *gin.Context) {
	languageID, err := strconv.Atoi(c.Param("language_id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Language id must be numeric."})
		return
	}

	var req struct {
		Link string `json:"link" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Link is required."})
		return
	}

	sub, err := h.subtitleServ.UpdateLink(c.Request.Context(), c.Param("watchable_id"), languageID, req.Link)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubtitleNotFound):
			respond(c, http.StatusNotFound, M{"message": "Subtitle not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Link is required."})
		default:
			h.logger.Error("update subtitle failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to update subtitle."})
		}
		return
	}

	respond(c, http.StatusOK, M{
		"message":  "Subtitle updated successfully.",
		"subtitle": sub,
	})
}

// Delete maneja DELETE /subtitles/:watchable_id/:language_id.
func (h *SubtitleHandler) Delete(c *gin.Context) {
	languageID, err := strconv.Atoi(c.Param("language_id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Language id must be numeric."})
		return
	}

	if err := h.subtitleServ.Delete(c.Request.Context(), c.Param("watchable_id"), languageID); err != nil {
		switch {
		case errors.Is(err, service.ErrSubtitleNotFound):
			respond(c, http.StatusNotFound, M{"message": "Subtitle not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Watchable id and language id are required."})
		default:
			h.logger.Error("delete subtitle failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to delete subtitle."})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
