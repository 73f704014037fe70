package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/service"
)

// ActivityHandler expone preferencias, historial y lista de pendientes
// de cada perfil.
type ActivityHandler struct {
	logger       *zap.Logger
	activityServ *service.ActivityService
}

func NewActivityHandler(logger *zap.Logger, activityServ *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{logger: logger, activityServ: activityServ}
}

// AddPreference maneja POST /preferences.
func (h *ActivityHandler) AddPreference(c *gin.Context) {
	var req struct {
		ProfileID string `json:"profile_id" binding:"required"`
		GenreID   int    `json:"genre_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Profile id and genre id are required."})
		return
	}

	if err := h.activityServ.AddPreference(c.Request.Context(), req.ProfileID, req.GenreID); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id and genre id are required."})
			return
		}
		h.logger.Error("add preference failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to add preference."})
		return
	}

	respond(c, http.StatusCreated, M{"message": "Preference added successfully."})
}

// ListPreferences maneja GET /preferences/profile/:profile_id.
func (h *ActivityHandler) ListPreferences(c *gin.Context) {
	prefs, err := h.activityServ.ListPreferences(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id is required."})
			return
		}
		h.logger.Error("list preferences failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve preferences."})
		return
	}
	respond(c, http.StatusOK, M{"preferences": prefs})
}

// RemovePreference maneja DELETE /preferences/:profile_id/:genre_id.
func (h *ActivityHandler) RemovePreference(c *gin.Context) {
	genreID, err := strconv.Atoi(c.Param("genre_id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Genre id must be numeric."})
		return
	}

	if err := h.activityServ.RemovePreference(c.Request.Context(), c.Param("profile_id"), genreID); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id and genre id are required."})
			return
		}
		h.logger.Error("remove preference failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to remove preference."})
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordHistory maneja POST /watchhistory.
func (h *ActivityHandler) RecordHistory(c *gin.Context) {
	var req struct {
		ProfileID   string `json:"profile_id" binding:"required"`
		WatchableID string `json:"watchable_id" binding:"required"`
		TimeStopped int    `json:"time_stopped" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Profile id and watchable id are required."})
		return
	}

	entry, err := h.activityServ.RecordHistory(c.Request.Context(), req.ProfileID, req.WatchableID, req.TimeStopped)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id and watchable id are required."})
			return
		}
		h.logger.Error("record history failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to record watch history."})
		return
	}

	respond(c, http.StatusCreated, M{
		"message": "Watch history saved successfully.",
		"entry":   entry,
	})
}

// ListHistory maneja GET /watchhistory/profile/:profile_id.
func (h *ActivityHandler) ListHistory(c *gin.Context) {
	entries, err := h.activityServ.ListHistory(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id is required."})
			return
		}
		h.logger.Error("list history failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve watch history."})
		return
	}
	respond(c, http.StatusOK, M{"history": entries})
}

// UpdateHistory maneja PUT /watchhistory/:profile_id/:watchable_id.
func (h *ActivityHandler) UpdateHistory(c *gin.Context) {
	var req struct {
		TimeStopped int `json:"time_stopped" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Time stopped is required."})
		return
	}

	entry, err := h.activityServ.UpdateHistoryPosition(c.Request.Context(), c.Param("profile_id"), c.Param("watchable_id"), req.TimeStopped)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHistoryEntryNotFound):
			respond(c, http.StatusNotFound, M{"message": "Watch history entry not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Time stopped is required."})
		default:
			h.logger.Error("update history failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to update watch history."})
		}
		return
	}

	respond(c, http.StatusOK, M{
		"message": "Watch history updated successfully.",
		"entry":   entry,
	})
}

// DeleteHistory maneja DELETE /watchhistory/:profile_id/:watchable_id.
func (h *ActivityHandler) DeleteHistory(c *gin.Context) {
	err := h.activityServ.DeleteHistory(c.Request.Context(), c.Param("profile_id"), c.Param("watchable_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHistoryEntryNotFound):
			respond(c, http.StatusNotFound, M{"message": "Watch history entry not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Profile id and watchable id are required."})
		default:
			h.logger.Error("delete history failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to delete watch history."})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// AddToWatchlist maneja POST /watchlist.
func (h *ActivityHandler) AddToWatchlist(c *gin.Context) {
	var req struct {
		ProfileID   string `json:"profile_id" binding:"required"`
		WatchableID string `json:"watchable_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Profile id and watchable id are required."})
		return
	}

	if err := h.activityServ.AddToWatchlist(c.Request.Context(), req.ProfileID, req.WatchableID); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id and watchable id are required."})
			return
		}
		h.logger.Error("add to watchlist failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to add to watchlist."})
		return
	}

	respond(c, http.StatusCreated, M{"message": "Added to watchlist successfully."})
}

// ListWatchlist maneja GET /watchlist/profile/:profile_id.
func (h *ActivityHandler) ListWatchlist(c *gin.Context) {
	entries, err := h.activityServ.ListWatchlist(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id is required."})
			return
		}
		h.logger.Error("list watchlist failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve watchlist."})
		return
	}
	respond(c, http.StatusOK, M{"watchlist": entries})
}

// RemoveFromWatchlist maneja DELETE /watchlist/:profile_id/:watchable_id.
func (h *ActivityHandler) RemoveFromWatchlist(c *gin.Context) {
	err := h.activityServ.RemoveFromWatchlist(c.Request.Context(), c.Param("profile_id"), c.Param("watchable_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Profile id and watchable id are required."})
			return
		}
		h.logger.Error("remove from watchlist failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to remove from watchlist."})
		return
	}
	c.Status(http.StatusNoContent)
}
