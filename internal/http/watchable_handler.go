package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
	"stream-catalog/internal/service"
)

// WatchableHandler expone el catalogo de contenido. Las rutas /movies y
// /series comparten la implementacion y solo fijan el filtro de tipo.
type WatchableHandler struct {
	logger      *zap.Logger
	catalogServ *service.CatalogService
}

func NewWatchableHandler(logger *zap.Logger, catalogServ *service.CatalogService) *WatchableHandler {
	return &WatchableHandler{logger: logger, catalogServ: catalogServ}
}

// Create maneja POST /watchables.
func (h *WatchableHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		GenreID     int    `json:"genre_id" binding:"required"`
		Duration    int    `json:"duration" binding:"gte=0"`
		Season      *int   `json:"season"`
		Episode     *int   `json:"episode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create watchable request", zap.Error(err))
		respond(c, http.StatusBadRequest, M{"message": "Title and genre are required."})
		return
	}

	w, err := h.catalogServ.Create(c.Request.Context(), service.CreateWatchableInput{
		Title:       req.Title,
		Description: req.Description,
		GenreID:     req.GenreID,
		Duration:    req.Duration,
		Season:      req.Season,
		Episode:     req.Episode,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Title and genre are required."})
			return
		}
		h.logger.Error("create watchable failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to create watchable."})
		return
	}

	respond(c, http.StatusCreated, M{
		"message":   "Watchable created successfully.",
		"watchable": w,
	})
}

// Get maneja GET /watchables/:id.
func (h *WatchableHandler) Get(c *gin.Context) {
	w, err := h.catalogServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWatchableNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Watchable not found."})
			return
		}
		h.logger.Error("get watchable failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve watchable."})
		return
	}
	respond(c, http.StatusOK, M{"watchable": w})
}

// List devuelve el listado completo filtrado por tipo.
func (h *WatchableHandler) List(kind domain.WatchableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := h.catalogServ.List(c.Request.Context(), kind)
		if err != nil {
			h.logger.Error("list watchables failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve watchables."})
			return
		}
		respond(c, http.StatusOK, M{"watchables": ws})
	}
}

// SearchByTitle busca por titulo parcial, p. ej. GET /movies/search?title=.
func (h *WatchableHandler) SearchByTitle(kind domain.WatchableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := h.catalogServ.SearchByTitle(c.Request.Context(), kind, c.Query("title"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				respond(c, http.StatusBadRequest, M{"message": "Title query parameter is required."})
				return
			}
			h.logger.Error("search watchables failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to search watchables."})
			return
		}
		respond(c, http.StatusOK, M{"watchables": ws})
	}
}

// ListByGenre filtra por nombre de genero, p. ej. GET /movies/genre/:name.
func (h *WatchableHandler) ListByGenre(kind domain.WatchableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := h.catalogServ.ListByGenreName(c.Request.Context(), kind, c.Param("name"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				respond(c, http.StatusBadRequest, M{"message": "Genre name is required."})
				return
			}
			h.logger.Error("list watchables by genre failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve watchables."})
			return
		}
		respond(c, http.StatusOK, M{"watchables": ws})
	}
}

// Recommendations devuelve contenido segun las preferencias del perfil.
func (h *WatchableHandler) Recommendations(kind domain.WatchableKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := h.catalogServ.Recommendations(c.Request.Context(), kind, c.Param("profile_id"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				respond(c, http.StatusBadRequest, M{"message": "Profile id is required."})
				return
			}
			h.logger.Error("recommendations failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve recommendations."})
			return
		}
		respond(c, http.StatusOK, M{"watchables": ws})
	}
}

// SeriesBySeason maneja GET /series/:title/season/:season.
func (h *WatchableHandler) SeriesBySeason(c *gin.Context) {
	season, err := strconv.Atoi(c.Param("season"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Season must be numeric."})
		return
	}

	ws, err := h.catalogServ.GetSeriesByTitleAndSeason(c.Request.Context(), c.Param("title"), season)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Title and season are required."})
			return
		}
		h.logger.Error("series by season failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve episodes."})
		return
	}
	respond(c, http.StatusOK, M{"watchables": ws})
}

// Update maneja PUT /watchables/:id.
func (h *WatchableHandler) Update(c *gin.Context) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		GenreID     *int    `json:"genre_id"`
		Duration    *int    `json:"duration" binding:"omitempty,gte=0"`
		Season      *int    `json:"season"`
		Episode     *int    `json:"episode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Invalid request."})
		return
	}

	w, err := h.catalogServ.Update(c.Request.Context(), c.Param("id"), domain.WatchableUpdate{
		Title:       req.Title,
		Description: req.Description,
		GenreID:     req.GenreID,
		Duration:    req.Duration,
		Season:      req.Season,
		Episode:     req.Episode,
	})
	if err != nil {
		if errors.Is(err, service.ErrWatchableNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Watchable not found."})
			return
		}
		h.logger.Error("update watchable failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to update watchable."})
		return
	}

	respond(c, http.StatusOK, M{
		"message":   "Watchable updated successfully.",
		"watchable": w,
	})
}

// Delete maneja DELETE /watchables/:id.
func (h *WatchableHandler) Delete(c *gin.Context) {
	if err := h.catalogServ.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrWatchableNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Watchable not found."})
			return
		}
		h.logger.Error("delete watchable failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to delete watchable."})
		return
	}
	c.Status(http.StatusNoContent)
}
