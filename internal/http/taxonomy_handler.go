package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/service"
)

// TaxonomyHandler expone generos, idiomas y calidades.
type TaxonomyHandler struct {
	logger       *zap.Logger
	taxonomyServ *service.TaxonomyService
}

func NewTaxonomyHandler(logger *zap.Logger, taxonomyServ *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{logger: logger, taxonomyServ: taxonomyServ}
}

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Id must be numeric."})
		return 0, false
	}
	return id, true
}

// CreateGenre maneja POST /genres.
func (h *TaxonomyHandler) CreateGenre(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		return
	}
	genre, err := h.taxonomyServ.CreateGenre(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Name is required."})
			return
		}
		h.logger.Error("create genre failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to create genre."})
		return
	}
	respond(c, http.StatusCreated, M{"message": "Genre created successfully.", "genre": genre})
}

// ListGenres maneja GET /genres.
func (h *TaxonomyHandler) ListGenres(c *gin.Context) {
	genres, err := h.taxonomyServ.ListGenres(c.Request.Context())
	if err != nil {
		h.logger.Error("list genres failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve genres."})
		return
	}
	respond(c, http.StatusOK, M{"genres": genres})
}

// GetGenre maneja GET /genres/:id.
func (h *TaxonomyHandler) GetGenre(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	genre, err := h.taxonomyServ.GetGenre(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Genre not found."})
			return
		}
		h.logger.Error("get genre failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve genre."})
		return
	}
	respond(c, http.StatusOK, M{"genre": genre})
}

// UpdateGenre maneja PUT /genres/:id.
func (h *TaxonomyHandler) UpdateGenre(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		return
	}
	genre, err := h.taxonomyServ.UpdateGenre(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			respond(c, http.StatusNotFound, M{"message": "Genre not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		default:
			h.logger.Error("update genre failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to update genre."})
		}
		return
	}
	respond(c, http.StatusOK, M{"message": "Genre updated successfully.", "genre": genre})
}

// DeleteGenre maneja DELETE /genres/:id.
func (h *TaxonomyHandler) DeleteGenre(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taxonomyServ.DeleteGenre(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Genre not found."})
			return
		}
		h.logger.Error("delete genre failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to delete genre."})
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateLanguage maneja POST /languages.
func (h *TaxonomyHandler) CreateLanguage(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		return
	}
	lang, err := h.taxonomyServ.CreateLanguage(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Name is required."})
			return
		}
		h.logger.Error("create language failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to create language."})
		return
	}
	respond(c, http.StatusCreated, M{"message": "Language created successfully.", "language": lang})
}

// ListLanguages maneja GET /languages.
func (h *TaxonomyHandler) ListLanguages(c *gin.Context) {
	langs, err := h.taxonomyServ.ListLanguages(c.Request.Context())
	if err != nil {
		h.logger.Error("list languages failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve languages."})
		return
	}
	respond(c, http.StatusOK, M{"languages": langs})
}

// GetLanguage maneja GET /languages/:id.
func (h *TaxonomyHandler) GetLanguage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lang, err := h.taxonomyServ.GetLanguage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLanguageNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Language not found."})
			return
		}
		h.logger.Error("get language failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve language."})
		return
	}
	respond(c, http.StatusOK, M{"language": lang})
}

// UpdateLanguage maneja PUT /languages/:id.
func (h *TaxonomyHandler) UpdateLanguage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		return
	}
	lang, err := h.taxonomyServ.UpdateLanguage(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLanguageNotFound):
			respond(c, http.StatusNotFound, M{"message": "Language not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		default:
			h.logger.Error("update language failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to update language."})
		}
		return
	}
	respond(c, http.StatusOK, M{"message": "Language updated successfully.", "language": lang})
}

// DeleteLanguage maneja DELETE /languages/:id.
func (h *TaxonomyHandler) DeleteLanguage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taxonomyServ.DeleteLanguage(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLanguageNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Language not found."})
			return
		}
		h.logger.Error("delete language failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to delete language."})
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateQuality maneja POST /qualities.
func (h *TaxonomyHandler) CreateQuality(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		return
	}
	quality, err := h.taxonomyServ.CreateQuality(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Name is required."})
			return
		}
		h.logger.Error("create quality failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to create quality."})
		return
	}
	respond(c, http.StatusCreated, M{"message": "Quality created successfully.", "quality": quality})
}

// ListQualities maneja GET /qualities.
func (h *TaxonomyHandler) ListQualities(c *gin.Context) {
	qualities, err := h.taxonomyServ.ListQualities(c.Request.Context())
	if err != nil {
		h.logger.Error("list qualities failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve qualities."})
		return
	}
	respond(c, http.StatusOK, M{"qualities": qualities})
}

// UpdateQuality maneja PUT /qualities/:id.
func (h *TaxonomyHandler) UpdateQuality(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		return
	}
	quality, err := h.taxonomyServ.UpdateQuality(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQualityNotFound):
			respond(c, http.StatusNotFound, M{"message": "Quality not found."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "Name is required."})
		default:
			h.logger.Error("update quality failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Failed to update quality."})
		}
		return
	}
	respond(c, http.StatusOK, M{"message": "Quality updated successfully.", "quality": quality})
}

// DeleteQuality maneja DELETE /qualities/:id.
func (h *TaxonomyHandler) DeleteQuality(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taxonomyServ.DeleteQuality(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrQualityNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Quality not found."})
			return
		}
		h.logger.Error("delete quality failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to delete quality."})
		return
	}
	c.Status(http.StatusNoContent)
}
