package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stream-catalog/internal/service"
)

// SubscriptionHandler expone los niveles de suscripcion y su cobro.
type SubscriptionHandler struct {
	logger   *zap.Logger
	subsServ *service.SubscriptionService
}

func NewSubscriptionHandler(logger *zap.Logger, subsServ *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{logger: logger, subsServ: subsServ}
}

// Create maneja POST /subscriptions.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req struct {
		Name      string  `json:"subscription_name" binding:"required"`
		PriceEuro float64 `json:"price_euro" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Subscription name is required."})
		return
	}

	sub, err := h.subsServ.Create(c.Request.Context(), req.Name, req.PriceEuro)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respond(c, http.StatusBadRequest, M{"message": "Subscription name is required."})
			return
		}
		h.logger.Error("create subscription failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to create subscription."})
		return
	}

	respond(c, http.StatusCreated, M{
		"message":      "Subscription created successfully.",
		"subscription": sub,
	})
}

// List maneja GET /subscriptions.
func (h *SubscriptionHandler) List(c *gin.Context) {
	subs, err := h.subsServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list subscriptions failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve subscriptions."})
		return
	}
	respond(c, http.StatusOK, M{"subscriptions": subs})
}

// Get maneja GET /subscriptions/:id.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Subscription id must be numeric."})
		return
	}

	sub, err := h.subsServ.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Subscription not found."})
			return
		}
		h.logger.Error("get subscription failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to retrieve subscription."})
		return
	}
	respond(c, http.StatusOK, M{"subscription": sub})
}

// Update maneja PUT /subscriptions/:id.
func (h *SubscriptionHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Subscription id must be numeric."})
		return
	}

	var req struct {
		Name      *string  `json:"subscription_name"`
		PriceEuro *float64 `json:"price_euro" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Invalid request."})
		return
	}

	sub, err := h.subsServ.Update(c.Request.Context(), id, req.Name, req.PriceEuro)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Subscription not found."})
			return
		}
		h.logger.Error("update subscription failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to update subscription."})
		return
	}

	respond(c, http.StatusOK, M{
		"message":      "Subscription updated successfully.",
		"subscription": sub,
	})
}

// Delete maneja DELETE /subscriptions/:id.
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, M{"message": "Subscription id must be numeric."})
		return
	}

	if err := h.subsServ.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respond(c, http.StatusNotFound, M{"message": "Subscription not found."})
			return
		}
		h.logger.Error("delete subscription failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, M{"message": "Failed to delete subscription."})
		return
	}
	c.Status(http.StatusNoContent)
}

// Pay maneja POST /subscriptions/pay. Cobra el periodo siguiente para el
// usuario indicado.
func (h *SubscriptionHandler) Pay(c *gin.Context) {
	var req struct {
		UserID             string `json:"user_id" binding:"required"`
		SubscriptionTypeID int    `json:"subscription_type_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, M{"message": "User id and subscription type are required."})
		return
	}

	err := h.subsServ.Pay(c.Request.Context(), req.UserID, req.SubscriptionTypeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentUserNotFound):
			respond(c, http.StatusNotFound, M{"message": "User not found."})
		case errors.Is(err, service.ErrPaymentInvalidType):
			respond(c, http.StatusUnprocessableEntity, M{"message": "Invalid subscription type."})
		case errors.Is(err, service.ErrPaymentStillActive):
			respond(c, http.StatusForbidden, M{"message": "Subscription is still active."})
		case errors.Is(err, service.ErrInvalidInput):
			respond(c, http.StatusBadRequest, M{"message": "User id and subscription type are required."})
		default:
			h.logger.Error("pay subscription failed", zap.Error(err))
			respond(c, http.StatusInternalServerError, M{"message": "Payment failed."})
		}
		return
	}

	respond(c, http.StatusOK, M{"message": "Subscription paid successfully."})
}
