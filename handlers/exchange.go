package handlers

import (
	"errors"
	"net/http"

	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/exchange"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExchangeHandler serves the citizen-facing bottle-exchange endpoints.
type ExchangeHandler struct {
	Svc    exchange.ExchangeService
	Logger *zap.Logger
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(svc exchange.ExchangeService, logger *zap.Logger) *ExchangeHandler {
	return &ExchangeHandler{Svc: svc, Logger: logger}
}

// CreateExchangeHandler submits a bottle-for-credit request.
func (h *ExchangeHandler) CreateExchangeHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	var req struct {
		BottleType models.BottleType `json:"bottleType"`
		Quantity   int               `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), u.ID, req.BottleType, req.Quantity)
	if err != nil {
		if errors.Is(err, exchange.ErrUnknownBottleType) || errors.Is(err, exchange.ErrInvalidQuantity) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		h.Logger.Error("Failed to create exchange", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create exchange", "please try again")
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ListMyExchangesHandler returns the caller's exchanges.
func (h *ExchangeHandler) ListMyExchangesHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}
	exchanges, err := h.Svc.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.Error("Failed to list exchanges", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list exchanges", "please try again")
		return
	}
	c.JSON(http.StatusOK, exchanges)
}

// GetRatesHandler returns the current credits-per-bottle rates.
func (h *ExchangeHandler) GetRatesHandler(c *gin.Context) {
	rates, err := h.Svc.GetRates(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to load rates", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load rates", "please try again")
		return
	}
	c.JSON(http.StatusOK, rates)
}
