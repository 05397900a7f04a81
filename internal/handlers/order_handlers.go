package handlers

import (
	"errors"
	"net/http"

	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"
	"hotel_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// PlaceOrder handles finalizing the active cart into an order. This also
// posts the matching income transaction and clears the cart.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(req)
	if err != nil {
		utils.LogError(err, "PlaceOrder: order service error")
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Cannot place order.", err.Error()))
		case errors.Is(err, services.ErrInvalidAmount):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Order total is not a valid transaction amount.", err.Error()))
		case errors.Is(err, repositories.ErrPersistence):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to persist order state.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to place order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders handles listing the order history, newest first.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.orderService.List()})
}
