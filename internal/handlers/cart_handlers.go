package handlers

import (
	"errors"
	"net/http"

	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"
	"hotel_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler holds the cart service.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// AddCartItemRequest identifies the menu item to add.
type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// AdjustQuantityRequest carries the signed quantity change for a line.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart handles fetching the active cart with its computed totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lines":  h.cartService.List(),
		"totals": cartTotalsResponse(h.cartService.Totals()),
	})
}

// AddCartItem handles adding one unit of a menu item to the cart. An item
// id not present in the catalog leaves the cart unchanged.
func (h *CartHandler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	line, err := h.cartService.AddItem(req.ItemID)
	if err != nil {
		respondCartError(c, err, "AddCartItem")
		return
	}
	if line == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		return
	}
	c.JSON(http.StatusOK, line)
}

// AdjustCartItemQuantity handles incrementing or decrementing a line.
// Adjusting to zero or below removes the line.
func (h *CartHandler) AdjustCartItemQuantity(c *gin.Context) {
	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	line, err := h.cartService.AdjustQuantity(c.Param("itemId"), req.Delta)
	if err != nil {
		respondCartError(c, err, "AdjustCartItemQuantity")
		return
	}
	if line == nil {
		c.JSON(http.StatusOK, gin.H{"removed": true})
		return
	}
	c.JSON(http.StatusOK, line)
}

// RemoveCartItem handles unconditional removal of a line.
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	if err := h.cartService.RemoveItem(c.Param("itemId")); err != nil {
		respondCartError(c, err, "RemoveCartItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// ClearCart handles emptying the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(); err != nil {
		respondCartError(c, err, "ClearCart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetCartTotals handles fetching display-rounded cart totals.
func (h *CartHandler) GetCartTotals(c *gin.Context) {
	c.JSON(http.StatusOK, cartTotalsResponse(h.cartService.Totals()))
}

func respondCartError(c *gin.Context, err error, op string) {
	utils.LogError(err, op+": cart service error")
	if errors.Is(err, repositories.ErrPersistence) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to persist cart state.", err.Error()))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Cart operation failed.", "Internal error"))
}
