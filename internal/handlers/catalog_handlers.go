package handlers

import (
	"errors"
	"net/http"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"
	"hotel_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// CreateMenuItem handles adding a new item to the menu catalog.
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.catalogService.Create(req)
	if err != nil {
		respondCatalogError(c, err, "CreateMenuItem")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuItems handles listing the catalog, optionally filtered by category.
func (h *CatalogHandler) GetMenuItems(c *gin.Context) {
	var filters models.MenuItemFilters
	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	c.JSON(http.StatusOK, gin.H{"data": h.catalogService.List(filters)})
}

// GetMenuItemByID handles fetching a single menu item.
func (h *CatalogHandler) GetMenuItemByID(c *gin.Context) {
	item := h.catalogService.Find(c.Param("id"))
	if item == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem handles merging changes into an existing menu item. The
// catalog treats an unknown id as a no-op; the 404 here is this layer's
// messaging choice.
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.catalogService.Update(c.Param("id"), req)
	if err != nil {
		respondCatalogError(c, err, "UpdateMenuItem")
		return
	}
	if item == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles removing an item from the catalog. Deleting a
// missing id succeeds: the operation is idempotent.
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.catalogService.Delete(c.Param("id")); err != nil {
		respondCatalogError(c, err, "DeleteMenuItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func respondCatalogError(c *gin.Context, err error, op string) {
	utils.LogError(err, op+": catalog service error")
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu item data.", err.Error()))
	case errors.Is(err, services.ErrInvalidAmount):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price.", err.Error()))
	case errors.Is(err, repositories.ErrPersistence):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to persist catalog state.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Catalog operation failed.", "Internal error"))
	}
}
