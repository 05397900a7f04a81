package handlers

import (
	"net/http"

	"hotel_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetDashboard handles fetching the read-only rollups.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, dashboardResponse(h.dashboardService.Snapshot()))
}
