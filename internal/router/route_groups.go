package router

import (
	"hotel_pos_backend/internal/handlers"
	"hotel_pos_backend/internal/middleware"
	"hotel_pos_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes mounts the unauthenticated auth endpoints.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterUser)
	group.POST("/login", authHandler.LoginUser)
	group.POST("/refresh-token", authHandler.RefreshToken)
}

// SetupAuthenticatedAuthRoutes mounts auth endpoints that require a token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupMenuItemRoutes mounts the catalog endpoints. Menu management is
// admin-only; reading the menu is open to any authenticated staff.
func SetupMenuItemRoutes(group *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	group.GET("/menu-items", catalogHandler.GetMenuItems)
	group.GET("/menu-items/:id", catalogHandler.GetMenuItemByID)

	admin := group.Group("")
	admin.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		admin.POST("/menu-items", catalogHandler.CreateMenuItem)
		admin.PUT("/menu-items/:id", catalogHandler.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", catalogHandler.DeleteMenuItem)
	}
}

// SetupCartRoutes mounts the active-cart endpoints.
func SetupCartRoutes(group *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	group.GET("/cart", cartHandler.GetCart)
	group.GET("/cart/totals", cartHandler.GetCartTotals)
	group.POST("/cart/items", cartHandler.AddCartItem)
	group.PATCH("/cart/items/:itemId", cartHandler.AdjustCartItemQuantity)
	group.DELETE("/cart/items/:itemId", cartHandler.RemoveCartItem)
	group.DELETE("/cart", cartHandler.ClearCart)
}

// SetupLedgerRoutes mounts the transaction log and cash-on-hand endpoints.
func SetupLedgerRoutes(group *gin.RouterGroup, ledgerHandler *handlers.LedgerHandler) {
	group.POST("/transactions", ledgerHandler.CreateTransaction)
	group.GET("/transactions", ledgerHandler.GetTransactions)
	group.GET("/transactions/totals", ledgerHandler.GetLedgerTotals)
	group.DELETE("/transactions/:id", ledgerHandler.DeleteTransaction)
	group.GET("/cash", ledgerHandler.GetCash)
	group.PUT("/cash", ledgerHandler.SetCash)
}

// SetupOrderRoutes mounts order placement and history.
func SetupOrderRoutes(group *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	group.POST("/orders", orderHandler.PlaceOrder)
	group.GET("/orders", orderHandler.GetOrders)
}

// SetupDashboardRoutes mounts the read-only dashboard rollups.
func SetupDashboardRoutes(group *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	group.GET("/dashboard", dashboardHandler.GetDashboard)
}
