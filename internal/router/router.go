package router

import (
	"fmt"

	"hotel_pos_backend/internal/handlers"
	"hotel_pos_backend/internal/middleware"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers, and mounts all
// application routes. Each state-owning service loads its collection from
// the persistence adapter here, once per process.
func Setup(engine *gin.Engine, state repositories.StateRepository) error {
	// Initialize Services (catalog first: the cart snapshots from it)
	catalogService, err := services.NewCatalogService(state)
	if err != nil {
		return fmt.Errorf("initializing catalog: %w", err)
	}
	cartService, err := services.NewCartService(state, catalogService)
	if err != nil {
		return fmt.Errorf("initializing cart: %w", err)
	}
	ledgerService, err := services.NewLedgerService(state)
	if err != nil {
		return fmt.Errorf("initializing ledger: %w", err)
	}
	orderService, err := services.NewOrderService(state, cartService, ledgerService)
	if err != nil {
		return fmt.Errorf("initializing orders: %w", err)
	}
	dashboardService := services.NewDashboardService(catalogService, ledgerService)
	authService, err := services.NewAuthService(state)
	if err != nil {
		return fmt.Errorf("initializing auth: %w", err)
	}

	// Initialize Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupMenuItemRoutes(authenticated, catalogHandler)
		SetupCartRoutes(authenticated, cartHandler)
		SetupLedgerRoutes(authenticated, ledgerHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
	}

	return nil
}
