package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"hotel_pos_backend/internal/database"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/router"
	"hotel_pos_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	if err := utils.InitJWT(utils.Getenv("JWT_SECRET", "")); err != nil {
		log.Fatalf("JWT configuration error: %v", err)
	}

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "hotel_pos_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "hotel_pos_password")
	dbName := utils.Getenv("DB_NAME", "hotel_pos_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")

	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	state := repositories.NewPostgresStateRepository(database.GetDB())
	if err := router.Setup(engine, state); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
