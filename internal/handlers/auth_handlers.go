package handlers

import (
	"errors"
	"net/http"

	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"
	"hotel_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// RegisterUser handles creating a staff account.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	account, err := h.authService.Register(req)
	if err != nil {
		utils.LogError(err, "RegisterUser: auth service error")
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid registration data.", err.Error()))
		case errors.Is(err, repositories.ErrPersistence):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to persist staff account.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, account)
}

// LoginUser handles staff login and token issuance.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	tokens, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password.", ""))
			return
		}
		utils.LogError(err, "LoginUser: auth service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log in.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// RefreshToken handles exchanging a refresh token for a new pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req services.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	tokens, err := h.authService.Refresh(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired refresh token.", ""))
			return
		}
		utils.LogError(err, "RefreshToken: auth service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to refresh token.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// GetCurrentUser returns the authenticated staff identity from the token
// claims seeded by the auth middleware.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.GetString("userID"),
		"username": c.GetString("username"),
		"role":     c.GetString("userRole"),
	})
}
