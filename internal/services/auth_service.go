package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const staffAccountsStateKey = "staff_accounts"

const minPasswordLength = 8

// RegisterRequest is used for creating a staff account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest carries staff credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AccountResponse is the API-facing view of a staff account, without the
// password hash.
type AccountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse holds a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService manages staff accounts and token issuance. Accounts live
// under their own state key like every other collection.
type AuthService interface {
	Register(req RegisterRequest) (*AccountResponse, error)
	Login(req LoginRequest) (*TokenResponse, error)
	Refresh(req RefreshRequest) (*TokenResponse, error)
}

type authService struct {
	mu       sync.Mutex
	state    repositories.StateRepository
	accounts []models.StaffAccount
}

// NewAuthService loads the persisted staff accounts and returns the service.
func NewAuthService(state repositories.StateRepository) (AuthService, error) {
	s := &authService{state: state}
	if err := state.Get(staffAccountsStateKey, &s.accounts); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("loading staff accounts: %w", err)
	}
	return s, nil
}

func (s *authService) Register(req RegisterRequest) (*AccountResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if !utils.IsValidPasswordLength(req.Password, minPasswordLength) {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if strings.EqualFold(account.Username, username) {
			return nil, fmt.Errorf("%w: username %q is already taken", ErrValidation, username)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := models.StaffAccount{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	s.accounts = append(s.accounts, account)
	if err := s.state.Set(staffAccountsStateKey, s.accounts); err != nil {
		return nil, err
	}

	return &AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *authService) Login(req LoginRequest) (*TokenResponse, error) {
	s.mu.Lock()
	account := s.findByUsername(req.Username)
	s.mu.Unlock()

	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(account)
}

func (s *authService) Refresh(req RefreshRequest) (*TokenResponse, error) {
	claims, err := utils.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == claims.UserID {
			account := s.accounts[i]
			return s.issueTokens(&account)
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *authService) findByUsername(username string) *models.StaffAccount {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Username, username) {
			account := s.accounts[i]
			return &account
		}
	}
	return nil
}

func (s *authService) issueTokens(account *models.StaffAccount) (*TokenResponse, error) {
	accessToken, err := utils.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, fmt.Errorf("generating refresh token: %w", err)
	}
	return &TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
