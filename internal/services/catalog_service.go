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
	"github.com/shopspring/decimal"
)

const menuItemsStateKey = "menu_items"

// CreateMenuItemRequest is used for creating a new menu item.
type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=starters mains desserts beverages"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// UpdateMenuItemRequest carries the mutable fields of a menu item. Nil
// fields are left untouched.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category" binding:"omitempty,oneof=starters mains desserts beverages"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// CatalogService owns the menu catalog.
type CatalogService interface {
	Create(req CreateMenuItemRequest) (*models.MenuItem, error)
	// Update merges the given fields into the item. An unknown id is a
	// silent no-op: Update returns (nil, nil) and changes nothing.
	Update(id string, req UpdateMenuItemRequest) (*models.MenuItem, error)
	// Delete removes the item if present; deleting a missing id is a no-op.
	Delete(id string) error
	// List returns all items in insertion order.
	List(filters models.MenuItemFilters) []models.MenuItem
	// Find returns the item, or nil when the id is unknown.
	Find(id string) *models.MenuItem
}

type catalogService struct {
	mu    sync.Mutex
	state repositories.StateRepository
	items []models.MenuItem
	index map[string]int // id -> position in items
}

// NewCatalogService loads the persisted catalog and returns the service. A
// missing state key means an empty catalog, not an error.
func NewCatalogService(state repositories.StateRepository) (CatalogService, error) {
	s := &catalogService{state: state, index: make(map[string]int)}
	if err := state.Get(menuItemsStateKey, &s.items); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("loading menu catalog: %w", err)
	}
	s.reindex()
	return s, nil
}

func (s *catalogService) reindex() {
	s.index = make(map[string]int, len(s.items))
	for i, item := range s.items {
		s.index[item.ID] = i
	}
}

func (s *catalogService) persist() error {
	return s.state.Set(menuItemsStateKey, s.items)
}

func (s *catalogService) Create(req CreateMenuItemRequest) (*models.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: menu item name is required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: menu item price must not be negative", ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.MenuItem{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  req.Category,
		Price:     req.Price,
		CreatedAt: time.Now().UTC(),
	}
	item.Description = utils.NewNullString(strings.TrimSpace(req.Description))

	s.items = append(s.items, item)
	s.index[item.ID] = len(s.items) - 1
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *catalogService) Update(id string, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: menu item price must not be negative", ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, nil
	}

	item := &s.items[i]
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			item.Name = name
		}
	}
	if req.Category != nil && *req.Category != "" {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = utils.NewNullString(strings.TrimSpace(*req.Description))
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	updated := *item
	return &updated, nil
}

func (s *catalogService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.reindex()
	return s.persist()
}

func (s *catalogService) List(filters models.MenuItemFilters) []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		if filters.Category != nil && *filters.Category != "" && item.Category != *filters.Category {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (s *catalogService) Find(id string) *models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil
	}
	item := s.items[i]
	return &item
}
