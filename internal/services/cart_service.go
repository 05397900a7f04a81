package services

import (
	"errors"
	"fmt"
	"sync"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
)

const cartStateKey = "cart"

// CartService owns the active cart. Lines snapshot the menu item's name,
// price and category at add-time; the item reference is weak and may
// dangle if the item is later deleted from the catalog.
type CartService interface {
	// AddItem adds one unit of the given menu item. An id not present in
	// the catalog is silently ignored and AddItem returns (nil, nil).
	AddItem(itemID string) (*models.CartLine, error)
	// AdjustQuantity adds delta to the line's quantity. A result of zero
	// or below removes the line; an unknown id is a no-op. Returns the
	// updated line, or nil when the line was removed or absent.
	AdjustQuantity(itemID string, delta int) (*models.CartLine, error)
	// RemoveItem removes the line unconditionally; no-op when absent.
	RemoveItem(itemID string) error
	// Clear empties the cart and drops the persisted key.
	Clear() error
	List() []models.CartLine
	Totals() models.CartTotals
}

type cartService struct {
	mu      sync.Mutex
	state   repositories.StateRepository
	catalog CatalogService
	lines   []models.CartLine
	index   map[string]int // item id -> position in lines
}

// NewCartService loads the persisted cart and returns the service.
func NewCartService(state repositories.StateRepository, catalog CatalogService) (CartService, error) {
	s := &cartService{state: state, catalog: catalog, index: make(map[string]int)}
	if err := state.Get(cartStateKey, &s.lines); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	s.reindex()
	return s, nil
}

func (s *cartService) reindex() {
	s.index = make(map[string]int, len(s.lines))
	for i, line := range s.lines {
		s.index[line.ItemID] = i
	}
}

func (s *cartService) persist() error {
	return s.state.Set(cartStateKey, s.lines)
}

func (s *cartService) AddItem(itemID string) (*models.CartLine, error) {
	item := s.catalog.Find(itemID)
	if item == nil {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[itemID]; ok {
		s.lines[i].Quantity++
		if err := s.persist(); err != nil {
			return nil, err
		}
		line := s.lines[i]
		return &line, nil
	}

	line := models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		Quantity: 1,
	}
	s.lines = append(s.lines, line)
	s.index[itemID] = len(s.lines) - 1
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *cartService) AdjustQuantity(itemID string, delta int) (*models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[itemID]
	if !ok {
		return nil, nil
	}

	s.lines[i].Quantity += delta
	if s.lines[i].Quantity <= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.reindex()
		if err := s.persist(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	line := s.lines[i]
	return &line, nil
}

func (s *cartService) RemoveItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[itemID]
	if !ok {
		return nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.reindex()
	return s.persist()
}

func (s *cartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.index = make(map[string]int)
	return s.state.Remove(cartStateKey)
}

func (s *cartService) List() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *cartService) Totals() models.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.TotalsFor(s.lines)
}
