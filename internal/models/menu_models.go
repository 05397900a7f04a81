package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu item categories. Validated at the API edge; the catalog itself
// treats the category as an opaque label.
const (
	CategoryStarters  = "starters"
	CategoryMains     = "mains"
	CategoryDesserts  = "desserts"
	CategoryBeverages = "beverages"
)

// MenuItem represents a sellable item in the menu catalog.
// The ID is assigned at creation and immutable thereafter.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MenuItemFilters defines the available filters for listing menu items.
type MenuItemFilters struct {
	Category *string `form:"category"`
}
