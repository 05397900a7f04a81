package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status. Only the initial value exists today; CompletedAt is part of
// the record shape but no operation sets it yet.
const StatusPending = "pending"

// DefaultTableNumber is used when an order is placed without a table.
const DefaultTableNumber = "N/A"

// OrderLine is a denormalized copy of a cart line at placement time.
type OrderLine struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is an immutable, finalized cart snapshot with computed totals.
// It references menu items by id only; deleting a menu item does not
// retroactively alter existing orders.
type Order struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	TableNumber  string          `json:"table_number"`
	Lines        []OrderLine     `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}
