package models

import "github.com/shopspring/decimal"

// TaxRate is the fixed 5% tax applied to every cart subtotal.
var TaxRate = decimal.NewFromFloat(0.05)

// CartLine is one entry in the active cart. Name, price and category are
// snapshotted from the menu item at add-time, so later catalog edits or
// deletes do not alter lines already in the cart. Quantity is always >= 1
// while the line exists; a line adjusted to zero or below is removed.
type CartLine struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
}

// CartTotals holds the computed totals for a set of cart lines.
// Values are exact decimals; rounding to two places happens only in
// response DTOs.
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// TotalsFor computes subtotal, tax and total over the given lines.
func TotalsFor(lines []CartLine) CartTotals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(TaxRate)
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
