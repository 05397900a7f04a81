package models

import "github.com/shopspring/decimal"

// DashboardSnapshot holds the read-only rollups for the dashboard view,
// recomputed from catalog and ledger state on demand. Nothing here is
// persisted.
type DashboardSnapshot struct {
	ItemCount        int             `json:"item_count"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	CashOnHand       decimal.Decimal `json:"cash_on_hand"`
	TransactionCount int             `json:"transaction_count"`
}
