package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is one entry in the append-only cash ledger. Immutable once
// recorded, except for explicit deletion which reverses its cash effect.
type Transaction struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerTotals are derived purely from the transaction log. They are
// independent of the cash-on-hand scalar, which a manual reconciliation
// can move away from TotalIncome - TotalExpenses.
type LedgerTotals struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// TransactionFilters defines the available filters for listing transactions.
type TransactionFilters struct {
	Kind *string `form:"kind"`
}
