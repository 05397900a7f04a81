package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	transactionsStateKey = "transactions"
	cashOnHandStateKey   = "cash_on_hand"
)

// LedgerService owns the append-only transaction log (newest-first) and
// the cash-on-hand scalar. The scalar normally accumulates with every
// recorded or deleted transaction, but a manual override replaces it
// unconditionally and may leave it diverged from the log's totals.
type LedgerService interface {
	// Record validates and prepends a transaction, then adjusts cash on
	// hand by the signed amount (income adds, expense subtracts).
	Record(kind string, amount decimal.Decimal, description string, occurredAt time.Time) (*models.Transaction, error)
	// Delete reverses the transaction's cash effect before removing it.
	// Deleting an unknown id is a no-op.
	Delete(id string) error
	// SetCashOnHand is the manual reconciliation override.
	SetCashOnHand(amount decimal.Decimal) error
	// Totals sums income and expenses from the log alone.
	Totals() models.LedgerTotals
	// Current returns the cash-on-hand scalar.
	Current() decimal.Decimal
	List(filters models.TransactionFilters) []models.Transaction
}

type ledgerService struct {
	mu           sync.Mutex
	state        repositories.StateRepository
	transactions []models.Transaction
	cashOnHand   decimal.Decimal
}

// NewLedgerService loads the persisted log and scalar. Missing keys mean
// an empty ledger with zero cash.
func NewLedgerService(state repositories.StateRepository) (LedgerService, error) {
	s := &ledgerService{state: state, cashOnHand: decimal.Zero}
	if err := state.Get(transactionsStateKey, &s.transactions); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("loading transaction log: %w", err)
	}

	// Cash on hand is stored as text to keep the decimal exact.
	var raw string
	err := state.Get(cashOnHandStateKey, &raw)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading cash on hand: %w", err)
	default:
		cash, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: stored cash on hand %q is not a number: %v", repositories.ErrPersistence, raw, parseErr)
		}
		s.cashOnHand = cash
	}
	return s, nil
}

func (s *ledgerService) persistLog() error {
	return s.state.Set(transactionsStateKey, s.transactions)
}

func (s *ledgerService) persistCash() error {
	return s.state.Set(cashOnHandStateKey, s.cashOnHand.String())
}

func (s *ledgerService) Record(kind string, amount decimal.Decimal, description string, occurredAt time.Time) (*models.Transaction, error) {
	if kind != models.TransactionIncome && kind != models.TransactionExpense {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", ErrValidation, kind)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", ErrInvalidAmount)
	}
	if utils.IsEmpty(description) {
		return nil, fmt.Errorf("%w: transaction description is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now().UTC(),
	}

	// Newest-first ordering is part of the log's contract, not a render
	// convenience.
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	if kind == models.TransactionIncome {
		s.cashOnHand = s.cashOnHand.Add(amount)
	} else {
		s.cashOnHand = s.cashOnHand.Sub(amount)
	}

	if err := s.persistLog(); err != nil {
		return nil, err
	}
	if err := s.persistCash(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *ledgerService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID != id {
			continue
		}
		if tx.Kind == models.TransactionIncome {
			s.cashOnHand = s.cashOnHand.Sub(tx.Amount)
		} else {
			s.cashOnHand = s.cashOnHand.Add(tx.Amount)
		}
		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
		if err := s.persistLog(); err != nil {
			return err
		}
		return s.persistCash()
	}
	return nil
}

func (s *ledgerService) SetCashOnHand(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: cash on hand must not be negative", ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cashOnHand = amount
	return s.persistCash()
}

func (s *ledgerService) Totals() models.LedgerTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := models.LedgerTotals{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, tx := range s.transactions {
		if tx.Kind == models.TransactionIncome {
			totals.TotalIncome = totals.TotalIncome.Add(tx.Amount)
		} else {
			totals.TotalExpenses = totals.TotalExpenses.Add(tx.Amount)
		}
	}
	return totals
}

func (s *ledgerService) Current() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cashOnHand
}

func (s *ledgerService) List(filters models.TransactionFilters) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if filters.Kind != nil && *filters.Kind != "" && tx.Kind != *filters.Kind {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions
}
