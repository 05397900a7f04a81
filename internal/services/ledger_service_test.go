package services_test

import (
	"testing"
	"time"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) (services.LedgerService, repositories.StateRepository) {
	t.Helper()
	state := repositories.NewMemoryStateRepository()
	ledger, err := services.NewLedgerService(state)
	require.NoError(t, err)
	return ledger, state
}

func record(t *testing.T, ledger services.LedgerService, kind, amount, description string) *models.Transaction {
	t.Helper()
	tx, err := ledger.Record(kind, decimal.RequireFromString(amount), description, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, tx)
	return tx
}

func TestLedgerRecordAdjustsCash(t *testing.T) {
	ledger, _ := newLedger(t)

	record(t, ledger, models.TransactionIncome, "500", "Opening float")
	assert.True(t, ledger.Current().Equal(decimal.RequireFromString("500")))

	record(t, ledger, models.TransactionExpense, "120.50", "Vegetable delivery")
	assert.True(t, ledger.Current().Equal(decimal.RequireFromString("379.50")), "cash: %s", ledger.Current())
}

func TestLedgerRejectsInvalidInput(t *testing.T) {
	ledger, _ := newLedger(t)

	_, err := ledger.Record("transfer", decimal.RequireFromString("10"), "x", time.Now())
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = ledger.Record(models.TransactionIncome, decimal.Zero, "x", time.Now())
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	_, err = ledger.Record(models.TransactionIncome, decimal.RequireFromString("-5"), "x", time.Now())
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	_, err = ledger.Record(models.TransactionIncome, decimal.RequireFromString("5"), "   ", time.Now())
	assert.ErrorIs(t, err, services.ErrValidation)

	assert.True(t, ledger.Current().IsZero())
	assert.Empty(t, ledger.List(models.TransactionFilters{}))
}

func TestLedgerListIsNewestFirst(t *testing.T) {
	ledger, _ := newLedger(t)

	first := record(t, ledger, models.TransactionIncome, "10", "first")
	second := record(t, ledger, models.TransactionIncome, "20", "second")

	txs := ledger.List(models.TransactionFilters{})
	require.Len(t, txs, 2)
	assert.Equal(t, second.ID, txs[0].ID)
	assert.Equal(t, first.ID, txs[1].ID)
}

func TestLedgerListFiltersByKind(t *testing.T) {
	ledger, _ := newLedger(t)

	record(t, ledger, models.TransactionIncome, "10", "sale")
	record(t, ledger, models.TransactionExpense, "4", "supplies")

	expense := models.TransactionExpense
	txs := ledger.List(models.TransactionFilters{Kind: &expense})
	require.Len(t, txs, 1)
	assert.Equal(t, "supplies", txs[0].Description)
}

func TestLedgerDeleteRestoresCash(t *testing.T) {
	ledger, _ := newLedger(t)

	record(t, ledger, models.TransactionIncome, "500", "Opening float")
	before := ledger.Current()

	tx := record(t, ledger, models.TransactionExpense, "75.25", "Gas refill")
	require.NoError(t, ledger.Delete(tx.ID))

	assert.True(t, ledger.Current().Equal(before), "cash after delete: %s", ledger.Current())
	assert.Len(t, ledger.List(models.TransactionFilters{}), 1)
}

func TestLedgerDeleteUnknownIDIsNoOp(t *testing.T) {
	ledger, _ := newLedger(t)
	record(t, ledger, models.TransactionIncome, "100", "sale")

	require.NoError(t, ledger.Delete("no-such-id"))
	assert.True(t, ledger.Current().Equal(decimal.RequireFromString("100")))
}

func TestLedgerSetCashOnHandOverridesUnconditionally(t *testing.T) {
	ledger, _ := newLedger(t)
	record(t, ledger, models.TransactionIncome, "500", "sales")

	require.NoError(t, ledger.SetCashOnHand(decimal.RequireFromString("123.45")))
	assert.True(t, ledger.Current().Equal(decimal.RequireFromString("123.45")))

	// The log is untouched; only the scalar was reconciled.
	assert.Len(t, ledger.List(models.TransactionFilters{}), 1)
}

func TestLedgerSetCashOnHandRejectsNegative(t *testing.T) {
	ledger, _ := newLedger(t)

	err := ledger.SetCashOnHand(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, services.ErrInvalidAmount)
	assert.True(t, ledger.Current().IsZero())
}

func TestLedgerTotalsSumFromLogOnly(t *testing.T) {
	ledger, _ := newLedger(t)

	record(t, ledger, models.TransactionIncome, "300", "dinner service")
	record(t, ledger, models.TransactionIncome, "200", "lunch service")
	record(t, ledger, models.TransactionExpense, "150", "produce")

	// Reconciliation moves the scalar but not the log sums.
	require.NoError(t, ledger.SetCashOnHand(decimal.RequireFromString("9000")))

	totals := ledger.Totals()
	assert.True(t, totals.TotalIncome.Equal(decimal.RequireFromString("500")))
	assert.True(t, totals.TotalExpenses.Equal(decimal.RequireFromString("150")))
}

func TestLedgerSurvivesRestart(t *testing.T) {
	ledger, state := newLedger(t)
	record(t, ledger, models.TransactionIncome, "500", "Opening float")
	record(t, ledger, models.TransactionExpense, "120.50", "Vegetable delivery")

	reloaded, err := services.NewLedgerService(state)
	require.NoError(t, err)

	assert.True(t, reloaded.Current().Equal(decimal.RequireFromString("379.50")))
	assert.Len(t, reloaded.List(models.TransactionFilters{}), 2)
}
