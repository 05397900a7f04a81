package services_test

import (
	"strings"
	"testing"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	state   repositories.StateRepository
	catalog services.CatalogService
	cart    services.CartService
	ledger  services.LedgerService
	orders  services.OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	state := repositories.NewMemoryStateRepository()
	catalog, err := services.NewCatalogService(state)
	require.NoError(t, err)
	cart, err := services.NewCartService(state, catalog)
	require.NoError(t, err)
	ledger, err := services.NewLedgerService(state)
	require.NoError(t, err)
	orders, err := services.NewOrderService(state, cart, ledger)
	require.NoError(t, err)
	return &orderFixture{state: state, catalog: catalog, cart: cart, ledger: ledger, orders: orders}
}

func TestPlaceOrderFinalizesCart(t *testing.T) {
	f := newOrderFixture(t)
	item := createItem(t, f.catalog, "Masala Dosa", models.CategoryMains, "100")

	_, err := f.cart.AddItem(item.ID)
	require.NoError(t, err)
	_, err = f.cart.AdjustQuantity(item.ID, 1)
	require.NoError(t, err)

	order, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Ravi Kumar", TableNumber: "7"})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("200")), "subtotal: %s", order.Subtotal)
	assert.True(t, order.Tax.Equal(decimal.RequireFromString("10")), "tax: %s", order.Tax)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("210")), "total: %s", order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "7", order.TableNumber)
	assert.Nil(t, order.CompletedAt)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)

	// The cart is drained and the income posted to the ledger.
	assert.Empty(t, f.cart.List())
	assert.True(t, f.ledger.Current().Equal(decimal.RequireFromString("210")))

	txs := f.ledger.List(models.TransactionFilters{})
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionIncome, txs[0].Kind)
	assert.True(t, txs[0].Amount.Equal(order.Total))
	assert.Contains(t, txs[0].Description, order.OrderNumber)
	assert.Contains(t, txs[0].Description, "Ravi Kumar")
}

func TestPlaceOrderNumberFormat(t *testing.T) {
	f := newOrderFixture(t)
	item := createItem(t, f.catalog, "Chai", models.CategoryBeverages, "20")
	_, err := f.cart.AddItem(item.ID)
	require.NoError(t, err)

	order, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Asha"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, order.OrderNumber, len("ORD-")+6)
}

func TestPlaceOrderDefaultsTableNumber(t *testing.T) {
	f := newOrderFixture(t)
	item := createItem(t, f.catalog, "Chai", models.CategoryBeverages, "20")
	_, err := f.cart.AddItem(item.ID)
	require.NoError(t, err)

	order, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Asha", TableNumber: "  "})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTableNumber, order.TableNumber)
}

func TestPlaceOrderRequiresCustomerName(t *testing.T) {
	f := newOrderFixture(t)
	item := createItem(t, f.catalog, "Chai", models.CategoryBeverages, "20")
	_, err := f.cart.AddItem(item.ID)
	require.NoError(t, err)

	_, err = f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "   "})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Nothing happened: cart intact, no order, no ledger entry.
	assert.Len(t, f.cart.List(), 1)
	assert.Empty(t, f.orders.List())
	assert.Empty(t, f.ledger.List(models.TransactionFilters{}))
	assert.True(t, f.ledger.Current().IsZero())
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Asha"})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Empty(t, f.orders.List())
}

func TestOrderHistoryIsNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	item := createItem(t, f.catalog, "Chai", models.CategoryBeverages, "20")

	_, err := f.cart.AddItem(item.ID)
	require.NoError(t, err)
	first, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Asha"})
	require.NoError(t, err)

	_, err = f.cart.AddItem(item.ID)
	require.NoError(t, err)
	second, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Ravi"})
	require.NoError(t, err)

	history := f.orders.List()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestOrderHistorySurvivesRestart(t *testing.T) {
	f := newOrderFixture(t)
	item := createItem(t, f.catalog, "Chai", models.CategoryBeverages, "20")
	_, err := f.cart.AddItem(item.ID)
	require.NoError(t, err)
	placed, err := f.orders.PlaceOrder(services.PlaceOrderRequest{CustomerName: "Asha"})
	require.NoError(t, err)

	reloaded, err := services.NewOrderService(f.state, f.cart, f.ledger)
	require.NoError(t, err)

	history := reloaded.List()
	require.Len(t, history, 1)
	assert.Equal(t, placed.ID, history[0].ID)
	assert.True(t, history[0].Total.Equal(placed.Total))
}
