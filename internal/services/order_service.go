package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"

	"github.com/google/uuid"
)

const ordersStateKey = "orders"

// PlaceOrderRequest is used to finalize the active cart into an order.
type PlaceOrderRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	TableNumber  string `json:"table_number"`
}

// OrderService owns the order history (newest-first). Placing an order is
// the one cross-entity operation: it snapshots and drains the cart and
// posts a matching income transaction to the ledger.
type OrderService interface {
	PlaceOrder(req PlaceOrderRequest) (*models.Order, error)
	List() []models.Order
}

type orderService struct {
	mu     sync.Mutex
	state  repositories.StateRepository
	cart   CartService
	ledger LedgerService
	orders []models.Order
}

// NewOrderService loads the persisted order history and returns the service.
func NewOrderService(state repositories.StateRepository, cart CartService, ledger LedgerService) (OrderService, error) {
	s := &orderService{state: state, cart: cart, ledger: ledger}
	if err := state.Get(ordersStateKey, &s.orders); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("loading order history: %w", err)
	}
	return s, nil
}

// PlaceOrder validates, persists the order, posts the income transaction,
// then clears the cart, in that sequence, so a failure partway can leave
// "order recorded, cart not yet cleared" but never the reverse.
func (s *orderService) PlaceOrder(req PlaceOrderRequest) (*models.Order, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.List()
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	tableNumber := strings.TrimSpace(req.TableNumber)
	if tableNumber == "" {
		tableNumber = models.DefaultTableNumber
	}

	totals := models.TotalsFor(lines)
	now := time.Now().UTC()

	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, models.OrderLine{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	order := models.Order{
		ID:           uuid.NewString(),
		OrderNumber:  orderNumber(now),
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Lines:        orderLines,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Status:       models.StatusPending,
		CreatedAt:    now,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	if err := s.state.Set(ordersStateKey, s.orders); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Order %s - %s", order.OrderNumber, customerName)
	if _, err := s.ledger.Record(models.TransactionIncome, order.Total, description, now); err != nil {
		return nil, fmt.Errorf("recording order income: %w", err)
	}
	if err := s.cart.Clear(); err != nil {
		return nil, fmt.Errorf("clearing cart after order: %w", err)
	}

	return &order, nil
}

func (s *orderService) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// orderNumber derives the human-readable label from the creation time:
// the last six digits of the unix-millisecond timestamp, prefixed.
func orderNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "ORD-" + ms
}
