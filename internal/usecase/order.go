package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// NewOrderNumber produces a collision-safe order number. A random token
// replaces the old row-count suffix, which raced under concurrent creation.
func NewOrderNumber() string {
	return "P-" + strings.ToUpper(uuid.NewString()[:8])
}

// Place creates an order with its line items and returns the stored order.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	order := &model.Order{
		Number:    NewOrderNumber(),
		UserID:    userID,
		Status:    model.OrderStatusCreated,
		CreatedAt: u.now().UTC(),
	}
	if err := u.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderNumber = order.Number
	}
	if err := u.orders.InsertItems(ctx, items); err != nil {
		return nil, err
	}

	return order, nil
}

// GetByNumber returns the order or ErrNotFound.
func (u *OrderUseCase) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, number)
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Items returns the line items of the order.
func (u *OrderUseCase) Items(ctx context.Context, number string) ([]model.OrderItem, error) {
	return u.orders.ListItems(ctx, number)
}

// ObserveByUser opens a live read over the user's orders.
func (u *OrderUseCase) ObserveByUser(ctx context.Context, userID int64) (<-chan []model.Order, error) {
	return u.orders.ObserveByUser(ctx, userID)
}

// ObserveByStatus opens a live read filtered by exact status.
func (u *OrderUseCase) ObserveByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error) {
	return u.orders.ObserveByStatus(ctx, userID, status)
}

// ObserveItems opens a live read over the order's line items.
func (u *OrderUseCase) ObserveItems(ctx context.Context, number string) (<-chan []model.OrderItem, error) {
	return u.orders.ObserveItems(ctx, number)
}

// UpdateStatus transitions the order, stamping the milestone timestamp for
// CONFIRMADO/ENVIADO/ENTREGADO. Unknown statuses are persisted as-is and
// touch no milestone.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error {
	return u.orders.UpdateStatus(ctx, number, status, u.now().UTC())
}

// AssignDispatch records the carrier dispatch number. The current status is
// not validated here.
func (u *OrderUseCase) AssignDispatch(ctx context.Context, number, dispatch string) error {
	return u.orders.AssignDispatch(ctx, number, dispatch)
}

// Count returns the total number of orders.
func (u *OrderUseCase) Count(ctx context.Context) (int64, error) {
	return u.orders.Count(ctx)
}

// Delete removes the order and all of its items atomically.
func (u *OrderUseCase) Delete(ctx context.Context, number string) error {
	return u.orders.DeleteComplete(ctx, number)
}
