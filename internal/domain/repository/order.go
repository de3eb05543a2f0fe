package repository

import (
	"context"
	"time"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
)

// OrderRepository describes persistence operations for orders and their
// line items. Observe* methods are live reads: the returned channel carries
// an initial snapshot followed by a refreshed snapshot after every mutation
// touching the observed data, until ctx is cancelled.
type OrderRepository interface {
	// Insert writes the order with insert-or-replace semantics: a colliding
	// order number overwrites the prior row.
	Insert(ctx context.Context, order *model.Order) error
	// InsertItems bulk-writes line items, insert-or-replace per item.
	InsertItems(ctx context.Context, items []model.OrderItem) error

	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListItems(ctx context.Context, number string) ([]model.OrderItem, error)
	Count(ctx context.Context) (int64, error)

	ObserveByUser(ctx context.Context, userID int64) (<-chan []model.Order, error)
	ObserveByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error)
	ObserveItems(ctx context.Context, number string) (<-chan []model.OrderItem, error)

	// UpdateStatus sets the status unconditionally and stamps the milestone
	// timestamp matching the new status, if that timestamp is still unset.
	UpdateStatus(ctx context.Context, number string, status model.OrderStatus, at time.Time) error
	// AssignDispatch sets the dispatch number without validating the current
	// status; callers enforce any ordering rule.
	AssignDispatch(ctx context.Context, number, dispatch string) error

	// DeleteComplete removes the order and all of its items atomically.
	DeleteComplete(ctx context.Context, number string) error
}
