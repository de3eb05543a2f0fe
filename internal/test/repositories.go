package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/livequery"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	ByEmail map[string]*model.Account
	ByIDMap map[int64]*model.Account
	Next    int64
	Err     error
}

// NewAccountRepositoryStub constructs a stub with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		ByEmail: make(map[string]*model.Account),
		ByIDMap: make(map[int64]*model.Account),
		Next:    1,
	}
}

// Create registers the account unless the email is taken or the stub has an
// explicit error.
func (s *AccountRepositoryStub) Create(ctx context.Context, account *model.Account) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if _, exists := s.ByEmail[account.Email]; exists {
		return 0, domainErrors.ErrEmailTaken
	}
	account.ID = s.Next
	account.CreatedAt = time.Now()
	s.Next++
	stored := *account
	s.ByEmail[account.Email] = &stored
	s.ByIDMap[account.ID] = &stored
	return account.ID, nil
}

// GetByEmail fetches an account by email or returns not found.
func (s *AccountRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByEmail[email]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches an account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByIDMap[id]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update overwrites a stored account.
func (s *AccountRepositoryStub) Update(ctx context.Context, account *model.Account) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByIDMap[account.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, stored.Email)
	copied := *account
	s.ByIDMap[account.ID] = &copied
	s.ByEmail[account.Email] = &copied
	return nil
}

// DeleteAll clears the stub store.
func (s *AccountRepositoryStub) DeleteAll(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	s.ByEmail = make(map[string]*model.Account)
	s.ByIDMap = make(map[int64]*model.Account)
	return nil
}

// OrderRepositoryStub is an in-memory order store with live-query support,
// mirroring the repository contract closely enough for use case tests.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	orders map[string]*model.Order
	items  map[string][]model.OrderItem
	hub    *livequery.Hub

	Err error

	InsertFn       func(context.Context, *model.Order) error
	UpdateStatusFn func(context.Context, string, model.OrderStatus, time.Time) error
}

// NewOrderRepositoryStub constructs an empty stub.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		orders: make(map[string]*model.Order),
		items:  make(map[string][]model.OrderItem),
		hub:    livequery.NewHub(),
	}
}

func (s *OrderRepositoryStub) Insert(ctx context.Context, order *model.Order) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	copied := *order
	s.orders[order.Number] = &copied
	s.mu.Unlock()
	s.hub.Notify("orders")
	return nil
}

func (s *OrderRepositoryStub) InsertItems(ctx context.Context, items []model.OrderItem) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	for _, item := range items {
		s.items[item.OrderNumber] = append(s.items[item.OrderNumber], item)
	}
	s.mu.Unlock()
	s.hub.Notify("order_items")
	return nil
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.orders[number]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(o *model.Order) bool { return o.UserID == userID }), nil
}

func (s *OrderRepositoryStub) listByStatus(userID int64, status model.OrderStatus) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(o *model.Order) bool { return o.UserID == userID && o.Status == status })
}

// collect returns matching orders newest first. Callers hold the lock.
func (s *OrderRepositoryStub) collect(match func(*model.Order) bool) []model.Order {
	var result []model.Order
	for _, order := range s.orders {
		if match(order) {
			result = append(result, *order)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (s *OrderRepositoryStub) ListItems(ctx context.Context, number string) ([]model.OrderItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderItem(nil), s.items[number]...), nil
}

func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.orders)), nil
}

func (s *OrderRepositoryStub) ObserveByUser(ctx context.Context, userID int64) (<-chan []model.Order, error) {
	return livequery.Observe(ctx, s.hub, "orders", func(ctx context.Context) ([]model.Order, error) {
		return s.ListByUser(ctx, userID)
	})
}

func (s *OrderRepositoryStub) ObserveByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error) {
	return livequery.Observe(ctx, s.hub, "orders", func(ctx context.Context) ([]model.Order, error) {
		return s.listByStatus(userID, status), nil
	})
}

func (s *OrderRepositoryStub) ObserveItems(ctx context.Context, number string) (<-chan []model.OrderItem, error) {
	return livequery.Observe(ctx, s.hub, "order_items", func(ctx context.Context) ([]model.OrderItem, error) {
		return s.ListItems(ctx, number)
	})
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, number string, status model.OrderStatus, at time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, number, status, at)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	order, ok := s.orders[number]
	if !ok {
		s.mu.Unlock()
		return domainErrors.ErrNotFound
	}
	order.Status = status
	stamp := at
	switch status {
	case model.OrderStatusConfirmed:
		if order.ConfirmedAt == nil {
			order.ConfirmedAt = &stamp
		}
	case model.OrderStatusShipped:
		if order.ShippedAt == nil {
			order.ShippedAt = &stamp
		}
	case model.OrderStatusDelivered:
		if order.DeliveredAt == nil {
			order.DeliveredAt = &stamp
		}
	}
	s.mu.Unlock()
	s.hub.Notify("orders")
	return nil
}

func (s *OrderRepositoryStub) AssignDispatch(ctx context.Context, number, dispatch string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	order, ok := s.orders[number]
	if !ok {
		s.mu.Unlock()
		return domainErrors.ErrNotFound
	}
	order.DispatchNumber = &dispatch
	s.mu.Unlock()
	s.hub.Notify("orders")
	return nil
}

func (s *OrderRepositoryStub) DeleteComplete(ctx context.Context, number string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	if _, ok := s.orders[number]; !ok {
		s.mu.Unlock()
		return domainErrors.ErrNotFound
	}
	delete(s.orders, number)
	delete(s.items, number)
	s.mu.Unlock()
	s.hub.Notify("orders", "order_items")
	return nil
}
