package test

import (
	"context"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for authentication endpoints.
type AuthFacadeStub struct {
	RegisterFn   func(context.Context, usecase.RegisterInput) (string, error)
	LoginFn      func(context.Context, string, string) (string, error)
	ParseTokenFn func(string) (int64, error)
	RecoverFn    func(context.Context, string) (string, error)
	ResetFn      func(context.Context, string, string, string) (string, error)
}

// Register delegates to provided function or returns a default token.
func (s AuthFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return "session-token", nil
}

// Login delegates to provided function or returns a default token.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "session-token", nil
}

// ParseToken accepts every token by default.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// RecoverPassword delegates to provided function or returns a default message.
func (s AuthFacadeStub) RecoverPassword(ctx context.Context, email string) (string, error) {
	if s.RecoverFn != nil {
		return s.RecoverFn(ctx, email)
	}
	return "Recovery code sent", nil
}

// ResetPassword delegates to provided function or returns a default token.
func (s AuthFacadeStub) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, email, code, newPassword)
	}
	return "OK", nil
}

// ProfileFacadeStub simulates profile operations.
type ProfileFacadeStub struct {
	ProfileFn func(context.Context, int64) (*model.Account, error)
	UpdateFn  func(context.Context, *model.Account, string) error
}

// Profile returns stored account or default data.
func (s ProfileFacadeStub) Profile(ctx context.Context, accountID int64) (*model.Account, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, accountID)
	}
	return &model.Account{ID: accountID, Name: "Ana", Email: "ana@example.com"}, nil
}

// UpdateProfile executes configured update handler.
func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, account *model.Account, newPassword string) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, account, newPassword)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn          func(context.Context, int64, []model.OrderItem) (*model.Order, error)
	OrdersFn         func(context.Context, int64) ([]model.Order, error)
	StreamFn         func(context.Context, int64) (<-chan []model.Order, error)
	StreamByStatusFn func(context.Context, int64, model.OrderStatus) (<-chan []model.Order, error)
	GetFn            func(context.Context, string) (*model.Order, error)
	ItemsFn          func(context.Context, string) ([]model.OrderItem, error)
	StreamItemsFn    func(context.Context, string) (<-chan []model.OrderItem, error)
	UpdateStatusFn   func(context.Context, string, model.OrderStatus) error
	AssignDispatchFn func(context.Context, string, string) error
	CountFn          func(context.Context) (int64, error)
	DeleteFn         func(context.Context, string) error
}

// PlaceOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, items)
	}
	return &model.Order{Number: "P-00000001", UserID: userID, Status: model.OrderStatusCreated}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{Number: "P-00000001"}}, nil
}

// StreamOrders returns configured channel or a closed one-shot snapshot.
func (s OrderFacadeStub) StreamOrders(ctx context.Context, userID int64) (<-chan []model.Order, error) {
	if s.StreamFn != nil {
		return s.StreamFn(ctx, userID)
	}
	ch := make(chan []model.Order, 1)
	ch <- []model.Order{{Number: "P-00000001"}}
	close(ch)
	return ch, nil
}

// StreamOrdersByStatus returns configured channel or a closed one-shot snapshot.
func (s OrderFacadeStub) StreamOrdersByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error) {
	if s.StreamByStatusFn != nil {
		return s.StreamByStatusFn(ctx, userID, status)
	}
	ch := make(chan []model.Order, 1)
	ch <- []model.Order{{Number: "P-00000001", Status: status}}
	close(ch)
	return ch, nil
}

// OrderByNumber returns configured order or default data.
func (s OrderFacadeStub) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, number)
	}
	return &model.Order{Number: number, Status: model.OrderStatusCreated}, nil
}

// OrderItems returns configured line items.
func (s OrderFacadeStub) OrderItems(ctx context.Context, number string) ([]model.OrderItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, number)
	}
	return []model.OrderItem{{OrderNumber: number, ProductID: "aji-rojo", Quantity: 1, UnitPrice: 2.5}}, nil
}

// StreamOrderItems returns configured channel or a closed one-shot snapshot.
func (s OrderFacadeStub) StreamOrderItems(ctx context.Context, number string) (<-chan []model.OrderItem, error) {
	if s.StreamItemsFn != nil {
		return s.StreamItemsFn(ctx, number)
	}
	ch := make(chan []model.OrderItem, 1)
	ch <- []model.OrderItem{{OrderNumber: number, ProductID: "aji-rojo", Quantity: 1}}
	close(ch)
	return ch, nil
}

// UpdateOrderStatus executes configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, number, status)
	}
	return nil
}

// AssignDispatch executes configured handler.
func (s OrderFacadeStub) AssignDispatch(ctx context.Context, number, dispatch string) error {
	if s.AssignDispatchFn != nil {
		return s.AssignDispatchFn(ctx, number, dispatch)
	}
	return nil
}

// OrdersCount returns configured total.
func (s OrderFacadeStub) OrdersCount(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 1, nil
}

// DeleteOrder executes configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, number string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, number)
	}
	return nil
}

// CommerceFacadeStub aggregates the per-area stubs for router-level tests.
type CommerceFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	OrderFacadeStub
}

// PingerStub simulates the storage liveness probe.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
