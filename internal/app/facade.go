package app

import (
	"context"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/usecase"
)

// CommerceFacade aggregates account and order use cases for the HTTP layer.
type CommerceFacade struct {
	accounts *usecase.AccountUseCase
	orders   *usecase.OrderUseCase
}

func NewCommerceFacade(accounts *usecase.AccountUseCase, orders *usecase.OrderUseCase) *CommerceFacade {
	return &CommerceFacade{accounts: accounts, orders: orders}
}

func (f *CommerceFacade) Register(ctx context.Context, input usecase.RegisterInput) (string, error) {
	_, token, err := f.accounts.Register(ctx, input)
	return token, err
}

func (f *CommerceFacade) Login(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.accounts.Login(ctx, email, password)
	return token, err
}

func (f *CommerceFacade) ParseToken(token string) (int64, error) {
	return f.accounts.ParseToken(token)
}

func (f *CommerceFacade) RecoverPassword(ctx context.Context, email string) (string, error) {
	return f.accounts.RecoverPassword(ctx, email)
}

func (f *CommerceFacade) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	return f.accounts.ResetPassword(ctx, email, code, newPassword)
}

func (f *CommerceFacade) Profile(ctx context.Context, accountID int64) (*model.Account, error) {
	return f.accounts.GetByID(ctx, accountID)
}

func (f *CommerceFacade) UpdateProfile(ctx context.Context, account *model.Account, newPassword string) error {
	return f.accounts.Update(ctx, account, newPassword)
}

func (f *CommerceFacade) PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error) {
	return f.orders.Place(ctx, userID, items)
}

func (f *CommerceFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *CommerceFacade) StreamOrders(ctx context.Context, userID int64) (<-chan []model.Order, error) {
	return f.orders.ObserveByUser(ctx, userID)
}

func (f *CommerceFacade) StreamOrdersByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error) {
	return f.orders.ObserveByStatus(ctx, userID, status)
}

func (f *CommerceFacade) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.GetByNumber(ctx, number)
}

func (f *CommerceFacade) OrderItems(ctx context.Context, number string) ([]model.OrderItem, error) {
	return f.orders.Items(ctx, number)
}

func (f *CommerceFacade) StreamOrderItems(ctx context.Context, number string) (<-chan []model.OrderItem, error) {
	return f.orders.ObserveItems(ctx, number)
}

func (f *CommerceFacade) UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, number, status)
}

func (f *CommerceFacade) AssignDispatch(ctx context.Context, number, dispatch string) error {
	return f.orders.AssignDispatch(ctx, number, dispatch)
}

func (f *CommerceFacade) OrdersCount(ctx context.Context) (int64, error) {
	return f.orders.Count(ctx)
}

func (f *CommerceFacade) DeleteOrder(ctx context.Context, number string) error {
	return f.orders.Delete(ctx, number)
}
