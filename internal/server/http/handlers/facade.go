package handlers

import (
	"context"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
	RecoverPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
}

// ProfileFacade exposes account profile operations.
type ProfileFacade interface {
	Profile(ctx context.Context, accountID int64) (*model.Account, error)
	UpdateProfile(ctx context.Context, account *model.Account, newPassword string) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	StreamOrders(ctx context.Context, userID int64) (<-chan []model.Order, error)
	StreamOrdersByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error)
	OrderByNumber(ctx context.Context, number string) (*model.Order, error)
	OrderItems(ctx context.Context, number string) ([]model.OrderItem, error)
	StreamOrderItems(ctx context.Context, number string) (<-chan []model.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) error
	AssignDispatch(ctx context.Context, number, dispatch string) error
	OrdersCount(ctx context.Context) (int64, error)
	DeleteOrder(ctx context.Context, number string) error
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	ProfileFacade
	OrderFacade
}
