package model

import "time"

// OrderStatus describes order lifecycle. Values are the wire strings used by
// the mobile clients, so they stay in Spanish.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREADO"
	OrderStatusConfirmed OrderStatus = "CONFIRMADO"
	OrderStatusShipped   OrderStatus = "ENVIADO"
	OrderStatusDelivered OrderStatus = "ENTREGADO"
)

// Known reports whether the status is one of the lifecycle constants.
// Unknown values are still persisted as-is; they only skip milestone stamping.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusCreated, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order describes a single purchase transaction placed by a user.
type Order struct {
	Number         string
	UserID         int64
	Status         OrderStatus
	CreatedAt      time.Time
	ConfirmedAt    *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	DispatchNumber *string
}

// OrderItem is one product line belonging to an order. Items reference the
// order by number, not by any internal identity.
type OrderItem struct {
	ID          int64
	OrderNumber string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// Total returns the line total for the item.
func (i OrderItem) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
