package dto

import (
	"time"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
)

// OrderItemRequest is one product line in a new order.
type OrderItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// PlaceOrderRequest creates an order with its line items.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// UpdateStatusRequest transitions an order.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignDispatchRequest records the carrier dispatch number.
type AssignDispatchRequest struct {
	DispatchNumber string `json:"dispatch_number"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	Number         string     `json:"number"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	DispatchNumber *string    `json:"dispatch_number,omitempty"`
}

// OrderItemResponse is the wire representation of a line item.
type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// CountResponse reports the total number of orders.
type CountResponse struct {
	Count int64 `json:"count"`
}

// FromOrder converts a domain order.
func FromOrder(order model.Order) OrderResponse {
	return OrderResponse{
		Number:         order.Number,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
		ConfirmedAt:    order.ConfirmedAt,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
		DispatchNumber: order.DispatchNumber,
	}
}

// FromOrders converts a slice of domain orders.
func FromOrders(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}

// FromOrderItem converts a domain line item.
func FromOrderItem(item model.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total(),
	}
}

// FromOrderItems converts a slice of domain line items.
func FromOrderItems(items []model.OrderItem) []OrderItemResponse {
	result := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, FromOrderItem(item))
	}
	return result
}
