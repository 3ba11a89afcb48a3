// Package dto holds the JSON contract of the REST API.
package dto

import (
	"time"

	"delivery/internal/entities"
)

type OrderCreate struct {
	RestaurantID string            `json:"restaurantId"`
	Items        []OrderItemCreate `json:"items"`
}

type OrderItemCreate struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int32  `json:"quantity"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customerId"`
	RestaurantID  string      `json:"restaurantId"`
	RiderID       *string     `json:"riderId,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   int64       `json:"totalAmount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menuItemId"`
	Quantity   int32  `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
}

func FromOrder(o *entities.Order) Order {
	out := Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		RestaurantID:  o.RestaurantID,
		RiderID:       o.RiderID,
		Items:         make([]OrderItem, 0, len(o.Items)),
		TotalAmount:   o.TotalAmount,
		Status:        o.Status.String(),
		PaymentStatus: o.PaymentStatus.String(),
		CreatedAt:     o.CreatedAt,
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderItem{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return out
}

func FromOrderList(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i]))
	}
	return out
}
