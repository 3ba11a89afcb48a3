package order

import (
	"delivery/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		RestaurantID:  o.RestaurantID,
		RiderID:       o.RiderID,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatusType(o.Status),
		PaymentStatus: entities.PaymentStatusType(o.PaymentStatus),
		PaymentRef:    o.PaymentRef,
		CreatedAt:     o.CreatedAt,
	}
	for _, it := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return order
}

func ToDomainList(ordersDB []OrderDB, itemsByOrder map[string][]OrderItemDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB, itemsByOrder[orderDB.ID])
	}
	return result
}
