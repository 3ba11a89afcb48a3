package order

import (
	"strings"

	"delivery/internal/entities"
)

func validateCreateOrder(req CreateOrderRequest) error {
	if strings.TrimSpace(req.RestaurantID) == "" {
		return ErrRestaurantNotFound
	}
	if len(req.Items) == 0 {
		return ErrMissingItems
	}
	for _, it := range req.Items {
		if strings.TrimSpace(it.MenuItemID) == "" {
			return ErrMenuItemNotFound
		}
		if it.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func validStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderConfirmed,
		entities.OrderPreparing,
		entities.OrderReadyForPickup,
		entities.OrderOnTheWay,
		entities.OrderDelivered,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}
