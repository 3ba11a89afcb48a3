package order

import (
	"delivery/internal/entities"
	"delivery/internal/service/notifier"
)

// statusPush returns the customer-facing push copy for a status change, or
// nil for statuses that do not push.
func statusPush(o *entities.Order) *notifier.PushMessage {
	var title, body string
	switch o.Status {
	case entities.OrderPreparing:
		title = "Order Being Prepared"
		body = "The restaurant has started preparing your order"
	case entities.OrderReadyForPickup:
		title = "Order Ready for Pickup!"
		body = "Your order is ready and waiting for rider pickup"
	case entities.OrderOnTheWay:
		title = "Order On The Way!"
		body = "Your order is on the way to you"
	case entities.OrderDelivered:
		title = "Order Delivered!"
		body = "Your order has been delivered. Enjoy your meal!"
	default:
		return nil
	}
	return &notifier.PushMessage{
		Title: title,
		Body:  body,
		Data:  pushData(o, "ORDER_"+o.Status.String()),
	}
}

func pushData(o *entities.Order, kind string) map[string]string {
	return map[string]string{
		"orderId": o.ID,
		"type":    kind,
	}
}
