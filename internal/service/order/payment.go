package order

import (
	"context"
	"fmt"

	"delivery/internal/entities"
	"delivery/internal/realtime"
	"delivery/internal/service/notifier"
	"delivery/pkg/logger"
)

// ProcessPaymentStatusChange records the payment outcome reported by the
// payment provider and tells the customer. A failed payment cancels the
// order while it is still PENDING.
func (s *Service) ProcessPaymentStatusChange(ctx context.Context, orderID string, status entities.PaymentStatusType, paymentRef *string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	switch status {
	case entities.PaymentPending, entities.PaymentSuccessful, entities.PaymentFailed:
	default:
		return nil, ErrInvalidStatus
	}

	updated, err := s.repo.UpdatePaymentStatus(ctx, orderID, status, paymentRef)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	if status == entities.PaymentFailed && updated.Status == entities.OrderPending {
		cancelled, err := s.repo.UpdateStatus(ctx, orderID,
			entities.StatusFilter{Statuses: []entities.OrderStatusType{entities.OrderPending}},
			entities.StatusChange{Status: entities.OrderCancelled},
		)
		if err == nil {
			updated = cancelled
		} else {
			s.log.Warn("cancel order after failed payment",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
		}
	}

	var push *notifier.PushMessage
	if status == entities.PaymentFailed {
		push = &notifier.PushMessage{
			Title: "Payment Failed",
			Body:  fmt.Sprintf("Payment for order #%s failed", shortID(updated.ID)),
			Data:  pushData(updated, "PAYMENT_FAILED"),
		}
	}
	s.notifier.Notify(ctx, notifier.Event{
		PartyID: updated.CustomerID,
		Role:    entities.RoleUser,
		Kind:    realtime.EventOrderUpdated,
		Order:   updated,
		Push:    push,
	})

	return updated, nil
}
