package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"delivery/internal/entities"
	orderservice "delivery/internal/service/order"
	"delivery/pkg/logger"
)

// changedEvent is the payload published by the payment provider bridge on
// payment.status.changed.
type changedEvent struct {
	OrderID    string  `json:"orderId"`
	Status     string  `json:"status"`
	PaymentRef *string `json:"paymentRef,omitempty"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim should stop (context cancelled, the message is left unmarked
// and will be reprocessed).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("payment_status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	order, err := h.orderService.ProcessPaymentStatusChange(ctx, event.OrderID,
		entities.PaymentStatusType(event.Status), event.PaymentRef)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler unknown order")

		case errors.Is(err, orderservice.ErrInvalidStatus),
			errors.Is(err, orderservice.ErrInvalidOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler rejected event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("payment_status", order.PaymentStatus.String()),
		logger.NewField("order_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
