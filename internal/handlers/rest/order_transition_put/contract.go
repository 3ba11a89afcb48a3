//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_transition_put_test
package order_transition_put

import (
	"context"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateOrderStatus(ctx context.Context, actor entities.Identity, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
