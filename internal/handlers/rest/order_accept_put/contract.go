//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_accept_put_test
package order_accept_put

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
	AcceptOrder(ctx context.Context, actorID, orderID string) (*entities.Order, error)
}
