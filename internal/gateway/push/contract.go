//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=push_test
package push

import (
	"context"

	"delivery/pkg/logger"

	"firebase.google.com/go/v4/messaging"
)

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// messenger is the slice of *messaging.Client the gateway uses.
type messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// TokenSource resolves a party's stored device token.
type TokenSource interface {
	DeviceToken(ctx context.Context, userID string) (string, error)
}
