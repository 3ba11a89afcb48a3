//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

import (
	"context"

	"delivery/internal/realtime"
	"delivery/pkg/logger"
)

type notifierLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Registry is the read-only view of the connection registry the dispatcher
// needs. Registration and eviction stay with the session protocol.
type Registry interface {
	Lookup(partyID string) (realtime.Emitter, bool)
	Riders() []realtime.Emitter
}

// PushGateway delivers a durable push notification to a party's stored device
// token, best effort.
type PushGateway interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}
