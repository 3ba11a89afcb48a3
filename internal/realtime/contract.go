//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=realtime_test
package realtime

import (
	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type sessionLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// TokenVerifier checks a signed credential and returns the identity carried
// in its claims.
type TokenVerifier interface {
	Verify(token string) (*entities.Identity, error)
}
