//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"delivery/internal/entities"
	"delivery/internal/realtime"
	"delivery/internal/service/notifier"
	"delivery/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)

	// UpdateStatus applies the change only while the filter matches the
	// current row; zero matched rows come back as ErrOrderNotFound.
	UpdateStatus(ctx context.Context, id string, filter entities.StatusFilter, change entities.StatusChange) (*entities.Order, error)

	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatusType, paymentRef *string) (*entities.Order, error)

	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.Order, error)
	ListByRider(ctx context.Context, riderID string) ([]entities.Order, error)
}

// PartyRepository resolves restaurants and riders, including the owner-id
// indirection authorization relies on.
type PartyRepository interface {
	GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
	GetRestaurantByUserID(ctx context.Context, userID string) (*entities.Restaurant, error)
	GetRiderByID(ctx context.Context, id string) (*entities.Rider, error)
	GetRiderByUserID(ctx context.Context, userID string) (*entities.Rider, error)
	GetMenuItems(ctx context.Context, restaurantID string, ids []string) (map[string]entities.MenuItem, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notifier.Event)
	BroadcastRiders(ctx context.Context, kind realtime.EventType, order *entities.Order)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
