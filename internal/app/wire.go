//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"delivery/internal/gateway/push"
	order_accept_put "delivery/internal/handlers/rest/order_accept_put"
	order_assign_rider_put "delivery/internal/handlers/rest/order_assign_rider_put"
	order_cancel_put "delivery/internal/handlers/rest/order_cancel_put"
	order_get "delivery/internal/handlers/rest/order_get"
	order_post "delivery/internal/handlers/rest/order_post"
	order_status_put "delivery/internal/handlers/rest/order_status_put"
	order_transition_put "delivery/internal/handlers/rest/order_transition_put"
	orders_get "delivery/internal/handlers/rest/orders_get"
	"delivery/internal/handlers/tasks/registry_stats"
	"delivery/internal/pkg/config"
	"delivery/internal/pkg/token"
	"delivery/internal/realtime"

	orderRepo "delivery/internal/repository/order"
	partyRepo "delivery/internal/repository/party"
	"delivery/internal/service/notifier"
	orderService "delivery/internal/service/order"

	"delivery/pkg/background"
	"delivery/pkg/logger"
	"delivery/pkg/querier"
	"delivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	Registry          *realtime.Registry
	TokenManager      *token.Manager
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_accept_put.Service
	order_assign_rider_put.Service
	order_status_put.Service
	order_transition_put.Service
	order_cancel_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsInterval,

		provideOrderRepository,
		providePartyRepository,

		provideRegistry,
		provideTokenManager,
		providePushGateway,
		provideNotifier,
		provideServiceOrder,

		provideRegistryStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PartyRepository), new(*partyRepo.Repository)),
		wire.Bind(new(orderService.Notifier), new(*notifier.Notifier)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notifier.Registry), new(*realtime.Registry)),
		wire.Bind(new(push.TokenSource), new(*partyRepo.Repository)),
		wire.Bind(new(registry_stats.Registry), new(*realtime.Registry)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		providePartyRepository,

		provideRegistry,
		providePushGateway,
		provideNotifier,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.PartyRepository), new(*partyRepo.Repository)),
		wire.Bind(new(orderService.Notifier), new(*notifier.Notifier)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notifier.Registry), new(*realtime.Registry)),
		wire.Bind(new(push.TokenSource), new(*partyRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePartyRepository(querier *querier.Querier) *partyRepo.Repository {
	return partyRepo.New(querier)
}

func provideRegistry() *realtime.Registry {
	return realtime.NewRegistry()
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.New(cfg.Auth.JWTSecret)
}

// providePushGateway собирает FCM шлюз, либо заглушку когда пуши выключены
func providePushGateway(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	tokens push.TokenSource,
) (notifier.PushGateway, error) {
	if !cfg.Push.Enabled {
		return push.NewDisabled(), nil
	}

	client, err := push.NewMessagingClient(ctx, cfg.Push.ProjectID, cfg.Push.CredentialsFile)
	if err != nil {
		return nil, err
	}
	return push.New(client, tokens, log), nil
}

func provideNotifier(
	registry notifier.Registry,
	pushGateway notifier.PushGateway,
	log logger.Logger,
) *notifier.Notifier {
	return notifier.New(registry, pushGateway, log)
}

func provideServiceOrder(
	repository orderService.Repository,
	parties orderService.PartyRepository,
	dispatcher orderService.Notifier,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(repository, parties, dispatcher, txManager, log)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.RegistryStatsInterval)
}

func provideRegistryStatsTask(
	log logger.Logger,
	registry registry_stats.Registry,
	interval StatsInterval,
) *registry_stats.RegistryStats {
	return registry_stats.NewRegistryStats(log, registry, time.Duration(interval))
}

func provideTaskList(
	registryStatsTask *registry_stats.RegistryStats,
) []background.Task {
	return []background.Task{
		registryStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
