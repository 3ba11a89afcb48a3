package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "delivery/internal/app"
	"delivery/internal/entities"
	"delivery/internal/handlers/rest/healthcheck_head"
	"delivery/internal/handlers/rest/order_accept_put"
	"delivery/internal/handlers/rest/order_assign_rider_put"
	"delivery/internal/handlers/rest/order_cancel_put"
	"delivery/internal/handlers/rest/order_get"
	"delivery/internal/handlers/rest/order_post"
	"delivery/internal/handlers/rest/order_status_put"
	"delivery/internal/handlers/rest/order_transition_put"
	"delivery/internal/handlers/rest/orders_get"
	"delivery/internal/handlers/rest/ping_get"
	"delivery/internal/handlers/rest/ws_get"
	"delivery/internal/pkg/config"
	"delivery/internal/pkg/dotenv"
	metrics_system "delivery/internal/pkg/metrics"
	"delivery/internal/pkg/middlewares/auth"
	"delivery/internal/pkg/middlewares/graceful_shutdown"
	"delivery/internal/pkg/middlewares/metrics"
	"delivery/internal/pkg/middlewares/rate_limiter"
	"delivery/internal/pkg/middlewares/timeout"
	"delivery/internal/pkg/postgres"
	"delivery/pkg/logger"
	"delivery/pkg/logger/zap_adapter"
	"delivery/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")

	// Вебсокет монтируется до REST-подроутера: timeout-middleware убил бы
	// долгоживущее соединение, а обертка metrics-middleware не реализует
	// http.Hijacker и сломала бы upgrade.
	router.Handle("/ws", ws_get.New(log, app.Registry, app.TokenManager, cfg.Auth.RealtimeAuthWindow)).Methods("GET")

	api := router.PathPrefix("/").Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	api.Use(metrics.Middleware(log))
	api.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))

	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(auth.Middleware(app.TokenManager))

	orders.Handle("", order_post.New(log, app.ServiceOrder)).Methods("POST")
	orders.Handle("", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	orders.Handle("/{id}/accept", order_accept_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/{id}/assign-rider", order_assign_rider_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/{id}/cancel", order_cancel_put.New(log, app.ServiceOrder)).Methods("PUT")
	orders.Handle("/{id}/ready-for-pickup", order_transition_put.New(log, app.ServiceOrder, entities.OrderReadyForPickup, entities.RoleRestaurant)).Methods("PUT")
	orders.Handle("/{id}/pickup", order_transition_put.New(log, app.ServiceOrder, entities.OrderOnTheWay, entities.RoleRider)).Methods("PUT")
	orders.Handle("/{id}/deliver", order_transition_put.New(log, app.ServiceOrder, entities.OrderDelivered, entities.RoleRider)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
