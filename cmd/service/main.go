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
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "tiffin/internal/app"
	"tiffin/internal/handlers/rest/address_delete"
	"tiffin/internal/handlers/rest/address_post"
	"tiffin/internal/handlers/rest/address_put"
	"tiffin/internal/handlers/rest/addresses_get"
	"tiffin/internal/handlers/rest/checkout_post"
	"tiffin/internal/handlers/rest/coupon_validate_post"
	"tiffin/internal/handlers/rest/coupons_get"
	"tiffin/internal/handlers/rest/healthcheck_head"
	"tiffin/internal/handlers/rest/menu_get"
	"tiffin/internal/handlers/rest/menu_post"
	"tiffin/internal/handlers/rest/order_cancel_post"
	"tiffin/internal/handlers/rest/order_get"
	"tiffin/internal/handlers/rest/order_status_put"
	"tiffin/internal/handlers/rest/orders_get"
	"tiffin/internal/handlers/rest/ping_get"
	"tiffin/internal/handlers/rest/profile_get"
	"tiffin/internal/handlers/rest/review_post"
	"tiffin/internal/handlers/rest/reviews_get"
	"tiffin/internal/pkg/config"
	"tiffin/internal/pkg/dotenv"
	"tiffin/internal/pkg/identity"
	"tiffin/internal/pkg/kafka"
	metrics_system "tiffin/internal/pkg/metrics"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/pkg/middlewares/graceful_shutdown"
	"tiffin/internal/pkg/middlewares/metrics"
	"tiffin/internal/pkg/middlewares/rate_limiter"
	"tiffin/internal/pkg/middlewares/timeout"
	"tiffin/internal/pkg/postgres"
	"tiffin/internal/pkg/redisclient"
	orderService "tiffin/internal/service/order"
	"tiffin/pkg/cache"
	"tiffin/pkg/logger"
	"tiffin/pkg/logger/zap_adapter"
	"tiffin/pkg/token_bucket"
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

	mainLog.Info("starting tiffin order service")

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

	// кеш опционален: без Redis сервис работает напрямую от БД
	var backend cache.Backend
	if redisClient := redisclient.New(ctx, log, &cfg.Redis); redisClient != nil {
		backend = redisClient
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close Redis connection",
					logger.NewField("error", err),
				)
			}
		}()
	}

	// публикация событий тоже best-effort: nil выключает ее целиком
	var publisher orderService.EventPublisher
	if cfg.Kafka.ProducerEnabled {
		producer, err := kafka.NewProducer(log, &cfg.Kafka, strings.Split(cfg.Kafka.Brokers, ","))
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		publisher = producer
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close Kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, backend, publisher, cfg)
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

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные ручки: каталог и купоны доступны без токена
	router.Handle("/menu", menu_get.New(log, app.ServiceMenu)).Methods("GET")
	router.Handle("/coupons/list", coupons_get.New(log, app.ServiceCoupon)).Methods("GET")
	router.Handle("/coupons/validate", coupon_validate_post.New(log, app.ServiceCoupon)).Methods("POST")

	// пользовательские ручки за Bearer-токеном
	verifier := identity.NewHMACVerifier(cfg.Auth.Secret)
	authRouter := router.NewRoute().Subrouter()
	authRouter.Use(auth.Middleware(verifier))

	authRouter.Handle("/payment/checkout", checkout_post.New(log, app.ServiceOrder)).Methods("POST")
	authRouter.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	authRouter.Handle("/orders/{order_id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	authRouter.Handle("/orders/{order_id}/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods("POST")

	authRouter.Handle("/addresses", addresses_get.New(log, app.ServiceAddress)).Methods("GET")
	authRouter.Handle("/addresses", address_post.New(log, app.ServiceAddress)).Methods("POST")
	authRouter.Handle("/addresses/{id}", address_put.New(log, app.ServiceAddress)).Methods("PUT")
	authRouter.Handle("/addresses/{id}", address_delete.New(log, app.ServiceAddress)).Methods("DELETE")

	authRouter.Handle("/reviews/user", reviews_get.New(log, app.ServiceReview)).Methods("GET")
	authRouter.Handle("/reviews", review_post.New(log, app.ServiceReview)).Methods("POST")

	authRouter.Handle("/user/profile", profile_get.New(log, app.ServiceAddress)).Methods("GET")

	// административные ручки за внутренним токеном
	internalRouter := router.NewRoute().Subrouter()
	internalRouter.Use(auth.InternalMiddleware(cfg.Auth.InternalToken))

	internalRouter.Handle("/orders/{order_id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	internalRouter.Handle("/menu", menu_post.New(log, app.ServiceMenu)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
