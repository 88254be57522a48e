package main

import (
	"context"
	"errors"
	"flag"
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

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "tracker/internal/app"
	orderstatushandler "tracker/internal/handlers/kafka-consumer/order_status_changed"
	"tracker/internal/handlers/rest/healthcheck_head"
	"tracker/internal/handlers/rest/order_close_post"
	"tracker/internal/handlers/rest/order_details_get"
	"tracker/internal/handlers/rest/order_post"
	"tracker/internal/handlers/rest/orders_get"
	"tracker/internal/handlers/rest/orders_stream_get"
	"tracker/internal/handlers/rest/ping_get"
	"tracker/internal/handlers/rest/session_signout_post"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/dotenv"
	"tracker/internal/pkg/i18n"
	"tracker/internal/pkg/kafka"
	metrics_system "tracker/internal/pkg/metrics"
	"tracker/internal/pkg/middlewares/cors"
	"tracker/internal/pkg/middlewares/graceful_shutdown"
	"tracker/internal/pkg/middlewares/metrics"
	"tracker/internal/pkg/middlewares/rate_limiter"
	"tracker/internal/pkg/middlewares/timeout"
	"tracker/internal/pkg/navigation"
	"tracker/internal/pkg/postgres"
	"tracker/internal/presenter"
	"tracker/internal/repository/order_notify"
	"tracker/internal/service/livequery"
	"tracker/migrations"
	"tracker/pkg/logger"
	"tracker/pkg/logger/zap_adapter"
	"tracker/pkg/token_bucket"
)

func main() {
	port := flag.String("port", "", "HTTP port, overrides PORT")
	flag.Parse()

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

	mainLog.Info("starting order-tracker application")

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
	if *port != "" {
		cfg.Server.Port = *port
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

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, log, pool, migrations.FS); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.Hub.Close()

	translator, err := i18n.New(cfg.Display.Locale)
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// лента изменений живет до отмены ctx
	changeFeedErr := make(chan error, 1)
	go func() {
		defer close(changeFeedErr)
		runLog.Info("change feed starting",
			logger.NewField("feed", cfg.LiveQuery.ChangeFeed),
		)
		if err := runChangeFeed(ctx, log, cfg, pool, businessApp.Hub); err != nil {
			changeFeedErr <- err
		}
	}()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// SSE потоки закрываются в начале drain, иначе Shutdown ждет их до таймаута
	streamsDone := make(chan struct{})

	router := initRouter(ongoingCtx, log, &isShuttingDown, businessApp, presenter.New(translator), cfg, pool, streamsDone)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
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
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
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
	case err := <-changeFeedErr:
		// лента без ошибки завершается только по отмене ctx
		if err != nil {
			return fmt.Errorf("change feed: %w", err)
		}
		runLog.Info("Shutdown signal received")
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")
	close(streamsDone)

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

	businessApp.BackgroundWorkers.Wait()
	<-changeFeedErr

	runLog.Info("Server stopped")
	return nil
}

// runChangeFeed пересылает уведомления об изменениях заявок в hub.
// Блокируется до отмены ctx.
func runChangeFeed(ctx context.Context, log logger.Logger, cfg *config.Config, pool *pgxpool.Pool, hub *livequery.Hub) error {
	switch cfg.LiveQuery.ChangeFeed {
	case config.ChangeFeedKafka:
		handler := orderstatushandler.New(log, hub)

		consumer, err := kafka.NewBroadcastConsumer(ctx, log, &cfg.Kafka, handler)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				log.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
			}
		}()

		// сообщения за время простоя не читаются, подписчикам нужен полный пересчет
		hub.InvalidateAll()
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil

	default:
		listener := order_notify.New(
			pool,
			log.With(logger.NewField("component", "order_notify")),
			postgres.ReconnectRetrier(log),
			hub.Invalidate,
			hub.InvalidateAll,
		)

		err := listener.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	screens *presenter.Presenter,
	cfg *config.Config,
	store healthcheck_head.Pinger,
	streamsDone <-chan struct{},
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	// поток живет дольше любого таймаута запроса, поэтому он вне api
	router.Handle("/orders/stream", orders_stream_get.New(log, app.Hub, screens, cfg.Display.Location,
		orders_stream_get.WithStop(streamsDone),
	)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))

	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, store)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	orderPath := fmt.Sprintf("/orders/{%s}", navigation.ParamOrderID)

	api.Handle("/orders", orders_get.New(log, app.OrderService, screens, cfg.Display.Location)).Methods("GET")
	api.Handle("/orders", order_post.New(log, app.OrderService)).Methods("POST")
	api.Handle(orderPath, order_details_get.New(log, screens)).Methods("GET")
	api.Handle(orderPath+"/close", order_close_post.New(log, app.OrderService)).Methods("POST")

	api.Handle("/session/signout", session_signout_post.New(log, app.SessionService, screens)).Methods("POST")

	// preflight OPTIONS не доходит до маршрутов mux, поэтому cors снаружи
	return cors.Middleware(cfg.Server.CORSAllowedOrigins)(router)
}

func initPprofRouter(isShuttingDown *atomic.Bool, store healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, store)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
