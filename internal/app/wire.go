//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"tracker/internal/gateway/kafka/order_events"
	"tracker/internal/handlers/tasks/livequery_resync"
	"tracker/internal/pkg/config"
	orderRepo "tracker/internal/repository/order"
	sessionRepo "tracker/internal/repository/session"
	"tracker/internal/service/livequery"
	orderService "tracker/internal/service/order"
	sessionService "tracker/internal/service/session"

	"tracker/pkg/background"
	"tracker/pkg/logger"
	"tracker/pkg/querier"
	"tracker/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ResyncInterval time.Duration
)

type Application struct {
	OrderService      *orderService.Service
	SessionService    *sessionService.Service
	Hub               *livequery.Hub
	BackgroundWorkers *background.Worker
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideResyncInterval,

		provideOrderRepository,
		provideSessionRepository,
		provideOrderEventPublisher,

		provideOrderService,
		provideSessionService,
		provideHub,

		provideLiveQueryResyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),
		wire.Bind(new(sessionService.AuthProvider), new(*sessionRepo.Repository)),
		wire.Bind(new(livequery.OrderQuerier), new(*orderService.Service)),
		wire.Bind(new(livequery_resync.Hub), new(*livequery.Hub)),
	)
	return &Application{}, nil
}

// WatchApp нужен терминальному клиенту (cmd/watch): только чтение и подписки.
type WatchApp struct {
	OrderService *orderService.Service
	Hub          *livequery.Hub
}

// InitializeWatchApp для терминального клиента (cmd/watch)
func InitializeWatchApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*WatchApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideReadOnlyOrderService,
		provideHub,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(livequery.OrderQuerier), new(*orderService.Service)),

		wire.Struct(new(WatchApp), "*"),
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

func provideSessionRepository(querier *querier.Querier) *sessionRepo.Repository {
	return sessionRepo.New(querier)
}

func provideOrderEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(producer, cfg.Kafka.Topic, cfg.Kafka.PublishTimeout)
}

func provideOrderService(
	repository orderService.Repository,
	txManager orderService.TxManager,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(repository, txManager, publisher)
}

// provideReadOnlyOrderService собирает сервис без издателя событий:
// терминальный клиент не вызывает CreateOrder и CloseOrder.
func provideReadOnlyOrderService(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, txManager, nil)
}

func provideSessionService(auth sessionService.AuthProvider) *sessionService.Service {
	return sessionService.New(auth)
}

func provideHub(querier livequery.OrderQuerier, log logger.Logger, cfg *config.Config) *livequery.Hub {
	return livequery.NewHub(querier, log, cfg.LiveQuery.QueryTimeout)
}

func provideResyncInterval(cfg *config.Config) ResyncInterval {
	return ResyncInterval(cfg.Tasks.LiveQueryResyncInterval)
}

func provideLiveQueryResyncTask(
	log logger.Logger,
	hub livequery_resync.Hub,
	interval ResyncInterval,
) *livequery_resync.LiveQueryResync {
	return livequery_resync.NewLiveQueryResync(log, hub, time.Duration(interval))
}

func provideTaskList(
	resyncTask *livequery_resync.LiveQueryResync,
) []background.Task {
	return []background.Task{
		resyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
