package order_notify

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"tracker/internal/entities"
	"tracker/pkg/logger"
	"tracker/pkg/retrier"
)

// Channel совпадает с каналом триггера orders_notify.
const Channel = "orders_changed"

type listenerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type (
	ChangeFunc    func(status entities.OrderStatusType)
	ReconnectFunc func()
)

// Listener держит выделенное соединение с LISTEN и пересылает статусы
// измененных заявок. После переподключения вызывается onReconnect:
// уведомления за время простоя потеряны, подписчикам нужен полный пересчет.
type Listener struct {
	pool        *pgxpool.Pool
	log         listenerLogger
	retrier     retrier.Retrier
	onChange    ChangeFunc
	onReconnect ReconnectFunc
}

func New(
	pool *pgxpool.Pool,
	log listenerLogger,
	retrier retrier.Retrier,
	onChange ChangeFunc,
	onReconnect ReconnectFunc,
) *Listener {
	return &Listener{
		pool:        pool,
		log:         log,
		retrier:     retrier,
		onChange:    onChange,
		onReconnect: onReconnect,
	}
}

// Run блокируется до отмены ctx. Ошибка возвращается, только если
// retrier сдался.
func (l *Listener) Run(ctx context.Context) error {
	sessions := 0
	err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		sessions++
		err := l.listen(ctx, sessions > 1)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	if ctx.Err() != nil {
		l.log.Info("order change listener stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("order change listener: %w", err)
	}
	return nil
}

func (l *Listener) listen(ctx context.Context, reconnected bool) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	// соединение с активным LISTEN в пул не возвращаем
	pgConn := conn.Hijack()
	defer pgConn.Close(context.WithoutCancel(ctx))

	if _, err := pgConn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("listen %s: %w", Channel, err)
	}
	l.log.Info("listening for order changes",
		logger.NewField("channel", Channel),
		logger.NewField("reconnected", reconnected),
	)

	if reconnected {
		l.onReconnect()
	}

	for {
		notification, err := pgConn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		status := entities.OrderStatusType(notification.Payload)
		if !status.Valid() {
			l.log.Warn("unexpected order change payload",
				logger.NewField("payload", notification.Payload),
			)
			continue
		}
		l.onChange(status)
	}
}
