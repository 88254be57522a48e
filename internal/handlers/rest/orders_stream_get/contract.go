//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_stream_get_test
package orders_stream_get

import (
	"context"

	"tracker/internal/entities"
	"tracker/internal/service/livequery"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Subscriber interface {
	Subscribe(ctx context.Context, status entities.OrderStatusType, sink livequery.Sink) (livequery.Unsubscribe, error)
}
