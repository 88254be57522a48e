//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=livequery_test
package livequery

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type OrderQuerier interface {
	GetOrders(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
}

// Sink получает полные снимки выборки. Вызовы идут последовательно
// из горутины подписки; вызывать Unsubscribe изнутри Sink нельзя.
type Sink interface {
	OnSnapshot(orders []entities.Order)
	OnError(err error)
}

type hubLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
