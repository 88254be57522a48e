//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"tracker/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
	Close(ctx context.Context, id string, solution string) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChanged) error
}
