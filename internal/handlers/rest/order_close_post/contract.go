//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_close_post_test
package order_close_post

import (
	"context"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CloseOrder(ctx context.Context, id string, solution string) (*entities.Order, error)
}
