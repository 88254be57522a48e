//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderlist_test
package orderlist

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"
	"tracker/internal/entities"
	"tracker/internal/service/livequery"
	"tracker/pkg/logger"
)

type Subscriber interface {
	Subscribe(ctx context.Context, status entities.OrderStatusType, sink livequery.Sink) (livequery.Unsubscribe, error)
}

type DateFormatter interface {
	Format(ts *timestamppb.Timestamp) (string, error)
}

type binderLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
