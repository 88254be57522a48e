package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc вызывается перед каждой паузой между попытками.
type OnRetryFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// 0 - ретраим, пока не отменят контекст
	MaxElapsedTime time.Duration
	Randomization  float64
	Multiplier     float64
	// 0 - без ограничения числа попыток
	MaxAttempts uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     OnRetryFunc
}
