package tx

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"tracker/pkg/retrier"
)

// SQLSTATE serialization_failure и deadlock_detected
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Manager открывает транзакции с заданным уровнем изоляции и
// повторяет их при конфликтах сериализации.
type Manager struct {
	internal *manager.Manager
	level    pgx.TxIsoLevel
	retrier  retrier.Retrier
}

type Option func(*Manager)

func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.level = level
	}
}

// WithRetrier включает повтор транзакции при 40001/40P01.
func WithRetrier(r retrier.Retrier) Option {
	return func(m *Manager) {
		m.retrier = r
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    pgx.ReadCommitted,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: m.level}),
	)

	run := func(ctx context.Context) error {
		return m.internal.DoWithSettings(ctx, txSettings, fn)
	}
	if m.retrier == nil {
		return run(ctx)
	}
	return m.retrier.ExecuteWithContext(ctx, run)
}

// IsRetryable сообщает, можно ли безопасно повторить транзакцию целиком.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
