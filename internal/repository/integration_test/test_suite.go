package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/postgres"
	"tracker/migrations"
	"tracker/pkg/logger/zap_adapter"
	"tracker/pkg/querier"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func setup() {
	// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	ctx := context.Background()

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
	if err != nil {
		panic(err)
	}

	if err := postgres.Migrate(ctx, zapLogger, connPool, migrations.FS); err != nil {
		panic(err)
	}

	poolInstance = connPool
	querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
}

func GetQuerier() *querier.Querier {
	querierOnce.Do(setup)
	return querierInstance
}

// GetPool нужен тестам, которым требуется выделенное соединение (LISTEN).
func GetPool() *pgxpool.Pool {
	querierOnce.Do(setup)
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE orders, sessions;
	`)
	require.NoError(t, err)
}
