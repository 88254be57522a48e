package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"tracker/pkg/logger"
)

// Migrate накатывает встроенные миграции. goose работает через database/sql,
// поэтому пул оборачивается stdlib-адаптером, закрывается только обертка.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, migrations fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	for _, res := range results {
		fields := []logger.Field{
			logger.NewField("version", res.Source.Version),
			logger.NewField("file", res.Source.Path),
			logger.NewField("duration", res.Duration),
		}
		if res.Error != nil {
			log.Error("migration failed", append(fields, logger.NewField("error", res.Error))...)
			continue
		}
		log.Info("migration applied", fields...)
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migration version: %w", err)
	}
	log.Info("database schema is up to date", logger.NewField("version", version))
	return nil
}
