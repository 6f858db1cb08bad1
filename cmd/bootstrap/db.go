package bootstrap

import (
	"context"

	"court-booking/internal/infra/db"
	"court-booking/internal/infra/migrate"
	"court-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations brings the schema up to date before the server accepts
// traffic.
func RunMigrations(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			migrator, err := migrate.NewMigrator(pool, cfg.DB.MigrationsDir)
			if err != nil {
				return err
			}
			defer func() { _ = migrator.Close() }()
			return migrator.Run(ctx)
		},
	})
}
