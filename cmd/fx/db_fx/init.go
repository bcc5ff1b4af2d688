package db_fx

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pulse/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB opens the optional archive database. A missing POSTGRES_URL or a
// failed connection disables archiving; the in-memory store works without it.
func provideDB(lc fx.Lifecycle) *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Info().Msg("POSTGRES_URL not set, feedback archive disabled")
		return nil
	}

	db, err := infra.InitPostgresql(dsn)
	if err != nil {
		log.Error().Err(err).Msg("archive database unavailable, continuing without it")
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}
