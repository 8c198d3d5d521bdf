package main

import (
	"context"
	"database/sql"
	"idverify"
	"idverify/internal/config"
	"idverify/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateRiver brings the river tables to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		logger.Fatal(ctx, "could not get existing river queue migrations", zap.Error(err))
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest <= current {
		logger.Info(ctx, "river queue tables are up to date", zap.Int("version", current))

		return
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
	}
	logger.Info(ctx, "river queue tables migrated", zap.Int("from", current), zap.Int("to", latest))
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pgsql, closePostgres := getPostgres(ctx, cfg)
			defer closePostgres()
			db := pgsql.DB.(*sql.DB) //nolint: forcetypeassert

			goose.SetBaseFS(idverify.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			migrateRiver(ctx, db)
		},
	}

	return cmd
}
