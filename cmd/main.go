// Package main is the idverify CLI. It loads the configuration, sets up
// logging and runs one of the serve, migrate, jwt, verify or encrypt
// commands.
package main

import (
	"context"
	"flag"
	"idverify/internal/config"
	"idverify/pkg/logger"
	"idverify/pkg/storage/postgres"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres opens the entry database and returns it with a closer.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}
	if err = pgsql.Ping(ctx); err != nil {
		logger.Fatal(ctx, "could not reach postgres", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis connects to the Redis database backing the shared rate limiters.
// It returns a nil client when no address is configured.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal(ctx, "could not reach redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}

	return client, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "idverify",
		Short: "Identity number verification service",
	}

	// cobra parses flags only when a command runs, so the config path is read
	// with the flag package first. The persistent flag keeps cobra from
	// rejecting -c.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
		verifyCommand(cfg),
		encryptCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
