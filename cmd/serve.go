package main

import (
	"context"
	"errors"
	"fmt"
	"idverify/internal/api"
	"idverify/internal/api/handler/v1handler"
	"idverify/internal/config"
	"idverify/internal/dedup"
	"idverify/internal/verifier"
	"idverify/internal/worker"
	"idverify/pkg/encryption"
	"idverify/pkg/logger"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func getCipher(ctx context.Context, cfg *config.Config) *encryption.Cipher {
	c, err := encryption.New(cfg.Encryption.Key)
	if err != nil {
		logger.Fatal(ctx, "could not create cipher, check ENCRYPTION_KEY", zap.Error(err))
	}

	return c
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server and the verification workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closePostgres := getPostgres(ctx, cfg)
			defer closePostgres()
			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			cipher := getCipher(ctx, cfg)
			provs := getProviders(ctx, cfg, rdb)

			cache := dedup.NewCache(dedup.NewCacheOptions(cfg))
			cache.Start(ctx)
			defer cache.Stop()
			detector := dedup.New(cache, cipher, pgsql)

			v := verifier.New(pgsql, detector, cipher, provs.verifiers, verifier.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, pgsql.Pool, v, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start verification worker", zap.Error(err))
			}

			limiters := make(map[string]v1handler.RateLimiter, len(provs.limiters))
			for name, l := range provs.limiters {
				limiters[name] = l
			}
			server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
				Verifier: v,
				Detector: detector,
				Limiters: limiters,
			}}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}
				logger.Info(ctx, "stopping verification worker...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop verification worker", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server exited with an error", zap.Error(err))
			}
		},
	}

	return cmd
}
