package main

import (
	"context"
	"idverify/internal/config"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/ratelimit"
	"idverify/pkg/verification"
	"idverify/pkg/verification/datapro"
	"idverify/pkg/verification/verifydata"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// providers holds the verification clients keyed by the identity type they
// verify, plus the local limiters guarding them keyed by provider name.
type providers struct {
	verifiers map[domain.IdentityType]verification.Verifier
	limiters  map[string]*ratelimit.Limiter
}

func providerOptions(p config.Provider) verification.Options {
	return verification.Options{
		Timeout:     p.Timeout,
		MaxRetries:  p.MaxRetries,
		BackoffBase: p.BackoffBase,
	}
}

// providerLimiter builds the limiter in front of one provider: the local
// token bucket, chained with a shared Redis window when one is configured.
func providerLimiter(ctx context.Context,
	name string,
	p config.Provider,
	rdb *redis.Client,
) (verification.Limiter, *ratelimit.Limiter) {
	local := ratelimit.New(ratelimit.Options{
		Name:     name,
		Requests: p.RateLimit,
		Window:   p.RateWindow,
		MaxQueue: p.MaxQueue,
	})
	if rdb == nil || p.SharedRateLimit <= 0 {
		return local, local
	}

	logger.Info(ctx, "shared rate limit enabled",
		zap.String("provider", name), zap.Int("limit", p.SharedRateLimit), zap.Duration("window", p.RateWindow))

	return ratelimit.Chain{local, ratelimit.NewRedis(rdb, name, p.SharedRateLimit, p.RateWindow)}, local
}

func getProviders(ctx context.Context, cfg *config.Config, rdb *redis.Client) providers {
	httpClient := &http.Client{}

	ninLimiter, ninLocal := providerLimiter(ctx, datapro.Name, cfg.Datapro.Provider, rdb)
	nin := datapro.New(datapro.Config{
		BaseURL:   cfg.Datapro.BaseURL,
		ServiceID: cfg.Datapro.ServiceID,
	}, httpClient, ninLimiter, providerOptions(cfg.Datapro.Provider))

	cacLimiter, cacLocal := providerLimiter(ctx, verifydata.Name, cfg.VerifyData.Provider, rdb)
	cac := verifydata.New(verifydata.Config{
		BaseURL:   cfg.VerifyData.BaseURL,
		SecretKey: cfg.VerifyData.SecretKey,
	}, httpClient, cacLimiter, providerOptions(cfg.VerifyData.Provider))

	if cfg.Datapro.ServiceID == "" {
		logger.Warn(ctx, "DATAPRO_SERVICE_ID is not set, NIN verifications will fail with NOT_CONFIGURED")
	}
	if cfg.VerifyData.SecretKey == "" {
		logger.Warn(ctx, "VERIFYDATA_SECRET_KEY is not set, CAC verifications will fail with NOT_CONFIGURED")
	}

	return providers{
		verifiers: map[domain.IdentityType]verification.Verifier{
			domain.IdentityTypeNIN: nin,
			domain.IdentityTypeCAC: cac,
		},
		limiters: map[string]*ratelimit.Limiter{
			datapro.Name:    ninLocal,
			verifydata.Name: cacLocal,
		},
	}
}
