package logger_test

import (
	"context"
	"idverify/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetAndWithLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should fall back to the default logger")

	custom := zap.NewNop()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("provider", "datapro"))
	logger.Info(ctx, "verifying")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "datapro", entries[0].ContextMap()["provider"])
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestMask(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: "12345678901", out: "1234*******"},
		{in: "RC123456", out: "RC12****"},
		{in: "1234", out: "1234"},
		{in: "123", out: "****"},
		{in: "", out: "****"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := logger.Mask(tc.in)
			require.Equal(t, tc.out, got)
			if len(tc.in) >= 4 {
				require.Len(t, got, len(tc.in))
				require.Equal(t, tc.in[:4], got[:4])
			}
		})
	}
}

func TestMaskedField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Info(ctx, "verifying", logger.Masked("nin", "12345678901"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "1234*******", entries[0].ContextMap()["nin"])
}
