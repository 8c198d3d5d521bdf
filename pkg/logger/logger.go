// Package logger wraps zap. A logger travels in the context so request and
// job scoped fields reach every message; Mask keeps identity numbers out of
// the output.
package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environments accepted by Setup. Anything other than ProductionEnvironment
// gets the human readable development encoder.
const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

var base = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the base logger for environment. It must run before any
// goroutine logs.
func Setup(environment string) {
	build := zap.NewDevelopment
	if environment == ProductionEnvironment {
		build = zap.NewProduction
	}
	if l, err := build(); err == nil {
		base = l
	}
}

type ctxKey struct{}

// Get returns the logger carried by ctx, falling back to the base logger.
func Get(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}

	return base
}

func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithFields derives a context whose logger always adds fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Debug(msg, fields...) }

func Info(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Info(msg, fields...) }

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Warn(msg, fields...) }

func Error(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Error(msg, fields...) }

// Fatal logs and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Fatal(msg, fields...) }

const (
	// maskVisible is the number of leading characters left readable by Mask.
	maskVisible = 4
	// maskChar replaces every hidden character.
	maskChar = "*"
)

// Mask hides an identity number for logging. The first four characters stay
// visible and the rest are replaced by '*'. Values shorter than four
// characters are replaced by a fixed "****".
func Mask(value string) string {
	runes := []rune(value)
	if len(runes) < maskVisible {
		return strings.Repeat(maskChar, maskVisible)
	}

	return string(runes[:maskVisible]) + strings.Repeat(maskChar, len(runes)-maskVisible)
}

// Masked returns a zap field holding the masked form of value. Identity
// numbers must only reach the logs through this field.
func Masked(key, value string) zapcore.Field {
	return zap.String(key, Mask(value))
}
