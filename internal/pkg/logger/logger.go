// Package logger exposes a process-wide Sugared Zap logger. Records are
// written as JSON to stdout and, when an OpenTelemetry LoggerProvider has been
// registered by the telemetry package, mirrored to the OTLP pipeline.
//
// Every call site passes a context. Loggers derived with Derive travel inside
// that context, and an active span adds trace_id/span_id to the record.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/walletbot/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

var (
	// ctxKey stores a derived *zap.SugaredLogger inside a context.
	ctxKey = ctxKeyType{}

	baseLogger         *zap.SugaredLogger
	initBaseLoggerOnce sync.Once

	// nopLogger backs calls made before Init, e.g. from package tests.
	nopLogger = zap.NewNop().Sugar()
)

// Init builds the base logger at the given level (debug, info, warn, error,
// panic, fatal). Only the first successful call has an effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("walletbot", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered records. Call it once on shutdown.
func Sync() error {
	return baseLogger.Sync()
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	if baseLogger != nil {
		return baseLogger
	}
	return nopLogger
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the active span identifiers and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l := fromCtx(ctx)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger always includes keysAndValues.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l := fromCtx(ctx)

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs and then calls os.Exit(1).
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
