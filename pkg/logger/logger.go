// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// request ID already attached, so every log line from a handler is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("booking created", "booking_id", b.ID)
//	// → time=... level=INFO msg="booking created" request_id=a1b2c3d4 booking_id=1
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/trixtech/trixtech/config"
)

var L *slog.Logger

// mongoSink is set by EnableMongoSink so Shutdown can flush it.
var mongoSink *MongoHandler

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		// structured JSON for log aggregators
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		// human-readable for dev
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// EnableMongoSink fans log records out to MongoDB in addition to stdout.
// Called at startup when LOG_MONGO_URI is configured; a connection failure
// is returned to the caller, which logs a warning and keeps the stdout-only
// logger.
func EnableMongoSink(uri, db, collection string) error {
	mh, err := NewMongoHandler(uri, db, collection)
	if err != nil {
		return err
	}

	mongoSink = mh
	L = slog.New(NewMultiHandler(baseHandler(), mh))
	slog.SetDefault(L)
	return nil
}

// Shutdown flushes the Mongo sink, if one was enabled.
func Shutdown() {
	if mongoSink != nil {
		mongoSink.Close()
	}
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger injected by the Logger
// middleware, pre-tagged with request_id. Falls back to the base logger
// when no request logger is present (CLI commands, background workers).
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level via the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level via the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level via the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level via the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
