// Package context carries correlation data through a request or a refresh
// run: the admin API request id, the id of a scheduled refresh, and a logger
// already tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every admin API response.
const HeaderXRequestID = "X-Request-Id"

type correlationKey int

const (
	requestIDKey correlationKey = iota
	runIDKey
	loggerKey
)

// echoRequestIDKey is where the request id lives on echo.Context.
const echoRequestIDKey = "request_id"

// GetRequestID returns the id set by the request id middleware, or a fresh
// one for handlers running without it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request id on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// WithRunID tags ctx with the id of one scheduled refresh.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

func GetRunIDFromContext(ctx context.Context) string {
	return stringValue(ctx, runIDKey)
}

// CorrelationID prefers the admin request id over the refresh run id.
// Events published from either path carry it.
func CorrelationID(ctx context.Context) string {
	if id := GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return GetRunIDFromContext(ctx)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func stringValue(ctx context.Context, key correlationKey) string {
	v, _ := ctx.Value(key).(string)

	return v
}
