// Package errtrack reports unexpected failures to Sentry. With an empty DSN
// every call is a no-op, so callers never need to check whether tracking is
// configured.
package errtrack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config configures the Sentry client. Tracking is disabled while DSN is empty.
type Config struct {
	DSN         string
	Environment string
	Release     string

	beforeSend func(event *sentry.Event) *sentry.Event
}

// Init configures the global Sentry client. User data is stripped from every
// event.
func Init(cfg Config) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			event.User = sentry.User{}
			if cfg.beforeSend != nil {
				return cfg.beforeSend(event)
			}
			return event
		},
	})
}

// Flush waits up to timeout for buffered events to be sent.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

func hubFromContext(ctx context.Context) *sentry.Hub {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		return hub
	}
	return sentry.CurrentHub().Clone()
}

// CaptureError reports err with the given tags. Nil errors and
// context cancellations are ignored.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	hub := hubFromContext(ctx)
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}

// CapturePanic reports a value obtained from recover(). It is a no-op for nil.
func CapturePanic(ctx context.Context, recovered any, tags map[string]string) {
	if recovered == nil {
		return
	}

	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}

	CaptureError(ctx, err, tags)
}
