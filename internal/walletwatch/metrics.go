package walletwatch

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/walletbot/internal/walletwatch"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)
)

type instruments struct {
	ticks               metric.Int64Counter
	readsFailed         metric.Int64Counter
	notificationsSent   metric.Int64Counter
	notificationsFailed metric.Int64Counter
}

func newInstruments() instruments {
	// Errors only report invalid names and come with a usable no-op instrument.
	ticks, _ := meter.Int64Counter("walletwatch.ticks",
		metric.WithDescription("Completed poll cycles."))
	readsFailed, _ := meter.Int64Counter("walletwatch.reads.failed",
		metric.WithDescription("Chain reads that failed and left the snapshot untouched."))
	notificationsSent, _ := meter.Int64Counter("walletwatch.notifications.sent",
		metric.WithDescription("Change notifications delivered."))
	notificationsFailed, _ := meter.Int64Counter("walletwatch.notifications.failed",
		metric.WithDescription("Change notifications that could not be delivered."))

	return instruments{
		ticks:               ticks,
		readsFailed:         readsFailed,
		notificationsSent:   notificationsSent,
		notificationsFailed: notificationsFailed,
	}
}
