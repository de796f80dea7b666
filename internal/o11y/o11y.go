// Package o11y bundles the logger, tracer and metrics registry into one
// explicitly constructed context that gets passed down, so tests can build
// isolated instances instead of sharing process-wide state.
package o11y

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/trace"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Observability struct {
	Logger   *slog.Logger
	Tracer   *trace.TracerProvider
	Registry *prometheus.Registry

	// Domain counters. Incremented by the API layer; the rental core stays
	// pure and never touches these.
	AvailabilityQueries prometheus.Counter
	PriceQuotes         prometheus.Counter
	BookingsCreated     prometheus.Counter
}

// Setup builds the observability context. With a logFile the logger writes
// JSON lines to a size-rotated file, otherwise to stdout.
func Setup(ctx context.Context, logFile string) (*Observability, func(), error) {
	var out io.Writer = os.Stdout
	if logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    20, // megabytes
			MaxBackups: 10,
			MaxAge:     90, // days
		}
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	exporter, _ := otlptracehttp.New(ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint("localhost:4318"),
	)
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithSampler(trace.ParentBased(
			trace.TraceIDRatioBased(1),
		)),
	)
	otel.SetTracerProvider(tp)

	registry := prometheus.NewRegistry()

	obs := &Observability{
		Logger:   logger,
		Tracer:   tp,
		Registry: registry,
		AvailabilityQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "availability_queries_total",
			Help: "Availability checks served",
		}),
		PriceQuotes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "price_quotes_total",
			Help: "Price quotes computed",
		}),
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created",
		}),
	}
	registry.MustRegister(obs.AvailabilityQueries, obs.PriceQuotes, obs.BookingsCreated)

	cleanup := func() {
		tp.Shutdown(ctx)
	}

	return obs, cleanup, nil
}
