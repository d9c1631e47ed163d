package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/delaneyj/bitflush/reactive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "bitflush"

type TracingConfig struct {
	// TracerName is the name of the tracer (default: "bitflush").
	TracerName string

	// Component is recorded on every span when set.
	Component string

	// Provider defaults to the global tracer provider.
	Provider trace.TracerProvider
}

type TracingOption func(*TracingConfig)

func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

func WithComponent(name string) TracingOption {
	return func(c *TracingConfig) {
		c.Component = name
	}
}

func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// Tracing records one span per flush, back-dated to when the update callback
// started.
type Tracing struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

var _ reactive.Observer = (*Tracing)(nil)

func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	var tracer trace.Tracer
	if config.Provider != nil {
		tracer = config.Provider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}

	t := &Tracing{tracer: tracer}
	if config.Component != "" {
		t.attrs = append(t.attrs, attribute.String("bitflush.component", config.Component))
	}
	return t
}

func (t *Tracing) Wrote(reactive.Mask, bool) {}

func (t *Tracing) Flushed(bits reactive.Mask, started time.Time, elapsed time.Duration) {
	attrs := append([]attribute.KeyValue{
		attribute.String("bitflush.dirty_bits", fmt.Sprintf("%#b", uint64(bits))),
		attribute.Int("bitflush.dirty_count", bits.Count()),
	}, t.attrs...)

	_, span := t.tracer.Start(context.Background(), "bitflush.flush",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(started),
	)
	span.End(trace.WithTimestamp(started.Add(elapsed)))
}
