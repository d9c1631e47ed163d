package telemetry_test

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/delaneyj/bitflush/reactive"
	"github.com/delaneyj/bitflush/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"
)

type queue []func()

func (q *queue) ScheduleMicrotask(fn func()) { *q = append(*q, fn) }

func (q *queue) run() {
	for len(*q) > 0 {
		fn := (*q)[0]
		*q = (*q)[1:]
		fn()
	}
}

// burst writes a, b, a-unchanged then flushes once.
func burst(t *testing.T, o reactive.Observer) {
	t.Helper()
	q := &queue{}
	ds := reactive.NewDirtyState(q, reactive.WithObserver(o))
	a := reactive.NewValue(0, 0, ds)
	b := reactive.NewValue("x", 2, ds)
	ds.SetFlush(ds.Update(func() {}))

	a.SetValue(1)
	b.SetValue("y")
	a.SetValue(1)
	q.run()
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
	burst(t, m)

	expected := `
# HELP bitflush_flushes_total Update callbacks run
# TYPE bitflush_flushes_total counter
bitflush_flushes_total 1
# HELP bitflush_writes_total Reactive value writes, by whether the value changed
# TYPE bitflush_writes_total counter
bitflush_writes_total{result="changed"} 2
bitflush_writes_total{result="unchanged"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"bitflush_flushes_total", "bitflush_writes_total"))

	n, err := testutil.GatherAndCount(reg, "bitflush_flush_duration_seconds", "bitflush_flush_dirty_bits")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetricsNamespaceAndLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(
		telemetry.WithRegistry(reg),
		telemetry.WithNamespace("app"),
		telemetry.WithSubsystem("ui"),
		telemetry.WithConstLabels(prometheus.Labels{"component": "counter"}),
		telemetry.WithBuckets([]float64{0.001, 0.01}),
	)
	burst(t, m)

	n, err := testutil.GatherAndCount(reg, "app_ui_flushes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

type spanStart struct {
	name  string
	start time.Time
	attrs []attribute.KeyValue
}

type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return p.tracer
}

type recordingTracer struct {
	embedded.Tracer
	starts []spanStart
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	r.starts = append(r.starts, spanStart{name: name, start: cfg.Timestamp(), attrs: cfg.Attributes()})
	return noop.NewTracerProvider().Tracer("").Start(ctx, name, opts...)
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{tracer: &recordingTracer{}}
	tr := telemetry.NewTracing(telemetry.WithTracerProvider(tp), telemetry.WithComponent("counter"))
	burst(t, tr)

	require.Len(t, tp.tracer.starts, 1)
	s := tp.tracer.starts[0]
	assert.Equal(t, "bitflush.flush", s.name)
	assert.False(t, s.start.IsZero())
	assert.Contains(t, s.attrs, attribute.String("bitflush.dirty_bits", "0b101"))
	assert.Contains(t, s.attrs, attribute.Int("bitflush.dirty_count", 2))
	assert.Contains(t, s.attrs, attribute.String("bitflush.component", "counter"))
}

func TestLoggerAndMulti(t *testing.T) {
	var buf bytes.Buffer
	lg := telemetry.NewLogger(log.New(&buf, "", 0), "demo", true)
	reg := prometheus.NewRegistry()
	burst(t, telemetry.Multi(lg, telemetry.NewMetrics(telemetry.WithRegistry(reg))))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[demo] write 0b1 changed", lines[0])
	assert.Equal(t, "[demo] write 0b100 changed", lines[1])
	assert.Equal(t, "[demo] write 0b1 unchanged, skipped", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "[demo] flush bits=0b101 took "))

	n, err := testutil.GatherAndCount(reg, "bitflush_flushes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
