package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/delaneyj/bitflush/component"
	"github.com/delaneyj/bitflush/components/colorpicker"
	"github.com/delaneyj/bitflush/components/counter"
	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/dom/memdom"
	"github.com/delaneyj/bitflush/eventloop"
	"github.com/delaneyj/bitflush/reactive"
	"github.com/delaneyj/bitflush/telemetry"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

type demo struct {
	mount   func(dom.Document, dom.Element, reactive.Scheduler, ...reactive.Option) (*component.Instance, error)
	buttons func(*component.Instance) map[string]dom.Element
}

var demos = map[string]demo{
	colorpicker.Name: {
		mount: colorpicker.Mount,
		buttons: func(in *component.Instance) map[string]dom.Element {
			yellow, red, blue := colorpicker.Buttons(in)
			return map[string]dom.Element{"yellow": yellow, "red": red, "blue": blue}
		},
	},
	counter.Name: {
		mount: counter.Mount,
		buttons: func(in *component.Instance) map[string]dom.Element {
			inc, step, reset := counter.Buttons(in)
			return map[string]dom.Element{"inc": inc, "step": step, "reset": reset}
		},
	},
}

// flushTrace keeps the flushes seen since the last take.
type flushTrace struct {
	bits    []reactive.Mask
	elapsed []time.Duration
}

func (f *flushTrace) Wrote(reactive.Mask, bool) {}

func (f *flushTrace) Flushed(bits reactive.Mask, _ time.Time, elapsed time.Duration) {
	f.bits = append(f.bits, bits)
	f.elapsed = append(f.elapsed, elapsed)
}

func (f *flushTrace) take() ([]reactive.Mask, []time.Duration) {
	bits, elapsed := f.bits, f.elapsed
	f.bits, f.elapsed = nil, nil
	return bits, elapsed
}

func run(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String(componentKey)
	d, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown component %q", name)
	}

	reg := prometheus.NewRegistry()
	trace := &flushTrace{}
	observer := telemetry.Multi(
		trace,
		telemetry.NewMetrics(
			telemetry.WithRegistry(reg),
			telemetry.WithConstLabels(prometheus.Labels{"component": name}),
		),
		telemetry.NewTracing(telemetry.WithComponent(name)),
		telemetry.NewLogger(log.Default(), name, cmd.Bool(verboseKey)),
	)

	doc := memdom.New()
	loop := eventloop.New()
	defer loop.Close()

	in, err := d.mount(doc, doc.Body(), loop, reactive.WithObserver(observer))
	if err != nil {
		return err
	}
	buttons := d.buttons(in)
	log.Printf("mounted %s: %s", name, doc.HTML())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"burst", "clicks", "flushes", "dirty bits", "took", "markup"})
	table.SetAutoWrapText(false)

	for i, burst := range strings.Split(cmd.String(clicksKey), ",") {
		var targets []dom.Element
		for _, label := range strings.Split(strings.TrimSpace(burst), "+") {
			el, ok := buttons[label]
			if !ok {
				return fmt.Errorf("burst %d: %s has no button %q (have %s)", i+1, name, label, strings.Join(labels(buttons), ", "))
			}
			targets = append(targets, el)
		}

		before := memdom.Fingerprint(doc.Body())
		if err := loop.Submit(func() {
			for _, el := range targets {
				doc.Click(el)
			}
		}); err != nil {
			return err
		}
		loop.Drain()

		bits, elapsed := trace.take()
		bitCol, tookCol := "-", "-"
		if len(bits) > 0 {
			parts := make([]string, len(bits))
			var total time.Duration
			for j, b := range bits {
				parts[j] = fmt.Sprintf("%#b", uint64(b))
				total += elapsed[j]
			}
			bitCol = strings.Join(parts, " ")
			tookCol = total.String()
		}
		markup := "(unchanged)"
		if memdom.Fingerprint(doc.Body()) != before {
			markup = doc.HTML()
		}
		table.Append([]string{
			humanize.Ordinal(i + 1),
			burst,
			humanize.Comma(int64(len(bits))),
			bitCol,
			tookCol,
			markup,
		})
	}
	table.Render()

	if cmd.Bool(metricsKey) {
		return printMetrics(reg)
	}
	return nil
}

func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "labels", "value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			var value string
			switch {
			case m.GetCounter() != nil:
				value = humanize.Commaf(m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("n=%s sum=%g", humanize.Comma(int64(h.GetSampleCount())), h.GetSampleSum())
			default:
				value = "?"
			}
			table.Append([]string{mf.GetName(), strings.Join(labels, ","), value})
		}
	}
	table.Render()
	return nil
}

func labels(buttons map[string]dom.Element) []string {
	out := make([]string, 0, len(buttons))
	for k := range buttons {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
