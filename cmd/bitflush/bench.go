package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/bitflush/component"
	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/dom/memdom"
	"github.com/delaneyj/bitflush/eventloop"
	"github.com/delaneyj/bitflush/reactive"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var (
	widths = []int{1, 8, 32, reactive.Width}
	bursts = []int{1, 10, 100}
)

func bench(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Int(itersKey))
	log.Printf("benchmarking %s bursts per case", humanize.Comma(int64(iters)))

	tbl := table.NewWriter()
	tbl.SetTitle("Dirty bit flushes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "flushes", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		for _, b := range bursts {
			calc, flushes, err := benchCase(w, b, iters)
			if err != nil {
				return err
			}
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("values: %d * writes: %d", w, b),
					humanize.Comma(int64(flushes)),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}
	tbl.Render()
	return nil
}

// benchCase mounts a component with w values, each bound to its own text
// element, and times bursts of b writes spread across the values.
func benchCase(w, b, iters int) (*tachymeter.Metrics, int, error) {
	doc := memdom.New()
	loop := eventloop.New()
	defer loop.Close()

	flushes := 0
	var values []*reactive.Value[int]
	_, err := component.Mount(doc, doc.Body(), loop, "bench", func(in *component.Instance) error {
		ds := in.State()
		ids := make([]string, w)
		markup := ""
		for i := 0; i < w; i++ {
			values = append(values, reactive.NewValue(0, uint(i), ds))
			ids[i] = fmt.Sprintf("v%d", i)
			markup += fmt.Sprintf(`<b id="v%d">0</b>`, i)
		}
		if err := in.Render(markup); err != nil {
			return err
		}
		if err := in.Resolve(ids, 0); err != nil {
			return err
		}
		refs := in.Refs()
		in.OnUpdate(func() {
			flushes++
			for i, v := range values {
				if ds.Dirty(v.Bit()) {
					dom.ReplaceText(v.Value(), refs[i])
				}
			}
		})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		if err := loop.Submit(func() {
			for j := 0; j < b; j++ {
				v := values[j%w]
				v.SetValue(v.Value() + 1)
			}
		}); err != nil {
			return nil, 0, err
		}
		loop.Drain()
		tach.AddTime(time.Since(start))
	}
	return tach.Calc(), flushes, nil
}
