// Package counter is a generated component with two reactive values and
// statements whose dependency masks overlap: the count text and title depend
// on count, the step label on step, and the running total on both.
package counter

import (
	"fmt"

	"github.com/delaneyj/bitflush/component"
	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/reactive"
)

const Name = "counter"

const (
	symCount uint = iota
	symStep
)

const (
	refRoot = iota
	refCount
	refSummary
	refUnit
	refInc
	refStep
	refReset
)

var ids = []string{"counter", "count", "summary", "unit", "inc", "step", "reset"}

// The root keeps its id.
const preserve = 1 << refRoot

func title(count int) any {
	if count == 0 {
		return dom.Absent
	}
	return fmt.Sprintf("count is %d", count)
}

func Component(in *component.Instance) error {
	ds := in.State()
	count := reactive.NewValue(0, symCount, ds)
	step := reactive.NewValue(1, symStep, ds)

	if err := in.Render(Markup(count.Value(), step.Value())); err != nil {
		return err
	}
	if err := in.Resolve(ids, preserve); err != nil {
		return err
	}
	countRef := in.Ref(refCount)
	summaryRef := in.Ref(refSummary)
	stepRef := in.Ref(refStep)

	total := dom.InsertContent(in.Document(), count.Value()*step.Value(), summaryRef, in.Ref(refUnit))

	in.On(refInc, "click", func(dom.Event) {
		count.Update(func(c int) int { return c + step.Value() })
	})
	in.On(refStep, "click", func(dom.Event) {
		step.Update(func(s int) int { return s + 1 })
	})
	in.On(refReset, "click", func(dom.Event) {
		count.SetValue(0)
		step.SetValue(1)
	})

	totalMask := reactive.MaskOf(symCount, symStep)
	in.OnUpdate(func() {
		if ds.Dirty(count.Bit()) {
			dom.ReplaceText(count.Value(), countRef)
			dom.ReplaceAttr("title", title(count.Value()), countRef)
		}
		if ds.Dirty(step.Bit()) {
			dom.ReplaceInnerText(fmt.Sprintf("step %d", step.Value()), stepRef)
		}
		if ds.Dirty(totalMask) {
			total.SetData(fmt.Sprint(count.Value() * step.Value()))
		}
	})
	return nil
}

func Mount(doc dom.Document, root dom.Element, sched reactive.Scheduler, opts ...reactive.Option) (*component.Instance, error) {
	return component.Mount(doc, root, sched, Name, Component, opts...)
}

// Buttons returns the increment, step and reset buttons of a mounted instance.
func Buttons(in *component.Instance) (inc, step, reset dom.Element) {
	return in.Ref(refInc), in.Ref(refStep), in.Ref(refReset)
}

func CountRef(in *component.Instance) dom.Element {
	return in.Ref(refCount)
}

func SummaryRef(in *component.Instance) dom.Element {
	return in.Ref(refSummary)
}

func StepRef(in *component.Instance) dom.Element {
	return in.Ref(refStep)
}

func Root(in *component.Instance) dom.Element {
	return in.Ref(refRoot)
}
