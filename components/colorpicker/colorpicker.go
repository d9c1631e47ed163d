// Package colorpicker is a generated component: three buttons that set a
// color and a span whose style attribute follows it.
package colorpicker

import (
	"github.com/delaneyj/bitflush/component"
	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/reactive"
)

const Name = "colorpicker"

// Symbol indices.
const (
	symColor uint = iota
)

// Reference positions, in the order passed to Resolve.
const (
	refSpan = iota
	refYellow
	refRed
	refBlue
)

var ids = []string{"test", "test", "test", "test"}

const preserve = 0

func style(color string) string {
	return "color : " + color + " "
}

// Component is the instantiation code for one color picker.
func Component(in *component.Instance) error {
	ds := in.State()
	color := reactive.NewValue("red", symColor, ds)

	yellow := func(dom.Event) { color.SetValue("yellow") }
	red := func(dom.Event) { color.SetValue("red") }
	blue := func(dom.Event) { color.SetValue("blue") }

	if err := in.Render(Markup(color.Value())); err != nil {
		return err
	}
	if err := in.Resolve(ids, preserve); err != nil {
		return err
	}
	span := in.Ref(refSpan)

	in.On(refYellow, "click", yellow)
	in.On(refRed, "click", red)
	in.On(refBlue, "click", blue)

	in.OnUpdate(func() {
		if ds.Dirty(color.Bit()) {
			dom.ReplaceAttr("style", style(color.Value()), span)
		}
	})
	return nil
}

func Mount(doc dom.Document, root dom.Element, sched reactive.Scheduler, opts ...reactive.Option) (*component.Instance, error) {
	return component.Mount(doc, root, sched, Name, Component, opts...)
}

// Buttons returns the yellow, red and blue buttons of a mounted instance.
func Buttons(in *component.Instance) (yellow, red, blue dom.Element) {
	return in.Ref(refYellow), in.Ref(refRed), in.Ref(refBlue)
}

// Swatch returns the span whose style follows the color.
func Swatch(in *component.Instance) dom.Element {
	return in.Ref(refSpan)
}
