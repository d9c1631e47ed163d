//go:build js && wasm

// Package jsdom binds the dom capabilities to the browser document through
// syscall/js, and schedules flushes on the browser's microtask queue.
package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/reactive"
)

type Document struct {
	v js.Value
}

var _ dom.Document = (*Document)(nil)

func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) Body() *Element {
	return &Element{v: d.v.Get("body")}
}

func (d *Document) GetElementByID(id string) (dom.Element, bool) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &Element{v: v}, true
}

func (d *Document) CreateTextNode(data string) dom.Text {
	return &Text{v: d.v.Call("createTextNode", data)}
}

type Element struct {
	dom.NodeBase
	v js.Value
}

var _ dom.Element = (*Element)(nil)

// Wrap adopts an element obtained through other syscall/js calls.
func Wrap(v js.Value) *Element {
	return &Element{v: v}
}

func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) HasAttribute(name string) bool {
	return e.v.Call("hasAttribute", name).Bool()
}

func (e *Element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) RemoveAttribute(name string) {
	e.v.Call("removeAttribute", name)
}

func (e *Element) SetProperty(name string, value any) {
	switch value.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		e.v.Set(name, value)
	default:
		e.v.Set(name, fmt.Sprint(value))
	}
}

func (e *Element) RemoveProperty(name string) {
	if a, ok := dom.ReflectedAttribute(name); ok {
		e.v.Call("removeAttribute", a)
		return
	}
	if e.v.Get(name).Type() == js.TypeBoolean {
		e.v.Set(name, false)
		return
	}
	e.v.Set(name, "")
}

func (e *Element) SetInnerHTML(markup string) error {
	e.v.Set("innerHTML", markup)
	return nil
}

func (e *Element) SetTextContent(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) InsertBefore(child dom.Node, ref dom.Node) {
	r := js.Null()
	if ref != nil {
		r = valueOf(ref)
	}
	e.v.Call("insertBefore", valueOf(child), r)
}

// AddEventListener keeps the js.Func alive for the element's lifetime.
func (e *Element) AddEventListener(event string, fn dom.EventListener) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(&Event{v: ev})
		return nil
	})
	e.v.Call("addEventListener", event, cb)
}

type Text struct {
	dom.NodeBase
	v js.Value
}

func (t *Text) Data() string {
	return t.v.Get("data").String()
}

func (t *Text) SetData(data string) {
	t.v.Set("data", data)
}

type Event struct {
	v js.Value
}

func (ev *Event) Type() string {
	return ev.v.Get("type").String()
}

func (ev *Event) Target() dom.Element {
	return &Element{v: ev.v.Get("target")}
}

// Microtasks schedules flushes with the browser's queueMicrotask.
type Microtasks struct{}

var _ reactive.Scheduler = Microtasks{}

func (Microtasks) ScheduleMicrotask(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer cb.Release()
		fn()
		return nil
	})
	js.Global().Call("queueMicrotask", cb)
}

func valueOf(n dom.Node) js.Value {
	switch n := n.(type) {
	case *Element:
		return n.v
	case *Text:
		return n.v
	default:
		panic(fmt.Sprintf("jsdom: foreign node %T", n))
	}
}
