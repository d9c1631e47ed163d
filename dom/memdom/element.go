package memdom

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/bitflush/dom"
	"golang.org/x/net/html"
)

type Element struct {
	dom.NodeBase

	doc *Document
	n   *html.Node

	listeners map[string][]dom.EventListener
	events    mapset.Set[string]
	props     map[string]any
}

var _ dom.Element = (*Element)(nil)

func (e *Element) Node() *html.Node {
	return e.n
}

func (e *Element) Tag() string {
	return e.n.Data
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := attr(e.n, strings.ToLower(name))
	return ok
}

func (e *Element) GetAttribute(name string) (string, bool) {
	return attr(e.n, strings.ToLower(name))
}

func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	attrs := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.n.Attr = attrs
}

func (e *Element) SetProperty(name string, value any) {
	switch name {
	case "innerHTML":
		if err := e.SetInnerHTML(fmt.Sprint(value)); err != nil {
			panic(err)
		}
		return
	case "textContent", "innerText":
		e.SetTextContent(fmt.Sprint(value))
		return
	}
	if a, ok := dom.ReflectedAttribute(name); ok {
		e.SetAttribute(a, fmt.Sprint(value))
		return
	}
	if e.props == nil {
		e.props = map[string]any{}
	}
	e.props[name] = value
}

// RemoveProperty clears a property set through SetProperty. Reflected
// properties drop their attribute; content properties empty the element.
func (e *Element) RemoveProperty(name string) {
	switch name {
	case "innerHTML", "textContent", "innerText":
		e.clear()
		return
	}
	if a, ok := dom.ReflectedAttribute(name); ok {
		e.RemoveAttribute(a)
		return
	}
	delete(e.props, name)
}

// Property returns a value set through SetProperty. Reflected properties
// read back their attribute.
func (e *Element) Property(name string) (any, bool) {
	if a, ok := dom.ReflectedAttribute(name); ok {
		v, ok := e.GetAttribute(a)
		return v, ok
	}
	v, ok := e.props[name]
	return v, ok
}

func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return fmt.Errorf("memdom: parse inner html of <%s>: %w", e.n.Data, err)
	}
	e.clear()
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	return nil
}

func (e *Element) SetTextContent(text string) {
	e.clear()
	if text == "" {
		return
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) InsertBefore(child dom.Node, ref dom.Node) {
	c := nodeOf(child)
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	var r *html.Node
	if ref != nil {
		r = nodeOf(ref)
	}
	e.n.InsertBefore(c, r)
}

func (e *Element) AddEventListener(event string, fn dom.EventListener) {
	if e.listeners == nil {
		e.listeners = map[string][]dom.EventListener{}
		e.events = mapset.NewThreadUnsafeSet[string]()
	}
	e.listeners[event] = append(e.listeners[event], fn)
	e.events.Add(event)
}

// EventTypes lists, sorted, the event types with at least one listener.
func (e *Element) EventTypes() []string {
	if e.events == nil {
		return nil
	}
	types := e.events.ToSlice()
	sort.Strings(types)
	return types
}

func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(render(c))
	}
	return sb.String()
}

func (e *Element) OuterHTML() string {
	return render(e.n)
}

func (e *Element) TextContent() string {
	var sb strings.Builder
	walk(e.n, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

func (e *Element) listenersFor(typ string) []dom.EventListener {
	ls := e.listeners[typ]
	out := make([]dom.EventListener, len(ls))
	copy(out, ls)
	return out
}

// clear detaches every child and forgets the wrappers of the detached
// subtrees.
func (e *Element) clear() {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
		e.doc.forget(c)
	}
}

type Text struct {
	dom.NodeBase
	n *html.Node
}

var _ dom.Text = (*Text)(nil)

func (t *Text) Data() string {
	return t.n.Data
}

func (t *Text) SetData(data string) {
	t.n.Data = data
}

type Event struct {
	typ    string
	target *Element
}

func (ev *Event) Type() string {
	return ev.typ
}

func (ev *Event) Target() dom.Element {
	return ev.target
}

func nodeOf(n dom.Node) *html.Node {
	switch n := n.(type) {
	case *Element:
		return n.n
	case *Text:
		return n.n
	default:
		panic(fmt.Sprintf("memdom: foreign node %T", n))
	}
}

func mustElement(el dom.Element) *Element {
	e, ok := el.(*Element)
	if !ok {
		panic(fmt.Sprintf("memdom: foreign element %T", el))
	}
	return e
}
