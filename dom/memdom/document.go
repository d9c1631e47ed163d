// Package memdom is an in-memory dom.Document built on golang.org/x/net/html
// nodes. It parses markup like a browser's innerHTML, dispatches synthetic
// events and serializes back to HTML, which makes it the host used by tests
// and the command line tools.
package memdom

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/bitflush/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	body     *html.Node
	elements map[*html.Node]*Element
}

var _ dom.Document = (*Document)(nil)

// New returns an empty document whose content lives under a body element.
func New() *Document {
	return &Document{
		body: &html.Node{
			Type:     html.ElementNode,
			Data:     atom.Body.String(),
			DataAtom: atom.Body,
		},
		elements: map[*html.Node]*Element{},
	}
}

// Parse returns a document whose body holds markup.
func Parse(markup string) (*Document, error) {
	d := New()
	if err := d.Body().SetInnerHTML(markup); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) Body() *Element {
	return d.wrap(d.body)
}

// HTML serializes the body's children.
func (d *Document) HTML() string {
	return d.Body().InnerHTML()
}

func (d *Document) GetElementByID(id string) (dom.Element, bool) {
	n := findByID(d.body, id)
	if n == nil {
		return nil, false
	}
	return d.wrap(n), true
}

func (d *Document) CreateTextNode(data string) dom.Text {
	return &Text{n: &html.Node{Type: html.TextNode, Data: data}}
}

// ElementsByTag returns every element named tag in document order.
func (d *Document) ElementsByTag(tag string) []*Element {
	var out []*Element
	walk(d.body, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, d.wrap(n))
		}
	})
	return out
}

// Dispatch fires an event of type typ at el. Listeners on el run first,
// then listeners on each ancestor, each in registration order. It returns
// the number of listeners called.
func (d *Document) Dispatch(el dom.Element, typ string) int {
	target := mustElement(el)
	ev := &Event{typ: typ, target: target}

	called := 0
	for n := target.n; n != nil; n = n.Parent {
		cur, ok := d.elements[n]
		if !ok {
			continue
		}
		for _, fn := range cur.listenersFor(typ) {
			fn(ev)
			called++
		}
	}
	return called
}

func (d *Document) Click(el dom.Element) int {
	return d.Dispatch(el, "click")
}

// Fingerprint hashes the serialized subtree rooted at el. Two fingerprints
// differ exactly when the subtree's markup differs.
func Fingerprint(el dom.Element) uint64 {
	return xxhash.Sum64String(mustElement(el).OuterHTML())
}

func (d *Document) wrap(n *html.Node) *Element {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, n: n}
	d.elements[n] = el
	return el
}

func (d *Document) forget(n *html.Node) {
	delete(d.elements, n)
	walk(n, func(c *html.Node) {
		delete(d.elements, c)
	})
}

func findByID(root *html.Node, id string) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if v, ok := attr(c, "id"); ok && v == id {
			return c
		}
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fn(c)
		walk(c, fn)
	}
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func render(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		panic(err)
	}
	return sb.String()
}
