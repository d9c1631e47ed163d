// Package dom holds the host document capabilities the update runtime needs
// and the primitive mutations generated update callbacks perform.
//
// Elements are resolved once per component instance by ElementRefs and then
// addressed only through the returned handles.
package dom

// Node is anything that can be inserted into an element.
type Node interface {
	isNode()
}

// NodeBase can be embedded by host implementations to satisfy Node.
type NodeBase struct{}

func (NodeBase) isNode() {}

type Element interface {
	Node

	HasAttribute(name string) bool
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// SetProperty assigns a host property. Reflected properties such as
	// style or title also update the attribute.
	SetProperty(name string, value any)
	// RemoveProperty clears a host property. Reflected properties also lose
	// their attribute.
	RemoveProperty(name string)

	// SetInnerHTML replaces all children with the parsed markup.
	SetInnerHTML(markup string) error
	// SetTextContent replaces all children with a single text node.
	SetTextContent(text string)
	// InsertBefore inserts child before ref, or appends when ref is nil.
	InsertBefore(child Node, ref Node)

	AddEventListener(event string, fn EventListener)
}

type Text interface {
	Node
	Data() string
	SetData(data string)
}

type Document interface {
	// GetElementByID returns the first element in document order whose id
	// attribute equals id.
	GetElementByID(id string) (Element, bool)
	CreateTextNode(data string) Text
}

type Event interface {
	Type() string
	Target() Element
}

type EventListener func(ev Event)

// AddListener subscribes fn to event on el for the lifetime of el.
func AddListener(el Element, event string, fn EventListener) {
	el.AddEventListener(event, fn)
}
