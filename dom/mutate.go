package dom

import "fmt"

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent tells ReplaceAttr and ReplaceProp to drop the attribute instead of
// setting it. An untyped nil content means the same.
var Absent any = absent{}

func isAbsent(content any) bool {
	return content == nil || content == Absent
}

// ReplaceText sets el's content to the escaped string form of content,
// discarding existing children. Escaped text carries no markup, so a host
// that fails to parse it is broken and ReplaceText panics.
func ReplaceText(content any, el Element) {
	if err := el.SetInnerHTML(Escape(fmt.Sprint(content))); err != nil {
		panic(err)
	}
}

// ReplaceInnerText sets el's content to a single text node holding the
// string form of content. No markup is interpreted so nothing is escaped.
func ReplaceInnerText(content any, el Element) {
	el.SetTextContent(fmt.Sprint(content))
}

// ReplaceAttr sets attribute name to the string form of content. When
// content is Absent the attribute is removed if present; removing a missing
// attribute does nothing.
func ReplaceAttr(name string, content any, el Element) {
	if isAbsent(content) {
		if el.HasAttribute(name) {
			el.RemoveAttribute(name)
		}
		return
	}
	el.SetAttribute(name, fmt.Sprint(content))
}

// ReplaceProp is ReplaceAttr for bindings the generator routes through the
// host property instead of the attribute. Absent content clears the
// property, and the attribute it reflects.
func ReplaceProp(name string, content any, el Element) {
	if isAbsent(content) {
		el.RemoveProperty(name)
		return
	}
	el.SetProperty(name, fmt.Sprint(content))
}

// InsertContent inserts a text node holding content into parent before
// anchor (or at the end when anchor is nil) and returns it so later flushes
// can update it in place.
func InsertContent(doc Document, content any, parent Element, anchor Node) Text {
	t := doc.CreateTextNode(fmt.Sprint(content))
	parent.InsertBefore(t, anchor)
	return t
}

// InsertEmpty inserts an empty text node used as a stable insertion point.
func InsertEmpty(doc Document, parent Element, anchor Node) Text {
	t := doc.CreateTextNode("")
	parent.InsertBefore(t, anchor)
	return t
}
