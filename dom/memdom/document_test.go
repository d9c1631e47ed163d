package memdom_test

import (
	"testing"

	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/dom/memdom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndSerialize(t *testing.T) {
	markup := `<span id="test" style="color : red ">I am a color</span><button id="test">黄色</button>`
	doc, err := memdom.Parse(markup)
	require.NoError(t, err)

	if diff := cmp.Diff(markup, doc.HTML()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGetElementByIDDocumentOrder(t *testing.T) {
	doc, err := memdom.Parse(`<div><p id="x">inner</p></div><p id="x">outer</p>`)
	require.NoError(t, err)

	el, ok := doc.GetElementByID("x")
	require.True(t, ok)
	assert.Equal(t, "inner", el.(*memdom.Element).TextContent())

	_, ok = doc.GetElementByID("y")
	assert.False(t, ok)
}

func TestHandlesAreStable(t *testing.T) {
	doc, err := memdom.Parse(`<p id="x">a</p>`)
	require.NoError(t, err)

	a, _ := doc.GetElementByID("x")
	b, _ := doc.GetElementByID("x")
	assert.Same(t, a, b)
	assert.Same(t, a, doc.ElementsByTag("p")[0])
}

func TestDispatchBubbles(t *testing.T) {
	doc, err := memdom.Parse(`<div id="outer"><button id="inner">x</button></div>`)
	require.NoError(t, err)
	outer, _ := doc.GetElementByID("outer")
	inner, _ := doc.GetElementByID("inner")

	var order []string
	outer.AddEventListener("click", func(ev dom.Event) {
		order = append(order, "outer")
		assert.Same(t, inner, ev.Target())
	})
	inner.AddEventListener("click", func(dom.Event) { order = append(order, "inner") })

	assert.Equal(t, 2, doc.Click(inner))
	assert.Equal(t, []string{"inner", "outer"}, order)
	assert.Equal(t, []string{"click"}, inner.(*memdom.Element).EventTypes())
}

func TestSetPropertyRouting(t *testing.T) {
	doc, err := memdom.Parse(`<p id="p">x</p>`)
	require.NoError(t, err)
	p := doc.ElementsByTag("p")[0]

	p.SetProperty("title", "hi")
	title, _ := p.GetAttribute("title")
	assert.Equal(t, "hi", title)

	p.SetProperty("innerHTML", "<b>bold</b>")
	assert.Len(t, p.Children(), 1)

	p.SetProperty("textContent", "<b>plain</b>")
	assert.Empty(t, p.Children())
	assert.Equal(t, "<b>plain</b>", p.TextContent())

	p.SetProperty("checked", true)
	v, ok := p.Property("checked")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestFingerprint(t *testing.T) {
	doc, err := memdom.Parse(`<p id="a">1</p><p id="b">2</p>`)
	require.NoError(t, err)
	a, _ := doc.GetElementByID("a")
	b, _ := doc.GetElementByID("b")

	fa, fb := memdom.Fingerprint(a), memdom.Fingerprint(b)
	assert.NotEqual(t, fa, fb)

	a.SetAttribute("title", "t")
	assert.NotEqual(t, fa, memdom.Fingerprint(a))
	assert.Equal(t, fb, memdom.Fingerprint(b))
}

func TestAttributeNamesAreCaseInsensitive(t *testing.T) {
	doc, err := memdom.Parse(`<p ID="x">a</p>`)
	require.NoError(t, err)
	p := doc.ElementsByTag("p")[0]

	assert.True(t, p.HasAttribute("id"))
	p.SetAttribute("Title", "t")
	assert.True(t, p.HasAttribute("title"))
	p.RemoveAttribute("TITLE")
	assert.False(t, p.HasAttribute("title"))
}

func TestRemoveProperty(t *testing.T) {
	doc, err := memdom.Parse(`<label id="l" class="x" for="name">text</label>`)
	require.NoError(t, err)
	l := doc.ElementsByTag("label")[0]

	l.SetProperty("checked", true)
	l.RemoveProperty("checked")
	_, ok := l.Property("checked")
	assert.False(t, ok)

	l.RemoveProperty("className")
	l.RemoveProperty("htmlFor")
	l.RemoveProperty("textContent")
	assert.Equal(t, `<label id="l"></label>`, l.OuterHTML())

	l.RemoveProperty("never-set")
}
