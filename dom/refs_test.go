package dom_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/bitflush/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementRefsPreservationMask(t *testing.T) {
	doc := mustParse(t, `<i id="a">1</i><i id="b">2</i><i id="c">3</i>`)

	refs, err := dom.ElementRefs(doc, []string{"a", "b", "c"}, 0b010)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	assert.False(t, refs[0].HasAttribute("id"))
	assert.True(t, refs[1].HasAttribute("id"))
	assert.False(t, refs[2].HasAttribute("id"))
	assert.Equal(t, `<i>1</i><i id="b">2</i><i>3</i>`, doc.HTML())
}

func TestElementRefsOrder(t *testing.T) {
	doc := mustParse(t, `<i id="a">1</i><i id="b">2</i>`)
	refs, err := dom.ElementRefs(doc, []string{"b", "a"}, 0b11)
	require.NoError(t, err)

	b, _ := doc.GetElementByID("b")
	a, _ := doc.GetElementByID("a")
	assert.Same(t, b, refs[0])
	assert.Same(t, a, refs[1])
}

func TestElementRefsRepeatedIDs(t *testing.T) {
	doc := mustParse(t, `<span id="test">s</span><button id="test">1</button><button id="test">2</button>`)

	refs, err := dom.ElementRefs(doc, []string{"test", "test", "test"}, 0)
	require.NoError(t, err)

	buttons := doc.ElementsByTag("button")
	spans := doc.ElementsByTag("span")
	assert.Same(t, spans[0], refs[0])
	assert.Same(t, buttons[0], refs[1])
	assert.Same(t, buttons[1], refs[2])

	_, ok := doc.GetElementByID("test")
	assert.False(t, ok)
}

func TestElementRefsSecondInstanceDoesNotCollide(t *testing.T) {
	doc := mustParse(t, `<div id="one"></div><div id="two"></div>`)
	markup := `<b id="label">x</b>`

	one, _ := doc.GetElementByID("one")
	two, _ := doc.GetElementByID("two")

	require.NoError(t, one.SetInnerHTML(markup))
	first, err := dom.ElementRefs(doc, []string{"label"}, 0)
	require.NoError(t, err)

	require.NoError(t, two.SetInnerHTML(markup))
	second, err := dom.ElementRefs(doc, []string{"label"}, 0)
	require.NoError(t, err)

	assert.NotSame(t, first[0], second[0])
}

func TestElementRefsMissing(t *testing.T) {
	doc := mustParse(t, `<i id="a"></i>`)

	refs, err := dom.ElementRefs(doc, []string{"a", "nope"}, 0)
	assert.Nil(t, refs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dom.ErrMissingElement))

	var missing *dom.MissingElementError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, "nope", missing.ID)
}

func TestElementRefsMissingLeavesDocumentUntouched(t *testing.T) {
	markup := `<i id="a"></i><i id="b"></i><b id="test">1</b><b id="test">2</b>`
	doc := mustParse(t, markup)

	_, err := dom.ElementRefs(doc, []string{"a", "b", "nope"}, 0)
	require.ErrorIs(t, err, dom.ErrMissingElement)
	assert.Equal(t, markup, doc.HTML())

	_, err = dom.ElementRefs(doc, []string{"test", "test", "test"}, 0b001)
	require.ErrorIs(t, err, dom.ErrMissingElement)
	assert.Equal(t, markup, doc.HTML())

	refs, err := dom.ElementRefs(doc, []string{"a", "b"}, 0)
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}
