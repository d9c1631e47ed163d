package dom

import (
	"errors"
	"fmt"
)

const idAttr = "id"

var ErrMissingElement = errors.New("dom: missing element")

// MissingElementError means the markup inserted for an instance did not
// contain an identifier its reference list asked for.
type MissingElementError struct {
	Index int
	ID    string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("dom: no element with id %q (reference %d)", e.ID, e.Index)
}

func (e *MissingElementError) Is(target error) bool {
	return target == ErrMissingElement
}

// ElementRefs resolves ids in order. The id attribute is stripped from the
// i-th element unless bit i of preserve is set, so an id repeated in the list
// resolves to successive elements and other instances of the same markup
// never collide with this one. When an id is missing the ids already
// stripped are put back, leaving the document as it was.
func ElementRefs(doc Document, ids []string, preserve uint64) ([]Element, error) {
	refs := make([]Element, len(ids))
	var stripped []int
	for i, id := range ids {
		el, ok := doc.GetElementByID(id)
		if !ok {
			for j := len(stripped) - 1; j >= 0; j-- {
				k := stripped[j]
				refs[k].SetAttribute(idAttr, ids[k])
			}
			return nil, &MissingElementError{Index: i, ID: id}
		}
		if i >= 64 || preserve&(1<<uint(i)) == 0 {
			el.RemoveAttribute(idAttr)
			stripped = append(stripped, i)
		}
		refs[i] = el
	}
	return refs, nil
}
