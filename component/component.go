// Package component is the instantiation contract generated component code
// is written against. A generated component is a Func: it creates its
// reactive values on the instance's DirtyState, renders its markup, resolves
// its element references once, wires listeners and installs its update
// callback, in that order.
package component

import (
	"errors"
	"fmt"

	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/reactive"
)

var (
	ErrAlreadyResolved = errors.New("component: element references already resolved")
	ErrNotResolved     = errors.New("component: element references not resolved")
)

// Func is the shape of a generated component.
type Func func(in *Instance) error

// MountError reports a failed instantiation.
type MountError struct {
	Component string
	Err       error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("component %s: mount: %v", e.Component, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

type Instance struct {
	name  string
	doc   dom.Document
	root  dom.Element
	state *reactive.DirtyState
	refs  []dom.Element

	resolved bool
}

// Mount instantiates fn into root. Each call gets its own DirtyState; no
// two instances share one.
func Mount(doc dom.Document, root dom.Element, sched reactive.Scheduler, name string, fn Func, opts ...reactive.Option) (*Instance, error) {
	in := &Instance{
		name:  name,
		doc:   doc,
		root:  root,
		state: reactive.NewDirtyState(sched, opts...),
	}
	if err := fn(in); err != nil {
		return nil, &MountError{Component: name, Err: err}
	}
	return in, nil
}

func (in *Instance) Name() string {
	return in.name
}

func (in *Instance) Document() dom.Document {
	return in.doc
}

func (in *Instance) Root() dom.Element {
	return in.root
}

func (in *Instance) State() *reactive.DirtyState {
	return in.state
}

// Render replaces the root's content with the component's initial markup.
// Interpolated values in markup must already be escaped.
func (in *Instance) Render(markup string) error {
	return in.root.SetInnerHTML(markup)
}

// Resolve looks up the instance's element references. It runs once, right
// after Render and before any listener is wired.
func (in *Instance) Resolve(ids []string, preserve uint64) error {
	if in.resolved {
		return ErrAlreadyResolved
	}
	refs, err := dom.ElementRefs(in.doc, ids, preserve)
	if err != nil {
		return err
	}
	in.refs = refs
	in.resolved = true
	return nil
}

// Ref returns the i-th resolved reference. References are positional; two
// requests for the same identifier are two independent references.
func (in *Instance) Ref(i int) dom.Element {
	if !in.resolved {
		panic(ErrNotResolved)
	}
	return in.refs[i]
}

func (in *Instance) Refs() []dom.Element {
	out := make([]dom.Element, len(in.refs))
	copy(out, in.refs)
	return out
}

// On wires fn to event on the i-th reference.
func (in *Instance) On(i int, event string, fn dom.EventListener) {
	dom.AddListener(in.Ref(i), event, fn)
}

// OnUpdate installs body, wrapped with the flush guard and reset, as the
// instance's update callback.
func (in *Instance) OnUpdate(body func()) {
	in.state.SetFlush(in.state.Update(body))
}
