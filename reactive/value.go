package reactive

// Value holds one piece of component state and owns a single bit of its
// instance's DirtyState.
//
// Equality is whatever the constructor was given: == for NewValue, which for
// pointers, maps behind pointers and channels means identity. Mutating a held
// structure in place without calling SetValue is not seen.
type Value[T any] struct {
	value T
	bit   Mask
	ds    *DirtyState
	equal func(a, b T) bool
}

func NewValue[T comparable](initialValue T, symbolIndex uint, ds *DirtyState) *Value[T] {
	return NewValueFunc(initialValue, symbolIndex, ds, func(a, b T) bool {
		return a == b
	})
}

// NewValueFunc is NewValue for types that are not comparable, or that need a
// different notion of "unchanged".
func NewValueFunc[T any](initialValue T, symbolIndex uint, ds *DirtyState, equal func(a, b T) bool) *Value[T] {
	if ds == nil {
		panic("reactive: nil dirty state")
	}
	return &Value[T]{
		value: initialValue,
		bit:   Bit(symbolIndex),
		ds:    ds,
		equal: equal,
	}
}

func (v *Value[T]) Value() T {
	return v.value
}

// SetValue stores nv and marks the value dirty unless nv equals the current
// value, in which case nothing happens at all.
func (v *Value[T]) SetValue(nv T) {
	if v.equal(v.value, nv) {
		if v.ds.observer != nil {
			v.ds.observer.Wrote(v.bit, false)
		}
		return
	}
	v.value = nv
	v.ds.markDirty(v.bit)
	if v.ds.observer != nil {
		v.ds.observer.Wrote(v.bit, true)
	}
}

func (v *Value[T]) Update(fn func(old T) T) {
	v.SetValue(fn(v.value))
}

// Bit is the mask generated statements test to depend on this value.
func (v *Value[T]) Bit() Mask {
	return v.bit
}
