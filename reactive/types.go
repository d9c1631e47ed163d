// Package reactive tracks which pieces of component state changed since the
// last update and coalesces those changes into a single flush per burst.
//
// Every reactive value of a component instance owns one bit of a shared
// DirtyState. Writing a new value sets that bit and asks the instance's
// Scheduler for a flush; the flush runs the generated update callback, which
// tests the bits it depends on, and then clears the state.
package reactive

import (
	"errors"
	"math/bits"
	"time"
)

// Mask is a dirty bit vector. Bit i belongs to the reactive value whose
// symbol index is i.
type Mask uint64

// Width is the number of symbol indices a Mask can address.
const Width = 64

var ErrFlushAlreadySet = errors.New("reactive: flush callback already set")

// Bit returns the mask for a single symbol index. Indices outside
// [0, Width) produce an empty mask.
func Bit(symbolIndex uint) Mask {
	return Mask(1) << symbolIndex
}

// MaskOf ORs together the bits of every given symbol index.
func MaskOf(symbolIndices ...uint) Mask {
	var m Mask
	for _, i := range symbolIndices {
		m |= Bit(i)
	}
	return m
}

func (m Mask) Has(other Mask) bool {
	return m&other != 0
}

// Count is the number of set bits.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Scheduler runs fn after the current synchronous burst has unwound.
type Scheduler interface {
	ScheduleMicrotask(fn func())
}

// SchedulerFunc adapts a plain function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) ScheduleMicrotask(fn func()) {
	f(fn)
}

// Observer is told about writes and completed flushes. Calls are synchronous
// and must not write reactive values.
type Observer interface {
	Wrote(bit Mask, changed bool)
	Flushed(bits Mask, started time.Time, elapsed time.Duration)
}

type Option func(*DirtyState)

func WithObserver(o Observer) Option {
	return func(ds *DirtyState) {
		ds.observer = o
	}
}
