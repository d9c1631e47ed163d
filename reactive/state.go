package reactive

import "time"

// DirtyState is the dirty bits, flush-pending flag and update callback shared
// by all reactive values of one component instance. It is not safe for
// concurrent use; writes and flushes run on one cooperative loop.
type DirtyState struct {
	bits      Mask
	scheduled bool
	flush     func()

	sched    Scheduler
	observer Observer
}

func NewDirtyState(sched Scheduler, opts ...Option) *DirtyState {
	if sched == nil {
		panic("reactive: nil scheduler")
	}
	ds := &DirtyState{sched: sched}
	for _, opt := range opts {
		opt(ds)
	}
	return ds
}

// Bits returns the union of bits dirtied since the last flush.
func (ds *DirtyState) Bits() Mask {
	return ds.bits
}

// Scheduled reports whether a flush has been requested and not yet finished.
func (ds *DirtyState) Scheduled() bool {
	return ds.scheduled
}

// Dirty is the test a generated reactive statement performs against its
// dependency mask.
func (ds *DirtyState) Dirty(m Mask) bool {
	return ds.bits&m != 0
}

// SetFlush installs the update callback. It may be called once, after every
// reactive value of the instance has been constructed.
func (ds *DirtyState) SetFlush(fn func()) {
	if ds.flush != nil {
		panic(ErrFlushAlreadySet)
	}
	ds.flush = fn
}

// Update wraps the body of a generated update procedure with the flush guard
// and reset. The returned func is a no-op unless a flush is pending; after
// body returns the bits and the pending flag are cleared.
func (ds *DirtyState) Update(body func()) func() {
	return func() {
		if !ds.scheduled {
			return
		}

		var started time.Time
		if ds.observer != nil {
			started = time.Now()
		}
		flushed := ds.bits

		body()

		ds.bits = 0
		ds.scheduled = false

		if ds.observer != nil {
			ds.observer.Flushed(flushed, started, time.Since(started))
		}
	}
}

func (ds *DirtyState) markDirty(bit Mask) {
	ds.bits |= bit
	if ds.scheduled {
		return
	}
	ds.scheduled = true
	ds.sched.ScheduleMicrotask(ds.runFlush)
}

// runFlush looks the callback up when the microtask runs, so writes made
// before SetFlush still reach it.
func (ds *DirtyState) runFlush() {
	if ds.flush == nil {
		ds.bits = 0
		ds.scheduled = false
		return
	}
	ds.flush()
}
