// Package eventloop is a small cooperative event loop with the task and
// microtask ordering of a browser: each macrotask runs to completion, then
// every pending microtask runs (including ones queued by other microtasks)
// before the next macrotask starts.
//
// Work executes on whichever goroutine calls Run, RunOnce or Drain; only one
// goroutine may do so at a time. Submit and ScheduleMicrotask are safe from
// any goroutine.
package eventloop

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"sync"

	"github.com/delaneyj/bitflush/reactive"
)

var ErrLoopClosed = errors.New("eventloop: loop closed")

// PanicError wraps a value recovered from a task or microtask.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("eventloop: task panicked: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

type Option func(*Loop)

// WithErrorHandler receives every recovered task panic. The default logs it.
func WithErrorHandler(fn func(err error)) Option {
	return func(l *Loop) {
		l.onError = fn
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

type Loop struct {
	mu         sync.Mutex
	tasks      []func()
	microtasks []func()
	closed     bool
	wake       chan struct{}

	onError func(err error)
	logger  *log.Logger
}

var _ reactive.Scheduler = (*Loop)(nil)

func New(opts ...Option) *Loop {
	l := &Loop{
		wake:   make(chan struct{}, 1),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.onError == nil {
		l.onError = func(err error) {
			l.logger.Printf("%v", err)
		}
	}
	return l
}

// Submit queues a macrotask, typically an externally triggered event.
func (l *Loop) Submit(task func()) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrLoopClosed
	}
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()
	l.signal()
	return nil
}

// ScheduleMicrotask queues fn to run once the current macrotask has
// finished, ahead of any further macrotask.
func (l *Loop) ScheduleMicrotask(fn func()) {
	l.mu.Lock()
	l.microtasks = append(l.microtasks, fn)
	l.mu.Unlock()
	l.signal()
}

// RunOnce drains pending microtasks, runs the oldest macrotask if there is
// one, then drains microtasks again. It reports whether a macrotask ran.
func (l *Loop) RunOnce() bool {
	l.drainMicrotasks()
	task, ok := l.next()
	if !ok {
		return false
	}
	l.run(task)
	l.drainMicrotasks()
	return true
}

// Drain runs work until both queues are empty and returns the number of
// macrotasks it ran.
func (l *Loop) Drain() int {
	n := 0
	for l.RunOnce() {
		n++
	}
	return n
}

// Run processes work until ctx is done or the loop is closed. Work already
// queued when Close is called still runs.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()

		l.mu.Lock()
		closed := l.closed && len(l.tasks) == 0 && len(l.microtasks) == 0
		l.mu.Unlock()
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Close stops the loop from accepting macrotasks and wakes Run.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.signal()
}

// Pending returns the number of queued macrotasks and microtasks.
func (l *Loop) Pending() (tasks, microtasks int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks), len(l.microtasks)
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.tasks) == 0 {
		return nil, false
	}
	task := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return task, true
}

func (l *Loop) nextMicrotask() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.microtasks) == 0 {
		return nil, false
	}
	fn := l.microtasks[0]
	l.microtasks[0] = nil
	l.microtasks = l.microtasks[1:]
	return fn, true
}

func (l *Loop) drainMicrotasks() {
	for {
		fn, ok := l.nextMicrotask()
		if !ok {
			return
		}
		l.run(fn)
	}
}

func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.onError(&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	fn()
}
