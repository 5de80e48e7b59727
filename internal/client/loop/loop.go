// Package loop provides the console's single logical thread.
//
// Every piece of console state is touched only by functions the Loop runs,
// one at a time. Network calls run on their own goroutines via Go; their
// completions are queued back onto the Loop, so handlers never race with
// each other or with user input.
package loop

import (
	"context"
	"sync"
)

// Loop is a serial event queue with tracking of outstanding async calls.
// Run and RunUntilIdle must not be called concurrently.
type Loop struct {
	mu       sync.Mutex
	queue    []func()
	inflight int
	wake     chan struct{}
}

func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post schedules fn on the loop. Safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

// Go runs call on a new goroutine and schedules the completion it returns on
// the loop. The completion always runs; a nil completion is allowed.
func (l *Loop) Go(call func() func()) {
	l.mu.Lock()
	l.inflight++
	l.mu.Unlock()

	go func() {
		done := call()

		l.mu.Lock()
		if done != nil {
			l.queue = append(l.queue, done)
		}
		l.inflight--
		l.mu.Unlock()
		l.signal()
	}()
}

// Inflight reports how many calls started with Go have not completed yet.
func (l *Loop) Inflight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight
}

// Run processes events until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.drain()
		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunUntilIdle processes events until the queue is empty and no call is in
// flight, or ctx is done.
func (l *Loop) RunUntilIdle(ctx context.Context) error {
	for {
		l.drain()
		if l.idle() {
			return nil
		}
		select {
		case <-l.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Loop) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue) == 0 && l.inflight == 0
}

func (l *Loop) drain() {
	for {
		fn, ok := l.pop()
		if !ok {
			return
		}
		fn()
	}
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
