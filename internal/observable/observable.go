// Package observable provides a single-value state holder with
// latest-value-wins subscriptions.
package observable

import "sync"

// Value holds the current value and fans updates out to subscribers.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[*Subscription[T]]struct{}
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[*Subscription[T]]struct{}),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set replaces the current value and notifies subscribers. A subscriber
// that has not consumed the previous value only sees the new one.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = value
	for sub := range v.subs {
		sub.offer(value)
	}
}

// Subscribe registers a subscriber. The current value is delivered first.
func (v *Value[T]) Subscribe() *Subscription[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	sub := &Subscription[T]{ch: make(chan T, 1), parent: v}
	sub.offer(v.current)
	v.subs[sub] = struct{}{}
	return sub
}

func (v *Value[T]) subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

func (v *Value[T]) remove(sub *Subscription[T]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.subs[sub]; !ok {
		return false
	}
	delete(v.subs, sub)
	return true
}

// Subscription receives values from a Value until it is cancelled.
type Subscription[T any] struct {
	ch     chan T
	parent *Value[T]
}

// C returns the delivery channel. It is closed by Unsubscribe.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Unsubscribe stops delivery and closes C. Calling it again is a no-op.
func (s *Subscription[T]) Unsubscribe() {
	if s == nil || s.parent == nil {
		return
	}
	if s.parent.remove(s) {
		close(s.ch)
	}
}

// offer must be called with the parent lock held.
func (s *Subscription[T]) offer(value T) {
	select {
	case s.ch <- value:
		return
	default:
	}
	// Drop the stale value so the newest one wins.
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- value:
	default:
	}
}
