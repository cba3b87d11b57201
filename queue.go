// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq

import (
	"math"
	"sync"
)

// MaxCapacity is the capacity of an unbounded queue. A queue whose bound
// is MaxCapacity can never be full in practice, so Put never parks.
const MaxCapacity = math.MaxInt

// Queue is a monitor-based bounded FIFO queue.
//
// One mutex guards the container and the capacity together; two condition
// variables park callers waiting for the queue to become non-empty or
// non-full. Blocking waits are predicate loops, so wakeups are re-checked
// and multi-waiter races cannot violate the bound.
//
// The zero value is not usable; construct with New, NewUnbounded, or
// NewWith.
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond // signalled when an insert fills an empty queue
	notFull  *sync.Cond // signalled when a removal drains a full queue
	items    Container[T]
	capacity int
}

// New creates a bounded queue backed by a ring buffer container.
//
// A requested capacity below 1 is clamped to 1, not rejected. The clamp is
// policy: construction cannot fail.
func New[T any](capacity int) *Queue[T] {
	return NewWith[T](capacity, NewRing[T]())
}

// NewUnbounded creates a queue with capacity MaxCapacity. Put never
// blocks; memory is the only limit.
func NewUnbounded[T any]() *Queue[T] {
	return NewWith[T](MaxCapacity, NewRing[T]())
}

// NewWith creates a bounded queue backed by the given container. The
// container must be empty and must not be shared; the queue assumes sole
// ownership. Capacity below 1 is clamped to 1.
//
// Panics if c is nil.
func NewWith[T any](capacity int, c Container[T]) *Queue[T] {
	if c == nil {
		panic("blq: nil container")
	}
	if capacity < 1 {
		capacity = 1
	}
	q := &Queue[T]{items: c, capacity: capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// IsEmpty reports whether the queue held no items at the moment of the
// call. The answer is a snapshot; concurrent operations may have changed
// it by the time the caller acts on it. Use the Try or blocking operations
// for decisions that must be atomic with the queue state.
func (q *Queue[T]) IsEmpty() bool {
	q.mu.Lock()
	empty := q.items.Len() == 0
	q.mu.Unlock()
	return empty
}

// Len returns the number of queued items at the moment of the call.
// Snapshot semantics as with IsEmpty.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := q.items.Len()
	q.mu.Unlock()
	return n
}

// Cap returns the current capacity bound.
func (q *Queue[T]) Cap() int {
	q.mu.Lock()
	c := q.capacity
	q.mu.Unlock()
	return c
}

// SetCap replaces the capacity bound. No clamping is applied here, unlike
// the constructor: a non-positive bound refuses all inserts until raised.
//
// Lowering the bound below the current length does not evict items; Len
// may exceed Cap until removals bring it back under. SetCap performs no
// signalling, so raising the bound does not release producers already
// parked in Put. They are woken by the next removal, whose predicate
// re-check observes the new bound.
func (q *Queue[T]) SetCap(capacity int) {
	q.mu.Lock()
	q.capacity = capacity
	q.mu.Unlock()
}

// Put inserts elem, parking the caller while the queue is full.
//
// If the insert fills a previously empty queue, exactly one goroutine
// parked in Get or GetTo is woken. Put does not fail and does not time
// out; a caller stays parked until a removal makes space.
func (q *Queue[T]) Put(elem T) {
	q.mu.Lock()
	for q.items.Len() >= q.capacity {
		q.notFull.Wait()
	}
	wasEmpty := q.items.Len() == 0
	q.items.Push(elem)
	q.mu.Unlock()
	if wasEmpty {
		q.notEmpty.Signal()
	}
}

// TryPut inserts elem only if the queue is below capacity at the moment
// the lock is acquired. Returns false when full, leaving the queue
// unchanged and the value unconsumed. Wake policy on success matches Put.
func (q *Queue[T]) TryPut(elem T) bool {
	q.mu.Lock()
	n := q.items.Len()
	if n >= q.capacity {
		q.mu.Unlock()
		return false
	}
	q.items.Push(elem)
	q.mu.Unlock()
	if n == 0 {
		q.notEmpty.Signal()
	}
	return true
}

// Get removes and returns the head item, parking the caller while the
// queue is empty.
//
// If the removal drains a queue that was exactly full, one goroutine
// parked in Put is woken. Fullness is judged against the capacity
// observed inside this critical section: when the bound was concurrently
// lowered and the queue is still over it after the removal, producers
// stay parked, which is the correct outcome.
func (q *Queue[T]) Get() T {
	q.mu.Lock()
	for q.items.Len() == 0 {
		q.notEmpty.Wait()
	}
	elem := q.items.Pop()
	wasFull := q.items.Len() == q.capacity-1
	q.mu.Unlock()
	if wasFull {
		q.notFull.Signal()
	}
	return elem
}

// GetTo removes the head item into *out, parking the caller while the
// queue is empty. It is Get with a pointer delivery mechanism; blocking
// and wake behavior are identical.
func (q *Queue[T]) GetTo(out *T) {
	*out = q.Get()
}

// TryGet removes the head item into *out only if the queue is non-empty
// at the moment the lock is acquired. Returns false when empty, leaving
// the queue and *out untouched. Wake policy on success matches Get.
func (q *Queue[T]) TryGet(out *T) bool {
	q.mu.Lock()
	if q.items.Len() == 0 {
		q.mu.Unlock()
		return false
	}
	*out = q.items.Pop()
	wasFull := q.items.Len() == q.capacity-1
	q.mu.Unlock()
	if wasFull {
		q.notFull.Signal()
	}
	return true
}

// Enqueue adds an element to the queue (non-blocking).
// Returns ErrWouldBlock if the queue is full; the queue is unchanged and
// the element is not consumed. The element is copied from *elem, so the
// caller may reuse the pointed-to value after Enqueue returns.
//
// Enqueue is the error-based twin of TryPut, matching the lfq Producer
// contract.
func (q *Queue[T]) Enqueue(elem *T) error {
	if !q.TryPut(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue removes and returns the head element (non-blocking).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Dequeue is the error-based twin of TryGet, matching the lfq Consumer
// contract.
func (q *Queue[T]) Dequeue() (T, error) {
	var elem T
	if !q.TryGet(&elem) {
		return elem, ErrWouldBlock
	}
	return elem, nil
}
