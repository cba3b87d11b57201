// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq

// Interface is the combined producer-consumer interface for a FIFO queue.
//
// It matches the shape of the lock-free queues in code.hybscloud.com/lfq,
// so a *Queue can be used wherever that non-blocking contract is expected.
// Both operations return ErrWouldBlock when they cannot proceed (queue
// full or empty).
//
// The blocking operations (Put, Get, GetTo) and capacity mutation are
// specific to the monitor design and are not part of this interface.
type Interface[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	// On ErrWouldBlock the queue is unchanged and the element is
	// not consumed.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value, and the vacated slot inside the queue
// is cleared so that no reference to the removed item lingers.
type Consumer[T any] interface {
	// Dequeue removes and returns the head element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

var _ Interface[int] = (*Queue[int])(nil)
