// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq

// Container is the ordered storage behind a Queue: push at the tail,
// peek and pop at the head, and a length query. Implementations are not
// required to be safe for concurrent use; the queue serializes all access
// under its own lock.
//
// Ownership: Pop must clear the vacated slot so the container holds no
// reference to a removed element. Elements only need to be assignable,
// not duplicable in any deeper sense; the container never hands out more
// than one live copy.
//
// Peek and Pop panic when the container is empty. The queue consults Len
// under its lock before calling either.
type Container[T any] interface {
	// Push appends elem at the tail.
	Push(elem T)
	// Peek returns the head element without removing it.
	Peek() T
	// Pop removes and returns the head element, clearing its slot.
	Pop() T
	// Len returns the number of stored elements.
	Len() int
}

// minRingSize is the initial slot count of a Ring buffer.
const minRingSize = 8

// ring is a growable circular buffer with power-of-two sizing.
//
// head and tail are free-running counters; masked indexing maps them onto
// the buffer, the same layout the lfq ring buffers use. When the buffer
// fills, it doubles and the live window is re-based at index zero.
type ring[T any] struct {
	buffer []T
	head   uint64
	tail   uint64
	mask   uint64
}

// NewRing creates the default Container: a growable power-of-two ring
// buffer. Suited to steady traffic, where popped slots are reused without
// allocation.
func NewRing[T any]() Container[T] {
	return &ring[T]{
		buffer: make([]T, minRingSize),
		mask:   minRingSize - 1,
	}
}

func (r *ring[T]) Push(elem T) {
	if r.tail-r.head > r.mask {
		r.grow()
	}
	r.buffer[r.tail&r.mask] = elem
	r.tail++
}

func (r *ring[T]) Peek() T {
	if r.head == r.tail {
		panic("blq: peek on empty container")
	}
	return r.buffer[r.head&r.mask]
}

func (r *ring[T]) Pop() T {
	if r.head == r.tail {
		panic("blq: pop on empty container")
	}
	elem := r.buffer[r.head&r.mask]
	var zero T
	r.buffer[r.head&r.mask] = zero
	r.head++
	return elem
}

func (r *ring[T]) Len() int {
	return int(r.tail - r.head)
}

// grow doubles the buffer and re-bases the live window at index zero.
func (r *ring[T]) grow() {
	n := uint64(len(r.buffer))
	next := make([]T, n*2)
	for i := r.head; i < r.tail; i++ {
		next[i-r.head] = r.buffer[i&r.mask]
	}
	r.buffer = next
	r.tail -= r.head
	r.head = 0
	r.mask = n*2 - 1
}

// list is a singly linked container. Each element lives in its own node,
// released to the garbage collector as soon as it is popped.
type list[T any] struct {
	head   *listNode[T]
	tail   *listNode[T]
	length int
}

type listNode[T any] struct {
	elem T
	next *listNode[T]
}

// NewList creates a linked-list Container. Unlike [NewRing] it retains no
// slab between bursts, trading a per-element allocation for a footprint
// that tracks the current length.
func NewList[T any]() Container[T] {
	return &list[T]{}
}

func (l *list[T]) Push(elem T) {
	node := &listNode[T]{elem: elem}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.length++
}

func (l *list[T]) Peek() T {
	if l.head == nil {
		panic("blq: peek on empty container")
	}
	return l.head.elem
}

func (l *list[T]) Pop() T {
	if l.head == nil {
		panic("blq: pop on empty container")
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}
	node.next = nil
	l.length--
	return node.elem
}

func (l *list[T]) Len() int {
	return l.length
}
