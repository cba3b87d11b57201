// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package blq provides a bounded blocking FIFO queue for coordinating
// producer and consumer goroutines.
//
// Unlike the lock-free queues in code.hybscloud.com/lfq, blq uses a single
// mutex with two condition variables (the classic monitor pattern). The
// trade-off is deliberate: all access is serialized through one lock, but
// in exchange the queue offers blocking operations that park the caller
// until space or data is available, a capacity that can be changed at any
// time, and accurate Len reporting.
//
// # Quick Start
//
//	q := blq.New[string](1000)   // bounded
//	q := blq.NewUnbounded[int]() // capacity limited only by memory
//
//	// Producer
//	q.Put("work")          // blocks while the queue is full
//	ok := q.TryPut("work") // never blocks; false when full
//
//	// Consumer
//	v := q.Get()           // blocks while the queue is empty
//	var out string
//	ok = q.TryGet(&out)    // never blocks; false when empty
//
// # Blocking vs Non-Blocking
//
// Put and Get are monitor operations: they wait on a condition variable,
// re-checking the predicate after every wakeup, so a single spurious or
// raced wakeup never results in an insert into a full queue or a removal
// from an empty one. TryPut and TryGet fail fast instead of waiting and
// report the outcome as a bool; a false result leaves the queue, the value,
// and the output slot untouched.
//
// There is no deadline or cancellation variant. A caller blocked in Put or
// Get stays parked until another goroutine's removal or insertion makes the
// predicate true.
//
// # Capacity
//
// New clamps a requested capacity below 1 up to 1; it never rejects.
// NewUnbounded uses MaxCapacity, under which Put never blocks.
//
// SetCap replaces the bound at any time, with no validation and no
// signalling. Lowering the bound below the current length does not evict
// items; the queue simply refuses inserts until removals bring the length
// back under the bound. Raising the bound does not wake producers already
// parked in Put; they are released by the next removal, which re-checks the
// predicate against the new bound.
//
// # Ecosystem Compatibility
//
// The queue also exposes the lfq-shaped non-blocking pair so it can stand
// in wherever a [Producer] or [Consumer] is expected:
//
//	err := q.Enqueue(&v)  // ErrWouldBlock when full
//	v, err := q.Dequeue() // ErrWouldBlock when empty
//
// ErrWouldBlock is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency, and is a control flow signal rather than a failure:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Container Strategies
//
// The queue stores items in a [Container], an ordered sequence supporting
// push-at-tail, peek/pop-at-head, and a length query. The default is a
// growable power-of-two ring buffer. A linked-list container is available
// for workloads where retaining a large slab between bursts is undesirable:
//
//	q := blq.NewWith[Job](64, blq.NewList[Job]())
//
// Containers transfer ownership: a popped slot is zeroed, so the queue
// never keeps a live reference to an item after handing it to the caller.
// This matters for queues of pointers; the "dead" part of the buffer does
// not pin removed items against garbage collection.
//
// # Ordering
//
// Items inserted by a single goroutine are observed in submission order.
// Across goroutines, order is the order in which each insert's critical
// section acquired the lock, not wall-clock call order. Consumers see one
// consistent FIFO order; nothing is reordered after insertion.
//
// # Thread Safety
//
// Every operation is safe for any number of concurrent callers. All
// synchronization is internal; callers need no external locking. Signal
// policy is single-waiter: an insert into a previously empty queue wakes
// exactly one parked consumer, and a removal from a previously full queue
// wakes exactly one parked producer. There is no wake-order fairness
// guarantee among multiple waiters.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors. The
// demonstration command additionally uses [code.hybscloud.com/atomix],
// [code.hybscloud.com/spin], go.uber.org/zap, and golang.org/x/sync.
package blq
