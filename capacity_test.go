// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq_test

import (
	"testing"
	"time"

	"code.hybscloud.com/blq"
)

// =============================================================================
// Capacity Mutation
//
// SetCap replaces the bound with no clamping and no signalling. The tests
// here pin down the documented consequences: no eviction on lowering, no
// proactive wake on raising, and refusal under a non-positive bound.
// =============================================================================

// TestSetCapLoweringDoesNotEvict lowers the bound below the current length
// and verifies items stay queued, with inserts refused until removals bring
// the length back under the bound.
func TestSetCapLoweringDoesNotEvict(t *testing.T) {
	q := blq.New[int](5)
	q.Put(1)
	q.Put(2)
	q.Put(3)

	q.SetCap(1)

	if got := q.Len(); got != 3 {
		t.Fatalf("Len after lowering: got %d, want 3", got)
	}
	if got := q.Cap(); got != 1 {
		t.Fatalf("Cap after lowering: got %d, want 1", got)
	}

	// Over the bound: every insert refuses until the length drops below it.
	if q.TryPut(4) {
		t.Fatal("TryPut at Len 3, Cap 1: got true, want false")
	}
	if got := q.Get(); got != 1 {
		t.Fatalf("Get: got %d, want 1", got)
	}
	if q.TryPut(4) {
		t.Fatal("TryPut at Len 2, Cap 1: got true, want false")
	}
	if got := q.Get(); got != 2 {
		t.Fatalf("Get: got %d, want 2", got)
	}
	if q.TryPut(4) {
		t.Fatal("TryPut at Len 1, Cap 1: got true, want false")
	}
	if got := q.Get(); got != 3 {
		t.Fatalf("Get: got %d, want 3", got)
	}
	if !q.TryPut(4) {
		t.Fatal("TryPut at Len 0, Cap 1: got false, want true")
	}
}

// TestSetCapRaiseDoesNotWakeProducer raises the bound while a producer is
// parked and verifies the producer stays parked: release comes only from a
// removal whose re-check observes headroom, never from SetCap itself.
func TestSetCapRaiseDoesNotWakeProducer(t *testing.T) {
	q := blq.New[string](1)
	q.Put("a")

	done := make(chan struct{})
	go func() {
		q.Put("b")
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)

	q.SetCap(3)
	time.Sleep(20 * time.Millisecond)

	select {
	case <-done:
		t.Fatal("SetCap released a parked producer; release must come from a removal")
	default:
	}

	// New inserts see the raised bound directly.
	q.Put("c")
	q.Put("d") // fills the queue at the new bound of 3

	// Draining the now-full queue signals notFull and releases the
	// parked producer.
	if got := q.Get(); got != "a" {
		t.Fatalf("Get: got %q, want %q", got, "a")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("parked producer was not released by the removal")
	}

	for _, want := range []string{"c", "d", "b"} {
		if got := q.Get(); got != want {
			t.Fatalf("Get: got %q, want %q", got, want)
		}
	}
}

// TestGetWakeJudgedAgainstCurrentCapacity lowers the bound under a parked
// producer and verifies removals do not wake it while the queue is still
// over the new bound.
func TestGetWakeJudgedAgainstCurrentCapacity(t *testing.T) {
	q := blq.New[string](2)
	q.Put("a")
	q.Put("b")

	done := make(chan struct{})
	go func() {
		q.Put("c")
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)

	q.SetCap(1)

	// Len 2 -> 1: still at the new bound, producer must stay parked.
	if got := q.Get(); got != "a" {
		t.Fatalf("Get: got %q, want %q", got, "a")
	}
	time.Sleep(20 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("producer released while queue was still at the lowered bound")
	default:
	}

	// Len 1 -> 0: removal drains a queue that was exactly full under the
	// new bound, which releases the producer.
	if got := q.Get(); got != "b" {
		t.Fatalf("Get: got %q, want %q", got, "b")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("producer was not released once the queue dropped under the bound")
	}
	if got := q.Get(); got != "c" {
		t.Fatalf("Get: got %q, want %q", got, "c")
	}
}

// TestSetCapNoClamping verifies the setter applies no validation: a
// non-positive bound stands and refuses every insert until raised.
func TestSetCapNoClamping(t *testing.T) {
	q := blq.New[int](4)

	q.SetCap(0)
	if got := q.Cap(); got != 0 {
		t.Fatalf("Cap: got %d, want 0", got)
	}
	if q.TryPut(1) {
		t.Fatal("TryPut under zero bound: got true, want false")
	}

	q.SetCap(-3)
	if got := q.Cap(); got != -3 {
		t.Fatalf("Cap: got %d, want -3", got)
	}
	if q.TryPut(1) {
		t.Fatal("TryPut under negative bound: got true, want false")
	}

	q.SetCap(2)
	if !q.TryPut(1) {
		t.Fatal("TryPut after raising bound: got false, want true")
	}
}
