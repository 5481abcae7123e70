package corehsm

import (
	"sync"
	"testing"
)

type qEvtID int

func TestEventQueueFIFOOrder(t *testing.T) {
	q := newEventQueue[qEvtID](&sync.Mutex{})
	q.append(&pendingEvent[qEvtID]{event: 1})
	q.append(&pendingEvent[qEvtID]{event: 2})

	first, ok := q.popFront()
	if !ok || first.event != 1 {
		t.Fatalf("first pop = %+v, want event 1", first)
	}
	second, ok := q.popFront()
	if !ok || second.event != 2 {
		t.Fatalf("second pop = %+v, want event 2", second)
	}
	if _, ok := q.popFront(); ok {
		t.Fatal("popping an empty queue should report false")
	}
}

func TestEventQueuePushFrontJumpsTheLine(t *testing.T) {
	q := newEventQueue[qEvtID](&sync.Mutex{})
	q.append(&pendingEvent[qEvtID]{event: 1})
	q.pushFront(&pendingEvent[qEvtID]{event: 99, synthetic: true})

	first, _ := q.popFront()
	if first.event != 99 {
		t.Fatalf("pushFront item should pop first, got event %v", first.event)
	}
}

func TestEventQueueClearPreservesSyntheticAndFailsPendingHandles(t *testing.T) {
	q := newEventQueue[qEvtID](&sync.Mutex{})
	h := newSyncHandle()
	q.append(&pendingEvent[qEvtID]{event: 1, handle: h})
	q.append(&pendingEvent[qEvtID]{event: 2, synthetic: true})

	q.clear()

	remaining := q.snapshot()
	if len(remaining) != 1 || !remaining[0].synthetic {
		t.Fatalf("clear should keep only the synthetic entry, got %+v", remaining)
	}
	if h.status != statusDoneFailed {
		t.Fatalf("cleared handle status = %v, want DONE_FAILED", h.status)
	}
}

func TestEventQueueClearSkipsNilHandles(t *testing.T) {
	q := newEventQueue[qEvtID](&sync.Mutex{})
	q.append(&pendingEvent[qEvtID]{event: 1})
	q.clear() // must not panic on a nil handle
	if q.nonEmpty() {
		t.Fatal("non-synthetic entry with no handle should still be dropped")
	}
}

func TestEventQueueSnapshotIsACopy(t *testing.T) {
	q := newEventQueue[qEvtID](&sync.Mutex{})
	q.append(&pendingEvent[qEvtID]{event: 1})

	snap := q.snapshot()
	q.append(&pendingEvent[qEvtID]{event: 2})

	if len(snap) != 1 {
		t.Fatalf("snapshot should not observe later appends, got %d items", len(snap))
	}
}

func TestNoopLockerIsANoop(t *testing.T) {
	var l locker = noopLocker{}
	l.Lock()
	l.Unlock() // just confirm it doesn't block or panic
}
