package corehsm

import (
	"sync"
	"time"
)

// eventStatus mirrors hsmcpp's HsmEventStatus: a pending event's result
// cell, monotonic PENDING -> DONE_OK/DONE_FAILED except that PENDING is
// also observed transiently across an entry-point re-queue.
type eventStatus int32

const (
	statusPending eventStatus = iota
	statusDoneOK
	statusDoneFailed
)

// syncHandle is the rendez-vous triple {mutex, condition, result-cell}
// co-owned by a synchronous submitter and the executor. Go has no
// destructors, so the "drop last owner -> finalize with DONE_FAILED" rule
// from spec.md §4.7 is realized with an explicit reference count: both the
// submitter and the executor/queue hold one reference and call release
// exactly once when they are done observing the handle. Whichever side
// releases last finalizes a still-PENDING handle as DONE_FAILED, preventing
// phantom waiters.
type syncHandle struct {
	mu     sync.Mutex
	cond   *sync.Cond
	status eventStatus
	refs   int
}

func newSyncHandle() *syncHandle {
	h := &syncHandle{status: statusPending, refs: 2}
	h.cond = sync.NewCond(&h.mu)
	return h
}

// wait blocks until the handle's status is no longer PENDING or timeout
// elapses. timeout <= 0 means wait indefinitely, matching spec.md's
// zero-means-indefinite sentinel.
func (h *syncHandle) wait(timeout time.Duration) eventStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	if timeout <= 0 {
		for h.status == statusPending {
			h.cond.Wait()
		}
		return h.status
	}

	deadline := time.Now().Add(timeout)
	for h.status == statusPending {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		timer := time.AfterFunc(remaining, func() {
			h.mu.Lock()
			h.cond.Broadcast()
			h.mu.Unlock()
		})
		h.cond.Wait()
		timer.Stop()
	}
	return h.status
}

// unlock sets the result cell. A non-PENDING status wakes one waiter;
// PENDING leaves the waiter blocked (used when an entry-point follow-up is
// re-queued onto the same handle).
func (h *syncHandle) unlock(status eventStatus) {
	h.mu.Lock()
	h.status = status
	if status != statusPending {
		h.cond.Broadcast()
	}
	h.mu.Unlock()
}

// finish is the terminal-state convenience: set the status and release the
// executor's reference in one step. Only call this with a non-PENDING
// status — the executor must never release while a follow-up is in flight.
func (h *syncHandle) finish(status eventStatus) {
	h.unlock(status)
	h.release()
}

// release drops one of the handle's two owning references. If this is the
// last reference and the handle is still PENDING, it is finalized as
// DONE_FAILED so no goroutine is left waiting forever on an abandoned
// handle.
func (h *syncHandle) release() {
	h.mu.Lock()
	h.refs--
	remaining := h.refs
	status := h.status
	h.mu.Unlock()

	if remaining <= 0 && status == statusPending {
		h.unlock(statusDoneFailed)
	}
}
