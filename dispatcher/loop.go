package dispatcher

import (
	"sync"

	"github.com/corehsm/corehsm"
)

// Loop is a Dispatcher backed by a single background goroutine and a
// coalescing signal channel — the Go-native analogue of hsmcpp's
// HsmEventDispatcherGLib, which drives its handler off a GLib IO channel
// instead of a goroutine. Emits from any goroutine coalesce into at most
// one pending wakeup; the handler's own re-emit (see Machine.dispatchTick)
// guarantees no work is lost.
type Loop struct {
	mu      sync.Mutex
	handler func()
	signal  chan struct{}
	stop    chan struct{}
	started bool
	wg      sync.WaitGroup
}

// NewLoop creates a Loop. Call Start to begin its background goroutine.
func NewLoop() *Loop {
	return &Loop{
		signal: make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
}

// Start launches the background goroutine on first call; later calls are a
// no-op and also return true.
func (l *Loop) Start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return true
	}
	l.started = true
	l.wg.Add(1)
	go l.run()
	return true
}

func (l *Loop) run() {
	defer l.wg.Done()
	for {
		select {
		case <-l.stop:
			return
		case <-l.signal:
			l.mu.Lock()
			handler := l.handler
			l.mu.Unlock()
			if handler != nil {
				handler()
			}
		}
	}
}

// RegisterEventHandler stores handler, replacing any previous one.
func (l *Loop) RegisterEventHandler(handler func()) corehsm.HandlerID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = handler
	return 1
}

// UnregisterEventHandler removes the stored handler. The loop goroutine
// keeps running; it just stops invoking anything on subsequent signals.
func (l *Loop) UnregisterEventHandler(id corehsm.HandlerID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = nil
}

// EmitEvent signals the loop goroutine. Concurrent emits coalesce into a
// single wakeup via the buffered, capacity-1 signal channel.
func (l *Loop) EmitEvent() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

// Stop shuts the background goroutine down and waits for it to exit.
func (l *Loop) Stop() {
	close(l.stop)
	l.wg.Wait()
}
