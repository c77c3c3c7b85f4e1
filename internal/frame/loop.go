// Package frame requests board ticks at a steady rate. The loop never runs
// a tick itself: it asks the owner of the board to schedule one, so ticks
// stay on the UI goroutine.
package frame

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is roughly one frame at 60Hz.
const DefaultInterval = 16 * time.Millisecond

// Loop calls a request function once per interval until stopped.
type Loop struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start begins requesting ticks. A running loop is stopped first. A non
// positive interval uses DefaultInterval.
func (l *Loop) Start(ctx context.Context, interval time.Duration, request func()) {
	if request == nil {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	l.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.mu.Lock()
	l.cancel, l.done = cancel, done
	l.mu.Unlock()

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if ctx.Err() != nil {
					return
				}
				request()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. No request is made
// after Stop returns.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}
