package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopRequestsUntilStopped(t *testing.T) {
	var n atomic.Int32
	ticked := make(chan struct{}, 1)
	var l Loop
	l.Start(context.Background(), time.Millisecond, func() {
		n.Add(1)
		select {
		case ticked <- struct{}{}:
		default:
		}
	})
	if !l.Running() {
		t.Fatal("loop should be running")
	}
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick requested")
	}
	l.Stop()
	if l.Running() {
		t.Fatal("loop should be stopped")
	}
	after := n.Load()
	time.Sleep(10 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Errorf("%d requests after Stop", got-after)
	}
}

func TestLoopStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int32
	var l Loop
	l.Start(ctx, time.Millisecond, func() { n.Add(1) })
	cancel()
	l.Stop()
	after := n.Load()
	time.Sleep(10 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Errorf("%d requests after cancel", got-after)
	}
}

func TestStopWithoutStart(t *testing.T) {
	var l Loop
	l.Stop()
	l.Start(context.Background(), 0, nil)
	if l.Running() {
		t.Error("nil request must not start the loop")
	}
}
