package websocket

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recordingConn struct {
	writes      int32
	inFlight    int32
	maxInFlight int32
	closed      int32
	failWrites  int32
}

func (c *recordingConn) WriteJSON(v interface{}) error {
	if atomic.LoadInt32(&c.failWrites) == 1 {
		return errors.New("connection reset")
	}
	n := atomic.AddInt32(&c.inFlight, 1)
	for {
		max := atomic.LoadInt32(&c.maxInFlight)
		if n <= max || atomic.CompareAndSwapInt32(&c.maxInFlight, max, n) {
			break
		}
	}
	// Give overlapping writers a window to collide in.
	time.Sleep(2 * time.Millisecond)
	atomic.AddInt32(&c.inFlight, -1)
	atomic.AddInt32(&c.writes, 1)
	return nil
}

func (c *recordingConn) Close() error {
	atomic.StoreInt32(&c.closed, 1)
	return nil
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestBroadcastRefresh_SingleWriterPerConnection(t *testing.T) {
	c := &recordingConn{}
	register <- c

	// Hammer the hub the way concurrent request handlers do after each
	// cache reload.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				BroadcastRefresh()
				time.Sleep(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	waitFor(t, "at least one refresh write", func() bool {
		return atomic.LoadInt32(&c.writes) >= 1
	})
	if max := atomic.LoadInt32(&c.maxInFlight); max != 1 {
		t.Fatalf("max concurrent writers on one connection = %d, want 1", max)
	}

	// A failing connection gets dropped and closed by the hub.
	atomic.StoreInt32(&c.failWrites, 1)
	BroadcastRefresh()
	waitFor(t, "failed connection to be closed", func() bool {
		return atomic.LoadInt32(&c.closed) == 1
	})

	written := atomic.LoadInt32(&c.writes)
	BroadcastRefresh()
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&c.writes); got != written {
		t.Fatalf("dropped connection still receiving writes (%d -> %d)", written, got)
	}
}
