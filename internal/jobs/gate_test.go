package jobs_test

import (
	"testing"
	"time"

	"github.com/ahsanp/tiny-shell/internal/jobs"
)

func TestGateWaitAndBroadcast(t *testing.T) {
	g := jobs.NewGate()

	ready := false
	woke := make(chan struct{})

	go func() {
		g.Lock()
		for !ready {
			g.Wait()
		}
		g.Unlock()

		close(woke)
	}()

	// Let the waiter park before publishing.
	time.Sleep(10 * time.Millisecond)

	g.Lock()
	ready = true
	g.Broadcast()
	g.Unlock()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected waiter to wake after broadcast")
	}
}

func TestGateBroadcastWakesAllWaiters(t *testing.T) {
	g := jobs.NewGate()

	const waiters = 3

	ready := false
	woke := make(chan struct{}, waiters)

	for i := 0; i < waiters; i++ {
		go func() {
			g.Lock()
			for !ready {
				g.Wait()
			}
			g.Unlock()

			woke <- struct{}{}
		}()
	}

	time.Sleep(10 * time.Millisecond)

	g.Lock()
	ready = true
	g.Broadcast()
	g.Unlock()

	for i := 0; i < waiters; i++ {
		select {
		case <-woke:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected every waiter to wake after broadcast")
		}
	}
}
