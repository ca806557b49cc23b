package jobs

import "sync"

// Gate serializes job table access between the evaluator and the
// goroutines that service asynchronous signal notifications (the child
// reaper and the keyboard relays). Holding the gate corresponds to the
// "all signals blocked" posture of a classic Unix shell: while one side
// holds it, the other side's observations and mutations are deferred.
//
// Wait is the sigsuspend analog for the foreground wait. It releases the
// gate and parks the caller as one atomic step, so a status change can
// never slip between the caller's last check of the table and the park.
type Gate struct {
	mu   sync.Mutex
	cond *sync.Cond
}

func NewGate() *Gate {
	g := &Gate{}
	g.cond = sync.NewCond(&g.mu)

	return g
}

// Lock acquires the gate. Every Registry mutation, and any read that must
// be consistent with one, happens between Lock and Unlock.
func (g *Gate) Lock() {
	g.mu.Lock()
}

// Unlock releases the gate.
func (g *Gate) Unlock() {
	g.mu.Unlock()
}

// Wait atomically releases the gate and parks the caller until Broadcast,
// reacquiring the gate before returning. Callers must hold the gate and
// must re-check their condition in a loop, as with any condition variable.
func (g *Gate) Wait() {
	g.cond.Wait()
}

// Broadcast wakes every goroutine parked in Wait. Callers must hold the
// gate.
func (g *Gate) Broadcast() {
	g.cond.Broadcast()
}
