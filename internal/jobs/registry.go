package jobs

import "fmt"

// MaxJobs is the fixed capacity of the Registry.
const MaxJobs = 16

// Job is one child process known to the shell.
type Job struct {
	// PID is the operating-system process id. A zero PID marks a free
	// Registry slot.
	PID int

	// ID is the small display id, unique among currently-live jobs.
	ID int

	// State is the job's run state.
	State State

	// Cmdline is the command line that started the job, kept for status
	// reporting.
	Cmdline string
}

// Registry maps live child processes to Jobs. Slots are a fixed-size
// array scanned linearly; at this capacity an indexed map buys nothing,
// and the array keeps listing order deterministic.
//
// Every method must be called with the Registry's Gate held.
type Registry struct {
	gate   *Gate
	slots  [MaxJobs]Job
	nextID int
}

// NewRegistry creates an empty Registry and the Gate that guards it.
func NewRegistry() *Registry {
	return &Registry{
		gate:   NewGate(),
		nextID: 1,
	}
}

// Gate returns the gate that guards this Registry.
func (r *Registry) Gate() *Gate {
	return r.gate
}

// Add claims a free slot for pid and returns the assigned job id. It
// returns ErrTooManyJobs when every slot is occupied, leaving the table
// unchanged; callers report this to the user rather than abort.
func (r *Registry) Add(pid int, state State, cmdline string) (int, error) {
	if pid < 1 {
		return 0, fmt.Errorf("add job: invalid pid %d", pid)
	}

	if state == StateForeground {
		if _, ok := r.Foreground(); ok {
			return 0, ErrForegroundTaken
		}
	}

	for i := range r.slots {
		if r.slots[i].PID != 0 {
			continue
		}

		id := r.nextID

		r.slots[i] = Job{
			PID:     pid,
			ID:      id,
			State:   state,
			Cmdline: cmdline,
		}

		r.nextID++
		if r.nextID > MaxJobs {
			r.nextID = 1
		}

		return id, nil
	}

	return 0, ErrTooManyJobs
}

// Remove frees the slot owned by pid and reports whether a job was
// removed. The id generator is resynchronized to one past the largest
// live id so freed ids are not handed out while a larger one is held.
func (r *Registry) Remove(pid int) bool {
	if pid < 1 {
		return false
	}

	for i := range r.slots {
		if r.slots[i].PID == pid {
			r.slots[i] = Job{}
			r.nextID = r.MaxID() + 1

			return true
		}
	}

	return false
}

// ByPID returns a copy of the job owning pid.
func (r *Registry) ByPID(pid int) (Job, bool) {
	if pid < 1 {
		return Job{}, false
	}

	for i := range r.slots {
		if r.slots[i].PID == pid {
			return r.slots[i], true
		}
	}

	return Job{}, false
}

// ByID returns a copy of the job with the given job id.
func (r *Registry) ByID(id int) (Job, bool) {
	if id < 1 {
		return Job{}, false
	}

	for i := range r.slots {
		if r.slots[i].PID != 0 && r.slots[i].ID == id {
			return r.slots[i], true
		}
	}

	return Job{}, false
}

// Foreground returns the pid of the current foreground job, if any.
func (r *Registry) Foreground() (int, bool) {
	for i := range r.slots {
		if r.slots[i].PID != 0 && r.slots[i].State == StateForeground {
			return r.slots[i].PID, true
		}
	}

	return 0, false
}

// SetState moves the job owning pid to the given state. Moving to the
// current state is a no-op. An illegal move returns an
// InvalidTransitionError and mutates nothing.
func (r *Registry) SetState(pid int, to State) error {
	for i := range r.slots {
		if r.slots[i].PID != pid {
			continue
		}

		from := r.slots[i].State
		if !validTransition(from, to) {
			return NewInvalidTransitionError(from, to)
		}

		if to == StateForeground && from != StateForeground {
			if _, ok := r.Foreground(); ok {
				return ErrForegroundTaken
			}
		}

		r.slots[i].State = to

		return nil
	}

	return ErrNoSuchJob
}

// List returns copies of every live job in table order. The order is
// deterministic for a fixed sequence of adds and removes.
func (r *Registry) List() []Job {
	var snapshot []Job

	for i := range r.slots {
		if r.slots[i].PID != 0 {
			snapshot = append(snapshot, r.slots[i])
		}
	}

	return snapshot
}

// MaxID returns the largest id held by a live job, or 0 when the table is
// empty.
func (r *Registry) MaxID() int {
	max := 0

	for i := range r.slots {
		if r.slots[i].ID > max {
			max = r.slots[i].ID
		}
	}

	return max
}
