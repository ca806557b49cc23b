package jobs

type State int

const (
	// StateUnknown indicates there is no such job. It's used as the zero
	// value for functions that return a (possibly absent) State and is
	// never stored in an occupied Registry slot.
	StateUnknown State = iota

	// StateForeground indicates the job owns the terminal. The evaluator
	// is parked in the foreground wait until the job leaves this state.
	// At most one job is in StateForeground at any instant.
	StateForeground

	// StateBackground indicates the job is running detached from the
	// terminal.
	StateBackground

	// StateStopped indicates the job is suspended pending SIGCONT.
	StateStopped
)

// NOTE: This slice needs to be kept in sync with any changes to the State
// values.
var stateNames = []string{
	"Unknown",
	"Foreground",
	"Background",
	"Stopped",
}

// String implements the Stringer interface for State and returns a string
// representation of the State by using the int value to index into a slice.
func (s State) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return stateNames[0]
	}

	return stateNames[s]
}

// validTransitions maps a State to the States a live job may move to.
// A job leaves the table by being removed, not by a transition, so
// termination does not appear here. Stops are recorded whether the job
// was in the foreground or the background, since a background job can be
// stopped by a signal sent directly to its process group.
var validTransitions = map[State][]State{
	StateForeground: {StateStopped},
	StateBackground: {StateForeground, StateStopped},
	StateStopped:    {StateForeground, StateBackground},
}

func validTransition(from, to State) bool {
	if from == to {
		return true
	}

	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}

	return false
}
