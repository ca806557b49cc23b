package jobs

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchJob   = errors.New("no such job")
	ErrTooManyJobs = errors.New("too many jobs")

	// ErrForegroundTaken is returned when a second job would enter the
	// foreground state.
	ErrForegroundTaken = errors.New("a foreground job already exists")
)

// InvalidTransitionError is returned when attempting an invalid job state
// transition.
type InvalidTransitionError struct {
	from State
	to   State
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot go from %s to %s", e.from, e.to)
}

func NewInvalidTransitionError(from, to State) InvalidTransitionError {
	return InvalidTransitionError{from, to}
}
