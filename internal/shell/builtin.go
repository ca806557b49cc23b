package shell

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/ahsanp/tiny-shell/internal/jobs"
)

// builtin dispatches argv if it names a built-in command and reports
// whether it handled the line. Built-ins that launch no process return
// without waiting.
func (s *Shell) builtin(argv []string) bool {
	switch argv[0] {
	case "quit":
		s.quit = true
		return true
	case "jobs":
		s.listJobs()
		return true
	case "fg", "bg":
		s.continueJob(argv)
		return true
	}

	return false
}

// listJobs prints the registry snapshot while still holding the gate, so
// a listing never interleaves with the reaper's status lines.
func (s *Shell) listJobs() {
	s.gate.Lock()
	defer s.gate.Unlock()

	for _, job := range s.reg.List() {
		fmt.Fprintf(
			s.out,
			"[%d] (%d) %s %s\n",
			job.ID,
			job.PID,
			displayState(job.State),
			job.Cmdline,
		)
	}
}

// displayState renders a job state for listing. Background jobs have
// always been listed as "Running".
func displayState(state jobs.State) string {
	if state == jobs.StateBackground {
		return "Running"
	}

	return state.String()
}

// continueJob implements the fg and bg built-ins: resolve a %jobid
// argument, send SIGCONT to the job's whole process group, and record the
// new state. fg then blocks until the job leaves the foreground.
func (s *Shell) continueJob(argv []string) {
	name := argv[0]

	target := jobs.StateBackground
	if name == "fg" {
		target = jobs.StateForeground
	}

	// Error and status lines are written under the gate so they never
	// interleave with the reaper's output.
	s.gate.Lock()

	if len(argv) < 2 {
		fmt.Fprintf(s.out, "%s command requires %%jobid argument\n", name)
		s.gate.Unlock()

		return
	}

	id, ok := parseJobRef(argv[1])
	if !ok {
		fmt.Fprintf(s.out, "%s: argument must be a %%jobid\n", name)
		s.gate.Unlock()

		return
	}

	job, ok := s.reg.ByID(id)
	if !ok {
		fmt.Fprintf(s.out, "%%%d: No such job\n", id)
		s.gate.Unlock()

		return
	}

	if err := unix.Kill(-job.PID, unix.SIGCONT); err != nil && err != unix.ESRCH {
		s.fatalf("kill (SIGCONT)", err)
	}

	if err := s.reg.SetState(job.PID, target); err != nil {
		fmt.Fprintf(s.out, "%s %%%d: %v\n", name, id, err)
		s.gate.Unlock()

		return
	}

	if target == jobs.StateBackground {
		fmt.Fprintf(s.out, "[%d] (%d) %s\n", job.ID, job.PID, job.Cmdline)
	}

	s.gate.Unlock()

	if target == jobs.StateForeground {
		s.waitForeground(job.PID)
	}
}

// parseJobRef parses the %jobid argument form. Bare pids are not
// accepted.
func parseJobRef(arg string) (int, bool) {
	if !strings.HasPrefix(arg, "%") {
		return 0, false
	}

	id, err := strconv.Atoi(arg[1:])
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
