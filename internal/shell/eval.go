package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/ahsanp/tiny-shell/internal/jobs"
	"github.com/ahsanp/tiny-shell/internal/parser"
)

// Eval evaluates one command line. Built-ins run synchronously; anything
// else launches a child process in its own process group, registered as a
// foreground or background job. Eval blocks until a foreground job yields
// the terminal. It returns only fatal errors; user-level failures are
// reported on the output stream and the loop continues.
func (s *Shell) Eval(line string) error {
	argv, bg := parser.Parse(line)
	if len(argv) == 0 {
		return nil
	}

	if s.builtin(argv) {
		return nil
	}

	return s.launch(argv, bg, line)
}

func (s *Shell) launch(argv []string, bg bool, line string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// The child gets its own process group so keyboard signals relayed
	// to the foreground group never hit the shell itself.
	cmd.SysProcAttr = &unix.SysProcAttr{Setpgid: true}

	state := jobs.StateBackground
	if !bg {
		state = jobs.StateForeground
	}

	// The gate is held across start+register so the reaper cannot
	// observe the child's exit before the job exists in the table.
	s.gate.Lock()

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Fprintf(s.out, "%s: Command not found\n", argv[0])
			s.gate.Unlock()

			return nil
		}

		s.gate.Unlock()

		return fmt.Errorf("start %s: %w", argv[0], err)
	}

	pid := cmd.Process.Pid

	id, err := s.reg.Add(pid, state, line)
	if err != nil {
		fmt.Fprintln(s.out, "Tried to create too many jobs")
		s.gate.Unlock()

		return nil
	}

	s.logger.Debug("added job", "jid", id, "pid", pid, "cmdline", line)

	if bg {
		fmt.Fprintf(s.out, "[%d] (%d) %s\n", id, pid, line)
	}

	s.gate.Unlock()

	if !bg {
		s.waitForeground(pid)
	}

	return nil
}

// waitForeground parks until pid is no longer the foreground job. The
// re-check and the park are a single atomic step with respect to the
// reaper, so a status change arriving between them cannot be missed.
func (s *Shell) waitForeground(pid int) {
	s.gate.Lock()

	for {
		fg, ok := s.reg.Foreground()
		if !ok || fg != pid {
			break
		}

		s.gate.Wait()
	}

	s.gate.Unlock()
}
