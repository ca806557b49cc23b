package shell

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ahsanp/tiny-shell/internal/jobs"
)

// reap services child-status notifications for the lifetime of the
// notify channel.
func (s *Shell) reap(notify <-chan os.Signal) {
	for range notify {
		s.drainChildren()
	}
}

// drainChildren collects every pending child status change without
// blocking. SIGCHLD coalesces, so one notification may stand in for
// several children; each wakeup therefore reaps until the kernel has
// nothing more to report.
func (s *Shell) drainChildren() {
	for {
		var status unix.WaitStatus

		pid, err := unix.Wait4(-1, &status, unix.WNOHANG|unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}

		// ECHILD means no children remain; pid 0 means children exist
		// but none have changed state.
		if err == unix.ECHILD || (err == nil && pid <= 0) {
			return
		}

		if err != nil {
			s.fatalf("wait4", err)
		}

		s.reconcile(pid, status)
	}
}

// reconcile applies one wait status to the job table: exits and uncaught
// signals free the job's slot, stops move the job to StateStopped. Any
// foreground waiter is woken afterwards.
func (s *Shell) reconcile(pid int, status unix.WaitStatus) {
	s.gate.Lock()
	defer s.gate.Unlock()
	defer s.gate.Broadcast()

	job, ok := s.reg.ByPID(pid)
	if !ok {
		s.logger.Debug("reaped unregistered child", "pid", pid)
		return
	}

	switch {
	case status.Signaled():
		fmt.Fprintf(
			s.out,
			"Job [%d] (%d) terminated by signal %d\n",
			job.ID,
			pid,
			status.Signal(),
		)

		s.reg.Remove(pid)
		s.logger.Debug("removed job", "jid", job.ID, "pid", pid,
			"signal", int(status.Signal()))
	case status.Stopped():
		fmt.Fprintf(
			s.out,
			"Job [%d] (%d) stopped by signal %d\n",
			job.ID,
			pid,
			status.StopSignal(),
		)

		if err := s.reg.SetState(pid, jobs.StateStopped); err != nil {
			s.logger.Debug("stop transition rejected", "jid", job.ID,
				"pid", pid, "err", err)
		}
	case status.Exited():
		s.reg.Remove(pid)
		s.logger.Debug("removed job", "jid", job.ID, "pid", pid,
			"exit_status", status.ExitStatus())
	}
}
