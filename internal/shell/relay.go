package shell

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// relay forwards keyboard-generated signals (SIGINT for ctrl-c, SIGTSTP
// for ctrl-z) to the current foreground process group, so multi-process
// foreground jobs are uniformly affected. Delivery only: the Stopped
// transition is recorded by the reaper when the resulting stop
// notification arrives, keeping a single writer for signal-driven state.
func (s *Shell) relay(notify <-chan os.Signal) {
	for sig := range notify {
		num, ok := sig.(syscall.Signal)
		if !ok {
			continue
		}

		s.gate.Lock()

		pid, ok := s.reg.Foreground()
		if !ok {
			s.gate.Unlock()
			continue
		}

		// A negative pid targets the whole process group.
		err := unix.Kill(-pid, num)

		s.gate.Unlock()

		if err != nil && err != unix.ESRCH {
			s.fatalf("kill", err)
		}
	}
}
