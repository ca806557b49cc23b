package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/ahsanp/tiny-shell/internal/config"
	"github.com/ahsanp/tiny-shell/internal/jobs"
)

// Shell is the interactive job-control shell.
type Shell struct {
	cfg    config.Config
	logger *slog.Logger

	reg  *jobs.Registry
	gate *jobs.Gate

	in  LineReader
	out io.Writer

	quit bool
}

// New creates a Shell reading command lines from in and writing every
// prompt, status line, and error to out.
func New(cfg config.Config, logger *slog.Logger, in LineReader, out io.Writer) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	reg := jobs.NewRegistry()

	return &Shell{
		cfg:    cfg,
		logger: logger,
		reg:    reg,
		gate:   reg.Gate(),
		in:     in,
		out:    out,
	}
}

// Run executes the read/eval loop until the quit built-in, end of input,
// or a fatal error. Signal servicing is installed for the duration of the
// loop.
func (s *Shell) Run() error {
	chld := make(chan os.Signal, 1)
	signal.Notify(chld, unix.SIGCHLD)
	defer signal.Stop(chld)

	go s.reap(chld)

	keys := make(chan os.Signal, 1)
	signal.Notify(keys, unix.SIGINT, unix.SIGTSTP)
	defer signal.Stop(keys)

	go s.relay(keys)

	quits := make(chan os.Signal, 1)
	signal.Notify(quits, unix.SIGQUIT)
	defer signal.Stop(quits)

	// The driver program can gracefully terminate the shell by sending
	// it a SIGQUIT.
	go func() {
		<-quits
		fmt.Fprintln(s.out, "Terminating after receipt of SIGQUIT signal")
		os.Exit(1)
	}()

	for {
		line, err := s.in.ReadLine(s.cfg.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("read command line: %w", err)
		}

		if err := s.Eval(line); err != nil {
			return err
		}

		if s.quit {
			return nil
		}
	}
}

// fatalf reports a failed operating-system call by name and terminates
// the shell.
func (s *Shell) fatalf(op string, err error) {
	fmt.Fprintf(s.out, "%s: %v\n", op, err)
	os.Exit(1)
}
