// Command tsh is an interactive Unix shell with job control.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/ahsanp/tiny-shell/internal/config"
	"github.com/ahsanp/tiny-shell/internal/shell"
)

const version = "0.0.1"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stdout, "%s\n", err.Error())
		}

		os.Exit(1)
	}
}

func run(args []string) error {
	// Merge stderr into stdout so a driver reading one pipe sees every
	// prompt, status line, and error in order.
	if err := unix.Dup3(int(os.Stdout.Fd()), int(os.Stderr.Fd()), 0); err != nil {
		return fmt.Errorf("dup3: %w", err)
	}

	flags, err := parseFlags(args, os.Stdout)
	if err != nil {
		return err
	}

	if flags.showVersion {
		fmt.Printf("tsh v%s\n", version)

		return nil
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if flags.verbose {
		cfg.Verbose = true
	}

	if flags.noPrompt {
		cfg.NoPrompt = true
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(
		os.Stdout,
		&slog.HandlerOptions{Level: level},
	))

	in := newLineReader(cfg)
	defer in.Close()

	return shell.New(cfg, logger, in, os.Stdout).Run()
}

// newLineReader picks the input path: a line editor with history on an
// interactive terminal, plain buffered reads otherwise so scripted
// harnesses get byte-exact prompt behavior.
func newLineReader(cfg config.Config) shell.LineReader {
	if !cfg.NoPrompt && term.IsTerminal(int(os.Stdin.Fd())) {
		return shell.NewEditingReader(cfg.HistoryFile)
	}

	return shell.NewPlainReader(os.Stdin, os.Stdout, !cfg.NoPrompt)
}
