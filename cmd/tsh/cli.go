package main

import (
	"errors"
	"fmt"
	"io"

	// NOTE: The std lib flag package would be fine, but it doesn't do
	// combined short flags like -hvp, so using the pflag package.
	"github.com/spf13/pflag"

	"github.com/ahsanp/tiny-shell/internal/config"
)

// errUsage marks an exit caused by flag handling; the usage text has
// already been written, so the caller only needs the nonzero status.
var errUsage = errors.New("usage requested")

type cliFlags struct {
	help        bool
	verbose     bool
	noPrompt    bool
	showVersion bool
	configPath  string
}

func parseFlags(args []string, out io.Writer) (*cliFlags, error) {
	f := &cliFlags{}

	fs := pflag.NewFlagSet("tsh", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { printUsage(out) }

	fs.BoolVarP(&f.help, "help", "h", false, "Print this message")

	fs.BoolVarP(
		&f.verbose,
		"verbose",
		"v",
		false,
		"Print additional diagnostic information",
	)

	fs.BoolVarP(
		&f.noPrompt,
		"no-prompt",
		"p",
		false,
		"Do not emit a command prompt",
	)

	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")

	fs.StringVar(
		&f.configPath,
		"config",
		config.DefaultPath(),
		"Path to rc file",
	)

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	if f.help {
		printUsage(out)

		return nil, errUsage
	}

	return f, nil
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: tsh [-hvp] [--config FILE]")
	fmt.Fprintln(out, "   -h   print this message")
	fmt.Fprintln(out, "   -v   print additional diagnostic information")
	fmt.Fprintln(out, "   -p   do not emit a command prompt")
}
