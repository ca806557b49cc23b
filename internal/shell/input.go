package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// LineReader supplies command lines to the shell.
type LineReader interface {
	// ReadLine returns the next command line without its trailing
	// newline. It returns io.EOF at end of input.
	ReadLine(prompt string) (string, error)

	Close() error
}

// plainReader reads buffered lines without terminal handling, printing
// the prompt itself when enabled. It's used when standard input is not a
// terminal, so a test harness driving the shell over a pipe sees exactly
// the prompt and output bytes it expects.
type plainReader struct {
	in         *bufio.Reader
	out        io.Writer
	emitPrompt bool
}

// NewPlainReader creates a LineReader over in. The prompt is written to
// out before each read when emitPrompt is set.
func NewPlainReader(in io.Reader, out io.Writer, emitPrompt bool) LineReader {
	return &plainReader{
		in:         bufio.NewReader(in),
		out:        out,
		emitPrompt: emitPrompt,
	}
}

func (r *plainReader) ReadLine(prompt string) (string, error) {
	if r.emitPrompt {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}

		return "", err
	}

	return strings.TrimSuffix(line, "\n"), nil
}

func (r *plainReader) Close() error {
	return nil
}

// editingReader wraps a liner terminal for interactive use: line editing,
// ctrl-c to abandon the current line, and persistent history.
type editingReader struct {
	state       *liner.State
	historyFile string
}

// NewEditingReader creates a LineReader backed by a liner terminal.
// History is loaded from and saved to historyFile; an empty path disables
// history persistence.
func NewEditingReader(historyFile string) LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
	}

	return &editingReader{
		state:       state,
		historyFile: historyFile,
	}
}

func (r *editingReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", nil
		}

		return "", err
	}

	if line != "" {
		r.state.AppendHistory(line)
	}

	return line, nil
}

func (r *editingReader) Close() error {
	if r.historyFile != "" {
		if f, err := os.Create(r.historyFile); err == nil {
			r.state.WriteHistory(f)
			f.Close()
		}
	}

	return r.state.Close()
}
