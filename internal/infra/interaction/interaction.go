// Where: internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(title string) (string, error)
	SelectValue(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LinePrompter reads a single line per prompt from In, echoing prompts to Out.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewLinePrompter returns a prompter bound to the given streams.
// Nil streams fall back to stdin and stdout.
func NewLinePrompter(in io.Reader, out io.Writer) LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return LinePrompter{In: in, Out: out}
}

// Input prints title and returns the raw line, without its trailing newline.
// A final line without newline is accepted; an empty stream yields "".
func (p LinePrompter) Input(title string) (string, error) {
	_, _ = fmt.Fprint(p.Out, title)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimNewline(line), nil
}

// SelectValue lists the options and reads the chosen Value as a line.
func (p LinePrompter) SelectValue(title string, options []SelectOption) (string, error) {
	_, _ = fmt.Fprintf(p.Out, "\n%s\n", title)
	for _, opt := range options {
		_, _ = fmt.Fprintf(p.Out, "  %s) %s\n", opt.Value, opt.Label)
	}
	return p.Input("\nEnter choice: ")
}

func trimNewline(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
