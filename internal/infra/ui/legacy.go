// Where: internal/infra/ui/legacy.go
// What: User interface abstraction for workflows and commands.
// Why: Provide a single output surface so workflows stay UI-agnostic.
package ui

import "io"

// UserInterface exposes high-level output helpers used by workflows.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Header(title string)
	ItemPlain(msg string)
}

// NewConsoleUI returns a UserInterface backed by the console helper.
func NewConsoleUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) { c.console.Info(msg) }
func (c consoleUI) Warn(msg string) { c.console.Warn(msg) }
func (c consoleUI) Error(msg string) { c.console.Error(msg) }
func (c consoleUI) Header(title string) { c.console.Header(title) }
func (c consoleUI) ItemPlain(msg string) { c.console.ItemPlain(msg) }
