// Where: internal/domain/bench/errors.go
// What: Fatal error kinds of a benchmark run.
// Why: Let the command layer classify failures at a single exit point.
package bench

import (
	"errors"
	"fmt"
)

// ErrToolchainUnavailable is returned when the toolchain cannot be invoked.
var ErrToolchainUnavailable = errors.New("toolchain unavailable")

// CommandFailedError reports a step command that exited unsuccessfully.
type CommandFailedError struct {
	Command Command
	Err     error
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandFailedError) Unwrap() error {
	return e.Err
}
