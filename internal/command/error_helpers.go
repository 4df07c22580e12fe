// Where: internal/command/error_helpers.go
// What: Shared CLI error exit.
// Why: Classify every fatal error and print its diagnostic at one point.
package command

import (
	"errors"

	domain "github.com/poruru-code/flutterbench/internal/domain/bench"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
)

// exitWithError prints the diagnostic for err and returns exit code 1.
func exitWithError(out ui.UserInterface, err error) int {
	var failed *domain.CommandFailedError
	switch {
	case errors.Is(err, domain.ErrToolchainUnavailable):
		out.Error("Flutter not found in PATH")
	case errors.Is(err, domain.ErrInvalidSelection):
		out.Error("Invalid choice")
	case errors.As(err, &failed):
		out.Info("")
		out.Error("Command failed: " + failed.Error())
	default:
		out.Error(err.Error())
	}
	return 1
}
