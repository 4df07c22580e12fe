// Where: cmd/flutterbench/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/flutterbench/internal/command"
	"github.com/poruru-code/flutterbench/internal/infra/toolchain"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() (command.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return command.Dependencies{}, err
	}
	return command.Dependencies{
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		In:      os.Stdin,
		WorkDir: workDir,
		Runner:  toolchain.NewExecRunner(),
	}, nil
}
