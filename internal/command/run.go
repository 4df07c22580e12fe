// Where: internal/command/run.go
// What: Benchmark command adapter.
// Why: Wire settings, prompt, workflow and report for the default command.
package command

import (
	"context"
	"os"

	domain "github.com/poruru-code/flutterbench/internal/domain/bench"
	"github.com/poruru-code/flutterbench/internal/infra/logging"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
	"github.com/poruru-code/flutterbench/internal/presenters"
	"github.com/poruru-code/flutterbench/internal/usecase/bench"
)

var getwd = os.Getwd

func runBenchmark(cli CLI, deps Dependencies) int {
	workDir := deps.WorkDir
	if workDir == "" {
		wd, err := getwd()
		if err != nil {
			return exitWithError(bootstrapUI(deps.Out), err)
		}
		workDir = wd
	}

	loadEnvFile(cli, workDir, bootstrapUI(deps.Out))
	cfg, err := resolveSettings(cli, workDir)
	if err != nil {
		return exitWithError(bootstrapUI(deps.Out), err)
	}

	console := ui.NewConsoleUI(deps.Out, cfg.EmojiEnabled(true))
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.LogLevel)
	logCfg.Output = deps.ErrOut
	logger := logging.New(logCfg)

	ctx := context.Background()
	workflow := bench.NewWorkflow(deps.Runner, console, logger)
	if err := workflow.Preflight(ctx, cfg.Toolchain); err != nil {
		return exitWithError(console, err)
	}

	mode, err := resolveMode(cli, deps, console)
	if err != nil {
		return exitWithError(console, err)
	}
	logger.Debug().Str("mode", string(mode)).Str("project", cfg.ProjectName).Msg("benchmark starting")

	record, err := workflow.Run(ctx, bench.Request{
		Mode:        mode,
		Toolchain:   cfg.Toolchain,
		ProjectName: cfg.ProjectName,
		WorkDir:     workDir,
	})
	if err != nil {
		return exitWithError(console, err)
	}

	presenters.PrintReport(console, record)
	return 0
}

func resolveMode(cli CLI, deps Dependencies, console ui.UserInterface) (domain.Mode, error) {
	if cli.Run.Mode != "" {
		return domain.ParseMode(cli.Run.Mode)
	}
	if cli.Run.TUI {
		if deps.IsTerminal() {
			return selectModeTUI(deps.TUIPrompter)
		}
		console.Warn("--tui needs an interactive terminal; using line input")
	}
	return selectMode(console, deps.Prompter)
}
