// Where: internal/usecase/bench/workflow.go
// What: Benchmark workflow orchestration.
// Why: Sequence and time toolchain steps without CLI concerns.
package bench

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/poruru-code/flutterbench/internal/domain/bench"
	"github.com/poruru-code/flutterbench/internal/infra/fileops"
	"github.com/poruru-code/flutterbench/internal/infra/toolchain"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
)

var (
	errRunnerNotConfigured = errors.New("command runner is not configured")
	errUINotConfigured     = errors.New("user interface is not configured")
)

// Request captures the inputs of a benchmark run.
type Request struct {
	Mode        domain.Mode
	Toolchain   string
	ProjectName string
	// WorkDir is where the project directory is created.
	WorkDir string
}

// ProjectDir is the directory regenerated by the scaffold step.
func (r Request) ProjectDir() string {
	return filepath.Join(r.WorkDir, r.ProjectName)
}

// Workflow executes the benchmark steps.
type Workflow struct {
	Runner        toolchain.CommandRunner
	UserInterface ui.UserInterface
	Logger        zerolog.Logger

	now       func() time.Time
	dirExists func(string) bool
	removeDir func(string) error
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(runner toolchain.CommandRunner, ui ui.UserInterface, logger zerolog.Logger) Workflow {
	return Workflow{
		Runner:        runner,
		UserInterface: ui,
		Logger:        logger,
		now:           time.Now,
		dirExists:     fileops.DirExists,
		removeDir:     fileops.RemoveDir,
	}
}

func (w Workflow) validate() error {
	if w.Runner == nil {
		return errRunnerNotConfigured
	}
	if w.UserInterface == nil {
		return errUINotConfigured
	}
	return nil
}

// Preflight checks that the toolchain answers its version query.
func (w Workflow) Preflight(ctx context.Context, tc string) error {
	if w.Runner == nil {
		return errRunnerNotConfigured
	}
	cmd := domain.VersionCommand(tc)
	if err := w.Runner.RunQuiet(ctx, "", cmd.Name, cmd.Args...); err != nil {
		w.Logger.Debug().Err(err).Str("command", cmd.String()).Msg("toolchain preflight failed")
		return fmt.Errorf("%w: %v", domain.ErrToolchainUnavailable, err)
	}
	w.Logger.Debug().Str("command", cmd.String()).Msg("toolchain available")
	return nil
}

// Run resets the project directory and executes every planned step in order.
// It stops at the first failing step; the partial record is discarded.
func (w Workflow) Run(ctx context.Context, req Request) (domain.Record, error) {
	if err := w.validate(); err != nil {
		return domain.Record{}, err
	}

	if err := w.resetProjectDir(req.ProjectDir()); err != nil {
		return domain.Record{}, err
	}

	var record domain.Record
	steps := domain.Plan(domain.PlanInput{
		Mode:        req.Mode,
		Toolchain:   req.Toolchain,
		ProjectName: req.ProjectName,
		ProjectDir:  req.ProjectDir(),
	})
	for _, step := range steps {
		if step.Dir == "" {
			step.Dir = req.WorkDir
		}
		seconds, err := w.RunStep(ctx, step)
		if err != nil {
			return domain.Record{}, err
		}
		record.Add(step.Label, seconds)
	}
	return record, nil
}

// RunStep executes a single step and returns its elapsed wall-clock seconds.
func (w Workflow) RunStep(ctx context.Context, step domain.Step) (float64, error) {
	if err := w.validate(); err != nil {
		return 0, err
	}
	now := w.now
	if now == nil {
		now = time.Now
	}

	w.UserInterface.Info("\n>>> " + step.Command.String())
	start := now()
	err := w.Runner.Run(ctx, step.Dir, step.Command.Name, step.Command.Args...)
	elapsed := now().Sub(start).Seconds()
	if err != nil {
		w.Logger.Debug().Err(err).Str("step", step.Label).Float64("seconds", elapsed).Msg("step failed")
		return 0, &domain.CommandFailedError{Command: step.Command, Err: err}
	}
	w.Logger.Debug().
		Str("step", step.Label).
		Str("command", step.Command.String()).
		Str("dir", step.Dir).
		Float64("seconds", elapsed).
		Msg("step finished")
	return elapsed, nil
}

func (w Workflow) resetProjectDir(dir string) error {
	exists := w.dirExists
	if exists == nil {
		exists = fileops.DirExists
	}
	if !exists(dir) {
		return nil
	}
	remove := w.removeDir
	if remove == nil {
		remove = fileops.RemoveDir
	}
	w.UserInterface.Info("Removing existing project directory...")
	if err := remove(dir); err != nil {
		return fmt.Errorf("remove project directory: %w", err)
	}
	w.Logger.Debug().Str("dir", dir).Msg("project directory removed")
	return nil
}
