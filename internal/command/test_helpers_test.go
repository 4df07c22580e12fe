package command

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poruru-code/flutterbench/internal/infra/interaction"
)

type fakeRunner struct {
	calls      []string
	dirs       []string
	quietCalls []string
	failOn     string
	quietErr   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	cmd := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.calls = append(f.calls, cmd)
	f.dirs = append(f.dirs, dir)
	if f.failOn != "" && cmd == f.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) RunQuiet(_ context.Context, _ string, name string, args ...string) error {
	f.quietCalls = append(f.quietCalls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.quietErr
}

type fakePrompter struct {
	answer  string
	err     error
	titles  []string
	options []interaction.SelectOption
}

func (f *fakePrompter) Input(title string) (string, error) {
	f.titles = append(f.titles, title)
	return f.answer, f.err
}

func (f *fakePrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	f.titles = append(f.titles, title)
	f.options = options
	return f.answer, f.err
}

type harness struct {
	out    bytes.Buffer
	errOut bytes.Buffer
	runner *fakeRunner
	deps   Dependencies
}

// newHarness isolates the run from host FLUTTER_BENCH_* variables.
func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	t.Setenv("ENV_PREFIX", "")
	for _, key := range []string{
		"FLUTTER_BENCH_TOOLCHAIN",
		"FLUTTER_BENCH_PROJECT_NAME",
		"FLUTTER_BENCH_NO_EMOJI",
		"FLUTTER_BENCH_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	h := &harness{runner: &fakeRunner{}}
	h.deps = Dependencies{
		Out:        &h.out,
		ErrOut:     &h.errOut,
		In:         strings.NewReader(stdin),
		WorkDir:    t.TempDir(),
		Runner:     h.runner,
		IsTerminal: func() bool { return false },
	}
	return h
}

func (h *harness) run(args ...string) int {
	return Run(args, h.deps)
}
