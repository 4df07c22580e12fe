package bench

import (
	"context"
	"errors"
	"strings"
	"time"
)

type runCall struct {
	dir  string
	name string
	args []string
}

func (c runCall) command() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

type fakeRunner struct {
	calls      []runCall
	quietCalls []runCall
	failOn     string
	quietErr   error
	events     *[]string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	call := runCall{dir: dir, name: name, args: append([]string(nil), args...)}
	f.calls = append(f.calls, call)
	if f.events != nil {
		*f.events = append(*f.events, call.command())
	}
	if f.failOn != "" && call.command() == f.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) RunQuiet(_ context.Context, dir, name string, args ...string) error {
	f.quietCalls = append(f.quietCalls, runCall{dir: dir, name: name, args: append([]string(nil), args...)})
	return f.quietErr
}

type recordingUI struct {
	lines []string
}

func (r *recordingUI) Info(msg string) { r.lines = append(r.lines, msg) }
func (r *recordingUI) Warn(msg string) { r.lines = append(r.lines, "warn: "+msg) }
func (r *recordingUI) Error(msg string) { r.lines = append(r.lines, "error: "+msg) }
func (r *recordingUI) Header(title string) { r.lines = append(r.lines, title) }
func (r *recordingUI) ItemPlain(msg string) { r.lines = append(r.lines, msg) }

// steppingClock advances by one step per call, so each Run sees a known duration.
func steppingClock(steps ...time.Duration) func() time.Time {
	current := time.Unix(0, 0)
	i := 0
	return func() time.Time {
		now := current
		if i < len(steps) {
			current = current.Add(steps[i])
			i++
		}
		return now
	}
}
