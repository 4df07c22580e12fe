package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestExecRunnerRunPassesOutputThrough(t *testing.T) {
	sh := requireShell(t)
	var stdout, stderr bytes.Buffer
	runner := ExecRunner{Stdout: &stdout, Stderr: &stderr}

	if err := runner.Run(context.Background(), "", sh, "-c", "echo out; echo err 1>&2"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "out" {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if strings.TrimSpace(stderr.String()) != "err" {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestExecRunnerRunUsesDir(t *testing.T) {
	sh := requireShell(t)
	dir := t.TempDir()
	var stdout bytes.Buffer
	runner := ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	if err := runner.Run(context.Background(), dir, sh, "-c", "pwd"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(stdout.String()), filepath.Base(dir)) {
		t.Fatalf("expected command to run in %s, got %q", dir, stdout.String())
	}
}

func TestExecRunnerRunWrapsExitError(t *testing.T) {
	sh := requireShell(t)
	runner := ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := runner.Run(context.Background(), "", sh, "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %T", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("exit code = %d, want 3", exitErr.ExitCode())
	}
	if !strings.HasPrefix(err.Error(), "run "+sh+": ") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestExecRunnerRunQuietMissingExecutable(t *testing.T) {
	err := ExecRunner{}.RunQuiet(context.Background(), "", "flutterbench-definitely-missing-binary", "--version")
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected exec.ErrNotFound, got %v", err)
	}
}
