package command

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru-code/flutterbench/internal/infra/toolchain"
)

func TestResolveToolchainPath(t *testing.T) {
	workDir := t.TempDir()
	cases := []struct {
		name      string
		toolchain string
		want      string
	}{
		{name: "bare name uses PATH", toolchain: "flutter", want: "flutter"},
		{name: "absolute unchanged", toolchain: "/opt/flutter/bin/flutter", want: "/opt/flutter/bin/flutter"},
		{name: "dot relative", toolchain: "./bin/flutter", want: filepath.Join(workDir, "bin", "flutter")},
		{name: "nested relative", toolchain: "sdk/bin/flutter", want: filepath.Join(workDir, "sdk", "bin", "flutter")},
		{name: "empty", toolchain: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveToolchainPath(tc.toolchain, workDir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("resolveToolchainPath(%q) = %q, want %q", tc.toolchain, got, tc.want)
			}
		})
	}
}

func TestRunRelativeToolchainUsedForEveryStep(t *testing.T) {
	h := newHarness(t, "")
	want := filepath.Join(h.deps.WorkDir, "bin", "flutter")

	if code := h.run("--toolchain", "./bin/flutter", "--mode", "apk"); code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, h.out.String())
	}
	if h.runner.quietCalls[0] != want+" --version" {
		t.Fatalf("quiet call = %q", h.runner.quietCalls[0])
	}
	if len(h.runner.calls) != 3 {
		t.Fatalf("calls = %#v", h.runner.calls)
	}
	for _, call := range h.runner.calls {
		if !strings.HasPrefix(call, want+" ") {
			t.Fatalf("call %q does not use %s", call, want)
		}
	}
}

func TestRunRelativeToolchainScriptInProjectDir(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	h := newHarness(t, "")
	binDir := filepath.Join(h.deps.WorkDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	script := "#!/bin/sh\necho \"ran $*\"\nif [ \"$1\" = create ]; then mkdir -p \"$2\"; fi\n"
	if err := os.WriteFile(filepath.Join(binDir, "flutter"), []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	var toolOut bytes.Buffer
	h.deps.Runner = toolchain.ExecRunner{Stdout: &toolOut, Stderr: &toolOut}

	if code := h.run("--toolchain", "./bin/flutter", "--mode", "apk"); code != 0 {
		t.Fatalf("exit code = %d, output:\n%s\ntool output:\n%s", code, h.out.String(), toolOut.String())
	}
	for _, line := range []string{"ran create flutter_bench_app", "ran pub get", "ran build apk --release"} {
		if !strings.Contains(toolOut.String(), line) {
			t.Fatalf("tool output missing %q:\n%s", line, toolOut.String())
		}
	}
	if !strings.Contains(h.out.String(), "BENCHMARK RESULTS") {
		t.Fatalf("report missing:\n%s", h.out.String())
	}
}
