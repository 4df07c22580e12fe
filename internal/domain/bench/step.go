// Where: internal/domain/bench/step.go
// What: Benchmark step definitions and the ordered step plan.
// Why: Make the executed command sequence a pure function of the build mode.
package bench

import "strings"

// Step labels as they appear in the timing report.
const (
	StepFlutterCreate   = "flutter_create"
	StepPubGet          = "pub_get"
	StepEnableWeb       = "enable_web"
	StepBuildWebRelease = "build_web_release"
	StepBuildAPKRelease = "build_apk_release"
)

// Command is an executable name plus its ordered arguments.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Step is one timed toolchain invocation.
type Step struct {
	Label   string
	Command Command
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// PlanInput carries the values a plan is derived from.
type PlanInput struct {
	Mode        Mode
	Toolchain   string
	ProjectName string
	ProjectDir  string
}

// VersionCommand is the preflight query that checks the toolchain is reachable.
func VersionCommand(toolchain string) Command {
	return Command{Name: toolchain, Args: []string{"--version"}}
}

// Plan returns the timed steps for a run in execution order.
func Plan(in PlanInput) []Step {
	tc := in.Toolchain
	steps := []Step{
		{Label: StepFlutterCreate, Command: Command{Name: tc, Args: []string{"create", in.ProjectName}}},
		{Label: StepPubGet, Command: Command{Name: tc, Args: []string{"pub", "get"}}, Dir: in.ProjectDir},
	}
	if in.Mode.IncludesWeb() {
		steps = append(steps,
			Step{Label: StepEnableWeb, Command: Command{Name: tc, Args: []string{"config", "--enable-web"}}},
			Step{Label: StepBuildWebRelease, Command: Command{Name: tc, Args: []string{"build", "web", "--release"}}, Dir: in.ProjectDir},
		)
	}
	if in.Mode.IncludesMobile() {
		steps = append(steps,
			Step{Label: StepBuildAPKRelease, Command: Command{Name: tc, Args: []string{"build", "apk", "--release"}}, Dir: in.ProjectDir},
		)
	}
	return steps
}
