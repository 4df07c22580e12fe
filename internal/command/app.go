// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/poruru-code/flutterbench/internal/infra/interaction"
	"github.com/poruru-code/flutterbench/internal/infra/toolchain"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
	"github.com/poruru-code/flutterbench/internal/meta"
	"github.com/poruru-code/flutterbench/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Zero values fall back to the process stdio and the os/exec runner.
type Dependencies struct {
	Out     io.Writer
	ErrOut  io.Writer
	In      io.Reader
	WorkDir string
	Runner  toolchain.CommandRunner
	// Prompter reads the line-based menu answer. Defaults to a LinePrompter on In.
	Prompter interaction.Prompter
	// TUIPrompter drives the --tui menu. Defaults to HuhPrompter.
	TUIPrompter interaction.Prompter
	// IsTerminal reports whether stdin is interactive.
	IsTerminal func() bool
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config   string     `name:"config" help:"Path to config file (default: ./flutterbench.yaml when present)"`
	EnvFile  string     `name:"env-file" help:"Path to .env file"`
	LogLevel string     `name:"log-level" help:"Diagnostic log level (debug/info/warn/error/off)"`
	NoEmoji  bool       `name:"no-emoji" help:"Disable emoji output"`
	Run      RunCmd     `cmd:"" default:"withargs" help:"Time the flutter build steps (default command)"`
	Version  VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// RunCmd defines the benchmark command flags.
	RunCmd struct {
		Mode        string `short:"m" help:"Build target (web/apk/both); prompts when omitted"`
		Toolchain   string `help:"Toolchain executable (default: flutter)"`
		ProjectName string `name:"project-name" help:"Scaffolded project name (default: flutter_bench_app)"`
		TUI         bool   `name:"tui" help:"Use an arrow-key menu for target selection on a terminal"`
	}

	// VersionCmd prints the build revision.
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and dispatches to the matching handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Time flutter scaffold, pub get and release builds."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(bootstrapUI(out), err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(bootstrapUI(out), err)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps); handled {
		return exitCode
	}

	bootstrapUI(out).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"run":     runBenchmark,
		"version": runVersion,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	bootstrapUI(deps.Out).Info(meta.AppName + " " + version.GetVersion())
	return 0
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Runner == nil {
		deps.Runner = toolchain.NewExecRunner()
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.NewLinePrompter(deps.In, deps.Out)
	}
	if deps.TUIPrompter == nil {
		deps.TUIPrompter = interaction.HuhPrompter{}
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = func() bool { return interaction.IsTerminal(os.Stdin) }
	}
	return deps
}

// bootstrapUI is used before the emoji setting is resolved.
func bootstrapUI(out io.Writer) ui.UserInterface {
	return ui.NewConsoleUI(out, true)
}
