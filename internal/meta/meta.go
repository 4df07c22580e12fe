// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming of the binary, project and environment in one place.
package meta

const (
	// Project Identity
	AppName   = "flutterbench"
	EnvPrefix = "FLUTTER_BENCH"

	// Toolchain defaults
	DefaultToolchain   = "flutter"
	DefaultProjectName = "flutter_bench_app"

	// Files looked up in the working directory
	ConfigFile = "flutterbench.yaml"
	EnvFile    = ".env"
)
