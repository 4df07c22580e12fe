// Where: internal/constants/env.go
// What: Environment variable suffix constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Suffixes are combined with ENV_PREFIX (default FLUTTER_BENCH) by envutil.HostEnvKey.
const (
	EnvToolchain   = "TOOLCHAIN"
	EnvProjectName = "PROJECT_NAME"
	EnvNoEmoji     = "NO_EMOJI"
	EnvLogLevel    = "LOG_LEVEL"
)
