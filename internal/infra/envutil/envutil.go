// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/poruru-code/flutterbench/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("TOOLCHAIN") returns "FLUTTER_BENCH_TOOLCHAIN" when ENV_PREFIX is unset.
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv("ENV_PREFIX"))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a trimmed host-level environment variable.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// LookupHostBool parses a boolean host-level variable.
// ok is false when the variable is unset or empty.
func LookupHostBool(suffix string) (value bool, ok bool, err error) {
	raw := GetHostEnv(suffix)
	if raw == "" {
		return false, false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("parse %s: %w", HostEnvKey(suffix), err)
	}
	return parsed, true, nil
}
