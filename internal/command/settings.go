// Where: internal/command/settings.go
// What: Effective settings resolution for a benchmark run.
// Why: Apply defaults, config file, environment and flags in a fixed order.
package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/poruru-code/flutterbench/internal/constants"
	"github.com/poruru-code/flutterbench/internal/infra/config"
	"github.com/poruru-code/flutterbench/internal/infra/envutil"
	"github.com/poruru-code/flutterbench/internal/infra/fileops"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
	"github.com/poruru-code/flutterbench/internal/meta"
)

// loadEnvFile loads --env-file, or .env in workDir when present.
// Existing environment variables win over file values.
func loadEnvFile(cli CLI, workDir string, out ui.UserInterface) {
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			out.Warn(fmt.Sprintf("failed to load env file %s: %v", cli.EnvFile, err))
		}
		return
	}
	path := filepath.Join(workDir, meta.EnvFile)
	if !fileops.FileExists(path) {
		return
	}
	if err := godotenv.Load(path); err != nil {
		out.Warn(fmt.Sprintf("failed to load %s: %v", meta.EnvFile, err))
	}
}

// resolveSettings merges defaults < config file < environment < flags.
func resolveSettings(cli CLI, workDir string) (config.Config, error) {
	cfg := config.Default()

	path := strings.TrimSpace(cli.Config)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(workDir, meta.ConfigFile)
	}
	if explicit || fileops.FileExists(path) {
		fileCfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = config.Merge(cfg, fileCfg)
	}

	envCfg := config.Config{
		Toolchain:   envutil.GetHostEnv(constants.EnvToolchain),
		ProjectName: envutil.GetHostEnv(constants.EnvProjectName),
		LogLevel:    envutil.GetHostEnv(constants.EnvLogLevel),
	}
	noEmoji, ok, err := envutil.LookupHostBool(constants.EnvNoEmoji)
	if err != nil {
		return config.Config{}, err
	}
	if ok {
		emoji := !noEmoji
		envCfg.Emoji = &emoji
	}
	cfg = config.Merge(cfg, envCfg)

	flagCfg := config.Config{
		Toolchain:   cli.Run.Toolchain,
		ProjectName: cli.Run.ProjectName,
		LogLevel:    cli.LogLevel,
	}
	if cli.NoEmoji {
		off := false
		flagCfg.Emoji = &off
	}
	cfg = config.Merge(cfg, flagCfg)

	if err := config.CheckProjectName(cfg.ProjectName); err != nil {
		return config.Config{}, err
	}
	toolchain, err := resolveToolchainPath(cfg.Toolchain, workDir)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Toolchain = toolchain
	return cfg, nil
}

// resolveToolchainPath anchors a relative toolchain path such as ./bin/flutter
// to workDir. Project steps run inside the project directory, and exec resolves
// relative paths against the command's Dir. Bare names are left for PATH lookup.
func resolveToolchainPath(toolchain, workDir string) (string, error) {
	if toolchain == "" || filepath.IsAbs(toolchain) || !strings.ContainsAny(toolchain, `/\`) {
		return toolchain, nil
	}
	abs, err := filepath.Abs(filepath.Join(workDir, toolchain))
	if err != nil {
		return "", fmt.Errorf("resolve toolchain path %q: %w", toolchain, err)
	}
	return abs, nil
}
