// Where: internal/infra/config/config.go
// What: Benchmark configuration load and validation.
// Why: Let operators pin the toolchain path and project name per checkout.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/flutterbench/internal/meta"
)

var errProjectNameRequired = errors.New("project name is required")

// Config holds the effective settings for a benchmark run.
type Config struct {
	Version     int    `yaml:"version,omitempty"`
	Toolchain   string `yaml:"toolchain,omitempty"`
	ProjectName string `yaml:"project_name,omitempty"`
	Emoji       *bool  `yaml:"emoji,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:     1,
		Toolchain:   meta.DefaultToolchain,
		ProjectName: meta.DefaultProjectName,
	}
}

// Load reads, validates and decodes the YAML file at path.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Validate(payload); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Merge overlays the non-empty fields of override onto base.
func Merge(base, override Config) Config {
	if override.Version != 0 {
		base.Version = override.Version
	}
	if v := strings.TrimSpace(override.Toolchain); v != "" {
		base.Toolchain = v
	}
	if v := strings.TrimSpace(override.ProjectName); v != "" {
		base.ProjectName = v
	}
	if override.Emoji != nil {
		emoji := *override.Emoji
		base.Emoji = &emoji
	}
	if v := strings.TrimSpace(override.LogLevel); v != "" {
		base.LogLevel = v
	}
	return base
}

// EmojiEnabled resolves the emoji setting, using fallback when unset.
func (c Config) EmojiEnabled(fallback bool) bool {
	if c.Emoji == nil {
		return fallback
	}
	return *c.Emoji
}

// CheckProjectName rejects names that would make directory removal unsafe.
func CheckProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errProjectNameRequired
	}
	if trimmed == "." || trimmed == ".." || strings.ContainsAny(trimmed, `/\`) {
		return fmt.Errorf("invalid project name %q", name)
	}
	return nil
}
