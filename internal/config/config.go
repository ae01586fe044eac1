package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultLogLevel = "info"

// Config describes one conversion run. It is built once at startup and passed
// by value to the planner, the scheduler and the driver.
type Config struct {
	InputDir  string `yaml:"in"`
	InputExt  string `yaml:"in_ext"`
	OutputDir string `yaml:"out"`
	OutputExt string `yaml:"out_ext"`
	TempExt   string `yaml:"tmp"`

	DryRun    bool `yaml:"dry_run"`
	Overwrite bool `yaml:"overwrite"`
	Jobs      int  `yaml:"jobs"`

	// Command is the external command template; {i} and {o} are expanded per file.
	Command []string `yaml:"command"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	NoColor  bool   `yaml:"no_color"`

	// ConfigPath is the preset file the values were loaded from, if any.
	ConfigPath string `yaml:"-"`
}

// Default returns a config with every optional setting at its default.
func Default() Config {
	return Config{
		Jobs:     runtime.NumCPU(),
		LogLevel: defaultLogLevel,
	}
}

// Load reads a YAML preset from path on top of the defaults. An empty file
// yields the defaults; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("empty config path")
	}
	fileData, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	cfg.ConfigPath = path
	if len(fileData) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(fileData, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}

// Validate checks required settings and normalizes extensions in place.
func (c *Config) Validate() error {
	c.InputExt = normalizeExtension(c.InputExt)
	c.OutputExt = normalizeExtension(c.OutputExt)
	c.TempExt = normalizeExtension(c.TempExt)

	required := []struct {
		name, value string
	}{
		{"in", c.InputDir},
		{"in_ext", c.InputExt},
		{"out", c.OutputDir},
		{"out_ext", c.OutputExt},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: --%s", ErrMissingFlag, r.name)
		}
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidJobs, c.Jobs)
	}
	if len(c.Command) == 0 {
		return ErrEmptyCommand
	}
	return nil
}

// normalizeExtension trims whitespace and one leading dot. Case is kept:
// extension matching is case-sensitive.
func normalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}
