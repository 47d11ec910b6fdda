// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration with defaults and env expansion
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	scerr "github.com/msto63/scripter/pkg/core/errors"
)

// EnvConfigPath names the environment variable holding an explicit config path
const EnvConfigPath = "SCRIPTER_CONFIG"

// Backend names accepted in run.backend
const (
	BackendRobotgo = "robotgo"
	BackendDryRun  = "dryrun"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Run     RunConfig     `toml:"run" yaml:"run"`
	History HistoryConfig `toml:"history" yaml:"history"`

	// Path of the file the config was loaded from; empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// RunConfig holds playback settings
type RunConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"`
	Countdown Duration `toml:"countdown" yaml:"countdown"`
	ReportDir string   `toml:"report_dir" yaml:"report_dir"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Enabled *bool  `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
	Keep    int    `toml:"keep" yaml:"keep"`
}

// HistoryEnabled reports whether runs are recorded. Unset means enabled.
func (h HistoryConfig) HistoryEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scerr.Wrap(err, "failed to read config").
			WithCode(scerr.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, scerr.Wrap(err, "failed to parse config").
			WithCode(scerr.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.Source = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from SCRIPTER_CONFIG or the default
// locations. When no file exists the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the config locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./scripter.toml",
		"./configs/scripter.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "scripter", "config.toml"))
	}
	return paths
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Run.Backend {
	case BackendRobotgo, BackendDryRun:
	default:
		return scerr.Newf("unknown backend %q", c.Run.Backend).
			WithCode(scerr.CodeConfigError).
			WithDetail("valid", BackendRobotgo+","+BackendDryRun)
	}
	if c.Run.Countdown.Duration < 0 {
		return scerr.New("countdown must not be negative").WithCode(scerr.CodeConfigError)
	}
	if c.History.Keep < 0 {
		return scerr.New("history.keep must not be negative").WithCode(scerr.CodeConfigError)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Run.Backend == "" {
		c.Run.Backend = BackendRobotgo
	}

	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath()
	}
	if c.History.Keep == 0 {
		c.History.Keep = 500
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.Run.ReportDir = os.ExpandEnv(c.Run.ReportDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

func defaultHistoryPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "scripter", "history.db")
	}
	return filepath.Join(".", "data", "history.db")
}

// String renders the effective configuration as TOML
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}
