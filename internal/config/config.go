// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for feline.
//
// Configuration file locations (in order of precedence):
//   - --config <path>
//   - ~/.feline/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/feline-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete feline configuration.
type Config struct {
	Timers TimersConfig `toml:"timers"`
	UI     UIConfig     `toml:"ui"`
	Debug  DebugConfig  `toml:"debug"`
}

// TimersConfig contains the page timer intervals.
type TimersConfig struct {
	// FactRotationSecs is how often the fact card advances (1-3600).
	FactRotationSecs int `toml:"fact_rotation_secs"`
	// SparkleEverySecs is how often the title sparkle pulses (2-3600).
	SparkleEverySecs int `toml:"sparkle_every_secs"`
	// SparkleVisibleMs is how long each pulse stays visible. Always shorter
	// than the pulse interval.
	SparkleVisibleMs int `toml:"sparkle_visible_ms"`
	// LikePulseMs is how long the like button is highlighted (0 disables).
	LikePulseMs int `toml:"like_pulse_ms"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// DarkMode is the initial theme: "light", "dark" or "auto".
	DarkMode string `toml:"dark_mode"`
	// ASCII replaces symbols with ASCII-safe glyphs.
	ASCII bool `toml:"ascii"`
	// StartTab is the initially open panel: "characteristics", "breeds" or "care".
	StartTab string `toml:"start_tab"`
	// Mouse enables click-to-dismiss on the detail overlay.
	Mouse bool `toml:"mouse"`
}

// DebugConfig contains diagnostic settings.
type DebugConfig struct {
	// LogFile receives debug logs when set.
	LogFile string `toml:"log_file"`
}

// Dark mode values.
const (
	DarkModeLight = "light"
	DarkModeDark  = "dark"
	DarkModeAuto  = "auto"
)

// Clamp bounds for timer settings.
const (
	MinFactRotationSecs = 1
	MaxFactRotationSecs = 3600
	MinSparkleEverySecs = 2
	MaxSparkleEverySecs = 3600
	MinSparkleVisibleMs = 100
	MaxLikePulseMs      = 2000
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timers: TimersConfig{
			FactRotationSecs: 8,
			SparkleEverySecs: 5,
			SparkleVisibleMs: 1000,
			LikePulseMs:      300,
		},
		UI: UIConfig{
			DarkMode: DarkModeLight,
			StartTab: "characteristics",
			Mouse:    true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the feline config directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".feline"), nil
}

// DefaultPath returns the path of the TOML config file.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the default config file if it exists, then applies
// environment overrides and validation. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return finish(Default())
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadFromPath reads an explicit config file. The file must exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to path atomically.
func Save(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# feline configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0o644, 0o755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrInvalidConfig) hold.
func (e ValidateErrors) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate clamps timer values into range and rejects unknown enum values.
func (c *Config) Validate() error {
	var errs ValidateErrors

	t := &c.Timers
	t.FactRotationSecs = clamp(t.FactRotationSecs, MinFactRotationSecs, MaxFactRotationSecs)
	t.SparkleEverySecs = clamp(t.SparkleEverySecs, MinSparkleEverySecs, MaxSparkleEverySecs)
	// A pulse must end before the next one starts.
	t.SparkleVisibleMs = clamp(t.SparkleVisibleMs, MinSparkleVisibleMs, t.SparkleEverySecs*1000-MinSparkleVisibleMs)
	t.LikePulseMs = clamp(t.LikePulseMs, 0, MaxLikePulseMs)

	c.UI.DarkMode = strings.ToLower(strings.TrimSpace(c.UI.DarkMode))
	switch c.UI.DarkMode {
	case "":
		c.UI.DarkMode = DarkModeLight
	case DarkModeLight, DarkModeDark, DarkModeAuto:
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.dark_mode",
			Message: fmt.Sprintf("invalid value '%s', must be one of: light, dark, auto", c.UI.DarkMode),
		})
	}

	c.UI.StartTab = strings.ToLower(strings.TrimSpace(c.UI.StartTab))
	switch c.UI.StartTab {
	case "", "characteristics", "breeds", "care", "care_tips", "tips":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.start_tab",
			Message: fmt.Sprintf("invalid value '%s', must be one of: characteristics, breeds, care", c.UI.StartTab),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FELINE_* environment variables.
// Unparseable numbers are ignored.
func (c *Config) ApplyEnvOverrides() {
	// FELINE_DARK_MODE
	if mode := os.Getenv("FELINE_DARK_MODE"); mode != "" {
		c.UI.DarkMode = mode
	}

	// FELINE_ASCII
	if ascii := os.Getenv("FELINE_ASCII"); ascii != "" {
		c.UI.ASCII = ascii == "1" || strings.ToLower(ascii) == "true"
	}

	// FELINE_FACT_INTERVAL (seconds)
	if v, ok := envInt("FELINE_FACT_INTERVAL"); ok {
		c.Timers.FactRotationSecs = v
	}

	// FELINE_SPARKLE_INTERVAL (seconds)
	if v, ok := envInt("FELINE_SPARKLE_INTERVAL"); ok {
		c.Timers.SparkleEverySecs = v
	}

	// FELINE_LOG_FILE
	if path := os.Getenv("FELINE_LOG_FILE"); path != "" {
		c.Debug.LogFile = path
	}
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// FactInterval returns the fact rotation period.
func (c *Config) FactInterval() time.Duration {
	return time.Duration(c.Timers.FactRotationSecs) * time.Second
}

// SparkleInterval returns the sparkle pulse period.
func (c *Config) SparkleInterval() time.Duration {
	return time.Duration(c.Timers.SparkleEverySecs) * time.Second
}

// SparkleDuration returns how long one pulse stays visible.
func (c *Config) SparkleDuration() time.Duration {
	return time.Duration(c.Timers.SparkleVisibleMs) * time.Millisecond
}

// LikePulseDuration returns how long the like button is highlighted.
func (c *Config) LikePulseDuration() time.Duration {
	return time.Duration(c.Timers.LikePulseMs) * time.Millisecond
}

// InitialDarkMode resolves the configured theme. detect is consulted only
// for "auto".
func (c *Config) InitialDarkMode(detect func() bool) bool {
	switch c.UI.DarkMode {
	case DarkModeDark:
		return true
	case DarkModeAuto:
		return detect != nil && detect()
	default:
		return false
	}
}
