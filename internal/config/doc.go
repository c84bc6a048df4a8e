// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for feline.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - TimersConfig: Fact rotation and sparkle intervals
//   - UIConfig: Theme, glyphs and start panel
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags
//   - Environment variables (FELINE_*)
//   - ~/.feline/config.toml
//   - Built-in defaults
//
// Timer values outside their bounds are clamped rather than rejected.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	every := cfg.FactInterval()
package config
