// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the feline command line.
//
// Commands:
//
//	feline                  run the page (prints a snapshot when piped)
//	feline breeds [name]    list the breeds or describe one
//	feline facts            print every fact
//	feline version          print version information
//	feline config init      write a default config file
//	feline config show      print the effective configuration
//	feline config path      print the config file location
//
// Flags given on the command line override the config file, which
// overrides the built-in defaults.
package cli
