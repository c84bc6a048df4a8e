// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jeranaias/feline-tui/internal/config"
	"github.com/jeranaias/feline-tui/internal/content"
	"github.com/jeranaias/feline-tui/internal/ui/styles"
	"github.com/jeranaias/feline-tui/internal/util"
)

// ErrUnknownBreed is returned by `feline breeds NAME` for an unlisted breed.
var ErrUnknownBreed = errors.New("unknown breed")

// ErrConfigExists is returned by `feline config init` when a file is present.
var ErrConfigExists = errors.New("config file already exists")

const breedBarWidth = 10

// =============================================================================
// BREEDS
// =============================================================================

func breedsCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "breeds [name]",
		Short: "List the featured breeds, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := styles.GlyphsFor(cfg().UI.ASCII)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				b, ok := content.BreedByName(args[0])
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownBreed, args[0])
				}
				fmt.Fprintf(out, "%s\n", b.Name)
				fmt.Fprintf(out, "  %s\n", b.Description)
				fmt.Fprintf(out, "  Origin:     %s\n", b.Origin)
				fmt.Fprintf(out, "  Popularity: %s %d%%\n", g.RenderBar(breedBarWidth, b.Popularity), b.Popularity)
				if b.Image != "" {
					fmt.Fprintf(out, "  Image:      %s\n", b.Image)
				}
				return nil
			}

			table := content.Breeds()
			nameWidth := 0
			for _, b := range table {
				if w := util.StringWidth(b.Name); w > nameWidth {
					nameWidth = w
				}
			}
			for i, b := range table {
				fmt.Fprintf(out, "%d. %s  %s %3d%%  %s\n", i+1,
					util.PadRight(b.Name, nameWidth),
					g.RenderBar(breedBarWidth, b.Popularity),
					b.Popularity,
					b.Origin)
			}
			return nil
		},
	}
}

// =============================================================================
// FACTS
// =============================================================================

func factsCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Print every cat fact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := styles.GlyphsFor(cfg().UI.ASCII)
			out := cmd.OutOrStdout()
			facts := content.Facts()

			fmt.Fprintf(out, "%s Did You Know? (%d %s)\n\n", g.Info, len(facts), util.Plural(len(facts), "fact", "facts"))
			for _, f := range facts {
				fmt.Fprintf(out, "  %s %s\n", f.Icon, f.Text)
			}
			return nil
		},
	}
}

// =============================================================================
// VERSION
// =============================================================================

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "feline version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
			return nil
		},
	}
}

// =============================================================================
// CONFIG
// =============================================================================

func configCmd(flags *rootFlags, cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:               "init",
		Short:             "Write a default config file",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg())
		},
	}

	pathCmd := &cobra.Command{
		Use:               "path",
		Short:             "Print the config file location",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}

// skipConfig replaces the root config loading for commands that must work
// without a readable config file.
func skipConfig(*cobra.Command, []string) error { return nil }

func configPath(flags *rootFlags) (string, error) {
	if p := strings.TrimSpace(flags.configPath); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}
