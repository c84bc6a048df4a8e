// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/feline-tui/internal/config"
	"github.com/jeranaias/feline-tui/internal/content"
	"github.com/jeranaias/feline-tui/internal/page"
	"github.com/jeranaias/feline-tui/internal/ui/catpage"
	"github.com/jeranaias/feline-tui/internal/ui/styles"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	configPath      string
	dark            bool
	ascii           bool
	debug           bool
	noMouse         bool
	noWatch         bool
	factInterval    int
	sparkleInterval int
}

// Execute runs the feline command line.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Each call returns independent state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "feline",
		Short:         "A cat appreciation page for your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, cfg, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.feline/config.toml)")
	pf.BoolVar(&flags.dark, "dark", false, "start in dark mode (--dark=false forces light)")
	pf.BoolVar(&flags.ascii, "ascii", false, "use ASCII glyphs instead of symbols")
	pf.BoolVar(&flags.debug, "debug", false, "write debug logs to the configured log file")
	pf.BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse support")
	pf.IntVar(&flags.factInterval, "fact-interval", 0, "seconds between fact rotations")
	pf.IntVar(&flags.sparkleInterval, "sparkle-interval", 0, "seconds between title sparkles")

	root.Flags().BoolVar(&flags.noWatch, "no-watch", false, "do not reload the config file when it changes")

	root.AddCommand(
		breedsCmd(func() *config.Config { return cfg }),
		factsCmd(func() *config.Config { return cfg }),
		versionCmd(),
		configCmd(flags, func() *config.Config { return cfg }),
	)
	return root
}

// loadConfig reads the config file and layers the command-line flags on top.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFromPath(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, flags, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags layers explicitly set flags over cfg and revalidates it.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("dark") {
		if flags.dark {
			cfg.UI.DarkMode = config.DarkModeDark
		} else {
			cfg.UI.DarkMode = config.DarkModeLight
		}
	}
	if f.Changed("ascii") {
		cfg.UI.ASCII = flags.ascii
	}
	if f.Changed("no-mouse") {
		cfg.UI.Mouse = !flags.noMouse
	}
	if f.Changed("fact-interval") {
		cfg.Timers.FactRotationSecs = flags.factInterval
	}
	if f.Changed("sparkle-interval") {
		cfg.Timers.SparkleEverySecs = flags.sparkleInterval
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// detectBackground queries the terminal background when the config asks for
// "auto". The query reads from the tty, so it must happen before the program
// takes over the terminal.
func detectBackground(cfg *config.Config, detect func() bool) bool {
	if cfg.UI.DarkMode != config.DarkModeAuto || detect == nil {
		return false
	}
	return detect()
}

// pageOptions translates the config into model options. background is the
// terminal background used for dark_mode = "auto".
func pageOptions(cfg *config.Config, background bool) catpage.Options {
	opts := catpage.DefaultOptions()
	opts.Intervals = page.Intervals{
		FactRotation: cfg.FactInterval(),
		SparkleEvery: cfg.SparkleInterval(),
		SparkleFor:   cfg.SparkleDuration(),
		LikePulse:    cfg.LikePulseDuration(),
	}
	opts.DarkMode = cfg.InitialDarkMode(func() bool { return background })
	opts.ASCII = cfg.UI.ASCII
	opts.StartTab, _ = page.ParseTab(cfg.UI.StartTab)
	opts.Mouse = cfg.UI.Mouse
	return opts
}

// runPage starts the interactive page, or prints a snapshot when the output
// is not a terminal.
func runPage(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) error {
	if err := content.Validate(content.Breeds()); err != nil {
		return err
	}

	background := detectBackground(cfg, styles.DetectDarkBackground)
	opts := pageOptions(cfg, background)
	out := cmd.OutOrStdout()

	if !isTerminal(out) {
		fmt.Fprintln(out, catpage.Snapshot(opts, TerminalWidth(out)))
		return nil
	}

	logger := log.New(io.Discard, "", 0)
	if flags.debug {
		logFile, err := debugLog(cfg)
		if err != nil {
			return err
		}
		defer logFile.Close()
		logger = log.Default()
	}
	opts.Logger = logger

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	opts.Context = ctx

	m := catpage.New(opts)
	defer m.Teardown()

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, progOpts...)
	if !flags.noWatch {
		stop := watchConfig(ctx, cmd, flags, p, background, logger)
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}

// settingsMsg converts a reloaded config into a page message. "auto" reuses
// the background detected at startup.
func settingsMsg(cfg *config.Config, background bool) catpage.SettingsMsg {
	opts := pageOptions(cfg, background)
	return catpage.SettingsMsg{
		Intervals: opts.Intervals,
		DarkMode:  opts.DarkMode,
		ASCII:     opts.ASCII,
		Mouse:     opts.Mouse,
	}
}

// watchConfig forwards config file changes to the running program. Without
// a config file there is nothing to watch and the returned stop is a no-op.
func watchConfig(ctx context.Context, cmd *cobra.Command, flags *rootFlags, p *tea.Program, background bool, logger *log.Logger) (stop func()) {
	path, err := configPath(flags)
	if err != nil {
		return func() {}
	}
	if _, err := os.Stat(path); err != nil {
		return func() {}
	}

	w, err := config.NewWatcher(path, 0)
	if err != nil {
		logger.Printf("CONFIG_WATCH_FAILED | path=%s err=%v", path, err)
		return func() {}
	}
	w.OnLoad = func(cfg *config.Config) {
		if err := applyFlags(cmd, flags, cfg); err != nil {
			logger.Printf("CONFIG_RELOAD_FAILED | path=%s err=%v", path, err)
			return
		}
		p.Send(settingsMsg(cfg, background))
	}
	w.OnError = func(err error) {
		logger.Printf("CONFIG_RELOAD_FAILED | path=%s err=%v", path, err)
	}

	go w.Run(ctx)
	logger.Printf("CONFIG_WATCH | path=%s", w.Path())
	return func() { w.Close() }
}

// debugLog points the standard logger at the debug log file.
func debugLog(cfg *config.Config) (io.Closer, error) {
	path := cfg.Debug.LogFile
	if path == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(dir, "debug.log")
	}

	f, err := tea.LogToFile(path, "feline")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}
