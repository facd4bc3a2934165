// Package cmd provides the CLI commands for humane.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wexinc/humane/internal/backup"
	"github.com/wexinc/humane/internal/config"
	herrors "github.com/wexinc/humane/internal/errors"
	"github.com/wexinc/humane/internal/habit"
	"github.com/wexinc/humane/internal/logging"
	"github.com/wexinc/humane/internal/tui"
	"github.com/wexinc/humane/internal/version"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// runBrowser starts the interactive browser. Tests replace it.
var runBrowser = tui.Run

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	logFile    string
}

// newRootCmd builds the command tree. A fresh tree is built for every
// invocation so tests don't share flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "humane [backup-file.json]",
		Short: "Browse a habit tracker backup in the terminal",
		Long: `Humane is a read-only terminal browser for habit tracker backups.

It loads a JSON export of habits and entries and lets you drill down
Categories → Habits → Entries with vi-style keys. Press ? for help.

When no file is given, humane looks for humane-tracker-backup-2025-11-29.json,
then the newest humane-tracker-backup-*.json, in the directory above the
one holding the executable.

Examples:
  humane backup.json               # Browse a backup
  humane                           # Browse the default backup
  humane --config humane.yaml      # Use a config file
  humane --log-file humane.log -v  # Write debug logs`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	root.Version = version.NewInfo(Version, Commit, Date).String()
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	root.AddCommand(
		newVersionCmd(),
		newStatsCmd(opts),
		newConfigCmd(opts),
	)

	return root
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprint(root.ErrOrStderr(), herrors.Format(err))
		os.Exit(1)
	}
}

// runRoot resolves and loads the backup, then runs the browser until the
// user quits.
func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cmd, cfg, opts)
	defer closeLog()

	data, err := loadBackup(cfg, args)
	if err != nil {
		logging.Error("failed to load backup", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runBrowser(ctx, data, tui.Options{
		AltScreen:            cfg.UI.AltScreen,
		CapitalizeCategories: cfg.UI.CapitalizeCategories,
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		},
	})
	if errors.Is(err, context.Canceled) {
		logging.Info("interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	logging.Info("session ended")
	return nil
}

// loadBackup resolves the backup path from args and the config, then loads
// it.
func loadBackup(cfg *config.Config, args []string) (*habit.Data, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	locator := backup.NewLocator(cfg.Backup.FallbackDir, cfg.Backup.DefaultFile, cfg.Backup.Pattern)
	path, err := locator.Resolve(arg)
	if err != nil {
		return nil, err
	}

	data, err := habit.Load(path)
	if err != nil {
		return nil, err
	}

	summary := data.Summary()
	logging.Info("backup loaded",
		"path", path,
		"habits", summary.Habits,
		"entries", summary.Entries,
		"categories", summary.Categories,
	)
	return data, nil
}

// setupLogging initializes the global logger when a destination is
// configured. Logging failures are reported but never fatal.
func setupLogging(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) func() {
	logCfg := cfg.Log
	if opts.logFile != "" {
		logCfg.File = opts.logFile
	}
	if !logCfg.Enabled() {
		return func() {}
	}

	level := logging.ParseLevel(string(logCfg.Level))
	if opts.verbose {
		level = logging.LevelDebug
	}

	err := logging.InitGlobal(&logging.Config{
		Level:       level,
		File:        logCfg.File,
		LogDir:      logCfg.Dir,
		MaxLogFiles: logCfg.MaxFiles,
		MaxLogAge:   logCfg.MaxAge,
		JSONFormat:  logCfg.JSON,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}

	logging.Info("humane starting", "version", Version, "verbose", opts.verbose)
	return func() { _ = logging.CloseGlobal() }
}
