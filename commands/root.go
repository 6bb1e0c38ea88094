package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/penwyp/go-emotilog/internal/application/session"
	"github.com/penwyp/go-emotilog/internal/core/store"
	"github.com/penwyp/go-emotilog/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	defaultLogFile = "~/.go-emotilog/logs/app.log"
	envPrefix      = "EMOTILOG"
)

// NewRootCommand builds the emotilog command tree
func NewRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "emotilog [flags]",
		Short: "Log how you feel, one emotion at a time",
		Long: `emotilog is a terminal emotion log.

Run it without arguments for the interactive grid: press 1-9 to log an emotion,
l for the log list, s for the summary and q to quit. Logs live in memory for the
lifetime of the process.

Examples:
  emotilog                                   # Interactive session
  emotilog log Happy Sad Happy               # Log three emotions and print statistics
  emotilog log Happy Tired -o json           # Same, as JSON
  emotilog logs Happy Sad --sort insertion   # List entries in insertion order
  cat feelings.txt | emotilog summary -      # Read one emotion per line from stdin
  emotilog --timezone Asia/Shanghai          # Compare calendar days in Shanghai time`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, v)
		},
	}

	// Output configuration
	rootCmd.PersistentFlags().StringP("output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().String("timezone", "Local",
		"Timezone used for calendar days and timestamps (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().Int("recent", 5,
		"Number of recent entries listed in the daily summary")
	rootCmd.Flags().Int("width", 0,
		"Screen width for the interactive session (0 = terminal width)")

	// System and debugging
	rootCmd.PersistentFlags().Bool("debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().String("log-file", defaultLogFile,
		"Log file path (empty to disable file logging)")

	rootCmd.AddCommand(
		newLogCommand(v),
		newLogsCommand(v),
		newSummaryCommand(v),
		newEmotionsCommand(v),
		newVersionCommand(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads configuration, then initializes logging and the time provider
func setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := loadConfig(cmd, v); err != nil {
		return err
	}

	// Determine log level based on debug flag
	debug := v.GetBool("debug")
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := v.GetString("log-file")
	if logFile != "" {
		logFile = expandPath(logFile)
		if err := ensureDir(filepath.Dir(logFile)); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		return err
	}

	if err := util.InitializeTimeProvider(v.GetString("timezone")); err != nil {
		return err
	}
	util.LogDebug("Configuration loaded",
		util.F("command", cmd.Name()),
		util.F("timezone", v.GetString("timezone")),
		util.F("output", v.GetString("output")))
	return nil
}

func newStore() *store.Store {
	return store.New(store.WithLocation(util.GetTimeProvider().Location()))
}

func runInteractive(cmd *cobra.Command, v *viper.Viper) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal; use 'emotilog log EMOTION...' instead")
	}

	config := &session.Config{
		Timezone:    v.GetString("timezone"),
		Width:       v.GetInt("width"),
		RecentCount: v.GetInt("recent"),
	}
	orchestrator, err := session.NewOrchestrator(config, newStore())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return orchestrator.Run(ctx)
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
