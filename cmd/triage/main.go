package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/config"
	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/logging"
	"github.com/hejijunhao/triage/internal/task"
)

var (
	configPath string
	logLevel   string
	format     string

	// cfg is populated by the root pre-run hook before any command runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Keyword-based task classification",
	Long: `triage sorts free-text tasks into a category and priority, extracts
people and date mentions, and suggests next steps.

Examples:
  triage classify "Urgent meeting with Ana today"
  triage batch tasks.ndjson --format text
  triage serve`,
	Version:           config.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", os.Getenv("TRIAGE_CONFIG"), "YAML config file (env: TRIAGE_CONFIG)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	for _, c := range []*cobra.Command{classifyCmd, batchCmd} {
		c.Flags().StringVar(&format, "format", "", "record format: json or text (overrides config)")
	}

	rootCmd.AddCommand(classifyCmd, batchCmd, serveCmd, taxonomyCmd)
}

// setup loads .env, the config file and environment, then installs logging.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	// LoadFile reads TRIAGE_* after the file, so .env values apply too.
	loaded, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if format != "" {
		loaded.Output.Format = format
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config:\n%w", err)
	}
	cfg = loaded

	// Records on stdout as NDJSON: keep log lines machine-readable too.
	recordsOnStdout := cmd != serveCmd && cfg.Output.Format == "json"
	logging.Init(recordsOnStdout, logging.ParseLevel(cfg.Log.Level))
	return nil
}

func newPreparer() (*engine.Engine, *task.Preparer) {
	eng := engine.New(taxonomy.Default())
	return eng, task.NewPreparer(eng)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
