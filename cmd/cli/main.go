package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"devflow/config"
	"devflow/internal/bootstrap"
	"devflow/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "devflow",
	Short: "DevFlow AI assistant for tasks, calendar and GitHub",
	Long: `DevFlow talks to Google Calendar, Google Tasks and GitHub through a
language model and reports how loaded your day is.

Configuration is read from config.yaml and the environment, the same way
the API server reads it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(chatCmd, workloadCmd, toolsCmd)
}

// loadApp wires the application the same way the API server does.
func loadApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return bootstrap.New(ctx, cfg, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
