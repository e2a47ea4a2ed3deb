package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:          "tonegen",
	Short:        "Synthesize and play simple waveforms",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")
	rootCmd.AddCommand(newPlayCmd(), newListenCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("starting", zap.Int("numCPU", runtime.NumCPU()))
	return logger, nil
}
