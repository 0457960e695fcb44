// Package main is the entry point for the ENSnano scene viewer, a
// windowed viewer without the editing panels.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/thenlevy/ensnano-sub005/internal/config"
	"github.com/thenlevy/ensnano-sub005/internal/editor"
	"github.com/thenlevy/ensnano-sub005/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== ENSnano Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ed, err := editor.New(cfg)
	if err != nil {
		logger.Error("failed to create editor", zap.Error(err))
		os.Exit(1)
	}
	defer ed.Close()

	if err := ed.Run(); err != nil {
		logger.Error("editor error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
