package main

import (
	"boxworld/internal/config"
	"boxworld/internal/game"
	"boxworld/internal/logger"
	"flag"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	logLevel := flag.String("log-level", "", "override logging.level (debug, info, warn, error)")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*configPath) {
			if abs, err := filepath.Abs(*configPath); err == nil {
				*configPath = abs
			}
			_ = os.Chdir(execDir)
		}
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		logger.L().Error("Config: load failed", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	log.Info("boxworld: starting", "config", *configPath)

	if err := game.New(cfg, *configPath).Run(); err != nil {
		log.Error("boxworld: setup failed", "err", err)
		os.Exit(1)
	}
}
