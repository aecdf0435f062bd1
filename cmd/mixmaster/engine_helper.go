package main

import (
	"fmt"
	"os"
	"sync"

	"mixmaster/internal/config"
	"mixmaster/internal/errors"
	"mixmaster/internal/logging"
	"mixmaster/internal/mix"
)

var (
	engineOnce   sync.Once
	sharedEngine *mix.Engine
	sharedConfig *config.Config
	engineErr    error
)

// getEngine returns the shared engine, lazily built on first use from
// the effective config and the persistent flags.
func getEngine(logger *logging.Logger) (*mix.Engine, error) {
	engineOnce.Do(func() {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Warn("Failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}
		sharedConfig = cfg

		engine, err := mix.NewEngine(cfg, logger, mix.Options{
			DataPath:   dataFlag,
			StylesPath: stylesFlag,
			Seed:       seedFlag,
		})
		if err != nil {
			engineErr = err
			return
		}
		sharedEngine = engine
	})

	return sharedEngine, engineErr
}

// mustGetEngine returns the shared engine or exits with the error.
func mustGetEngine(logger *logging.Logger) *mix.Engine {
	engine, err := getEngine(logger)
	if err != nil {
		fail(err)
	}
	return engine
}

// getConfig returns the effective config after the engine was built.
func getConfig() *config.Config {
	if sharedConfig != nil {
		return sharedConfig
	}
	return config.DefaultConfig()
}

// newLogger creates a logger honoring the format and log-level flags.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	level := logging.InfoLevel
	if logLevelFlag != "" {
		level = logging.ParseLevel(logLevelFlag)
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  level,
	})
}

// fail prints a user-facing error, including any suggested fixes from a
// typed engine error, and exits nonzero.
func fail(err error) {
	var mixErr *errors.MixError
	if e, ok := err.(*errors.MixError); ok {
		mixErr = e
	}
	if mixErr == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", mixErr.Code, mixErr.Message)
	for _, fix := range mixErr.SuggestedFixes {
		switch fix.Type {
		case errors.RunCommand:
			fmt.Fprintf(os.Stderr, "  try: %s  (%s)\n", fix.Command, fix.Description)
		case errors.EditFile:
			fmt.Fprintf(os.Stderr, "  edit: %s  (%s)\n", fix.Path, fix.Description)
		case errors.OpenDocs:
			fmt.Fprintf(os.Stderr, "  see: %s\n", fix.URL)
		}
	}
	os.Exit(1)
}
