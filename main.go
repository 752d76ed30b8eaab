package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/psr-logger/logger"
)

// Example demonstrating psr-logger usage.
func main() {
	// Usage: ./psr-logger [config.toml|config.json5]
	if len(os.Args) > 1 {
		cfg, err := logger.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := logger.Init(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := run(logger.Default()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(log logger.PSRLogger) error {
	steps := []func() error{
		func() error { return log.Debug("starting up", nil) },
		func() error { return log.Info("hello world", nil) },
		func() error { return log.Notice("config loaded", nil, "config") },
		func() error { return log.Warning("low disk", "92% used on /var") },
		func() error {
			return log.Error("request failed", map[string]any{
				"status": 500,
				"path":   "/api/users",
			}, "http")
		},
		func() error { return log.Critical("replica unreachable", nil, "db") },
		func() error { return log.Alert("certificate expires tomorrow", nil) },
		func() error { return log.Emergency("shutting down", nil) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
