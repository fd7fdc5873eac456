// Command reminders is an interactive terminal reminder list.
//
// Reminders are kept in memory for the lifetime of the process.
//
// Usage:
//
//	./reminders [-config path] [-no-color] [-log-level level]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/notexe/reminders/internal/config"
	"github.com/notexe/reminders/internal/logger"
	"github.com/notexe/reminders/internal/reminder"
	"github.com/notexe/reminders/internal/repl"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI flag overrides
	if *noColor {
		cfg.UI.ColoredOutput = false
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// run owns the logger so that it is flushed and closed before main exits.
func run(cfg *config.Config) int {
	log, closeLog, err := logger.New(logger.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
		Output:   cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer closeLog()

	store := reminder.NewStore(log.Named("store"))

	replInstance, err := repl.NewREPL(store, cfg, log.Named("repl"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating REPL: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info("shutting down", zap.String("signal", sig.String()))
			cancel()
			replInstance.Stop()
		case <-ctx.Done():
		}
	}()

	if err := replInstance.Start(ctx); err != nil {
		log.Error("repl stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
