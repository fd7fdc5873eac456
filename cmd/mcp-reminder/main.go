// Command mcp-reminder provides an MCP server for reminder management.
//
// This server provides tools for adding, listing, toggling and removing
// reminders. Reminders live in memory and are gone when the server exits.
//
// Usage:
//
//	./mcp-reminder          # Start MCP server (stdio)
//	./mcp-reminder --help   # Show help
//
// Environment:
//
//	REMINDERS_CONFIG  Path to YAML config (default: ~/.reminders/config.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/notexe/reminders/internal/config"
	"github.com/notexe/reminders/internal/logger"
	"github.com/notexe/reminders/internal/reminder"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		}
	}

	configPath := os.Getenv("REMINDERS_CONFIG")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	os.Exit(serve(cfg))
}

// serve owns the logger so that it is flushed and closed before main exits.
func serve(cfg *config.Config) int {
	log, closeLog, err := logger.New(logger.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
		Output:   cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer closeLog()

	store := reminder.NewStore(log.Named("store"))
	s := reminder.NewServer(store, log.Named("mcp"))

	log.Info("serving reminder tools on stdio")
	if err := server.ServeStdio(s.MCPServer()); err != nil {
		log.Error("server error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return 1
	}
	return 0
}

func printHelp() {
	fmt.Println(`MCP Reminder Server - Reminder management via MCP protocol

USAGE:
    mcp-reminder          Start MCP server (communicates via stdio)
    mcp-reminder --help   Show this help

ENVIRONMENT:
    REMINDERS_CONFIG      Path to YAML config file
                          Default: ~/.reminders/config.yaml
    REMINDERS_LOG__LEVEL  Log level (debug, info, warn, error); logs go to stderr

TOOLS:
    add_reminder       Add a reminder (text, optional RFC3339 date)
    list_reminders     List reminders with their positions
    toggle_reminder    Flip a reminder's completion state by ID
    remove_reminders   Remove reminders at the given positions

Reminders are held in memory only and are lost when the server exits.`)
}
