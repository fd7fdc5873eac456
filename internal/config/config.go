package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nesting levels: REMINDERS_LOG__LEVEL sets log.level.
const EnvPrefix = "REMINDERS_"

type Config struct {
	UI  UIConfig  `koanf:"ui"`
	Log LogConfig `koanf:"log"`
}

type UIConfig struct {
	ColoredOutput bool   `koanf:"colored_output"`
	ShowWelcome   bool   `koanf:"show_welcome"`
	DateFormat    string `koanf:"date_format"` // Go time layout used when rendering rows
	HistoryFile   string `koanf:"history_file"` // empty keeps input history in memory only
	HistoryLimit  int    `koanf:"history_limit"`
}

type LogConfig struct {
	Level    string `koanf:"level"`    // debug, info, warn, error
	Encoding string `koanf:"encoding"` // console or json
	Output   string `koanf:"output"`   // stderr or a file path
}

// Load builds the configuration from defaults, an optional YAML file,
// an optional .env file in the working directory and the environment.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// .env is optional; values already set in the environment win
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Log.Output != "stderr" {
		cfg.Log.Output = expandPath(cfg.Log.Output)
	}
	cfg.UI.HistoryFile = expandPath(cfg.UI.HistoryFile)

	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s (supported: debug, info, warn, error)", c.Log.Level)
	}

	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log encoding: %s (supported: console, json)", c.Log.Encoding)
	}

	if c.Log.Output == "" {
		return fmt.Errorf("log output is required (stderr or a file path)")
	}

	if strings.TrimSpace(c.UI.DateFormat) == "" {
		return fmt.Errorf("date_format must not be empty")
	}

	if c.UI.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative: %d", c.UI.HistoryLimit)
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
