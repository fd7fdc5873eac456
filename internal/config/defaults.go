package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"ui": map[string]interface{}{
			"colored_output": true,
			"show_welcome":   true,
			"date_format":    "Mon Jan 2 2006 15:04",
			"history_file":   "",
			"history_limit":  500,
		},
		"log": map[string]interface{}{
			"level":    "warn",
			"encoding": "console",
			"output":   "stderr", // stdout is reserved for the REPL and MCP stdio
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.reminders/config.yaml"
}
