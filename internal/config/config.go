// Package config loads quadra's settings from a local config file.
//
// The file lives at <config dir>/config.json and is JSONC: comments and
// trailing commas are allowed. The config dir resolves from
// QUADRA_CONFIG_DIR, then XDG_CONFIG_HOME/quadra, then ~/.config/quadra.
//
// A missing file is not an error; it yields the defaults with no
// credential, and summary requests fail with a recoverable
// missing-credential message.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/quadra/internal/llm"
	"github.com/tailscale/hujson"
)

// AppName is the application directory name under XDG_CONFIG_HOME.
const AppName = "quadra"

// FileName is the config file name inside the config directory.
const FileName = "config.json"

type fileSchema struct {
	APIKey      string   `json:"api_key"`
	Endpoint    string   `json:"endpoint,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	LogLLMCalls bool     `json:"log_llm_calls,omitempty"`
}

// Config holds the loaded application settings.
type Config struct {
	Chat        llm.ChatConfig
	LogLLMCalls bool
}

// DefaultDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load reads the config file from dir. If dir is empty, the default
// directory is used. A missing file returns defaults without error.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDir()
	}

	cfg := &Config{Chat: llm.DefaultChatConfig()}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	parsed, err := parse(data)
	if err != nil {
		return nil, err
	}

	cfg.Chat.Credential = strings.TrimSpace(parsed.APIKey)
	if parsed.Endpoint != "" {
		cfg.Chat.Endpoint = parsed.Endpoint
	}
	if parsed.Model != "" {
		cfg.Chat.Model = parsed.Model
	}
	cfg.Chat.Temperature = parsed.Temperature
	cfg.LogLLMCalls = parsed.LogLLMCalls

	return cfg, nil
}

func parse(data []byte) (fileSchema, error) {
	// Standardize JSONC to JSON.
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileSchema{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var parsed fileSchema
	if err := json.Unmarshal(standardized, &parsed); err != nil {
		return fileSchema{}, fmt.Errorf("invalid config: %w", err)
	}
	return parsed, nil
}
