package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/quadra/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))
	return dir
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, cfg.Chat.Credential)
	assert.Equal(t, llm.DefaultEndpoint, cfg.Chat.Endpoint)
	assert.Equal(t, llm.DefaultModel, cfg.Chat.Model)
	assert.Nil(t, cfg.Chat.Temperature)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `{
		// Key for the summarization endpoint.
		"api_key": "sk-test",
		"endpoint": "https://llm.example.com/v1/chat/completions",
		"model": "claude-haiku",
		"temperature": 0.3,
		"log_llm_calls": true,
	}`)

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.Chat.Credential)
	assert.Equal(t, "https://llm.example.com/v1/chat/completions", cfg.Chat.Endpoint)
	assert.Equal(t, "claude-haiku", cfg.Chat.Model)
	require.NotNil(t, cfg.Chat.Temperature)
	assert.Equal(t, 0.3, *cfg.Chat.Temperature)
	assert.True(t, cfg.LogLLMCalls)
}

func TestLoad_BlankCredentialStaysEmpty(t *testing.T) {
	dir := writeConfig(t, `{"api_key": "   "}`)

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Empty(t, cfg.Chat.Credential)
}

func TestLoad_InvalidJSONC(t *testing.T) {
	dir := writeConfig(t, `{"api_key": `)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestDefaultDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", AppName), DefaultDir())
}
