package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_GeminiModelDefault(t *testing.T) {
	path := writeConfigFile(t, `
env: local
http_server:
  address: "localhost:8080"
`)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
}

func TestConfig_GeminiModelFromEnv(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_API_KEY", "test-key")

	path := writeConfigFile(t, `
env: local
http_server:
  address: "localhost:8080"
gemini:
  model: "gemini-1.5-flash"
`)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
}
