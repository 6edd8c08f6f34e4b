package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	t.Setenv("HF_API_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.HTTP.Address)
	require.Equal(t, "meta-llama/Llama-3.2-3B-Instruct", cfg.Chat.Model)
	require.Equal(t, 150, cfg.Chat.MaxTokens)
	require.InDelta(t, 0.7, cfg.Chat.Temperature, 1e-6)
	require.Equal(t, 20, cfg.Chat.HistoryLimit)
	require.Equal(t, 10, cfg.Chat.ContextWindow)
	require.Equal(t, 10*time.Second, cfg.Translate.Timeout)
	require.Equal(t, 30*time.Second, cfg.POI.Timeout)
	require.Equal(t, 30*time.Second, cfg.Chat.Timeout)
	require.Equal(t, 2000, cfg.POI.DefaultRadius)
	require.Empty(t, cfg.Weather.APIKey)
	require.Empty(t, cfg.Chat.APIToken)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
http:
  address: ":9090"
weather:
  apiKey: "from-file"
  lang: "en"
chat:
  model: "file-model"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	require.NoError(t, os.Unsetenv("OPENWEATHERMAP_API_KEY"))
	t.Setenv("HF_API_TOKEN", " hf-token ")
	t.Setenv("HF_MODEL", "env-model")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "from-file", cfg.Weather.APIKey)
	require.Equal(t, "en", cfg.Weather.Lang)
	require.Equal(t, "hf-token", cfg.Chat.APIToken)
	require.Equal(t, "env-model", cfg.Chat.Model)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestValidateRejectsWindowLargerThanHistory(t *testing.T) {
	cfg := defaultConfig()
	cfg.Chat.ContextWindow = 30
	require.Error(t, cfg.Validate())
}

func TestValidateRequiresValkeyAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sessions.Valkey.Enabled = true
	require.Error(t, cfg.Validate())

	cfg.Sessions.Valkey.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}
