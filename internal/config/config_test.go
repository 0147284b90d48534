package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.Generation.Backend)
	assert.Equal(t, "ollama", cfg.StreamBackendName())
	assert.Equal(t, "golsin", cfg.Generation.Template)
	assert.Equal(t, 60*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Generation.StreamTimeout)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, 700, cfg.Ollama.NumPredict)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
generation:
  backend: openai
  stream_backend: ollama
  template: classic
  timeout: 10s
storage:
  driver: none
openai:
  model: deepseek-chat
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("GOLFFORTUNE_OPENAI_API_KEY", "sk-test")
	t.Setenv("GOLFFORTUNE_SERVER_PORT", "8080")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Generation.Backend)
	assert.Equal(t, "ollama", cfg.StreamBackendName())
	assert.Equal(t, "classic", cfg.Generation.Template)
	assert.Equal(t, 10*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, "deepseek-chat", cfg.OpenAI.Model)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "none", cfg.Storage.Driver)
}

func TestValidateAcceptsDefaultTemplate(t *testing.T) {
	cfg := Config{Generation: GenerationConfig{Backend: "openai"}, OpenAI: OpenAIConfig{APIKey: "sk-test"}, Storage: StorageConfig{Driver: "none"}}
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]Config{
		"backend":        {Generation: GenerationConfig{Backend: "gemini"}, Storage: StorageConfig{Driver: "file"}},
		"stream backend": {Generation: GenerationConfig{Backend: "ollama", StreamBackend: "x"}, Storage: StorageConfig{Driver: "file"}},
		"driver":         {Generation: GenerationConfig{Backend: "ollama"}, Storage: StorageConfig{Driver: "s3"}},
		"mysql dsn":      {Generation: GenerationConfig{Backend: "ollama"}, Storage: StorageConfig{Driver: "mysql"}},
		"template":       {Generation: GenerationConfig{Backend: "ollama", Template: "v9"}, Storage: StorageConfig{Driver: "file"}},
		"openai key":     {Generation: GenerationConfig{Backend: "openai"}, Storage: StorageConfig{Driver: "file"}},
		"stream key":     {Generation: GenerationConfig{Backend: "ollama", StreamBackend: "openai"}, Storage: StorageConfig{Driver: "file"}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", ".."))
	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.StreamBackendName())
}
