package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash-preview-09-2025", cfg.Gemini.Model)
	assert.Equal(t, "https://lichess.org", cfg.Upstream.LichessBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "public", cfg.Static.Dir)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8081
gemini:
  apiKey: from-file
http:
  timeout: 5s
static:
  dir: dist
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "dist", cfg.Static.Dir)
	assert.Equal(t, "https://www.chess.com", cfg.Upstream.ChessComBaseURL)
}

func TestEnvironmentOverridesYAML(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8081\ngemini:\n  apiKey: from-file\n")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("HTTP_TIMEOUT", "12s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, 12*time.Second, cfg.HTTP.Timeout)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not, a, map")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.HTTP.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Upstream.LichessBaseURL = "lichess.org"
	assert.Error(t, cfg.Validate())
}

func TestServerless(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Serverless())

	cfg.Platform.NodeEnv = "production"
	assert.False(t, cfg.Serverless())

	cfg.Platform.Vercel = "1"
	assert.True(t, cfg.Serverless())

	cfg.Platform.NodeEnv = "development"
	assert.False(t, cfg.Serverless())
}
