package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 8080

[tmdb]
api_key = "abc"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	cfgPath := writeConfig(t, `
[tmdb]
api_key = "${MISSING_KEY}"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "MISSING_KEY") {
		t.Errorf("expected MISSING_KEY in error, got %v", err)
	}

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, cfgPath, cerr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999

[tmdb]
api_key = "abc"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, `
[tmdb]
api_key = "abc"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "text", cfg.Server.LogFormat)
	assert.Equal(t, "./data/reelsearch.db", cfg.Database.Path)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, []string{"US"}, cfg.TMDB.Regions)
	assert.Equal(t, 40.0, cfg.TMDB.RateLimit)
	assert.Equal(t, 10.0, cfg.OMDb.RateLimit)
	assert.Equal(t, 8, cfg.Search.MaxInFlight)
	assert.Equal(t, 8*time.Second, cfg.Search.CallTimeout)
	assert.Equal(t, 3, cfg.Search.PersonWeight)
	assert.Equal(t, 3, cfg.Search.MaxPersons)
	assert.Equal(t, "sqlite", cfg.Feedback.Backend)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
}

func TestLoad_Durations(t *testing.T) {
	cfgPath := writeConfig(t, `
[cache]
ttl = "15m"

[search]
call_timeout = "2s"

[tmdb]
api_key = "abc"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 2*time.Second, cfg.Search.CallTimeout)
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 99999 {
		t.Errorf("expected port 99999, got %d", cfg.Server.Port)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("OPTIONAL_VAR")
	cfgPath := writeConfig(t, `
[server]
host = "${OPTIONAL_VAR:-localhost}"

[tmdb]
api_key = "abc"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_ParseError(t *testing.T) {
	cfgPath := writeConfig(t, `[server`)

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
