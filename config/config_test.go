package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps Load away from config files and variables of the host
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{"RELOOP_TMDB_API_KEY", LegacyKeyEnv, "RELOOP_TMDB_LANGUAGE", "RELOOP_LOGGING_LEVEL", "RELOOP_SERVER_ADDR"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
tmdb:
  api_key: file-key
  language: en-US
  timeout: 5s
server:
  addr: 0.0.0.0:8080
  playground: false
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.Playground)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, path, cfg.File)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "tmdb:\n  api_key: local-key\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local-key", cfg.TMDB.APIKey)
}

func TestLoadDefaultsFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("RELOOP_TMDB_API_KEY", "env-key")

	cfg, err := Load("")
	require.NoError(t, err, "missing config file is fine when the key comes from the environment")

	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr)
	assert.True(t, cfg.Server.Playground)
	assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.File)
}

func TestLoadLegacyKeyVariable(t *testing.T) {
	isolate(t)
	t.Setenv(LegacyKeyEnv, "legacy-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.TMDB.APIKey)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "tmdb:\n  api_key: file-key\nlogging:\n  level: info\n")
	t.Setenv("RELOOP_TMDB_API_KEY", "env-key")
	t.Setenv("RELOOP_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		dir := isolate(t)
		t.Setenv("RELOOP_TMDB_API_KEY", "env-key")

		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("no key anywhere", func(t *testing.T) {
		isolate(t)

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tmdb.api_key is required")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "tmdb: [unclosed\n")

		_, err := Load(path)
		require.Error(t, err)
	})
}

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL: "https://api.themoviedb.org/3",
			APIKey:  "valid-api-key",
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:3000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "" },
			wantErr: "tmdb.api_key is required",
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			wantErr: "tmdb.api_key must be set to a valid API key",
		},
		{
			name:    "bad base url",
			mutate:  func(c *Config) { c.TMDB.BaseURL = "not a url" },
			wantErr: "tmdb.base_url must be a valid URL",
		},
		{
			name:   "language with region",
			mutate: func(c *Config) { c.TMDB.Language = "pt-BR" },
		},
		{
			name:    "bad language",
			mutate:  func(c *Config) { c.TMDB.Language = "english" },
			wantErr: "tmdb.language",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.TMDB.Timeout = 0 },
			wantErr: "tmdb.timeout must be positive",
		},
		{
			name:    "negative read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantErr: "server.read_timeout must not be negative",
		},
		{
			name:    "bad addr",
			mutate:  func(c *Config) { c.Server.Addr = "nonsense" },
			wantErr: "server.addr must be host:port",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level must be one of debug, info, warn, error: verbose",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format must be one of console, json: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidatorRegistersCustomTags(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	type keyed struct {
		Key  string `validate:"apikey"`
		Lang string `validate:"language"`
	}
	assert.NoError(t, v.Struct(keyed{Key: "real", Lang: "en"}))
	assert.Error(t, v.Struct(keyed{Key: placeholderKey, Lang: "en"}))
	assert.Error(t, v.Struct(keyed{Key: "real", Lang: "EN_us"}))
}
