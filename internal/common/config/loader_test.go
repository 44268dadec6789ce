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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "goal-planner", cfg.App.Name)
	assert.Equal(t, DefaultAPIURL, cfg.Planner.APIURL)
	assert.Equal(t, DefaultPlannerTimeout, cfg.Planner.Timeout)
	assert.Empty(t, cfg.Planner.CSRFToken)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://planner.internal:8000/analyze")
	t.Setenv(EnvCSRFToken, "token-123")
	t.Setenv(EnvTimeout, "45s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://planner.internal:8000/analyze", cfg.Planner.APIURL)
	assert.Equal(t, "token-123", cfg.Planner.CSRFToken)
	assert.Equal(t, 45*time.Second, cfg.Planner.Timeout)
}

func TestLoad_PublicURLAlias(t *testing.T) {
	t.Setenv(EnvPublicAPIURL, "http://public.example.com/analyze")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://public.example.com/analyze", cfg.Planner.APIURL)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("TEST_PLANNER_TOKEN", "from-env")
	path := writeConfig(t, `
planner:
  api_url: http://files.example.com/analyze
  csrf_token: ${TEST_PLANNER_TOKEN}
  timeout: 2m
logging:
  level: debug
  format: json
metrics:
  enabled: true
  address: ":9100"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://files.example.com/analyze", cfg.Planner.APIURL)
	assert.Equal(t, "from-env", cfg.Planner.CSRFToken)
	assert.Equal(t, 2*time.Minute, cfg.Planner.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
}

func TestLoad_EmptyURLIsAccepted(t *testing.T) {
	path := writeConfig(t, `
planner:
  api_url: ""
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Planner.APIURL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "bad log level",
			body:    "logging:\n  level: loud\n",
			wantErr: "Level must be one of: debug, info, warn, error",
		},
		{
			name:    "bad url",
			body:    "planner:\n  api_url: not a url\n",
			wantErr: "APIURL must be a valid URL",
		},
		{
			name:    "negative timeout",
			body:    "planner:\n  timeout: -5s\n",
			wantErr: "Timeout must be greater than",
		},
		{
			name:    "metrics without address",
			body:    "metrics:\n  enabled: true\n  address: \"\"\n",
			wantErr: "Address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestValidateConfig_Messages(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Name: "goal-planner"},
		Planner: PlannerConfig{APIURL: "::bad", Timeout: time.Second},
		Logging: LoggingConfig{Level: "info", Format: "xml"},
	}
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_INVALID")

	cfg.Planner.APIURL = DefaultAPIURL
	cfg.Logging.Format = "json"
	assert.NoError(t, validateConfig(cfg))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}
