package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplec/utils/logging"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Logging.Mode)
	assert.Equal(t, "amplec", cfg.Logging.ServiceName)
	assert.Equal(t, "submissions", cfg.Store.BaseDir)
	assert.Equal(t, 28, cfg.Store.RetentionDays)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  mode: dual
  filePath: /var/log/amplec.log
  serviceName: amplec-worker
store:
  baseDir: /srv/submissions
  retentionDays: 14
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dual", cfg.Logging.Mode)
	assert.Equal(t, "/var/log/amplec.log", cfg.Logging.FilePath)
	assert.Equal(t, "amplec-worker", cfg.Logging.ServiceName)
	assert.Equal(t, "/srv/submissions", cfg.Store.BaseDir)
	assert.Equal(t, 14, cfg.Store.RetentionDays)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  mode: console
store:
  retentionDays: 14
`)
	t.Setenv("AMPLEC_LOG_MODE", "file")
	t.Setenv("AMPLEC_LOG_FILE", "/tmp/override.log")
	t.Setenv("AMPLEC_RETENTION_DAYS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Logging.Mode)
	assert.Equal(t, "/tmp/override.log", cfg.Logging.FilePath)
	assert.Equal(t, 7, cfg.Store.RetentionDays)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadNegativeRetention(t *testing.T) {
	path := writeConfigFile(t, `
store:
  retentionDays: -3
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoggerConfigConversion(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  mode: index
  indexUrl: http://localhost:9200
  indexName: amplec-logs
  indexUser: amplec
  apiKey: secret
  serviceName: amplec
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.ModeIndex, lc.Mode)
	assert.Equal(t, "http://localhost:9200", lc.IndexURL)
	assert.Equal(t, "secret", lc.APIKey)
}

func TestLoggerConfigRejectsIncomplete(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  mode: file
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.LoggerConfig()
	assert.ErrorIs(t, err, logging.ErrConfiguration)
}

func TestLoggerConfigRejectsUnknownMode(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  mode: syslog
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.LoggerConfig()
	assert.ErrorIs(t, err, logging.ErrConfiguration)
}
