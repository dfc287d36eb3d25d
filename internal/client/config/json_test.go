package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"database_path":   "/var/lib/heartrisk/data.db",
		"scorer_endpoint": "http://scorer:5000/predict",
		"scorer_timeout":  "3s",
		"log_level":       "debug",
		"log_format":      "zap",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"scorer_timeout": 2000000000,
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", full}))

		assert.Equal(t, Config{
			DatabasePath:   "/var/lib/heartrisk/data.db",
			ScorerEndpoint: "http://scorer:5000/predict",
			ScorerTimeout:  3 * time.Second,
			LogLevel:       "debug",
			LogFormat:      "zap",
		}, *cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		assert.Equal(t, 2*time.Second, cfg.ScorerTimeout)
		assert.Equal(t, "heartrisk.db", cfg.DatabasePath)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{DatabasePath: "keep.db"}
		require.NoError(t, parseJson(cfg, []string{"-d", "other.db"}))
		assert.Equal(t, "keep.db", cfg.DatabasePath)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-config", bad}))
	})
}
