package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

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

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"base_url":   "http://backend:4000/api",
		"state_path": "/tmp/state.db",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://backend:4000/api", cfg.BaseURL)
		assert.Equal(t, "/tmp/state.db", cfg.StatePath)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BaseURL: "http://defaults:1234/api", StatePath: "defaults.db"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234/api", cfg.BaseURL)
		assert.Equal(t, "defaults.db", cfg.StatePath)
	})

	t.Run("empty fields keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"base_url": "http://backend:4000/api",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{StatePath: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "http://backend:4000/api", cfg.BaseURL)
		assert.Equal(t, "keep.db", cfg.StatePath)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
