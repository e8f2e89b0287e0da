package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	writeConfig := func(t *testing.T, name, content string) string {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("yaml file over defaults", func(t *testing.T) {
		path := writeConfig(t, "adoctree.yaml", `
extensions: [".adoc"]
show_commented: true
serve:
  addr: ":9090"
  cache: redis
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{".adoc"}, cfg.Extensions)
		assert.True(t, cfg.ShowCommented)
		assert.Equal(t, ":9090", cfg.Serve.Addr)
		assert.Equal(t, "redis", cfg.Serve.Cache)
		// Untouched keys keep their defaults.
		assert.Equal(t, []string{"master.adoc", "index.adoc"}, cfg.RootCandidates)
		assert.Equal(t, "localhost:6379", cfg.Serve.RedisAddr)
	})

	t.Run("json by extension", func(t *testing.T) {
		path := writeConfig(t, "adoctree.json", `{"root_candidates": ["main.adoc"]}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"main.adoc"}, cfg.RootCandidates)
	})

	t.Run("missing default file yields defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing explicit path fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "extensions: [unterminated")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestServeConfigTTL(t *testing.T) {
	assert.Equal(t, 90*time.Second, ServeConfig{CacheTTL: "90s"}.TTL())
	assert.Equal(t, 5*time.Minute, ServeConfig{CacheTTL: ""}.TTL())
	assert.Equal(t, 5*time.Minute, ServeConfig{CacheTTL: "soon"}.TTL())
	assert.Equal(t, 5*time.Minute, ServeConfig{CacheTTL: "-1m"}.TTL())
}
