package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-tools/devflow-cli/internal/note"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
notion:
  token: secret
  database_id: db-1
shopify:
  access_token: shpat-1
staging:
  fallback_store: fallback.myshopify.com
timeout_seconds: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Notion.Token)
	assert.Equal(t, "db-1", cfg.Notion.DatabaseID)
	assert.Equal(t, "shpat-1", cfg.Shopify.AccessToken)
	assert.Equal(t, "fallback.myshopify.com", cfg.Staging.FallbackStore)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "notion:\n  token: x\n"))
	require.NoError(t, err)

	assert.Equal(t, "Status", cfg.Notion.StatusProperty)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, note.DefaultEmojiRules(), cfg.EmojiRules)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "env-token")
	t.Setenv("NOTION_DATABASE_ID", "env-db")

	cfg, err := Load(writeConfig(t, "notion:\n  token: file-token\n"))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Notion.Token)
	assert.Equal(t, "env-db", cfg.Notion.DatabaseID)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "env-only")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err, "missing file is fine when env vars are set")
	assert.Equal(t, "env-only", cfg.Notion.Token)
}

func TestValidateNotion(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.ValidateNotion())

	cfg.Notion.Token = "t"
	assert.Error(t, cfg.ValidateNotion(), "database id still missing")

	cfg.Notion.DatabaseID = "db"
	assert.NoError(t, cfg.ValidateNotion())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Config{TimeoutSeconds: 7}
	cfg.Notion.Token = "tok"
	cfg.Notion.DatabaseID = "db"
	cfg.Staging.FallbackStore = "s.myshopify.com"

	require.NoError(t, Save(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", loaded.Notion.Token)
	assert.Equal(t, "s.myshopify.com", loaded.Staging.FallbackStore)
	assert.Equal(t, 7, loaded.TimeoutSeconds)
}
