package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/talent-api/internal/config"
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Empty(t, cfg.Rarity.BaseURL)
	assert.Equal(t, "default", cfg.Session.Name)
	assert.Equal(t, schema.DefaultOptions(), cfg.SchemaOptions())
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 7000
  verbose: true
redis:
  enabled: true
  address: redis:6379
  db: 2
rarity:
  base_url: http://rarities.local
  timeout: 5s
schema:
  tiers: [common, mythic]
  resources: [mana, Focus]
  report_mode: relatory
  strict: true
session:
  name: admin
  ttl: 1h
`)

	cfg, err := config.Load(config.NewViper(dir))
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.True(t, cfg.Server.Verbose)
	assert.Equal(t, config.RedisConfig{Enabled: true, Address: "redis:6379", DB: 2}, cfg.Redis)
	assert.Equal(t, config.RarityConfig{BaseURL: "http://rarities.local", Timeout: 5 * time.Second}, cfg.Rarity)
	assert.Equal(t, config.SessionConfig{Name: "admin", TTL: time.Hour}, cfg.Session)

	opts := cfg.SchemaOptions()
	assert.Equal(t, []string{"common", "mythic"}, opts.Tiers)
	assert.Equal(t, []talents.ResourceType{"mana", "focus"}, opts.Resources)
	assert.Equal(t, talents.ReportModeRelatory, opts.ReportMode)
	assert.True(t, opts.Strict)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 7000\n")
	t.Setenv("TALENT_SERVER_PORT", "8000")
	t.Setenv("TALENT_REDIS_ADDRESS", "cache:6379")

	cfg, err := config.Load(config.NewViper(dir))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "cache:6379", cfg.Redis.Address)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{name: "port out of range", body: "server:\n  port: 70000\n", field: "Server.Port"},
		{name: "bad report mode", body: "schema:\n  report_mode: essay\n", field: "Schema.ReportMode"},
		{name: "bad base url", body: "rarity:\n  base_url: not a url\n", field: "Rarity.BaseURL"},
		{name: "empty tiers", body: "schema:\n  tiers: []\n", field: "Schema.Tiers"},
		{name: "redis without address", body: "redis:\n  enabled: true\n  address: \"\"\n", field: "Redis.Address"},
		{name: "remote without timeout", body: "rarity:\n  base_url: http://r.local\n  timeout: 0s\n", field: "Rarity.Timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(config.NewViper(writeConfig(t, tc.body)))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	_, err := config.Load(config.NewViper(writeConfig(t, "server: [\n")))
	assert.Error(t, err)
}
