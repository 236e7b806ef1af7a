package config

import (
	"testing"

	"studyjam/backend/catalog"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SUPABASE_URL", "db.example.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "db.example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "service-key", cfg.SupabaseKey)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, catalog.Names(), cfg.Labs)
	assert.Len(t, cfg.Labs, 19)
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "service-key")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)

	t.Setenv("SUPABASE_URL", "db.example.supabase.co")
	t.Setenv("SUPABASE_KEY", "")

	cfg, err = LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
