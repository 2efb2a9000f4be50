package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SITE_ADMIN_PASSWORD", "hunter2")
	t.Setenv("SITE_SESSION_SECRET", "secret")
	t.Setenv("SITE_TOGGLE_REQUIRES_AUTH", "1")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data/site.db", cfg.DBPath)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.True(t, cfg.ToggleRequiresAuth)
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsAllMissing(t *testing.T) {
	err := Config{AdminUser: "admin"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SITE_ADMIN_PASSWORD")
	assert.Contains(t, err.Error(), "SITE_SESSION_SECRET")
}
