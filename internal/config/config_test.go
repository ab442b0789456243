package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray config file is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "vet_system_token", cfg.Session.TokenKey)
	assert.Equal(t, "vet_system_user", cfg.Session.UserKey)
	assert.NotEmpty(t, cfg.Session.Dir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("VET_API_BASE_URL", "https://vet.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://vet.example.com", cfg.API.BaseURL)
}
