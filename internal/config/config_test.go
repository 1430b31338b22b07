package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("API_BASE_URL", "http://api.local/api/")
	t.Setenv("TOKEN_STORE", "Memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.local/api", cfg.APIBaseURL)
	assert.Equal(t, TokenStoreMemory, cfg.TokenStore)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionIdleTTL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_UnknownTokenStore(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("TOKEN_STORE", "etcd")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_STORE", "memory")
	t.Setenv("TOKEN_SECRET", "short")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.ae")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_STORE", "memory")
	t.Setenv("TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.ae, https://admin.example.ae")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.ae", "https://admin.example.ae"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}
