package config_test

import (
	"testing"

	"tutorials/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "postgres", cfg.DB.Username)
	assert.Equal(t, "postgres_123", cfg.DB.Password)
	assert.Equal(t, "postgres", cfg.DB.Name)
	assert.True(t, cfg.DB.SSL.Require)
	assert.False(t, cfg.DB.SSL.RejectUnauthorized)
	assert.Equal(t, 5, cfg.DB.Pool.Max)
	assert.Equal(t, 0, cfg.DB.Pool.Min)
	assert.Equal(t, 30000, cfg.DB.Pool.Acquire)
	assert.Equal(t, 10000, cfg.DB.Pool.Idle)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081/api/tutorials", cfg.Client.APIURL)
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, cfg.App.CORS.AllowedMethods)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "tutor")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tutorials")
	t.Setenv("DB_SSL_REQUIRE", "false")
	t.Setenv("DB_SSL_REJECT_UNAUTHORIZED", "true")
	t.Setenv("DB_POOL_MAX", "20")
	t.Setenv("DB_POOL_MIN", "2")
	t.Setenv("DB_POOL_ACQUIRE", "5000")
	t.Setenv("DB_POOL_IDLE", "1000")
	t.Setenv("CLIENT_API_URL", "http://api.example.com/api/tutorials")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "tutor", cfg.DB.Username)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "tutorials", cfg.DB.Name)
	assert.False(t, cfg.DB.SSL.Require)
	assert.True(t, cfg.DB.SSL.RejectUnauthorized)
	assert.Equal(t, 20, cfg.DB.Pool.Max)
	assert.Equal(t, 2, cfg.DB.Pool.Min)
	assert.Equal(t, 5000, cfg.DB.Pool.Acquire)
	assert.Equal(t, 1000, cfg.DB.Pool.Idle)
	assert.Equal(t, "http://api.example.com/api/tutorials", cfg.Client.APIURL)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_POOL_MAX", "many")

	_, err := config.Load()
	assert.Error(t, err)
}
