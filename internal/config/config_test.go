package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	opts := Parse()

	assert.Equal(t, "localhost:8080", opts.Port)
	assert.Equal(t, "http://localhost:8080", opts.ResultHostname)
	assert.Empty(t, opts.FilePath)
	assert.Empty(t, opts.DatabaseDSN)
	assert.Equal(t, time.Hour, opts.CleanupInterval)
	assert.Empty(t, opts.TrustedSubnet)
	assert.Equal(t, "supersecretkey", opts.JWTSecret)
	assert.False(t, opts.EnableHTTPS)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("BASE_URL", "https://share.example.com")
	t.Setenv("FILE_STORAGE_PATH", "/var/lib/reposhare")
	t.Setenv("DATABASE_DSN", "postgres://localhost/reposhare")
	t.Setenv("CLEANUP_INTERVAL", "30m")
	t.Setenv("TRUSTED_SUBNET", "10.0.0.0/8")
	t.Setenv("GITHUB_CLIENT_ID", "client-id")
	t.Setenv("GITHUB_CLIENT_SECRET", "client-secret")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ENABLE_HTTPS", "true")

	opts := Parse()

	assert.Equal(t, "0.0.0.0:9090", opts.Port)
	assert.Equal(t, "https://share.example.com", opts.ResultHostname)
	assert.Equal(t, "/var/lib/reposhare", opts.FilePath)
	assert.Equal(t, "postgres://localhost/reposhare", opts.DatabaseDSN)
	assert.Equal(t, 30*time.Minute, opts.CleanupInterval)
	assert.Equal(t, "10.0.0.0/8", opts.TrustedSubnet)
	assert.Equal(t, "client-id", opts.GitHubClientID)
	assert.Equal(t, "client-secret", opts.GitHubClientSecret)
	assert.Equal(t, "env-secret", opts.JWTSecret)
	assert.True(t, opts.EnableHTTPS)
}

func TestParseBadCleanupIntervalKeepsDefault(t *testing.T) {
	options.CleanupInterval = time.Hour
	t.Setenv("CLEANUP_INTERVAL", "not-a-duration")

	opts := Parse()
	assert.Equal(t, time.Hour, opts.CleanupInterval)
}
