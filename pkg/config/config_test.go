package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_SessionConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("SESSION_COOKIE_NAME", "test_session")
	os.Setenv("SESSION_HANDOFF_TTL_MINUTES", "30")
	defer func() {
		os.Unsetenv("SESSION_COOKIE_NAME")
		os.Unsetenv("SESSION_HANDOFF_TTL_MINUTES")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify session config
	assert.Equal(t, "test_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.HandoffTTL)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("SESSION_COOKIE_NAME")
	os.Unsetenv("SESSION_HANDOFF_TTL_MINUTES")
	os.Unsetenv("CATALOG_MAX_CONSULTATION_FEE")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, "smh_session", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.HandoffTTL)
	assert.Equal(t, 3000, cfg.Catalog.MaxConsultationFee)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.internal", Port: 6380}
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr())
}
