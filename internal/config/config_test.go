package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STAGGER_DELAY", "750")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("TYPING_DELAY", "false")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.StaggerDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.TypingDelay)
	assert.Equal(t, "919113895297", cfg.EnquiryWhatsAppNumber)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("STAGGER_DELAY", "soon")
	t.Setenv("TYPING_DELAY", "maybe")

	cfg := LoadConfig()
	assert.Equal(t, 500*time.Millisecond, cfg.StaggerDelay)
	assert.True(t, cfg.TypingDelay)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Port: "8080", DBDriver: "none", LogLevel: "info", SessionTTL: time.Hour}
	}

	require.NoError(t, base().Validate())

	c := base()
	c.Port = ""
	assert.ErrorContains(t, c.Validate(), "PORT")

	c = base()
	c.DBDriver = "postgres"
	assert.ErrorContains(t, c.Validate(), "DATABASE_URL")

	c = base()
	c.DBDriver = "mysql"
	assert.ErrorContains(t, c.Validate(), "DB_DRIVER")

	c = base()
	c.LogLevel = "loud"
	assert.ErrorContains(t, c.Validate(), "LOG_LEVEL")

	c = base()
	c.AdminUser = "admin"
	assert.ErrorContains(t, c.Validate(), "ADMIN_PASSWORD")
}

func TestAdminAccounts(t *testing.T) {
	assert.Nil(t, (&Config{}).AdminAccounts())
	assert.Nil(t, (&Config{AdminUser: "admin"}).AdminAccounts())
	assert.Equal(t, map[string]string{"admin": "s3cret"},
		(&Config{AdminUser: "admin", AdminPassword: "s3cret"}).AdminAccounts())
}

func TestLocation(t *testing.T) {
	c := &Config{TimeZone: "Nowhere/Atlantis"}
	assert.Equal(t, time.UTC, c.Location())
}
