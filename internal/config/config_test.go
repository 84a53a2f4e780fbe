package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "session_id", cfg.Engine.SessionCookieName)
	assert.Equal(t, "demo_mode", cfg.Engine.DemoModeCookieName)
	assert.False(t, cfg.Engine.DemoModeDefault)
	assert.Equal(t, 80, cfg.Engine.BudgetWarningPercent)
	assert.Equal(t, 30*time.Second, cfg.Engine.AggregateCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	require.NotNil(t, cfg.JWT.PublicKey)
	require.NotNil(t, cfg.JWT.PrivateKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DEMO_MODE_DEFAULT", "true")
	t.Setenv("BUDGET_WARNING_PERCENT", "90")
	t.Setenv("AGGREGATE_CACHE_TTL", "5s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("STORE_MAX_FAILURES", "not-a-number")

	cfg := Load()

	assert.True(t, cfg.Engine.DemoModeDefault)
	assert.Equal(t, 90, cfg.Engine.BudgetWarningPercent)
	assert.Equal(t, 5*time.Second, cfg.Engine.AggregateCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 5, cfg.Engine.StoreMaxFailures, "invalid values fall back to the default")
}

func TestLoad_PublicKeyOnly(t *testing.T) {
	_, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PUBLIC_KEY", encoded)
	t.Setenv("JWT_PRIVATE_KEY", "")

	cfg := Load()

	assert.Nil(t, cfg.JWT.PrivateKey)
	require.NotNil(t, cfg.JWT.PublicKey)
	assert.Equal(t, 0, cfg.JWT.PublicKey.N.Cmp(publicKey.N))
}

func TestServerConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&ServerConfig{LogLevel: "DEBUG"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&ServerConfig{LogLevel: "warning"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&ServerConfig{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&ServerConfig{}).SlogLevel())
}
