package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "github.com/pulsewatch/pulsewatch/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.AppAddr)
	require.Equal(t, "localhost:27017", cfg.MongoHost)
	require.Equal(t, "pulsewatch", cfg.MongoDB)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
}
