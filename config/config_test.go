package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DSN", "CACHE_TTL", "MAP_SDK_TIMEOUT", "KAKAO_MAP_APP_KEY", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.MapSDKTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.Dsn)
	assert.Empty(t, cfg.KakaoMapAppKey)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAP_SDK_TIMEOUT", "250ms")
	t.Setenv("KAKAO_REST_API_KEY", "rest")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.MapSDKTimeout)
	assert.Equal(t, "rest", cfg.KakaoRESTAPIKey)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseBadValue(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := Parse()
	assert.Error(t, err)
}
