package deps

import (
	"context"
	"testing"
	"time"

	"github.com/connectmate/connectmate_api/config"
	"github.com/connectmate/connectmate_api/internal/mapview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutInfrastructure(t *testing.T) {
	cfg := &config.Config{MapSDKTimeout: time.Second, CacheTTL: time.Minute}

	d := New(context.Background(), cfg)
	t.Cleanup(d.Close)

	assert.Nil(t, d.DB)
	assert.Nil(t, d.Cache)
	assert.Nil(t, d.Broker)

	all, err := d.Catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Len(t, d.Map.Activities(), 3)
	assert.Len(t, d.Chat.Rooms(), 3)
}

func TestStartFallsBackWithoutMapKey(t *testing.T) {
	d := New(context.Background(), &config.Config{MapSDKTimeout: time.Second})
	t.Cleanup(d.Close)

	d.Start(context.Background())

	select {
	case <-d.Map.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("map never left Loading")
	}
	assert.Equal(t, mapview.FallbackActive, d.Map.State())
}

func TestStartPumpsChatToWebSocketHub(t *testing.T) {
	d := New(context.Background(), &config.Config{MapSDKTimeout: time.Second})
	d.Start(context.Background())
	t.Cleanup(d.Close)

	assert.Len(t, d.unsubscribe, 3)

	_, err := d.Session.Send(context.Background(), "Hello")
	require.NoError(t, err)
}
