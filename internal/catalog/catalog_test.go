package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureSource(t *testing.T) {
	src := NewFixtureSource()
	ctx := context.Background()

	all, err := src.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)

	a, err := src.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Coffee Meetup", a.Title)

	_, err = src.Get(ctx, "404")
	assert.ErrorIs(t, err, model.ErrActivityNotFound)
}

func TestMapSource(t *testing.T) {
	acts, err := MapSource(context.Background(), NewFixtureSource())
	require.NoError(t, err)
	require.Len(t, acts, 3)
	for _, a := range acts {
		assert.True(t, a.HasCoordinates())
	}
}

// memCache stores JSON like the Redis cache does.
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data[key] = raw
	c.mu.Unlock()
	return nil
}

type countingSource struct {
	Source
	lists atomic.Int32
	gets  atomic.Int32
}

func (s *countingSource) List(ctx context.Context) ([]model.Activity, error) {
	s.lists.Add(1)
	return s.Source.List(ctx)
}

func (s *countingSource) Get(ctx context.Context, id string) (model.Activity, error) {
	s.gets.Add(1)
	return s.Source.Get(ctx, id)
}

func TestCachedSourceList(t *testing.T) {
	next := &countingSource{Source: NewFixtureSource()}
	src := NewCachedSource(next, newMemCache())
	ctx := context.Background()

	first, err := src.List(ctx)
	require.NoError(t, err)
	second, err := src.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), next.lists.Load())
	require.NotNil(t, second[0].Lat)
	assert.InDelta(t, 37.5665, *second[0].Lat, 1e-9)
}

func TestCachedSourceGet(t *testing.T) {
	next := &countingSource{Source: NewFixtureSource()}
	src := NewCachedSource(next, newMemCache())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		a, err := src.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Weekly Soccer Match", a.Title)
	}
	assert.Equal(t, int32(1), next.gets.Load())

	_, err := src.Get(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrActivityNotFound)
}

func TestCachedSourceCacheErrorFallsThrough(t *testing.T) {
	cache := newMemCache()
	cache.failGet = true
	src := NewCachedSource(NewFixtureSource(), cache)

	all, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

// ctxSource fails like a real database call would once ctx is done.
type ctxSource struct {
	Source
}

func (s ctxSource) List(ctx context.Context) ([]model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Source.List(ctx)
}

func (s ctxSource) Get(ctx context.Context, id string) (model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return model.Activity{}, err
	}
	return s.Source.Get(ctx, id)
}

func TestCachedSourceLoadIgnoresCallerCancel(t *testing.T) {
	src := NewCachedSource(ctxSource{Source: NewFixtureSource()}, newMemCache())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	all, err := src.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	a, err := src.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Study Group - Java", a.Title)
}
