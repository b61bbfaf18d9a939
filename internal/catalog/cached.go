package catalog

import (
	"context"
	"log/slog"

	"github.com/connectmate/connectmate_api/internal/model"
	"golang.org/x/sync/singleflight"
)

// Cache is the cache-aside store used by CachedSource.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// CachedSource fronts another Source with a cache. Cache failures never fail
// a read. A shared load is detached from the caller that started it, so one
// cancelled request does not fail the others waiting on the same key.
type CachedSource struct {
	next  Source
	cache Cache
	group singleflight.Group
}

func NewCachedSource(next Source, cache Cache) *CachedSource {
	return &CachedSource{next: next, cache: cache}
}

const listKey = "activities:list"

func (s *CachedSource) List(ctx context.Context) ([]model.Activity, error) {
	var cached []model.Activity
	found, err := s.cache.Get(ctx, listKey, &cached)
	if err != nil {
		slog.WarnContext(ctx, "catalog cache read failed", "key", listKey, "error", err)
	}
	if found {
		return cached, nil
	}

	val, err, _ := s.group.Do(listKey, func() (any, error) {
		return s.next.List(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	activities := val.([]model.Activity)

	if err := s.cache.Set(ctx, listKey, activities); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", "key", listKey, "error", err)
	}
	return model.CloneActivities(activities), nil
}

func (s *CachedSource) Get(ctx context.Context, id string) (model.Activity, error) {
	key := "activities:id:" + id

	var cached model.Activity
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
	}
	if found {
		return cached, nil
	}

	val, err, _ := s.group.Do(key, func() (any, error) {
		return s.next.Get(context.WithoutCancel(ctx), id)
	})
	if err != nil {
		return model.Activity{}, err
	}
	a := val.(model.Activity)

	if err := s.cache.Set(ctx, key, a); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
	return a.Clone(), nil
}
