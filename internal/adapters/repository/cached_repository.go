package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/logger"
)

const (
	entriesCacheKey = "kcal:entries"
	weightsCacheKey = "kcal:weights"
	presetsCacheKey = "kcal:presets"
)

// listCache is a read-through cache for whole collections. Redis failures are
// logged and fall through to the wrapped store; they never fail a request.
type listCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func (c listCache) invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
}

func cachedList[T any](ctx context.Context, c listCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var items []T
		if err := json.Unmarshal(val, &items); err == nil {
			return items, nil
		}

		c.log.WarnContext(ctx, "corrupted cache entry, cleaning up", "key", key)
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.WarnContext(ctx, "cache write failed", "key", key, "error", err)
		}
	}

	return items, nil
}

var (
	_ domain.EntryRepository  = (*CachedEntryRepository)(nil)
	_ domain.WeightRepository = (*CachedWeightRepository)(nil)
	_ domain.PresetRepository = (*CachedPresetRepository)(nil)
)

type CachedEntryRepository struct {
	next  domain.EntryRepository
	cache listCache
}

func NewCachedEntryRepository(next domain.EntryRepository, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedEntryRepository {
	return &CachedEntryRepository{
		next:  next,
		cache: listCache{rdb: rdb, ttl: ttl, log: log.WithComponent("cache")},
	}
}

func (r *CachedEntryRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	if err := r.next.Create(ctx, entry); err != nil {
		return err
	}
	r.cache.invalidate(ctx, entriesCacheKey)
	return nil
}

func (r *CachedEntryRepository) List(ctx context.Context) ([]domain.LogEntry, error) {
	return cachedList(ctx, r.cache, entriesCacheKey, r.next.List)
}

type CachedWeightRepository struct {
	next  domain.WeightRepository
	cache listCache
}

func NewCachedWeightRepository(next domain.WeightRepository, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedWeightRepository {
	return &CachedWeightRepository{
		next:  next,
		cache: listCache{rdb: rdb, ttl: ttl, log: log.WithComponent("cache")},
	}
}

func (r *CachedWeightRepository) Upsert(ctx context.Context, s *domain.WeightSample) error {
	if err := r.next.Upsert(ctx, s); err != nil {
		return err
	}
	r.cache.invalidate(ctx, weightsCacheKey)
	return nil
}

func (r *CachedWeightRepository) List(ctx context.Context) ([]domain.WeightSample, error) {
	return cachedList(ctx, r.cache, weightsCacheKey, r.next.List)
}

type CachedPresetRepository struct {
	next  domain.PresetRepository
	cache listCache
}

func NewCachedPresetRepository(next domain.PresetRepository, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedPresetRepository {
	return &CachedPresetRepository{
		next:  next,
		cache: listCache{rdb: rdb, ttl: ttl, log: log.WithComponent("cache")},
	}
}

func (r *CachedPresetRepository) Create(ctx context.Context, p *domain.FoodPreset) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.cache.invalidate(ctx, presetsCacheKey)
	return nil
}

func (r *CachedPresetRepository) GetByID(ctx context.Context, id string) (*domain.FoodPreset, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedPresetRepository) List(ctx context.Context) ([]domain.FoodPreset, error) {
	return cachedList(ctx, r.cache, presetsCacheKey, r.next.List)
}

func (r *CachedPresetRepository) Update(ctx context.Context, p *domain.FoodPreset) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.cache.invalidate(ctx, presetsCacheKey)
	return nil
}

func (r *CachedPresetRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.invalidate(ctx, presetsCacheKey)
	return nil
}
