package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	TierCacheTTL     = 5 * time.Minute  // Catalog changes only on admin edits
	LocationCacheTTL = 30 * time.Minute // Service areas are fixed reference data
)

// Key prefixes
const (
	tierCachePrefix   = "cache:tier:"
	tierListCacheKey  = "cache:tiers:all"
	locationsCacheKey = "cache:locations:all"
)

// CachedTier represents a cached service tier entry.
type CachedTier struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   string   `json:"base_price"` // decimal string, exact
	Features    []string `json:"features"`
}

// CachedLocation represents a cached service area.
type CachedLocation struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Kind    string  `json:"kind"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// GetTier retrieves a service tier from cache. A nil result means cache miss.
func (s *CacheStore) GetTier(ctx context.Context, tierID string) (*CachedTier, error) {
	key := tierCachePrefix + tierID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var tier CachedTier
	if err := json.Unmarshal(data, &tier); err != nil {
		return nil, err
	}
	return &tier, nil
}

// SetTier stores a service tier in cache.
func (s *CacheStore) SetTier(ctx context.Context, tier *CachedTier) error {
	key := tierCachePrefix + tier.ID
	data, err := json.Marshal(tier)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, TierCacheTTL).Err()
}

// InvalidateTier removes a service tier from cache and drops the list entry.
func (s *CacheStore) InvalidateTier(ctx context.Context, tierID string) error {
	return s.client.Del(ctx, tierCachePrefix+tierID, tierListCacheKey).Err()
}

// GetTierList retrieves the full catalog from cache. Nil means cache miss.
func (s *CacheStore) GetTierList(ctx context.Context) ([]*CachedTier, error) {
	data, err := s.client.Get(ctx, tierListCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tiers []*CachedTier
	if err := json.Unmarshal(data, &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// SetTierList stores the full catalog in cache.
func (s *CacheStore) SetTierList(ctx context.Context, tiers []*CachedTier) error {
	data, err := json.Marshal(tiers)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, tierListCacheKey, data, TierCacheTTL).Err()
}

// GetLocations retrieves the service-area list from cache. Nil means miss.
func (s *CacheStore) GetLocations(ctx context.Context) ([]*CachedLocation, error) {
	data, err := s.client.Get(ctx, locationsCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var locations []*CachedLocation
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SetLocations stores the service-area list in cache.
func (s *CacheStore) SetLocations(ctx context.Context, locations []*CachedLocation) error {
	data, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, locationsCacheKey, data, LocationCacheTTL).Err()
}
