package db

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/models"
	"github.com/wuquf/wuquf-backend/pkg/cache"
)

// CachedSpotRepository serves GetByID from a cache and invalidates the entry
// on every write. Cache failures are logged and fall through to the store.
//
// A read that overlaps a write made through the same repository does not
// repopulate the cache. Writes from other processes are only visible once
// the entry's TTL lapses.
type CachedSpotRepository struct {
	SpotRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

// NewCachedSpotRepository wraps next with a read-through cache keyed "spot:<id>".
func NewCachedSpotRepository(next SpotRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) *CachedSpotRepository {
	return &CachedSpotRepository{
		SpotRepository: next,
		cache:          c,
		ttl:            ttl,
		logger:         logger,
		gens:           map[string]uint64{},
	}
}

func spotCacheKey(spotID string) string {
	return "spot:" + spotID
}

func (r *CachedSpotRepository) GetByID(ctx context.Context, spotID string) (*models.ParkingSpot, error) {
	key := spotCacheKey(spotID)
	raw, err := r.cache.Get(ctx, key)
	if err == nil {
		var spot models.ParkingSpot
		if jsonErr := json.Unmarshal([]byte(raw), &spot); jsonErr == nil {
			return &spot, nil
		}
		r.logger.Warn("Discarding undecodable cached spot", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		r.logger.Warn("Spot cache read failed", zap.String("key", key), zap.Error(err))
	}

	gen := r.generation(spotID)
	spot, err := r.SpotRepository.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if encoded, jsonErr := json.Marshal(spot); jsonErr == nil {
		r.fill(ctx, spotID, gen, string(encoded))
	}
	return spot, nil
}

func (r *CachedSpotRepository) generation(spotID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gens[spotID]
}

// fill caches value unless the spot was invalidated after gen was taken.
func (r *CachedSpotRepository) fill(ctx context.Context, spotID string, gen uint64, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gens[spotID] != gen {
		return
	}
	key := spotCacheKey(spotID)
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		r.logger.Warn("Spot cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedSpotRepository) UpdateWord(ctx context.Context, spotID, word string) error {
	defer r.invalidate(ctx, spotID)
	return r.SpotRepository.UpdateWord(ctx, spotID, word)
}

func (r *CachedSpotRepository) SetReserve(ctx context.Context, spotID, userID string) error {
	defer r.invalidate(ctx, spotID)
	return r.SpotRepository.SetReserve(ctx, spotID, userID)
}

func (r *CachedSpotRepository) Delete(ctx context.Context, spotID string) error {
	defer r.invalidate(ctx, spotID)
	return r.SpotRepository.Delete(ctx, spotID)
}

func (r *CachedSpotRepository) invalidate(ctx context.Context, spotID string) {
	r.mu.Lock()
	r.gens[spotID]++
	r.mu.Unlock()
	if err := r.cache.Delete(ctx, spotCacheKey(spotID)); err != nil {
		r.logger.Warn("Spot cache invalidation failed", zap.String("spotID", spotID), zap.Error(err))
	}
}
