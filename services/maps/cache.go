package maps

import (
	"context"
	"encoding/json"
	"fmt"

	"parkwise/models"

	"go.uber.org/zap"
)

// nearbyCacheKey buckets coordinates to four decimal places (~11m), so
// repeated lookups around the same point share one Places response.
func nearbyCacheKey(lat, lng float64) string {
	return fmt.Sprintf("places:%.4f:%.4f", lat, lng)
}

// cachedNearby returns a cached lot list when the cache is configured and
// holds a fresh entry. Cache failures only log; the caller falls through to
// the Places API.
func (c *Client) cachedNearby(ctx context.Context, lat, lng float64) ([]models.ParkingLot, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, nearbyCacheKey(lat, lng)).Result()
	if err != nil {
		return nil, false
	}

	var lots []models.ParkingLot
	if err := json.Unmarshal([]byte(raw), &lots); err != nil {
		c.logger.Warn("Failed to decode cached places entry", zap.Error(err))
		return nil, false
	}
	return lots, true
}

func (c *Client) storeNearby(ctx context.Context, lat, lng float64, lots []models.ParkingLot) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(lots)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, nearbyCacheKey(lat, lng), raw, nearbyCacheTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache places entry", zap.Error(err))
	}
}
