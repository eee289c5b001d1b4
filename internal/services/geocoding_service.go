package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// GeocodingService resolves pincodes and area names to coordinates from
// a static table, with resolved lookups cached in Redis.
type GeocodingService struct {
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewGeocodingService creates a table-backed geocoder. A nil Redis
// client disables caching.
func NewGeocodingService(redisClient *redis.Client, cacheTTL time.Duration) *GeocodingService {
	return &GeocodingService{redisClient: redisClient, cacheTTL: cacheTTL}
}

// Resolve implements domain.Geocoder.
func (g *GeocodingService) Resolve(ctx context.Context, query string) (*domain.Coordinates, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, domain.NewValidationError("Address or pincode is required")
	}

	if cached := g.fromCache(ctx, normalized); cached != nil {
		return cached, nil
	}

	coords, ok := lookupPlace(normalized)
	if !ok {
		return nil, domain.ErrGeocodeUnknownPlace
	}

	g.toCache(ctx, normalized, coords)
	return &coords, nil
}

func lookupPlace(normalized string) (domain.Coordinates, bool) {
	if coords, ok := pincodeCoords[normalized]; ok {
		return coords, true
	}
	// An area query like "hsr layout" still hits the "hsr" entry.
	for place, coords := range pincodeCoords {
		if !isDigits(place) && strings.Contains(normalized, place) {
			return coords, true
		}
	}
	if len(normalized) == 6 && isDigits(normalized) && strings.HasPrefix(normalized, "560") {
		return bengaluruCenter, true
	}
	return domain.Coordinates{}, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func geocodeCacheKey(query string) string { return "geo:" + query }

func (g *GeocodingService) fromCache(ctx context.Context, query string) *domain.Coordinates {
	if g.redisClient == nil {
		return nil
	}
	data, err := g.redisClient.Get(ctx, geocodeCacheKey(query)).Result()
	if err != nil {
		return nil
	}
	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(data), &coords); err != nil {
		return nil
	}
	return &coords
}

func (g *GeocodingService) toCache(ctx context.Context, query string, coords domain.Coordinates) {
	if g.redisClient == nil {
		return
	}
	data, err := json.Marshal(coords)
	if err != nil {
		return
	}
	g.redisClient.Set(ctx, geocodeCacheKey(query), data, g.cacheTTL)
}
