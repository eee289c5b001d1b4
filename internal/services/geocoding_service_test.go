package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

func TestGeocodingService_Resolve(t *testing.T) {
	svc := NewGeocodingService(nil, 0)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  domain.Coordinates
	}{
		{"pincode", "560038", domain.Coordinates{Lat: 12.9784, Lng: 77.6408}},
		{"area name", "Koramangala", domain.Coordinates{Lat: 12.9352, Lng: 77.6245}},
		{"area with extra words", "HSR Layout", domain.Coordinates{Lat: 12.9121, Lng: 77.6446}},
		{"unmapped city pincode falls back to center", "560001", bengaluruCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := svc.Resolve(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *coords)
		})
	}
}

func TestGeocodingService_ResolveUnknown(t *testing.T) {
	svc := NewGeocodingService(nil, 0)

	_, err := svc.Resolve(context.Background(), "110001")
	assert.ErrorIs(t, err, domain.ErrGeocodeUnknownPlace)

	_, err = svc.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestGeocodingService_CachesLookups(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewGeocodingService(client, time.Hour)
	ctx := context.Background()

	coords, err := svc.Resolve(ctx, "560038")
	require.NoError(t, err)
	assert.True(t, mr.Exists("geo:560038"))

	again, err := svc.Resolve(ctx, " 560038 ")
	require.NoError(t, err)
	assert.Equal(t, *coords, *again)
}
