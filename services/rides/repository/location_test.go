package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/database"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*RideRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := NewRideRepository(&models.Config{}, nil, &database.RedisClient{Client: client})
	return repo, mr
}

func TestStoreAndGetLastLocation(t *testing.T) {
	repo, mr := newRedisRepo(t)

	point := models.TrailPoint{
		Latitude:  -6.2088,
		Longitude: 106.8456,
		Heading:   90,
		Timestamp: time.Unix(1700000000, 0),
	}

	err := repo.StoreLocation(context.Background(), "ride-1", "driver-1", point)
	require.NoError(t, err)

	got, err := repo.GetLastLocation(context.Background(), "ride-1")
	require.NoError(t, err)
	assert.InDelta(t, point.Latitude, got.Latitude, 0.000001)
	assert.InDelta(t, point.Longitude, got.Longitude, 0.000001)
	assert.InDelta(t, point.Heading, got.Heading, 0.000001)
	assert.Equal(t, point.Timestamp.Unix(), got.Timestamp.Unix())

	// Hash carries a geohash for downstream consumers and a TTL
	key := fmt.Sprintf(constants.KeyRideLocation, "ride-1")
	hash := mr.HGet(key, constants.FieldGeohash)
	assert.NotEmpty(t, hash)
	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestStoreLocation_UpdatesDriverGeoSet(t *testing.T) {
	repo, mr := newRedisRepo(t)

	point := models.TrailPoint{Latitude: -6.2088, Longitude: 106.8456, Timestamp: time.Now()}
	require.NoError(t, repo.StoreLocation(context.Background(), "ride-1", "driver-1", point))

	assert.True(t, mr.Exists(constants.KeyDriverGeo))

	require.NoError(t, repo.RemoveDriverGeo(context.Background(), "driver-1"))

	members, _ := mr.ZMembers(constants.KeyDriverGeo)
	assert.NotContains(t, members, "driver-1")
}

func TestGetLastLocation_NoData(t *testing.T) {
	repo, _ := newRedisRepo(t)

	_, err := repo.GetLastLocation(context.Background(), "unknown")
	assert.Error(t, err)
}

func TestStoreLocation_OverwritesPrevious(t *testing.T) {
	repo, _ := newRedisRepo(t)

	first := models.TrailPoint{Latitude: -6.2000, Longitude: 106.8000, Timestamp: time.Now()}
	second := models.TrailPoint{Latitude: -6.2100, Longitude: 106.8100, Timestamp: time.Now()}

	require.NoError(t, repo.StoreLocation(context.Background(), "ride-1", "driver-1", first))
	require.NoError(t, repo.StoreLocation(context.Background(), "ride-1", "driver-1", second))

	got, err := repo.GetLastLocation(context.Background(), "ride-1")
	require.NoError(t, err)
	assert.InDelta(t, second.Latitude, got.Latitude, 0.000001)
}
