package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
)

const (
	// locationTTL is how long ride location data stays in Redis; long
	// enough for post-ride history analysis by downstream services
	locationTTL = 24 * time.Hour

	// geohashPrecision gives cells of roughly 150 m, enough for the
	// downstream nearby queries that read this cache
	geohashPrecision = 7
)

// StoreLocation caches the latest position of a ride in Redis and keeps the
// driver geo set current
func (r *RideRepo) StoreLocation(ctx context.Context, rideID, driverID string, point models.TrailPoint) error {
	locationKey := fmt.Sprintf(constants.KeyRideLocation, rideID)
	geoPoint := models.GeoPoint{Latitude: point.Latitude, Longitude: point.Longitude}

	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(point.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(point.Longitude, 'f', -1, 64),
		constants.FieldHeading:   strconv.FormatFloat(point.Heading, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(point.Timestamp.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(geoPoint, geohashPrecision),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store location update: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, point.Longitude, point.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to update driver geo set: %w", err)
	}

	return nil
}

// GetLastLocation gets the last cached location for a ride
func (r *RideRepo) GetLastLocation(ctx context.Context, rideID string) (*models.TrailPoint, error) {
	locationKey := fmt.Sprintf(constants.KeyRideLocation, rideID)

	values, err := r.redisClient.HMGet(ctx, locationKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldHeading,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}

	if len(values) != 4 || values[0] == "" || values[1] == "" {
		return nil, fmt.Errorf("no location data found for ride %s", rideID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	point := &models.TrailPoint{Latitude: lat, Longitude: lng}
	if values[2] != "" {
		if heading, err := strconv.ParseFloat(values[2], 64); err == nil {
			point.Heading = heading
		}
	}
	if values[3] != "" {
		if ts, err := strconv.ParseInt(values[3], 10, 64); err == nil {
			point.Timestamp = time.Unix(ts, 0)
		}
	}

	return point, nil
}

// RemoveDriverGeo drops a driver from the geo set when their ride ends
func (r *RideRepo) RemoveDriverGeo(ctx context.Context, driverID string) error {
	return r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID)
}
