package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateLocation_AppendsTrailAndBroadcasts(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.repo.EXPECT().StoreLocation(gomock.Any(), "ride-1", "driver-1", gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(constants.RideRoom("ride-1"), constants.EventRideLocation, gomock.Any()).
		Do(func(_, _ string, data interface{}) {
			payload, ok := data.(models.LocationBroadcast)
			require.True(t, ok)
			assert.Equal(t, "ride-1", payload.RideID)
			assert.Equal(t, -6.2010, payload.Latitude)
		})

	err := uc.UpdateLocation(context.Background(), &models.LocationUpdate{
		RideID:    "ride-1",
		DriverID:  "driver-1",
		Latitude:  -6.2010,
		Longitude: 106.8010,
		Heading:   45,
	})
	require.NoError(t, err)

	ride, _ := reg.Get("ride-1")
	require.NotNil(t, ride.Last)
	assert.Equal(t, -6.2010, ride.Last.Latitude)
	assert.Len(t, ride.Trail, 1)
	assert.NotNil(t, ride.StartLocation)
}

func TestUpdateLocation_FillsDriverIDFromRegistry(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.repo.EXPECT().StoreLocation(gomock.Any(), "ride-1", "driver-1", gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any())

	err := uc.UpdateLocation(context.Background(), &models.LocationUpdate{
		RideID:    "ride-1",
		Latitude:  -6.2010,
		Longitude: 106.8010,
	})
	require.NoError(t, err)
}

func TestUpdateLocation_RideNotActive(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.UpdateLocation(context.Background(), &models.LocationUpdate{
		RideID:    "gone",
		Latitude:  -6.2,
		Longitude: 106.8,
	})
	assert.ErrorIs(t, err, rides.ErrRideNotActive)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	uc, reg, _ := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	err := uc.UpdateLocation(context.Background(), &models.LocationUpdate{
		RideID:    "ride-1",
		Latitude:  95,
		Longitude: 106.8,
	})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)

	err = uc.UpdateLocation(context.Background(), &models.LocationUpdate{
		Latitude:  -6.2,
		Longitude: 106.8,
	})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)
}

func TestUpdateLocation_SurvivesCacheFailure(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	// Redis being down degrades the cache, not the live stream
	m.repo.EXPECT().StoreLocation(gomock.Any(), "ride-1", "driver-1", gomock.Any()).Return(assert.AnError)
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any())

	err := uc.UpdateLocation(context.Background(), &models.LocationUpdate{
		RideID:    "ride-1",
		DriverID:  "driver-1",
		Latitude:  -6.2010,
		Longitude: 106.8010,
	})
	assert.NoError(t, err)
}
