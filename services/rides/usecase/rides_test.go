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

func TestRideStart_RegistersRide(t *testing.T) {
	uc, reg, m := newTestUC(t)

	event := &models.RideStartEvent{
		RideID:      "ride-1",
		DriverID:    "driver-1",
		DriverName:  "Budi",
		Pickup:      &models.GeoPoint{Latitude: -6.2000, Longitude: 106.8000},
		Destination: &models.GeoPoint{Latitude: -6.2450, Longitude: 106.8000},
		Route: []models.GeoPoint{
			{Latitude: -6.2000, Longitude: 106.8000},
			{Latitude: -6.2450, Longitude: 106.8000},
		},
		Distance: 5000,
		Duration: 600,
		Capacity: 4,
	}

	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 4).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(constants.RideRoom("ride-1"), constants.EventRideInfo, gomock.Any())
	m.broadcast.EXPECT().BroadcastRoom(constants.DriverRoom("driver-1"), constants.EventRideInfo, gomock.Any())

	ride, err := uc.RideStart(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusActive, ride.Status)
	assert.Equal(t, 4, ride.Capacity)
	assert.False(t, ride.StartTime.IsZero())

	stored, ok := reg.Get("ride-1")
	require.True(t, ok)
	assert.Equal(t, "driver-1", stored.DriverID)
}

func TestRideStart_ResolvesCapacityFromDriverProfile(t *testing.T) {
	uc, reg, m := newTestUC(t)

	event := &models.RideStartEvent{RideID: "ride-1", DriverID: "driver-1"}

	m.repo.EXPECT().GetVehicleCapacity(gomock.Any(), "driver-1").Return(6, nil)
	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 6).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	ride, err := uc.RideStart(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 6, ride.Capacity)

	stored, _ := reg.Get("ride-1")
	assert.Equal(t, 6, stored.Capacity)
}

func TestRideStart_FallsBackToDefaultCapacity(t *testing.T) {
	uc, _, m := newTestUC(t)

	event := &models.RideStartEvent{RideID: "ride-1", DriverID: "driver-1"}

	m.repo.EXPECT().GetVehicleCapacity(gomock.Any(), "driver-1").Return(0, nil)
	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 4).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	ride, err := uc.RideStart(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 4, ride.Capacity)
}

func TestRideStart_FillsMissingEstimatesFromPlanner(t *testing.T) {
	uc, _, m := newTestUC(t)

	event := &models.RideStartEvent{
		RideID:      "ride-1",
		DriverID:    "driver-1",
		Pickup:      &models.GeoPoint{Latitude: -6.2000, Longitude: 106.8000},
		Destination: &models.GeoPoint{Latitude: -6.2450, Longitude: 106.8000},
		Capacity:    4,
	}

	plan := &models.RoutePlan{
		DistanceMeters:  5200,
		DurationSeconds: 780,
		Polyline: []models.GeoPoint{
			{Latitude: -6.2000, Longitude: 106.8000},
			{Latitude: -6.2450, Longitude: 106.8000},
		},
	}
	m.planner.EXPECT().PlanRoute(gomock.Any(), *event.Pickup, *event.Destination).Return(plan)
	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 4).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	ride, err := uc.RideStart(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 5200.0, ride.DistanceMeters)
	assert.Equal(t, 780.0, ride.DurationSeconds)
	assert.Len(t, ride.Route, 2)
}

func TestRideStart_KeepsStraightLineEstimateOutOfRoute(t *testing.T) {
	uc, _, m := newTestUC(t)

	event := &models.RideStartEvent{
		RideID:      "ride-1",
		DriverID:    "driver-1",
		Pickup:      &models.GeoPoint{Latitude: -6.2000, Longitude: 106.8000},
		Destination: &models.GeoPoint{Latitude: -6.2450, Longitude: 106.8000},
		Capacity:    4,
	}

	// Fallback plans carry distance and duration but no road geometry
	plan := &models.RoutePlan{
		DistanceMeters:  5000,
		DurationSeconds: 625,
		Polyline:        []models.GeoPoint{*event.Pickup, *event.Destination},
		Estimated:       true,
	}
	m.planner.EXPECT().PlanRoute(gomock.Any(), gomock.Any(), gomock.Any()).Return(plan)
	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 4).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	ride, err := uc.RideStart(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, ride.DistanceMeters)
	assert.Empty(t, ride.Route)
}

func TestRideStart_InvalidInput(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.RideStart(context.Background(), &models.RideStartEvent{DriverID: "driver-1"})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)

	_, err = uc.RideStart(context.Background(), &models.RideStartEvent{
		RideID:   "ride-1",
		DriverID: "driver-1",
		Pickup:   &models.GeoPoint{Latitude: 95, Longitude: 106.8},
	})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)
}

func TestRideEnd(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.broadcast.EXPECT().BroadcastRoom(constants.RideRoom("ride-1"), constants.EventRideEnded, gomock.Any())
	m.broadcast.EXPECT().BroadcastRoom(constants.DriverRoom("driver-1"), constants.EventRideEnded, gomock.Any())
	m.broadcast.EXPECT().CloseRoom(constants.RideRoom("ride-1"))
	m.repo.EXPECT().RemoveDriverGeo(gomock.Any(), "driver-1").Return(nil)
	m.gw.EXPECT().PublishRideEnded(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RideEnd(context.Background(), "ride-1")
	require.NoError(t, err)

	_, ok := reg.Get("ride-1")
	assert.False(t, ok)
}

func TestRideCancel(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.broadcast.EXPECT().BroadcastRoom(constants.RideRoom("ride-1"), constants.EventRideCancelled, gomock.Any())
	m.broadcast.EXPECT().BroadcastRoom(constants.DriverRoom("driver-1"), constants.EventRideCancelled, gomock.Any())
	m.broadcast.EXPECT().CloseRoom(constants.RideRoom("ride-1"))
	m.repo.EXPECT().RemoveDriverGeo(gomock.Any(), "driver-1").Return(nil)
	m.gw.EXPECT().PublishRideCancelled(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RideCancel(context.Background(), "ride-1")
	require.NoError(t, err)

	_, ok := reg.Get("ride-1")
	assert.False(t, ok)
}

func TestRideEnd_NotActive(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.RideEnd(context.Background(), "gone")
	assert.ErrorIs(t, err, rides.ErrRideNotActive)
}

func TestSubscribe(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.broadcast.EXPECT().JoinRoom(constants.RideRoom("ride-1"), "user-1")

	ride, err := uc.Subscribe(context.Background(), "user-1", "ride-1")
	require.NoError(t, err)
	assert.Equal(t, "ride-1", ride.RideID)
}

func TestSubscribe_NotActive(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.Subscribe(context.Background(), "user-1", "gone")
	assert.ErrorIs(t, err, rides.ErrRideNotActive)
}
