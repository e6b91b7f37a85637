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

var testSearch = &models.RouteSearchRequest{
	FromLat: -6.2000,
	FromLng: 106.8000,
	ToLat:   -6.2450,
	ToLng:   106.8000,
}

func TestSearch_NoActiveRides(t *testing.T) {
	uc, _, _ := newTestUC(t)

	result, err := uc.Search(context.Background(), "user-1", testSearch)
	require.NoError(t, err)
	assert.True(t, result.None)
	assert.Empty(t, result.Matches)
}

func TestSearch_FindsNearbyRide(t *testing.T) {
	uc, reg, _ := newTestUC(t)

	reg.Upsert(&models.ActiveRide{
		RideID:   "ride-1",
		DriverID: "driver-1",
		Status:   models.RideStatusActive,
		Pickup:   &models.GeoPoint{Latitude: -6.2010, Longitude: 106.8000},
	})

	result, err := uc.Search(context.Background(), "user-1", testSearch)
	require.NoError(t, err)
	assert.False(t, result.None)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "ride-1", result.Matches[0].Ride.RideID)
	assert.Equal(t, models.MatchKindDirect, result.Matches[0].Kind)
}

func TestSearch_InvalidCoordinates(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.Search(context.Background(), "user-1", &models.RouteSearchRequest{
		FromLat: 95, FromLng: 106.8, ToLat: -6.2, ToLng: 106.8,
	})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)
}

func TestSearch_RematchPushedOnRideStart(t *testing.T) {
	uc, _, m := newTestUC(t)

	// Register the searcher first; the registry is empty so the answer is
	// the explicit no-matches signal
	result, err := uc.Search(context.Background(), "user-1", testSearch)
	require.NoError(t, err)
	assert.True(t, result.None)

	// A ride starting near the searcher's origin triggers a push without a
	// new request
	event := &models.RideStartEvent{
		RideID:   "ride-1",
		DriverID: "driver-1",
		Pickup:   &models.GeoPoint{Latitude: -6.2010, Longitude: 106.8000},
		Capacity: 4,
	}

	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 4).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.broadcast.EXPECT().NotifyClient("user-1", constants.EventRouteMatches, gomock.Any()).
		Do(func(_, _ string, data interface{}) {
			pushed, ok := data.(*models.SearchResult)
			require.True(t, ok)
			require.Len(t, pushed.Matches, 1)
			assert.Equal(t, "ride-1", pushed.Matches[0].Ride.RideID)
		})

	_, err = uc.RideStart(context.Background(), event)
	require.NoError(t, err)
}

func TestSearch_RematchPushedOnRideEnd(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")
	ride, _ := reg.Get("ride-1")
	ride.Pickup = &models.GeoPoint{Latitude: -6.2010, Longitude: 106.8000}
	reg.Upsert(ride)

	result, err := uc.Search(context.Background(), "user-1", testSearch)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	// The only candidate ending flips the searcher back to no-matches
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.broadcast.EXPECT().CloseRoom(gomock.Any())
	m.repo.EXPECT().RemoveDriverGeo(gomock.Any(), "driver-1").Return(nil)
	m.gw.EXPECT().PublishRideEnded(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().NotifyClient("user-1", constants.EventRouteNoMatches, gomock.Any())

	require.NoError(t, uc.RideEnd(context.Background(), "ride-1"))
}

func TestReleaseSearcher_StopsPushes(t *testing.T) {
	uc, _, m := newTestUC(t)

	result, err := uc.Search(context.Background(), "user-1", testSearch)
	require.NoError(t, err)
	assert.True(t, result.None)

	uc.ReleaseSearcher("user-1")

	event := &models.RideStartEvent{
		RideID:   "ride-1",
		DriverID: "driver-1",
		Pickup:   &models.GeoPoint{Latitude: -6.2010, Longitude: 106.8000},
		Capacity: 4,
	}

	m.repo.EXPECT().EnsureBooking(gomock.Any(), "ride-1", 4).Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	// No NotifyClient expectation: a released searcher gets nothing

	_, err = uc.RideStart(context.Background(), event)
	require.NoError(t, err)
}
