package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
	"github.com/ridelink/ridelink/services/rides/mocks"
	"github.com/ridelink/ridelink/services/rides/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ucMocks struct {
	repo      *mocks.MockRideRepo
	gw        *mocks.MockRideGW
	planner   *mocks.MockRoutePlanner
	broadcast *mocks.MockBroadcaster
}

func newTestUC(t *testing.T) (*RideUC, *registry.Registry, *ucMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &ucMocks{
		repo:      mocks.NewMockRideRepo(ctrl),
		gw:        mocks.NewMockRideGW(ctrl),
		planner:   mocks.NewMockRoutePlanner(ctrl),
		broadcast: mocks.NewMockBroadcaster(ctrl),
	}

	cfg := &models.Config{
		Match: models.MatchConfig{
			OverlapRadiusM:  500,
			OverlapRatio:    0.2,
			SamePathRadiusM: 2000,
			ProximityM:      5000,
			NearbyRadiusM:   10000,
			ExpandedRadiusM: 15000,
			MinResults:      5,
		},
		Booking: models.BookingConfig{DefaultCapacity: 4},
		Routing: models.RoutingConfig{TimeoutSec: 1},
	}

	reg := registry.New(5 * time.Minute)
	uc := NewRideUC(cfg, reg, m.repo, m.gw, m.planner, m.broadcast)
	return uc, reg, m
}

func registerRide(reg *registry.Registry, rideID, driverID string) {
	reg.Upsert(&models.ActiveRide{
		RideID:    rideID,
		DriverID:  driverID,
		Status:    models.RideStatusActive,
		StartTime: time.Now(),
		Capacity:  4,
	})
}

func TestAcceptBooking_Success(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	req := &models.BookingRequest{RideID: "ride-1", RiderID: "rider-1", SeatCount: 2, Fare: 15000}

	m.repo.EXPECT().BookSeats(gomock.Any(), "ride-1", 2).
		Return(&models.BookingResult{RideID: "ride-1", Occupied: 2, Capacity: 4}, nil)
	m.repo.EXPECT().AddPassenger(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Passenger) error {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, models.PassengerStatusConfirmed, p.Status)
			assert.Equal(t, 2, p.SeatCount)
			return nil
		})
	m.repo.EXPECT().GetBooking(gomock.Any(), "ride-1").
		Return(&models.SeatBooking{RideID: "ride-1", Occupied: 2, Capacity: 4}, nil)
	m.gw.EXPECT().PublishBookingConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.broadcast.EXPECT().NotifyClient(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	confirmation, err := uc.AcceptBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ride-1", confirmation.RideID)
	assert.Equal(t, "driver-1", confirmation.DriverID)
	assert.Equal(t, 2, confirmation.Occupied)
	assert.Equal(t, 4, confirmation.Capacity)
}

func TestAcceptBooking_CapacityConflict(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	conflict := &rides.CapacityConflictError{RideID: "ride-1", Requested: 3, Occupied: 3, Capacity: 4}
	m.repo.EXPECT().BookSeats(gomock.Any(), "ride-1", 3).Return(nil, conflict)

	// No passenger row, no broadcast, no bus event on a conflict
	_, err := uc.AcceptBooking(context.Background(), &models.BookingRequest{
		RideID: "ride-1", RiderID: "rider-1", SeatCount: 3,
	})

	got, ok := rides.AsCapacityConflict(err)
	require.True(t, ok)
	assert.Equal(t, 1, got.Remaining())
}

func TestAcceptBooking_RideNotActive(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.AcceptBooking(context.Background(), &models.BookingRequest{
		RideID: "gone", RiderID: "rider-1", SeatCount: 1,
	})

	assert.ErrorIs(t, err, rides.ErrRideNotActive)
}

func TestAcceptBooking_InvalidInput(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.AcceptBooking(context.Background(), &models.BookingRequest{RideID: "ride-1"})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)

	_, err = uc.AcceptBooking(context.Background(), &models.BookingRequest{
		RideID: "ride-1", RiderID: "rider-1", SeatCount: 0,
	})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)
}

func TestAcceptBooking_ReleasesSeatsWhenPassengerInsertFails(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.repo.EXPECT().BookSeats(gomock.Any(), "ride-1", 1).
		Return(&models.BookingResult{RideID: "ride-1", Occupied: 1, Capacity: 4}, nil)
	m.repo.EXPECT().AddPassenger(gomock.Any(), gomock.Any()).Return(assert.AnError)
	m.repo.EXPECT().CancelSeats(gomock.Any(), "ride-1", 1).
		Return(&models.BookingResult{RideID: "ride-1", Occupied: 0, Capacity: 4}, nil)

	_, err := uc.AcceptBooking(context.Background(), &models.BookingRequest{
		RideID: "ride-1", RiderID: "rider-1", SeatCount: 1,
	})
	assert.Error(t, err)
}

func TestAcceptBooking_ConcurrentSingleWinner(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	// One seat left; the store-level conditional update lets exactly one
	// booking through
	var storeMu sync.Mutex
	remaining := 1
	m.repo.EXPECT().BookSeats(gomock.Any(), "ride-1", 1).
		DoAndReturn(func(_ context.Context, rideID string, seats int) (*models.BookingResult, error) {
			storeMu.Lock()
			defer storeMu.Unlock()
			if remaining < seats {
				return nil, &rides.CapacityConflictError{RideID: rideID, Requested: seats, Occupied: 4, Capacity: 4}
			}
			remaining -= seats
			return &models.BookingResult{RideID: rideID, Occupied: 4, Capacity: 4}, nil
		}).Times(2)
	m.repo.EXPECT().AddPassenger(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.repo.EXPECT().GetBooking(gomock.Any(), "ride-1").
		Return(&models.SeatBooking{RideID: "ride-1", Occupied: 4, Capacity: 4}, nil).AnyTimes()
	m.gw.EXPECT().PublishBookingConfirmed(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.broadcast.EXPECT().NotifyClient(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		rider := []string{"rider-a", "rider-b"}[i]
		go func() {
			defer wg.Done()
			_, err := uc.AcceptBooking(context.Background(), &models.BookingRequest{
				RideID: "ride-1", RiderID: rider, SeatCount: 1,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
		} else if _, ok := rides.AsCapacityConflict(err); ok {
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestCancelSeats_UsesCancelledBookingSeatCount(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	// The cancelled booking held 2 seats even though the request said 1
	m.repo.EXPECT().CancelPassenger(gomock.Any(), "ride-1", "rider-1").Return(2, nil)
	m.repo.EXPECT().CancelSeats(gomock.Any(), "ride-1", 2).
		Return(&models.BookingResult{RideID: "ride-1", Occupied: 0, Capacity: 4}, nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.broadcast.EXPECT().NotifyClient(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	result, err := uc.CancelSeats(context.Background(), "ride-1", &models.SeatRequest{RiderID: "rider-1", SeatCount: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Occupied)
}

func TestCorrectOccupancy(t *testing.T) {
	uc, reg, m := newTestUC(t)
	registerRide(reg, "ride-1", "driver-1")

	m.repo.EXPECT().SetOccupied(gomock.Any(), "ride-1", 3).
		Return(&models.BookingResult{RideID: "ride-1", Occupied: 3, Capacity: 4}, nil)
	m.broadcast.EXPECT().BroadcastRoom(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.broadcast.EXPECT().NotifyClient(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	result, err := uc.CorrectOccupancy(context.Background(), &models.OccupancyCorrection{RideID: "ride-1", Occupied: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Occupied)
}

func TestBookSeats_InvalidInput(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.BookSeats(context.Background(), "", &models.SeatRequest{SeatCount: 1})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)

	_, err = uc.BookSeats(context.Background(), "ride-1", &models.SeatRequest{SeatCount: 0})
	assert.ErrorIs(t, err, rides.ErrInvalidInput)
}
