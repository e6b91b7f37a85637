package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
)

// AcceptBooking handles a rider accepting a matched ride: atomically
// allocates the seats, records the passenger, and announces the new
// occupancy. A capacity conflict is returned untouched for the handler to
// surface to the requester; nothing is broadcast in that case.
func (uc *RideUC) AcceptBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error) {
	if req.RideID == "" || req.RiderID == "" || req.SeatCount <= 0 {
		return nil, fmt.Errorf("%w: ride_id, rider_id and a positive seat_count are required", rides.ErrInvalidInput)
	}

	ride, ok := uc.registry.Get(req.RideID)
	if !ok {
		// A booking against a ride that already left the registry is
		// treated the same as invalid input
		return nil, fmt.Errorf("%w: ride %s", rides.ErrRideNotActive, req.RideID)
	}

	result, err := uc.repo.BookSeats(ctx, req.RideID, req.SeatCount)
	if err != nil {
		return nil, err
	}

	passenger := &models.Passenger{
		ID:        uuid.New().String(),
		RideID:    req.RideID,
		RiderID:   req.RiderID,
		SeatCount: req.SeatCount,
		Fare:      req.Fare,
		Status:    models.PassengerStatusConfirmed,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.AddPassenger(ctx, passenger); err != nil {
		// Release the seats so the allocation cannot leak
		if _, releaseErr := uc.repo.CancelSeats(ctx, req.RideID, req.SeatCount); releaseErr != nil {
			logger.Error("Failed to release seats after passenger insert failure",
				logger.String("ride_id", req.RideID),
				logger.Err(releaseErr))
		}
		return nil, fmt.Errorf("failed to record passenger: %w", err)
	}

	passengers := []models.Passenger{*passenger}
	if booking, err := uc.repo.GetBooking(ctx, req.RideID); err == nil {
		passengers = booking.Passengers
	}

	confirmation := &models.BookingConfirmation{
		RideID:     req.RideID,
		DriverID:   ride.DriverID,
		Booking:    *passenger,
		Passengers: passengers,
		Occupied:   result.Occupied,
		Capacity:   result.Capacity,
	}

	uc.broadcastOccupancy(ride.DriverID, result)
	uc.broadcast.BroadcastRoom(constants.RideRoom(req.RideID), constants.EventRideAccepted, confirmation)
	uc.broadcast.NotifyClient(ride.DriverID, constants.EventRideAccepted, confirmation)

	if err := uc.gw.PublishBookingConfirmed(ctx, &models.BookingEvent{
		RideID:    req.RideID,
		RiderID:   req.RiderID,
		SeatCount: req.SeatCount,
		Fare:      req.Fare,
		Occupied:  result.Occupied,
		Capacity:  result.Capacity,
		Timestamp: time.Now(),
	}); err != nil {
		logger.Warn("Booking confirmed event not published",
			logger.String("ride_id", req.RideID),
			logger.Err(err))
	}

	return confirmation, nil
}

// BookSeats is the request/response seat allocation channel: the same
// conditional update, answering with the updated occupancy or the conflict
func (uc *RideUC) BookSeats(ctx context.Context, rideID string, req *models.SeatRequest) (*models.BookingResult, error) {
	if rideID == "" || req.SeatCount <= 0 {
		return nil, fmt.Errorf("%w: ride_id and a positive seat_count are required", rides.ErrInvalidInput)
	}

	result, err := uc.repo.BookSeats(ctx, rideID, req.SeatCount)
	if err != nil {
		return nil, err
	}

	uc.broadcastOccupancy(uc.driverOf(rideID), result)
	return result, nil
}

// CancelSeats releases a rider's booking. When the rider is known, the
// cancelled booking's own seat count wins over the requested one; occupancy
// never goes below zero either way.
func (uc *RideUC) CancelSeats(ctx context.Context, rideID string, req *models.SeatRequest) (*models.BookingResult, error) {
	if rideID == "" {
		return nil, fmt.Errorf("%w: ride_id is required", rides.ErrInvalidInput)
	}

	seats := req.SeatCount
	if req.RiderID != "" {
		if cancelled, err := uc.repo.CancelPassenger(ctx, rideID, req.RiderID); err == nil {
			seats = cancelled
		}
	}
	if seats <= 0 {
		return nil, fmt.Errorf("%w: nothing to cancel", rides.ErrInvalidInput)
	}

	result, err := uc.repo.CancelSeats(ctx, rideID, seats)
	if err != nil {
		return nil, err
	}

	uc.broadcastOccupancy(uc.driverOf(rideID), result)
	return result, nil
}

// CorrectOccupancy applies a driver-reported occupancy value, clamped into
// [0, capacity] by the store
func (uc *RideUC) CorrectOccupancy(ctx context.Context, correction *models.OccupancyCorrection) (*models.BookingResult, error) {
	if correction.RideID == "" {
		return nil, fmt.Errorf("%w: ride_id is required", rides.ErrInvalidInput)
	}

	result, err := uc.repo.SetOccupied(ctx, correction.RideID, correction.Occupied)
	if err != nil {
		return nil, err
	}

	uc.broadcastOccupancy(uc.driverOf(correction.RideID), result)
	return result, nil
}

// GetBooking returns the durable occupancy record with its passenger list
func (uc *RideUC) GetBooking(ctx context.Context, rideID string) (*models.SeatBooking, error) {
	if rideID == "" {
		return nil, fmt.Errorf("%w: ride_id is required", rides.ErrInvalidInput)
	}
	return uc.repo.GetBooking(ctx, rideID)
}

// broadcastOccupancy fans the new occupancy out to the ride room and the
// driver's room on every change
func (uc *RideUC) broadcastOccupancy(driverID string, result *models.BookingResult) {
	payload := *result
	payload.DriverID = driverID
	uc.broadcast.BroadcastRoom(constants.RideRoom(result.RideID), constants.EventStatusUpdated, payload)
	if driverID != "" {
		uc.broadcast.BroadcastRoom(constants.DriverRoom(driverID), constants.EventStatusUpdated, payload)
		uc.broadcast.NotifyClient(driverID, constants.EventStatusUpdated, payload)
	}
}

func (uc *RideUC) driverOf(rideID string) string {
	if ride, ok := uc.registry.Get(rideID); ok {
		return ride.DriverID
	}
	return ""
}
