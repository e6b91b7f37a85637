package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/rides"
)

// RideStart registers a driver-announced ride in the active registry,
// ensures its durable booking record, announces it to subscribers, and
// re-runs matching for every live searcher
func (uc *RideUC) RideStart(ctx context.Context, event *models.RideStartEvent) (*models.ActiveRide, error) {
	if event.RideID == "" || event.DriverID == "" {
		return nil, fmt.Errorf("%w: ride_id and driver_id are required", rides.ErrInvalidInput)
	}
	if event.Pickup != nil && !utils.ValidCoordinates(event.Pickup.Latitude, event.Pickup.Longitude) {
		return nil, fmt.Errorf("%w: malformed pickup coordinates", rides.ErrInvalidInput)
	}
	if event.Destination != nil && !utils.ValidCoordinates(event.Destination.Latitude, event.Destination.Longitude) {
		return nil, fmt.Errorf("%w: malformed destination coordinates", rides.ErrInvalidInput)
	}

	status := event.Status
	if status == "" {
		status = models.RideStatusActive
	}
	startTime := event.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	capacity, err := uc.resolveCapacity(ctx, event)
	if err != nil {
		return nil, err
	}

	ride := &models.ActiveRide{
		RideID:           event.RideID,
		DriverID:         event.DriverID,
		DriverName:       event.DriverName,
		DriverContactRef: event.ContactRef,
		Pickup:           event.Pickup,
		Drop:             event.Destination,
		Route:            event.Route,
		DistanceMeters:   event.Distance,
		DurationSeconds:  event.Duration,
		Status:           status,
		StartTime:        startTime,
		Capacity:         capacity,
	}

	// Fill in missing route estimates; the planner degrades to a
	// straight-line plan when the external router is unavailable
	if ride.Pickup != nil && ride.Drop != nil &&
		(ride.DistanceMeters <= 0 || ride.DurationSeconds <= 0 || len(ride.Route) == 0) {
		planCtx, cancel := context.WithTimeout(ctx, uc.routingTimeout())
		plan := uc.planner.PlanRoute(planCtx, *ride.Pickup, *ride.Drop)
		cancel()

		if ride.DistanceMeters <= 0 {
			ride.DistanceMeters = plan.DistanceMeters
		}
		if ride.DurationSeconds <= 0 {
			ride.DurationSeconds = plan.DurationSeconds
		}
		if len(ride.Route) == 0 && !plan.Estimated {
			ride.Route = plan.Polyline
		}
	}

	uc.registry.Upsert(ride)

	if err := uc.repo.EnsureBooking(ctx, ride.RideID, capacity); err != nil {
		// The ride stays matchable; booking attempts will surface the
		// missing record
		logger.Error("Failed to ensure booking record",
			logger.String("ride_id", ride.RideID),
			logger.Err(err))
	}

	snapshot, _ := uc.registry.Get(ride.RideID)
	uc.broadcast.BroadcastRoom(constants.RideRoom(ride.RideID), constants.EventRideInfo, snapshot)
	uc.broadcast.BroadcastRoom(constants.DriverRoom(ride.DriverID), constants.EventRideInfo, snapshot)

	if err := uc.gw.PublishRideStarted(ctx, &models.RideLifecycleEvent{
		RideID:    ride.RideID,
		DriverID:  ride.DriverID,
		Status:    string(ride.Status),
		Timestamp: time.Now(),
	}); err != nil {
		logger.Warn("Ride started event not published",
			logger.String("ride_id", ride.RideID),
			logger.Err(err))
	}

	uc.rematchAll()
	return snapshot, nil
}

// resolveCapacity applies the resolution order: explicit ride-level
// override, then the driver's declared vehicle capacity, then the default
func (uc *RideUC) resolveCapacity(ctx context.Context, event *models.RideStartEvent) (int, error) {
	if event.Capacity > 0 {
		return event.Capacity, nil
	}
	capacity, err := uc.repo.GetVehicleCapacity(ctx, event.DriverID)
	if err != nil {
		return 0, err
	}
	if capacity > 0 {
		return capacity, nil
	}
	return uc.cfg.Booking.DefaultCapacity, nil
}

// RideEnd removes a ride from the registry, notifies its room and closes it
func (uc *RideUC) RideEnd(ctx context.Context, rideID string) error {
	return uc.finishRide(ctx, rideID, constants.EventRideEnded)
}

// RideCancel is the terminal path for a driver cancelling before completion
func (uc *RideUC) RideCancel(ctx context.Context, rideID string) error {
	return uc.finishRide(ctx, rideID, constants.EventRideCancelled)
}

func (uc *RideUC) finishRide(ctx context.Context, rideID, event string) error {
	if rideID == "" {
		return fmt.Errorf("%w: ride_id is required", rides.ErrInvalidInput)
	}
	ride, ok := uc.registry.Get(rideID)
	if !ok {
		return fmt.Errorf("%w: ride %s", rides.ErrRideNotActive, rideID)
	}

	uc.registry.Remove(rideID)

	room := constants.RideRoom(rideID)
	payload := map[string]string{"ride_id": rideID, "driver_id": ride.DriverID}
	uc.broadcast.BroadcastRoom(room, event, payload)
	uc.broadcast.BroadcastRoom(constants.DriverRoom(ride.DriverID), event, payload)
	uc.broadcast.CloseRoom(room)

	if err := uc.repo.RemoveDriverGeo(ctx, ride.DriverID); err != nil {
		logger.Warn("Failed to remove driver from geo set",
			logger.String("driver_id", ride.DriverID),
			logger.Err(err))
	}

	lifecycle := &models.RideLifecycleEvent{
		RideID:    rideID,
		DriverID:  ride.DriverID,
		Timestamp: time.Now(),
	}
	var publishErr error
	if event == constants.EventRideCancelled {
		lifecycle.Status = "cancelled"
		publishErr = uc.gw.PublishRideCancelled(ctx, lifecycle)
	} else {
		lifecycle.Status = string(models.RideStatusEnded)
		publishErr = uc.gw.PublishRideEnded(ctx, lifecycle)
	}
	if publishErr != nil {
		logger.Warn("Ride terminal event not published",
			logger.String("ride_id", rideID),
			logger.Err(publishErr))
	}

	uc.rematchAll()
	return nil
}

// Subscribe joins a client to a ride's broadcast room and returns the
// current snapshot so late subscribers can re-derive state
func (uc *RideUC) Subscribe(ctx context.Context, userID, rideID string) (*models.ActiveRide, error) {
	if rideID == "" {
		return nil, fmt.Errorf("%w: ride_id is required", rides.ErrInvalidInput)
	}
	ride, ok := uc.registry.Get(rideID)
	if !ok {
		return nil, fmt.Errorf("%w: ride %s", rides.ErrRideNotActive, rideID)
	}
	uc.broadcast.JoinRoom(constants.RideRoom(rideID), userID)
	return ride, nil
}
