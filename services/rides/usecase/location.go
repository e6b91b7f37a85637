package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/rides"
)

// UpdateLocation ingests a live location report: appends it to the ride's
// trail, refreshes the caches, fans the position out to the ride room,
// kicks off a best-effort ETA lookup, and re-runs matching for every live
// searcher
func (uc *RideUC) UpdateLocation(ctx context.Context, update *models.LocationUpdate) error {
	if update.RideID == "" {
		return fmt.Errorf("%w: ride_id is required", rides.ErrInvalidInput)
	}
	if !utils.ValidCoordinates(update.Latitude, update.Longitude) {
		return fmt.Errorf("%w: malformed coordinates", rides.ErrInvalidInput)
	}

	point := models.TrailPoint{
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Heading:   update.Heading,
		Timestamp: time.Now(),
	}

	if !uc.registry.RecordLocation(update.RideID, point) {
		return fmt.Errorf("%w: ride %s", rides.ErrRideNotActive, update.RideID)
	}

	ride, _ := uc.registry.Get(update.RideID)
	if update.DriverID == "" && ride != nil {
		update.DriverID = ride.DriverID
	}

	if err := uc.repo.StoreLocation(ctx, update.RideID, update.DriverID, point); err != nil {
		logger.Warn("Location cache update failed",
			logger.String("ride_id", update.RideID),
			logger.Err(err))
	}

	uc.broadcast.BroadcastRoom(constants.RideRoom(update.RideID), constants.EventRideLocation, models.LocationBroadcast{
		RideID:    update.RideID,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		Heading:   point.Heading,
		Timestamp: point.Timestamp,
	})

	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		logger.Warn("Location update not published",
			logger.String("ride_id", update.RideID),
			logger.Err(err))
	}

	if ride != nil && ride.Drop != nil {
		uc.emitETA(update.RideID, point.Point(), *ride.Drop)
	}

	uc.rematchAll()
	return nil
}

// emitETA performs the best-effort external ETA lookup off the hot path.
// On failure the event is simply omitted; subscribers fall back to the
// planned duration from the ride snapshot.
func (uc *RideUC) emitETA(rideID string, from, to models.GeoPoint) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.routingTimeout())
		defer cancel()

		plan, err := uc.planner.LookupETA(ctx, from, to)
		if err != nil {
			if !errors.Is(err, rides.ErrExternalLookup) {
				logger.Warn("Unexpected ETA lookup failure",
					logger.String("ride_id", rideID),
					logger.Err(err))
			}
			return
		}

		uc.broadcast.BroadcastRoom(constants.RideRoom(rideID), constants.EventRideETA, models.ETAUpdate{
			RideID:          rideID,
			DurationSeconds: plan.DurationSeconds,
			DistanceMeters:  plan.DistanceMeters,
			RemainingSteps:  len(plan.Polyline),
		})
	}()
}
