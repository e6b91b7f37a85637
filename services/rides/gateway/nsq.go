package gateway

import (
	"context"
	"fmt"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	nsqpkg "github.com/ridelink/ridelink/internal/pkg/nsq"
)

// RideGW publishes ride lifecycle and booking events to the NSQ bus for
// downstream services (billing, analytics)
type RideGW struct {
	producer *nsqpkg.Producer
}

// NewRideGW creates a new ride gateway
func NewRideGW(producer *nsqpkg.Producer) *RideGW {
	return &RideGW{producer: producer}
}

// PublishRideStarted publishes a ride start event
func (g *RideGW) PublishRideStarted(ctx context.Context, event *models.RideLifecycleEvent) error {
	if err := g.producer.Publish(constants.TopicRideStarted, event); err != nil {
		logger.Error("Failed to publish ride started event",
			logger.String("ride_id", event.RideID),
			logger.Err(err))
		return fmt.Errorf("failed to publish ride started event: %w", err)
	}
	return nil
}

// PublishRideEnded publishes a ride end event
func (g *RideGW) PublishRideEnded(ctx context.Context, event *models.RideLifecycleEvent) error {
	if err := g.producer.Publish(constants.TopicRideEnded, event); err != nil {
		logger.Error("Failed to publish ride ended event",
			logger.String("ride_id", event.RideID),
			logger.Err(err))
		return fmt.Errorf("failed to publish ride ended event: %w", err)
	}
	return nil
}

// PublishRideCancelled publishes a ride cancellation event
func (g *RideGW) PublishRideCancelled(ctx context.Context, event *models.RideLifecycleEvent) error {
	if err := g.producer.Publish(constants.TopicRideCancelled, event); err != nil {
		logger.Error("Failed to publish ride cancelled event",
			logger.String("ride_id", event.RideID),
			logger.Err(err))
		return fmt.Errorf("failed to publish ride cancelled event: %w", err)
	}
	return nil
}

// PublishBookingConfirmed publishes a confirmed seat booking
func (g *RideGW) PublishBookingConfirmed(ctx context.Context, event *models.BookingEvent) error {
	if err := g.producer.Publish(constants.TopicBookingConfirmed, event); err != nil {
		logger.Error("Failed to publish booking confirmed event",
			logger.String("ride_id", event.RideID),
			logger.String("rider_id", event.RiderID),
			logger.Err(err))
		return fmt.Errorf("failed to publish booking confirmed event: %w", err)
	}
	return nil
}

// PublishLocationUpdate streams an accepted location report for downstream
// aggregation
func (g *RideGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	if err := g.producer.Publish(constants.TopicLocationUpdate, update); err != nil {
		logger.Error("Failed to publish location update",
			logger.String("ride_id", update.RideID),
			logger.Err(err))
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
