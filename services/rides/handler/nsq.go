package handler

import (
	"context"
	"fmt"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	nsqpkg "github.com/ridelink/ridelink/internal/pkg/nsq"
)

// InitNSQConsumers initializes all NSQ consumers for the ride service
func (h *Handler) InitNSQConsumers(address string) error {
	// Telemetry feed from the tracker gateway; positions reported here go
	// through the same ingestion path as websocket location updates
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicLocationIngest,
		constants.ChannelRides,
		address,
		h.handleLocationIngest,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize location ingest consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	return nil
}

// StopConsumers gracefully stops all NSQ consumers
func (h *Handler) StopConsumers() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

// handleLocationIngest processes location reports arriving over the bus
func (h *Handler) handleLocationIngest(msg []byte) error {
	var update models.LocationUpdate
	if err := nsqpkg.UnmarshalMessage(msg, &update); err != nil {
		logger.Warn("Malformed location ingest message",
			logger.Err(err))
		// Malformed payloads are dropped, not requeued
		return nil
	}

	if err := h.rideUC.UpdateLocation(context.Background(), &update); err != nil {
		logger.Warn("Failed to ingest bus location update",
			logger.String("ride_id", update.RideID),
			logger.Err(err))
		// Stale or unknown rides are expected on this feed; dropping keeps
		// the channel from backing up
		return nil
	}

	return nil
}
