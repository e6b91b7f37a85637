package constants

// NSQ topics
const (
	// Ride lifecycle
	TopicRideStarted   = "ride.started"
	TopicRideEnded     = "ride.ended"
	TopicRideCancelled = "ride.cancelled"

	// Booking events
	TopicBookingConfirmed = "booking.confirmed"

	// Location stream for downstream aggregation
	TopicLocationUpdate = "location.update"

	// Inbound telemetry from the tracker gateway; kept separate from
	// location.update so the service never consumes its own publications
	TopicLocationIngest = "location.ingest"
)

// NSQ channel name for this service's consumers
const ChannelRides = "rides-service"
