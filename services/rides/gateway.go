package rides

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// RideGW defines the event bus publications for downstream services
type RideGW interface {
	PublishRideStarted(ctx context.Context, event *models.RideLifecycleEvent) error
	PublishRideEnded(ctx context.Context, event *models.RideLifecycleEvent) error
	PublishRideCancelled(ctx context.Context, event *models.RideLifecycleEvent) error
	PublishBookingConfirmed(ctx context.Context, event *models.BookingEvent) error
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
}

// RoutePlanner is the external road-routing collaborator.
//
// PlanRoute never fails: when the external lookup errors or times out it
// returns a straight-line plan with Estimated set. LookupETA is the strict
// variant used for best-effort ETA events; it returns ErrExternalLookup on
// failure so callers can omit the event instead of guessing.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, from, to models.GeoPoint) *models.RoutePlan
	LookupETA(ctx context.Context, from, to models.GeoPoint) (*models.RoutePlan, error)
}

// Broadcaster is the topic-room fan-out consumed by the use case to notify
// connected clients. Implemented by the websocket manager.
type Broadcaster interface {
	NotifyClient(userID, event string, data interface{})
	BroadcastRoom(room, event string, data interface{})
	JoinRoom(room, userID string)
	LeaveRoom(room, userID string)
	CloseRoom(room string)
}
