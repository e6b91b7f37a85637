package constants

import "fmt"

// WebSocket inbound event types
const (
	EventRideStart      = "ride:start"
	EventLocationUpdate = "location:update"
	EventRideEnd        = "ride:end"
	EventRideCancel     = "ride:cancel"
	EventRouteSearch    = "user:route:search"
	EventRideAccept     = "ride:accept"
	EventRideSubscribe  = "ride:subscribe"
	EventSeatBook       = "ride:book-seat"
	EventOccupancySet   = "ride:occupancy-set"
)

// WebSocket outbound event types
const (
	EventError            = "error"
	EventRideInfo         = "ride:info"
	EventRideLocation     = "ride:location"
	EventRideETA          = "ride:eta"
	EventRideEnded        = "ride:ended"
	EventRideCancelled    = "ride:cancelled"
	EventRideAccepted     = "ride:accepted"
	EventStatusUpdated    = "ride-status-updated"
	EventBookingConfirmed = "ride:booking-confirmed"
	EventBookingError     = "ride:booking-error"
	EventRouteMatches     = "user:route:matches"
	EventRouteNoMatches   = "user:route:no-matches"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorInvalidLocation  = "invalid_location"
	ErrorInvalidRide      = "invalid_ride"
	ErrorRideNotActive    = "ride_not_active"
	ErrorCapacityConflict = "capacity_conflict"
	ErrorInternalError    = "internal_error"
	ErrorUnauthorized     = "unauthorized"
)

// Broadcast room name formats
const (
	roomRideFormat   = "ride:%s"
	roomDriverFormat = "driver:%s"
)

// RideRoom returns the broadcast room name for a ride
func RideRoom(rideID string) string {
	return fmt.Sprintf(roomRideFormat, rideID)
}

// DriverRoom returns the broadcast room name for a driver
func DriverRoom(driverID string) string {
	return fmt.Sprintf(roomDriverFormat, driverID)
}
