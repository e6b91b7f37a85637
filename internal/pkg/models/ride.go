package models

import "time"

// RideStatus represents the status of an active ride
type RideStatus string

const (
	RideStatusActive  RideStatus = "active"
	RideStatusOngoing RideStatus = "ongoing"
	RideStatusEnded   RideStatus = "ended"
)

// Matchable reports whether a ride in this status participates in matching.
// Anything outside the known active states is treated as inactive.
func (s RideStatus) Matchable() bool {
	return s == RideStatusActive || s == RideStatusOngoing
}

// ActiveRide is the live, in-memory state of a driver-announced ride. It
// exists only in the registry while the ride is running; the durable store
// keeps the authoritative booking record.
type ActiveRide struct {
	RideID           string       `json:"ride_id"`
	DriverID         string       `json:"driver_id"`
	DriverName       string       `json:"driver_name"`
	DriverContactRef string       `json:"driver_contact_ref,omitempty"`
	Pickup           *GeoPoint    `json:"pickup,omitempty"`
	Drop             *GeoPoint    `json:"destination,omitempty"`
	Route            []GeoPoint   `json:"route,omitempty"`
	DistanceMeters   float64      `json:"distance_meters"`
	DurationSeconds  float64      `json:"duration_seconds"`
	Status           RideStatus   `json:"status"`
	StartTime        time.Time    `json:"start_time"`
	StartLocation    *TrailPoint  `json:"start_location,omitempty"`
	Last             *TrailPoint  `json:"last,omitempty"`
	Trail            []TrailPoint `json:"trail,omitempty"`
	Capacity         int          `json:"capacity"`
}

// RideStartEvent represents a driver announcing the start of a ride
type RideStartEvent struct {
	RideID      string     `json:"ride_id"`
	DriverID    string     `json:"driver_id"`
	DriverName  string     `json:"driver_name"`
	ContactRef  string     `json:"contact_ref,omitempty"`
	Pickup      *GeoPoint  `json:"pickup,omitempty"`
	Destination *GeoPoint  `json:"destination,omitempty"`
	Route       []GeoPoint `json:"route,omitempty"`
	Distance    float64    `json:"distance"`
	Duration    float64    `json:"duration"`
	Status      RideStatus `json:"status,omitempty"`
	StartTime   time.Time  `json:"start_time,omitempty"`
	Capacity    int        `json:"capacity,omitempty"`
}

// RideEndEvent represents a driver ending or cancelling a ride
type RideEndEvent struct {
	RideID string `json:"ride_id"`
}

// RideLifecycleEvent is published to the event bus on ride start/end so
// downstream services (billing, analytics) can follow along
type RideLifecycleEvent struct {
	RideID    string    `json:"ride_id"`
	DriverID  string    `json:"driver_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
