package models

import "time"

// GeoPoint represents a plain geographic coordinate pair
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Location represents a geographic position with a report timestamp
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Point returns the coordinate pair of the location
func (l Location) Point() GeoPoint {
	return GeoPoint{Latitude: l.Latitude, Longitude: l.Longitude}
}

// TrailPoint is one entry of a ride's append-only position trail
type TrailPoint struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Heading   float64   `json:"heading,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Point returns the coordinate pair of the trail point
func (p TrailPoint) Point() GeoPoint {
	return GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

// LocationUpdate represents a live location report from a driver
type LocationUpdate struct {
	RideID    string    `json:"ride_id"`
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Heading   float64   `json:"heading"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationBroadcast is the payload fanned out to a ride room on every
// accepted location report
type LocationBroadcast struct {
	RideID    string    `json:"ride_id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Heading   float64   `json:"heading"`
	Timestamp time.Time `json:"timestamp"`
}
