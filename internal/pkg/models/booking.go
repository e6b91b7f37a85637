package models

import "time"

// PassengerStatus represents the state of a passenger on a booking
type PassengerStatus string

const (
	PassengerStatusConfirmed PassengerStatus = "confirmed"
	PassengerStatusCancelled PassengerStatus = "cancelled"
)

// Passenger is one confirmed seat allocation on a ride
type Passenger struct {
	ID        string          `json:"id" db:"id"`
	RideID    string          `json:"ride_id" db:"ride_id"`
	RiderID   string          `json:"rider_id" db:"rider_id"`
	SeatCount int             `json:"seat_count" db:"seat_count"`
	Fare      float64         `json:"fare" db:"fare"`
	Status    PassengerStatus `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// SeatBooking is the durable occupancy record for a ride. Occupied is only
// ever mutated through the allocator's conditional update and stays within
// [0, Capacity].
type SeatBooking struct {
	RideID     string      `json:"ride_id" db:"ride_id"`
	Capacity   int         `json:"capacity" db:"capacity"`
	Occupied   int         `json:"occupied" db:"occupied"`
	Passengers []Passenger `json:"passengers,omitempty"`
}

// Remaining returns the number of unallocated seats
func (b *SeatBooking) Remaining() int {
	return b.Capacity - b.Occupied
}

// BookingRequest represents a rider accepting a matched ride
type BookingRequest struct {
	RideID      string    `json:"ride_id"`
	DriverID    string    `json:"driver_id"`
	RiderID     string    `json:"rider_id"`
	Pickup      *GeoPoint `json:"pickup,omitempty"`
	Destination *GeoPoint `json:"destination,omitempty"`
	SeatCount   int       `json:"seat_count"`
	Fare        float64   `json:"fare"`
}

// BookingResult is the occupancy state after a booking operation
type BookingResult struct {
	RideID   string `json:"ride_id"`
	Occupied int    `json:"occupied"`
	Capacity int    `json:"capacity"`
	DriverID string `json:"driver_id,omitempty"`
}

// BookingConfirmation is sent to the requesting rider and the ride room on
// a successful acceptance
type BookingConfirmation struct {
	RideID     string      `json:"ride_id"`
	DriverID   string      `json:"driver_id"`
	Booking    Passenger   `json:"booking"`
	Passengers []Passenger `json:"passengers"`
	Occupied   int         `json:"occupied"`
	Capacity   int         `json:"capacity"`
}

// BookingRejection is sent only to the requesting rider when seats cannot
// be allocated
type BookingRejection struct {
	RideID   string `json:"ride_id"`
	Occupied int    `json:"occupied"`
	Capacity int    `json:"capacity"`
	Reason   string `json:"reason"`
}

// SeatRequest is the request/response booking payload (HTTP channel)
type SeatRequest struct {
	RiderID   string  `json:"rider_id"`
	SeatCount int     `json:"seat_count"`
	Fare      float64 `json:"fare,omitempty"`
}

// OccupancyCorrection is a driver-reported occupancy override; the value is
// clamped into [0, capacity] rather than rejected
type OccupancyCorrection struct {
	RideID   string `json:"ride_id"`
	Occupied int    `json:"occupied"`
}

// BookingEvent is published to the event bus on confirmed bookings
type BookingEvent struct {
	RideID    string    `json:"ride_id"`
	RiderID   string    `json:"rider_id"`
	SeatCount int       `json:"seat_count"`
	Fare      float64   `json:"fare"`
	Occupied  int       `json:"occupied"`
	Capacity  int       `json:"capacity"`
	Timestamp time.Time `json:"timestamp"`
}
