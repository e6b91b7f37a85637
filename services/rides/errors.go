package rides

import (
	"errors"
	"fmt"
)

// Core error taxonomy. Handlers map these onto websocket error codes or
// HTTP statuses; none of them mutates state when returned.
var (
	// ErrInvalidInput marks missing or malformed request fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrRideNotActive marks a referenced ride that is no longer in the
	// active registry; bookings treat it the same as invalid input
	ErrRideNotActive = errors.New("ride not active")

	// ErrBookingNotFound marks a missing durable booking record
	ErrBookingNotFound = errors.New("booking not found")

	// ErrExternalLookup marks a routing collaborator failure; callers fall
	// back to local estimates and never surface this to clients as fatal
	ErrExternalLookup = errors.New("external route lookup failed")
)

// CapacityConflictError is returned when a booking would exceed the ride's
// seat capacity, either because it was already exhausted or because a
// concurrent booking won the race. State is unchanged when it is returned.
type CapacityConflictError struct {
	RideID    string
	Requested int
	Occupied  int
	Capacity  int
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("ride %s: requested %d seats but only %d of %d remain",
		e.RideID, e.Requested, e.Capacity-e.Occupied, e.Capacity)
}

// Remaining returns the number of seats still available
func (e *CapacityConflictError) Remaining() int {
	return e.Capacity - e.Occupied
}

// AsCapacityConflict unwraps a capacity conflict from an error chain
func AsCapacityConflict(err error) (*CapacityConflictError, bool) {
	var conflict *CapacityConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
