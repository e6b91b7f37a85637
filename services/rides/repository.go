package rides

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// RideRepo defines the durable store operations for seat bookings and the
// Redis-backed location cache
type RideRepo interface {
	// Seat allocation. BookSeats performs the single conditional update
	// that enforces occupied + n <= capacity; it returns a
	// *CapacityConflictError when the condition fails.
	EnsureBooking(ctx context.Context, rideID string, capacity int) error
	BookSeats(ctx context.Context, rideID string, seats int) (*models.BookingResult, error)
	CancelSeats(ctx context.Context, rideID string, seats int) (*models.BookingResult, error)
	SetOccupied(ctx context.Context, rideID string, occupied int) (*models.BookingResult, error)
	GetBooking(ctx context.Context, rideID string) (*models.SeatBooking, error)
	AddPassenger(ctx context.Context, passenger *models.Passenger) error
	CancelPassenger(ctx context.Context, rideID, riderID string) (int, error)

	// Capacity resolution
	GetVehicleCapacity(ctx context.Context, driverID string) (int, error)

	// Location cache
	StoreLocation(ctx context.Context, rideID, driverID string, point models.TrailPoint) error
	GetLastLocation(ctx context.Context, rideID string) (*models.TrailPoint, error)
	RemoveDriverGeo(ctx context.Context, driverID string) error
}
