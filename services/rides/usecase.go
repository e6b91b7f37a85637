package rides

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// RideUC defines the ride use case operations
type RideUC interface {
	// Ride lifecycle
	RideStart(ctx context.Context, event *models.RideStartEvent) (*models.ActiveRide, error)
	RideEnd(ctx context.Context, rideID string) error
	RideCancel(ctx context.Context, rideID string) error
	UpdateLocation(ctx context.Context, update *models.LocationUpdate) error
	Subscribe(ctx context.Context, userID, rideID string) (*models.ActiveRide, error)

	// Search
	Search(ctx context.Context, userID string, req *models.RouteSearchRequest) (*models.SearchResult, error)
	ReleaseSearcher(userID string)

	// Booking
	AcceptBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingConfirmation, error)
	BookSeats(ctx context.Context, rideID string, req *models.SeatRequest) (*models.BookingResult, error)
	CancelSeats(ctx context.Context, rideID string, req *models.SeatRequest) (*models.BookingResult, error)
	CorrectOccupancy(ctx context.Context, correction *models.OccupancyCorrection) (*models.BookingResult, error)
	GetBooking(ctx context.Context, rideID string) (*models.SeatBooking, error)
}
