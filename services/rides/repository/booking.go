package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
)

// EnsureBooking creates the durable occupancy record for a ride if it does
// not exist yet. Capacity is resolved once at ride start and not rewritten
// by later announcements.
func (r *RideRepo) EnsureBooking(ctx context.Context, rideID string, capacity int) error {
	query := `
		INSERT INTO seat_bookings (ride_id, capacity, occupied, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		ON CONFLICT (ride_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, rideID, capacity)
	if err != nil {
		return fmt.Errorf("failed to ensure booking for ride %s: %w", rideID, err)
	}
	return nil
}

// BookSeats atomically allocates seats on a ride. The increment only
// happens when occupied + seats <= capacity held at update time, so two
// concurrent bookings can never overbook: the loser of the race sees no
// updated row and receives a CapacityConflictError with the untouched
// occupancy.
func (r *RideRepo) BookSeats(ctx context.Context, rideID string, seats int) (*models.BookingResult, error) {
	query := `
		UPDATE seat_bookings
		SET occupied = occupied + $1, updated_at = NOW()
		WHERE ride_id = $2 AND occupied + $1 <= capacity
		RETURNING occupied, capacity
	`

	var occupied, capacity int
	err := r.db.QueryRowContext(ctx, query, seats, rideID).Scan(&occupied, &capacity)
	if err == nil {
		return &models.BookingResult{RideID: rideID, Occupied: occupied, Capacity: capacity}, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to book seats on ride %s: %w", rideID, err)
	}

	// Condition failed: report the current state without mutating it
	current, err := r.getOccupancy(ctx, rideID)
	if err != nil {
		return nil, err
	}
	return nil, &rides.CapacityConflictError{
		RideID:    rideID,
		Requested: seats,
		Occupied:  current.Occupied,
		Capacity:  current.Capacity,
	}
}

// CancelSeats releases seats on a ride, clamped at a floor of zero
func (r *RideRepo) CancelSeats(ctx context.Context, rideID string, seats int) (*models.BookingResult, error) {
	query := `
		UPDATE seat_bookings
		SET occupied = GREATEST(occupied - $1, 0), updated_at = NOW()
		WHERE ride_id = $2
		RETURNING occupied, capacity
	`

	var occupied, capacity int
	err := r.db.QueryRowContext(ctx, query, seats, rideID).Scan(&occupied, &capacity)
	if err == sql.ErrNoRows {
		return nil, rides.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel seats on ride %s: %w", rideID, err)
	}
	return &models.BookingResult{RideID: rideID, Occupied: occupied, Capacity: capacity}, nil
}

// SetOccupied applies a driver-reported occupancy correction, clamping the
// requested value into [0, capacity] rather than rejecting it
func (r *RideRepo) SetOccupied(ctx context.Context, rideID string, occupied int) (*models.BookingResult, error) {
	query := `
		UPDATE seat_bookings
		SET occupied = LEAST(GREATEST($1, 0), capacity), updated_at = NOW()
		WHERE ride_id = $2
		RETURNING occupied, capacity
	`

	var newOccupied, capacity int
	err := r.db.QueryRowContext(ctx, query, occupied, rideID).Scan(&newOccupied, &capacity)
	if err == sql.ErrNoRows {
		return nil, rides.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set occupancy on ride %s: %w", rideID, err)
	}
	return &models.BookingResult{RideID: rideID, Occupied: newOccupied, Capacity: capacity}, nil
}

// GetBooking retrieves the occupancy record and its passenger list
func (r *RideRepo) GetBooking(ctx context.Context, rideID string) (*models.SeatBooking, error) {
	current, err := r.getOccupancy(ctx, rideID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, ride_id, rider_id, seat_count, fare, status, created_at
		FROM booking_passengers
		WHERE ride_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load passengers for ride %s: %w", rideID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.RideID, &p.RiderID, &p.SeatCount, &p.Fare, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		current.Passengers = append(current.Passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return current, nil
}

// AddPassenger records a confirmed seat allocation
func (r *RideRepo) AddPassenger(ctx context.Context, passenger *models.Passenger) error {
	query := `
		INSERT INTO booking_passengers (id, ride_id, rider_id, seat_count, fare, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		passenger.ID,
		passenger.RideID,
		passenger.RiderID,
		passenger.SeatCount,
		passenger.Fare,
		passenger.Status,
		passenger.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record passenger on ride %s: %w", passenger.RideID, err)
	}
	return nil
}

// CancelPassenger marks a rider's most recent confirmed booking cancelled
// and returns its seat count so the caller can release the seats
func (r *RideRepo) CancelPassenger(ctx context.Context, rideID, riderID string) (int, error) {
	query := `
		UPDATE booking_passengers
		SET status = $1
		WHERE id = (
			SELECT id FROM booking_passengers
			WHERE ride_id = $2 AND rider_id = $3 AND status = $4
			ORDER BY created_at DESC
			LIMIT 1
		)
		RETURNING seat_count
	`

	var seatCount int
	err := r.db.QueryRowContext(ctx, query,
		models.PassengerStatusCancelled, rideID, riderID, models.PassengerStatusConfirmed,
	).Scan(&seatCount)
	if err == sql.ErrNoRows {
		return 0, rides.ErrBookingNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to cancel passenger %s on ride %s: %w", riderID, rideID, err)
	}
	return seatCount, nil
}

func (r *RideRepo) getOccupancy(ctx context.Context, rideID string) (*models.SeatBooking, error) {
	query := `SELECT ride_id, occupied, capacity FROM seat_bookings WHERE ride_id = $1`

	booking := &models.SeatBooking{}
	err := r.db.QueryRowContext(ctx, query, rideID).Scan(&booking.RideID, &booking.Occupied, &booking.Capacity)
	if err == sql.ErrNoRows {
		return nil, rides.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking for ride %s: %w", rideID, err)
	}
	return booking, nil
}
