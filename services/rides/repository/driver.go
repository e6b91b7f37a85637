package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// GetVehicleCapacity returns the declared seat capacity of a driver's
// vehicle profile, or zero when the driver has none recorded. Callers fall
// back to the configured default in that case.
func (r *RideRepo) GetVehicleCapacity(ctx context.Context, driverID string) (int, error) {
	query := `SELECT vehicle_capacity FROM drivers WHERE driver_id = $1`

	var capacity sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, driverID).Scan(&capacity)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load vehicle capacity for driver %s: %w", driverID, err)
	}
	if !capacity.Valid {
		return 0, nil
	}
	return int(capacity.Int64), nil
}
