package models

// RoutePlan is the outcome of a route lookup. Estimated is set when the
// external collaborator was unavailable and the plan was derived from the
// straight-line fallback, so callers can tell the two apart.
type RoutePlan struct {
	DistanceMeters  float64    `json:"distance_meters"`
	DurationSeconds float64    `json:"duration_seconds"`
	Polyline        []GeoPoint `json:"polyline,omitempty"`
	Estimated       bool       `json:"estimated"`
}

// ETAUpdate is the best-effort ETA payload broadcast to a ride room after a
// successful external lookup
type ETAUpdate struct {
	RideID          string  `json:"ride_id"`
	DurationSeconds float64 `json:"duration"`
	DistanceMeters  float64 `json:"distance"`
	RemainingSteps  int     `json:"remaining_steps"`
}
