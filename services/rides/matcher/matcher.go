// Package matcher implements the route-overlap tests and the match engine
// that answers "which active rides satisfy this search". Everything here is
// side-effect free and runs on the hot path of every search and location
// update.
package matcher

import (
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
)

// OverlapRatio returns the fraction of points in a that have at least one
// neighbour in b within radiusM meters, over min(|a|,|b|). Identical
// sequences score 1.0.
func OverlapRatio(a, b []models.GeoPoint, radiusM float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	matches := 0
	for _, p := range a {
		for _, q := range b {
			if utils.DistanceMeters(p, q) <= radiusM {
				matches++
				break
			}
		}
	}

	denom := len(a)
	if len(b) < denom {
		denom = len(b)
	}
	return float64(matches) / float64(denom)
}

// Overlaps reports whether two paths overlap at or above the ratio
// threshold using the given neighbour radius
func Overlaps(a, b []models.GeoPoint, radiusM, threshold float64) bool {
	return OverlapRatio(a, b, radiusM) >= threshold
}

// SamePath is the coarse fallback for sparse routes: true iff any pair of
// points across the two sequences lies within radiusM meters
func SamePath(a, b []models.GeoPoint, radiusM float64) bool {
	for _, p := range a {
		for _, q := range b {
			if utils.DistanceMeters(p, q) <= radiusM {
				return true
			}
		}
	}
	return false
}

// endpointProximity applies the point-proximity heuristics used when a
// candidate has no recorded route: the four endpoint combinations against
// the threshold, then an averaged-distance relaxation at 1.5x as a last
// resort.
func endpointProximity(from, to models.GeoPoint, candidate []models.GeoPoint, thresholdM float64) bool {
	if len(candidate) == 0 {
		return false
	}

	var distances []float64
	for _, p := range candidate {
		dFrom := utils.DistanceMeters(from, p)
		dTo := utils.DistanceMeters(to, p)
		if dFrom <= thresholdM || dTo <= thresholdM {
			return true
		}
		distances = append(distances, dFrom, dTo)
	}

	var sum float64
	for _, d := range distances {
		sum += d
	}
	avg := sum / float64(len(distances))
	return avg <= thresholdM*1.5
}
