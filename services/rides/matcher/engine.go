package matcher

import (
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
)

// Engine evaluates search criteria against a registry snapshot. It holds
// only configuration and is safe for concurrent use.
type Engine struct {
	cfg models.MatchConfig
}

// NewEngine creates a match engine with the given thresholds
func NewEngine(cfg models.MatchConfig) *Engine {
	return &Engine{cfg: cfg}
}

// FindMatches produces the ordered match set for one searcher. An empty
// registry or a search that matches nothing yields the explicit "none yet"
// result, never an error. Candidates with inconsistent state are skipped
// rather than failing the whole pass.
func (e *Engine) FindMatches(criteria models.SearchCriteria, candidates []*models.ActiveRide) *models.SearchResult {
	directDistance := utils.DistanceMeters(criteria.From, criteria.To)
	searcherPath := []models.GeoPoint{criteria.From, criteria.To}

	matches := make([]models.RideMatch, 0, len(candidates))
	var unmatched []*models.ActiveRide

	for _, ride := range candidates {
		if ride == nil || !ride.Status.Matchable() {
			continue
		}
		location, ok := bestLocation(ride)
		if !ok {
			continue
		}

		if path := ridePath(ride); len(path) > 0 {
			if Overlaps(path, searcherPath, e.cfg.OverlapRadiusM, e.cfg.OverlapRatio) ||
				SamePath(path, searcherPath, e.cfg.SamePathRadiusM) {
				matches = append(matches, models.RideMatch{Ride: ride, Kind: models.MatchKindDirect})
				continue
			}
		} else if endpointProximity(criteria.From, criteria.To, endpointSet(ride, location), e.cfg.ProximityM) {
			matches = append(matches, models.RideMatch{Ride: ride, Kind: models.MatchKindDirect})
			continue
		}

		dFrom := utils.DistanceMeters(location, criteria.From)
		dTo := utils.DistanceMeters(location, criteria.To)
		if dFrom <= e.cfg.NearbyRadiusM || dTo <= e.cfg.NearbyRadiusM || dFrom+dTo <= 2*directDistance {
			matches = append(matches, models.RideMatch{Ride: ride, Kind: models.MatchKindNearby})
			continue
		}

		unmatched = append(unmatched, ride)
	}

	// Expansion pass over previously-unmatched candidates when results are
	// thin and there is anything at all to offer
	if len(matches) < e.cfg.MinResults && len(candidates) > 0 {
		for _, ride := range unmatched {
			location, ok := bestLocation(ride)
			if !ok {
				continue
			}
			dFrom := utils.DistanceMeters(location, criteria.From)
			dTo := utils.DistanceMeters(location, criteria.To)
			if dFrom <= e.cfg.ExpandedRadiusM || dTo <= e.cfg.ExpandedRadiusM {
				matches = append(matches, models.RideMatch{Ride: ride, Kind: models.MatchKindExpanded})
			}
		}
	}

	if len(matches) == 0 {
		return &models.SearchResult{None: true}
	}
	return &models.SearchResult{Matches: matches}
}

// bestLocation resolves a candidate's position: live last report, else the
// announced pickup point
func bestLocation(ride *models.ActiveRide) (models.GeoPoint, bool) {
	if ride.Last != nil {
		return models.GeoPoint{Latitude: ride.Last.Latitude, Longitude: ride.Last.Longitude}, true
	}
	if ride.Pickup != nil {
		return *ride.Pickup, true
	}
	return models.GeoPoint{}, false
}

// ridePath returns the candidate's planned route, falling back to its
// traveled trail when no polyline was recorded
func ridePath(ride *models.ActiveRide) []models.GeoPoint {
	if len(ride.Route) > 0 {
		return ride.Route
	}
	if len(ride.Trail) > 0 {
		path := make([]models.GeoPoint, len(ride.Trail))
		for i, p := range ride.Trail {
			path[i] = models.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
		}
		return path
	}
	return nil
}

// endpointSet collects the candidate points used by the proximity fallback:
// recorded pickup/drop coordinates plus the current location
func endpointSet(ride *models.ActiveRide, location models.GeoPoint) []models.GeoPoint {
	points := make([]models.GeoPoint, 0, 3)
	if ride.Pickup != nil {
		points = append(points, *ride.Pickup)
	}
	if ride.Drop != nil {
		points = append(points, *ride.Drop)
	}
	points = append(points, location)
	return points
}
