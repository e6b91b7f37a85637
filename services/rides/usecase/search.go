package usecase

import (
	"context"
	"fmt"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/rides"
)

// Search stores the connection's criteria and answers immediately with the
// current match set, or the explicit "none yet" signal
func (uc *RideUC) Search(ctx context.Context, userID string, req *models.RouteSearchRequest) (*models.SearchResult, error) {
	if !utils.ValidCoordinates(req.FromLat, req.FromLng) || !utils.ValidCoordinates(req.ToLat, req.ToLng) {
		return nil, fmt.Errorf("%w: malformed search coordinates", rides.ErrInvalidInput)
	}

	criteria := models.SearchCriteria{
		From: models.GeoPoint{Latitude: req.FromLat, Longitude: req.FromLng},
		To:   models.GeoPoint{Latitude: req.ToLat, Longitude: req.ToLng},
	}

	uc.searcherMu.Lock()
	uc.searchers[userID] = criteria
	uc.searcherMu.Unlock()

	return uc.engine.FindMatches(criteria, uc.registry.ListActive()), nil
}

// ReleaseSearcher drops a connection's criteria; called on disconnect. The
// registry entry of any ride is untouched here.
func (uc *RideUC) ReleaseSearcher(userID string) {
	uc.searcherMu.Lock()
	delete(uc.searchers, userID)
	uc.searcherMu.Unlock()
}

// rematchAll re-runs the match engine for every connection holding live
// criteria and pushes the result to it. Runs on every relevant registry
// mutation, so it takes one snapshot and stays read-only.
func (uc *RideUC) rematchAll() {
	uc.searcherMu.RLock()
	if len(uc.searchers) == 0 {
		uc.searcherMu.RUnlock()
		return
	}
	snapshot := make(map[string]models.SearchCriteria, len(uc.searchers))
	for id, criteria := range uc.searchers {
		snapshot[id] = criteria
	}
	uc.searcherMu.RUnlock()

	active := uc.registry.ListActive()
	for userID, criteria := range snapshot {
		result := uc.engine.FindMatches(criteria, active)
		if result.None {
			uc.broadcast.NotifyClient(userID, constants.EventRouteNoMatches, result)
			continue
		}
		uc.broadcast.NotifyClient(userID, constants.EventRouteMatches, result)
	}
}
