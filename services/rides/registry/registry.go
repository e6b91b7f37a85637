// Package registry holds the process-lifetime map of currently active
// rides. It is the shared state every reporting and searching connection
// reads and mutates, so every operation takes the registry lock; values are
// small and operations short, which keeps contention negligible.
package registry

import (
	"context"
	"sync"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// Registry is the in-memory active-ride store. It is initialized at process
// start and drained at shutdown; nothing else owns ride liveness.
type Registry struct {
	mu         sync.RWMutex
	rides      map[string]*models.ActiveRide
	staleAfter time.Duration
}

// New creates a registry with the given staleness window
func New(staleAfter time.Duration) *Registry {
	if staleAfter <= 0 {
		staleAfter = 5 * time.Minute
	}
	return &Registry{
		rides:      make(map[string]*models.ActiveRide),
		staleAfter: staleAfter,
	}
}

// Upsert creates or replaces the entry for a ride. A replacement keeps the
// previous live trail so a re-announced ride does not lose its history.
func (r *Registry) Upsert(ride *models.ActiveRide) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.rides[ride.RideID]; ok {
		if ride.StartLocation == nil {
			ride.StartLocation = prev.StartLocation
		}
		if ride.Last == nil {
			ride.Last = prev.Last
		}
		if len(ride.Trail) == 0 {
			ride.Trail = prev.Trail
		}
	}
	r.rides[ride.RideID] = ride
}

// Get returns a copy of the ride state, if present
func (r *Registry) Get(rideID string) (*models.ActiveRide, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, ok := r.rides[rideID]
	if !ok {
		return nil, false
	}
	clone := *ride
	return &clone, true
}

// GetLocation returns the most recent known position of a ride: the live
// last report if there is one, else the announced pickup point
func (r *Registry) GetLocation(rideID string) (models.GeoPoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, ok := r.rides[rideID]
	if !ok {
		return models.GeoPoint{}, false
	}
	return rideLocation(ride)
}

func rideLocation(ride *models.ActiveRide) (models.GeoPoint, bool) {
	if ride.Last != nil {
		return models.GeoPoint{Latitude: ride.Last.Latitude, Longitude: ride.Last.Longitude}, true
	}
	if ride.Pickup != nil {
		return *ride.Pickup, true
	}
	return models.GeoPoint{}, false
}

// RecordLocation appends a live position report to a ride's trail and
// updates its last-known position. The first report also becomes the
// immutable start location. Returns false for unknown rides.
func (r *Registry) RecordLocation(rideID string, point models.TrailPoint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ride, ok := r.rides[rideID]
	if !ok {
		return false
	}
	if ride.StartLocation == nil {
		start := point
		ride.StartLocation = &start
	}
	last := point
	ride.Last = &last
	ride.Trail = append(ride.Trail, point)
	return true
}

// Remove deletes the entry for a ride
func (r *Registry) Remove(rideID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rides, rideID)
}

// ListActive returns a snapshot of all rides whose status still
// participates in matching, in stable insertion-independent order. Ended
// rides are never part of the snapshot.
func (r *Registry) ListActive() []*models.ActiveRide {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.ActiveRide, 0, len(r.rides))
	for _, ride := range r.rides {
		if !ride.Status.Matchable() {
			continue
		}
		clone := *ride
		out = append(out, &clone)
	}
	return out
}

// Len returns the number of registered rides
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rides)
}

// Sweep evicts entries that have produced no live location and carry no
// usable pickup point within the staleness window. Silently-abandoned ride
// announcements would otherwise pollute match results indefinitely.
// Returns the evicted ride IDs.
func (r *Registry) Sweep(now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []string
	for id, ride := range r.rides {
		if ride.Last != nil || ride.Pickup != nil {
			continue
		}
		if now.Sub(ride.StartTime) > r.staleAfter {
			delete(r.rides, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// Clear drains the registry (shutdown)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rides = make(map[string]*models.ActiveRide)
}

// StartSweeper runs Sweep on a fixed cadence until the context is cancelled
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := r.Sweep(now); len(evicted) > 0 {
					logger.Info("Evicted stale rides from registry",
						logger.Int("count", len(evicted)))
				}
			}
		}
	}()
}
