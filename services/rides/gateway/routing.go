package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/rides"
)

// RoutingClient performs route lookups against an OSRM-compatible HTTP
// server. Every call is bounded by the configured timeout; a failing or
// absent collaborator degrades to a straight-line estimate and never stalls
// matching or booking.
type RoutingClient struct {
	baseURL     string
	avgSpeedMps float64
	client      *http.Client
}

// NewRoutingClient creates a routing client from configuration
func NewRoutingClient(cfg models.RoutingConfig) *RoutingClient {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	speed := cfg.AvgSpeedMps
	if speed <= 0 {
		speed = 8.0 // ~28.8 km/h city average
	}
	return &RoutingClient{
		baseURL:     cfg.BaseURL,
		avgSpeedMps: speed,
		client:      &http.Client{Timeout: timeout},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Steps []struct{} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// LookupETA queries the external router and returns the road route plan.
// It returns ErrExternalLookup on any failure so callers can distinguish
// "feature unavailable, proceed without it" from a usable answer.
func (r *RoutingClient) LookupETA(ctx context.Context, from, to models.GeoPoint) (*models.RoutePlan, error) {
	if r.baseURL == "" {
		return nil, rides.ErrExternalLookup
	}

	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson&steps=true",
		r.baseURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rides.ErrExternalLookup, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rides.ErrExternalLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", rides.ErrExternalLookup, resp.StatusCode)
	}

	var out osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", rides.ErrExternalLookup, err)
	}
	if out.Code != "Ok" || len(out.Routes) == 0 {
		return nil, fmt.Errorf("%w: no route (%s)", rides.ErrExternalLookup, out.Code)
	}

	route := out.Routes[0]
	plan := &models.RoutePlan{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}
	for _, coord := range route.Geometry.Coordinates {
		if len(coord) == 2 {
			plan.Polyline = append(plan.Polyline, models.GeoPoint{Latitude: coord[1], Longitude: coord[0]})
		}
	}
	return plan, nil
}

// PlanRoute returns a route plan and never fails: when the external lookup
// errors it falls back to the straight-line distance and a duration derived
// from the configured average speed, marked Estimated.
func (r *RoutingClient) PlanRoute(ctx context.Context, from, to models.GeoPoint) *models.RoutePlan {
	plan, err := r.LookupETA(ctx, from, to)
	if err == nil {
		return plan
	}

	logger.Debug("Route lookup failed, using straight-line estimate",
		logger.Err(err))

	distance := utils.DistanceMeters(from, to)
	return &models.RoutePlan{
		DistanceMeters:  distance,
		DurationSeconds: distance / r.avgSpeedMps,
		Polyline:        []models.GeoPoint{from, to},
		Estimated:       true,
	}
}
