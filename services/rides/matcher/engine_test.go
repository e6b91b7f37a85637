package matcher

import (
	"testing"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testConfig() models.MatchConfig {
	return models.MatchConfig{
		OverlapRadiusM:  500,
		OverlapRatio:    0.2,
		SamePathRadiusM: 2000,
		ProximityM:      5000,
		NearbyRadiusM:   10000,
		ExpandedRadiusM: 15000,
		MinResults:      5,
	}
}

func testCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		From: pt(-6.2000, 106.8000),
		To:   pt(-6.2450, 106.8000), // ~5km south
	}
}

func activeRide(id string, pickup models.GeoPoint) *models.ActiveRide {
	return &models.ActiveRide{
		RideID:   id,
		DriverID: "driver-" + id,
		Pickup:   &pickup,
		Status:   models.RideStatusActive,
	}
}

func TestFindMatches_EmptyRegistry(t *testing.T) {
	engine := NewEngine(testConfig())

	result := engine.FindMatches(testCriteria(), nil)

	assert.True(t, result.None)
	assert.Empty(t, result.Matches)
}

func TestFindMatches_NothingInRange(t *testing.T) {
	engine := NewEngine(testConfig())
	// ~50km away
	far := activeRide("far", pt(-6.0000, 107.2000))

	result := engine.FindMatches(testCriteria(), []*models.ActiveRide{far})

	assert.True(t, result.None)
}

func TestFindMatches_DirectByProximity(t *testing.T) {
	engine := NewEngine(testConfig())
	// Pickup ~111m from the searcher's origin, no recorded route
	ride := activeRide("close", pt(-6.2010, 106.8000))

	result := engine.FindMatches(testCriteria(), []*models.ActiveRide{ride})

	assert.False(t, result.None)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchKindDirect, result.Matches[0].Kind)
	assert.Equal(t, "close", result.Matches[0].Ride.RideID)
}

func TestFindMatches_DirectByRouteOverlap(t *testing.T) {
	engine := NewEngine(testConfig())
	criteria := testCriteria()

	ride := activeRide("overlap", criteria.From)
	ride.Route = []models.GeoPoint{criteria.From, criteria.To}

	result := engine.FindMatches(criteria, []*models.ActiveRide{ride})

	assert.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchKindDirect, result.Matches[0].Kind)
}

func TestFindMatches_DirectByTrailWhenNoRoute(t *testing.T) {
	engine := NewEngine(testConfig())
	criteria := testCriteria()

	ride := activeRide("trail", criteria.From)
	ride.Trail = []models.TrailPoint{
		{Latitude: criteria.From.Latitude, Longitude: criteria.From.Longitude},
		{Latitude: criteria.To.Latitude, Longitude: criteria.To.Longitude},
	}
	ride.Last = &ride.Trail[1]

	result := engine.FindMatches(criteria, []*models.ActiveRide{ride})

	assert.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchKindDirect, result.Matches[0].Kind)
}

func TestFindMatches_Nearby(t *testing.T) {
	engine := NewEngine(testConfig())
	// ~9km north of the origin: outside proximity, inside the nearby radius
	ride := activeRide("nearby", pt(-6.1190, 106.8000))

	result := engine.FindMatches(testCriteria(), []*models.ActiveRide{ride})

	assert.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchKindNearby, result.Matches[0].Kind)
}

func TestFindMatches_ExpansionWhenResultsThin(t *testing.T) {
	engine := NewEngine(testConfig())
	// ~12km north: outside the nearby radius, inside the expanded one
	ride := activeRide("expanded", pt(-6.0920, 106.8000))

	result := engine.FindMatches(testCriteria(), []*models.ActiveRide{ride})

	assert.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchKindExpanded, result.Matches[0].Kind)
}

func TestFindMatches_SkipsEndedRides(t *testing.T) {
	engine := NewEngine(testConfig())
	ride := activeRide("done", pt(-6.2010, 106.8000))
	ride.Status = models.RideStatusEnded

	result := engine.FindMatches(testCriteria(), []*models.ActiveRide{ride})

	assert.True(t, result.None)
}

func TestFindMatches_SkipsRidesWithoutLocation(t *testing.T) {
	engine := NewEngine(testConfig())
	ride := &models.ActiveRide{RideID: "blind", Status: models.RideStatusActive}

	result := engine.FindMatches(testCriteria(), []*models.ActiveRide{ride})

	assert.True(t, result.None)
}

func TestFindMatches_PrefersLiveLocationOverPickup(t *testing.T) {
	engine := NewEngine(testConfig())
	criteria := testCriteria()

	// Announced far away, but the live position has moved next to the
	// searcher's origin
	ride := activeRide("moved", pt(-6.0000, 107.2000))
	ride.Last = &models.TrailPoint{Latitude: -6.2010, Longitude: 106.8000}

	result := engine.FindMatches(criteria, []*models.ActiveRide{ride})

	assert.Len(t, result.Matches, 1)
	assert.Equal(t, models.MatchKindDirect, result.Matches[0].Kind)
}
