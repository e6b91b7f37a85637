package models

// RouteSearchRequest is a rider's search for rides along a route
type RouteSearchRequest struct {
	FromLat float64 `json:"fromLat"`
	FromLng float64 `json:"fromLng"`
	ToLat   float64 `json:"toLat"`
	ToLng   float64 `json:"toLng"`
}

// SearchCriteria is the ephemeral per-connection search state. It is
// replaced wholesale on every new search and dropped on disconnect.
type SearchCriteria struct {
	From GeoPoint `json:"from"`
	To   GeoPoint `json:"to"`
}

// MatchKind classifies how a candidate satisfied a search
type MatchKind string

const (
	MatchKindDirect   MatchKind = "direct"
	MatchKindNearby   MatchKind = "nearby"
	MatchKindExpanded MatchKind = "expanded"
)

// RideMatch is one entry of a search result, in insertion order
type RideMatch struct {
	Ride *ActiveRide `json:"ride"`
	Kind MatchKind   `json:"kind"`
}

// SearchResult is the reply to a route search; an empty match list with
// None set is the explicit "no matches yet" signal, not an error
type SearchResult struct {
	Matches []RideMatch `json:"matches,omitempty"`
	None    bool        `json:"none,omitempty"`
}
