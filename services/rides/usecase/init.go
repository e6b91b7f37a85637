package usecase

import (
	"sync"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
	"github.com/ridelink/ridelink/services/rides/matcher"
	"github.com/ridelink/ridelink/services/rides/registry"
)

// RideUC implements the ride use case: lifecycle, live location ingestion,
// search with rematch fan-out, and seat booking
type RideUC struct {
	cfg       *models.Config
	registry  *registry.Registry
	engine    *matcher.Engine
	repo      rides.RideRepo
	gw        rides.RideGW
	planner   rides.RoutePlanner
	broadcast rides.Broadcaster

	// searchers holds the ephemeral per-connection criteria, replaced
	// wholesale on every new search and dropped on disconnect
	searcherMu sync.RWMutex
	searchers  map[string]models.SearchCriteria
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	reg *registry.Registry,
	repo rides.RideRepo,
	gw rides.RideGW,
	planner rides.RoutePlanner,
	broadcast rides.Broadcaster,
) *RideUC {
	return &RideUC{
		cfg:       cfg,
		registry:  reg,
		engine:    matcher.NewEngine(cfg.Match),
		repo:      repo,
		gw:        gw,
		planner:   planner,
		broadcast: broadcast,
		searchers: make(map[string]models.SearchCriteria),
	}
}

func (uc *RideUC) routingTimeout() time.Duration {
	timeout := time.Duration(uc.cfg.Routing.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return timeout
}
