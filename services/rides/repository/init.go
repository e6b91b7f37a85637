package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ridelink/ridelink/internal/pkg/database"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// RideRepo implements the durable booking store and the location cache
type RideRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RideRepo {
	return &RideRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
