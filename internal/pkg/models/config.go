package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Match    MatchConfig
	Routing  RoutingConfig
	Booking  BookingConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon configuration
type NSQConfig struct {
	Address         string
	LookupAddresses []string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MatchConfig contains the matching thresholds. The defaults mirror the
// values the matching behaviour was tuned with in production; they are
// configuration, not derived constants.
type MatchConfig struct {
	OverlapRadiusM     float64 // neighbour radius for the overlap ratio test
	OverlapRatio       float64 // minimum ratio for a route overlap match
	SamePathRadiusM    float64 // coarse any-pair radius for sparse routes
	ProximityM         float64 // endpoint fallback threshold
	NearbyRadiusM      float64 // broader nearby-match radius
	ExpandedRadiusM    float64 // expansion pass radius
	MinResults         int     // expansion trigger
	StalenessWindowSec int     // registry eviction window
	SweepIntervalSec   int     // background sweep cadence
}

// RoutingConfig contains the external route lookup configuration
type RoutingConfig struct {
	BaseURL     string
	TimeoutSec  int
	AvgSpeedMps float64 // straight-line fallback speed
}

// BookingConfig contains seat booking configuration
type BookingConfig struct {
	DefaultCapacity int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
