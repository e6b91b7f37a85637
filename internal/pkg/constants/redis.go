package constants

// Redis key formats
const (
	KeyRideLocation = "rides:location:%s" // Format: rides:location:{ride_id}
	KeyDriverGeo    = "drivers:geo"       // Geo set of driver positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
