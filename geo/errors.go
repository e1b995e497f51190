package geo

import "errors"

var (
	// ErrUnsupportedEPSG is returned for EPSG codes other than 4326 and the
	// WGS84 UTM zones 32601..32660 and 32701..32760.
	ErrUnsupportedEPSG = errors.New("geo: unsupported EPSG code")

	// ErrOutOfRange is returned for coordinates outside the domain of the
	// projection (latitude beyond ±84°, easting outside the zone, a point too far
	// from the central meridian).
	ErrOutOfRange = errors.New("geo: coordinate out of range")
)
