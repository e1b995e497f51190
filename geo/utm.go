package geo

import (
	"fmt"
	"math"

	utm "github.com/im7mortal/UTM"
)

// EPSG codes understood by this package.
const (
	WGS84      = 4326
	UTMNorth   = 32600 // + zone
	UTMSouth   = 32700 // + zone
	MinUTMZone = 1
	MaxUTMZone = 60
)

// XY is a coordinate pair in x/y order.
type XY struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// UTM identifies one WGS84 UTM zone and hemisphere.
type UTM struct {
	Zone  int
	North bool
}

// EPSG returns the zone's EPSG code.
func (u UTM) EPSG() int {
	if u.North {
		return UTMNorth + u.Zone
	}
	return UTMSouth + u.Zone
}

// String implements fmt.Stringer, e.g. "UTM 32N".
func (u UTM) String() string {
	h := "S"
	if u.North {
		h = "N"
	}
	return fmt.Sprintf("UTM %d%s", u.Zone, h)
}

// CentralMeridian returns the zone's central meridian in degrees.
func (u UTM) CentralMeridian() float64 {
	return float64((u.Zone-1)*6 - 180 + 3)
}

// ParseEPSG maps a WGS84 UTM EPSG code to its zone.
func ParseEPSG(code int) (UTM, error) {
	switch {
	case code > UTMNorth && code <= UTMNorth+MaxUTMZone:
		return UTM{Zone: code - UTMNorth, North: true}, nil
	case code > UTMSouth && code <= UTMSouth+MaxUTMZone:
		return UTM{Zone: code - UTMSouth, North: false}, nil
	}
	return UTM{}, fmt.Errorf("%w: %d", ErrUnsupportedEPSG, code)
}

// UTMZone returns the standard 6° zone number of lon, floor((lon+180)/6)+1.
// Longitude 180° falls in zone 60.
func UTMZone(lon float64) (int, error) {
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return 0, fmt.Errorf("%w: longitude %g", ErrOutOfRange, lon)
	}
	z := int(math.Floor((lon+180)/6)) + 1
	if z > MaxUTMZone {
		z = MaxUTMZone
	}
	return z, nil
}

// UTMEPSG returns the EPSG code of the UTM zone holding (lon, lat).
func UTMEPSG(lon, lat float64) (int, error) {
	z, err := UTMZone(lon)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, fmt.Errorf("%w: latitude %g", ErrOutOfRange, lat)
	}
	return UTM{Zone: z, North: lat >= 0}.EPSG(), nil
}

// ToGeographic converts grid coordinates of the zone to (lon, lat).
func (u UTM) ToGeographic(easting, northing float64) (lon, lat float64, err error) {
	if u.Zone < MinUTMZone || u.Zone > MaxUTMZone {
		return 0, 0, fmt.Errorf("%w: zone %d", ErrUnsupportedEPSG, u.Zone)
	}
	lat, lon, err = utm.ToLatLon(easting, northing, u.Zone, "", u.North)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s (%g, %g): %v", ErrOutOfRange, u, easting, northing, err)
	}
	return lon, lat, nil
}

// FromGeographic projects (lon, lat) onto the zone's central meridian.
// A point of a neighbouring zone, as on a site straddling a zone boundary,
// is projected into u as long as it lies within 9° of the central meridian.
// The false northing follows u, so a point just across the equator keeps
// the zone's hemisphere convention.
func (u UTM) FromGeographic(lon, lat float64) (easting, northing float64, err error) {
	if u.Zone < MinUTMZone || u.Zone > MaxUTMZone {
		return 0, 0, fmt.Errorf("%w: zone %d", ErrUnsupportedEPSG, u.Zone)
	}
	north := lat >= 0
	easting, northing, zone, _, err := utm.FromLatLon(lat, lon, north)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: (%g, %g): %v", ErrOutOfRange, lon, lat, err)
	}
	if zone != u.Zone {
		d := meridianOffset(lon, u.CentralMeridian())
		if math.Abs(d) > maxMeridianOffset {
			return 0, 0, fmt.Errorf("%w: (%g, %g) lies %.1f° from the central meridian of %s",
				ErrOutOfRange, lon, lat, d, u)
		}
		easting, northing = transverseMercator(lat, d)
		if !north {
			northing += falseNorthing
		}
	}
	switch {
	case u.North && !north:
		northing -= falseNorthing
	case !u.North && north:
		northing += falseNorthing
	}
	return easting, northing, nil
}

// falseNorthing is added to southern-hemisphere northings.
const falseNorthing = 10_000_000

// ToGeographicAll converts every point of the zone; the error names the
// first failing index.
func (u UTM) ToGeographicAll(pts []XY) ([]XY, error) {
	out := make([]XY, len(pts))
	for i, p := range pts {
		lon, lat, err := u.ToGeographic(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = XY{X: lon, Y: lat}
	}
	return out, nil
}

// Convert reprojects pts between two supported EPSG codes. UTM to UTM goes
// through geographic coordinates.
func Convert(pts []XY, from, to int) ([]XY, error) {
	src, err := parse(from)
	if err != nil {
		return nil, err
	}
	dst, err := parse(to)
	if err != nil {
		return nil, err
	}

	out := make([]XY, len(pts))
	for i, p := range pts {
		lon, lat := p.X, p.Y
		if src != nil {
			if lon, lat, err = src.ToGeographic(p.X, p.Y); err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
		}
		x, y := lon, lat
		if dst != nil {
			if x, y, err = dst.FromGeographic(lon, lat); err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
		}
		out[i] = XY{X: x, Y: y}
	}
	return out, nil
}

// parse returns nil for WGS84.
func parse(code int) (*UTM, error) {
	if code == WGS84 {
		return nil, nil
	}
	u, err := ParseEPSG(code)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
