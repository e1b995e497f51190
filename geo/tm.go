package geo

import "math"

// WGS84 ellipsoid and UTM scale, rounded as github.com/im7mortal/UTM
// rounds them so both projections agree inside a zone.
const (
	semiMajor = 6378137.0
	ecc2      = 0.00669438
	scale     = 0.9996
	falseEast = 500000.0

	// maxMeridianOffset bounds how far from the central meridian a point
	// may be projected; the series stays at millimetre level inside it.
	maxMeridianOffset = 9.0
)

var (
	secondEcc2 = ecc2 / (1 - ecc2)

	arc1 = 1 - ecc2/4 - 3*ecc2*ecc2/64 - 5*ecc2*ecc2*ecc2/256
	arc2 = 3*ecc2/8 + 3*ecc2*ecc2/32 + 45*ecc2*ecc2*ecc2/1024
	arc3 = 15*ecc2*ecc2/256 + 45*ecc2*ecc2*ecc2/1024
	arc4 = 35 * ecc2 * ecc2 * ecc2 / 3072
)

// transverseMercator projects a point at latitude lat lying dLon degrees
// east of the central meridian. The northing carries no false northing.
func transverseMercator(lat, dLon float64) (easting, northing float64) {
	phi := lat * math.Pi / 180
	sin, cos := math.Sincos(phi)
	tan := sin / cos
	t2 := tan * tan
	t4 := t2 * t2

	nu := semiMajor / math.Sqrt(1-ecc2*sin*sin)
	c := secondEcc2 * cos * cos
	a := cos * dLon * math.Pi / 180
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	m := semiMajor * (arc1*phi - arc2*math.Sin(2*phi) + arc3*math.Sin(4*phi) - arc4*math.Sin(6*phi))

	easting = scale*nu*(a+
		a3/6*(1-t2+c)+
		a5/120*(5-18*t2+t4+72*c-58*secondEcc2)) + falseEast
	northing = scale * (m + nu*tan*(a2/2+
		a4/24*(5-t2+9*c+4*c*c)+
		a6/720*(61-58*t2+t4+600*c-330*secondEcc2)))
	return easting, northing
}

// meridianOffset returns lon − cm wrapped into [−180, 180].
func meridianOffset(lon, cm float64) float64 {
	return math.Remainder(lon-cm, 360)
}
