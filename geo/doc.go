// Package geo converts between WGS84 geographic coordinates (EPSG:4326) and
// the WGS84 UTM zones (EPSG:326xx north, EPSG:327xx south).
//
// Coordinates follow the x/y convention throughout: X is easting or
// longitude, Y is northing or latitude.
//
//	u, _ := geo.ParseEPSG(32632)
//	lon, lat, err := u.ToGeographic(500000, 5_000_000)
//
// The projection arithmetic is delegated to github.com/im7mortal/UTM. That
// library always projects into a point's natural zone; projecting into a
// neighbouring zone uses the same series about the requested meridian.
package geo
