package report

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml"

	"github.com/katalvlaran/surveyor/geo"
)

// KMLOption configures WriteKML.
type KMLOption func(*kmlOptions)

type kmlOptions struct {
	name string
	path bool
}

// WithDocumentName sets the name of the KML document.
func WithDocumentName(name string) KMLOption {
	return func(o *kmlOptions) { o.name = name }
}

// WithPath adds a LineString joining the points in order, e.g. the legs of
// a traverse.
func WithPath(on bool) KMLOption {
	return func(o *kmlOptions) { o.path = on }
}

// WriteKML converts pts from zone u to WGS84 and writes one Placemark per
// point, plus an optional path.
func WriteKML(w io.Writer, pts []Point, u geo.UTM, opts ...KMLOption) error {
	if len(pts) == 0 {
		return ErrNoPoints
	}
	o := kmlOptions{name: "survey"}
	for _, opt := range opts {
		opt(&o)
	}

	children := []kml.Element{kml.Name(o.name)}
	coords := make([]kml.Coordinate, len(pts))
	for i, p := range pts {
		lon, lat, err := u.ToGeographic(p.Easting, p.Northing)
		if err != nil {
			return fmt.Errorf("point %s: %w", p.Name, err)
		}
		coords[i] = kml.Coordinate{Lon: lon, Lat: lat}
		children = append(children, kml.Placemark(
			kml.Name(p.Name),
			kml.Description(fmt.Sprintf("E %s N %s (%s)", coord(p.Easting), coord(p.Northing), u)),
			kml.Point(kml.Coordinates(coords[i])),
		))
	}
	if o.path && len(coords) > 1 {
		children = append(children, kml.Placemark(
			kml.Name(o.name+" path"),
			kml.LineString(kml.Tessellate(true), kml.Coordinates(coords...)),
		))
	}

	return kml.KML(kml.Document(children...)).WriteIndent(w, "", "  ")
}
