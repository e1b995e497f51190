package traverse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
)

// Reduce splits every leg into its latitude (d·cos az) and departure
// (d·sin az). Azimuths are decimal degrees.
//
// Errors:
//   - ErrShape if len(azimuths) != len(distances).
//
// Complexity: O(n).
func Reduce(azimuths, distances []float64) (lat, dep []float64, err error) {
	if len(azimuths) != len(distances) {
		return nil, nil, fmt.Errorf("%w: %d azimuths, %d distances", ErrShape, len(azimuths), len(distances))
	}
	lat = make([]float64, len(azimuths))
	dep = make([]float64, len(azimuths))
	var r float64
	for i, az := range azimuths {
		r = angle.Radians(az)
		lat[i] = distances[i] * math.Cos(r)
		dep[i] = distances[i] * math.Sin(r)
	}

	return lat, dep, nil
}

// ReduceEncoded is Reduce over DD.MMSS azimuth text. A malformed azimuth
// yields an error wrapping angle.ErrFormat that names the leg index.
func ReduceEncoded(azimuths []string, distances []float64) (lat, dep []float64, err error) {
	if len(azimuths) != len(distances) {
		return nil, nil, fmt.Errorf("%w: %d azimuths, %d distances", ErrShape, len(azimuths), len(distances))
	}
	az, err := angle.DecodeAll(azimuths)
	if err != nil {
		return nil, nil, fmt.Errorf("traverse: leg %w", err)
	}

	return Reduce(az, distances)
}

// Chain accumulates coordinates from (startE, startN): point i+1 is point i
// shifted by dep[i] east and lat[i] north. The result always holds
// len(lat)+1 points and the first equals the start.
//
// Errors:
//   - ErrShape if len(lat) != len(dep).
func Chain(startE, startN float64, lat, dep []float64) ([]Point, error) {
	if len(lat) != len(dep) {
		return nil, fmt.Errorf("%w: %d latitudes, %d departures", ErrShape, len(lat), len(dep))
	}
	pts := make([]Point, len(lat)+1)
	pts[0] = Point{Easting: startE, Northing: startN}
	for i := range lat {
		pts[i+1] = Point{
			Easting:  pts[i].Easting + dep[i],
			Northing: pts[i].Northing + lat[i],
		}
	}

	return pts, nil
}
