package traverse

import (
	"fmt"
	"math"
)

// Bowditch distributes the linear misclosure of a traverse by the compass
// rule: every leg receives a share of the latitude and departure misclosure
// proportional to its length,
//
//	corrLat_i = −Σlat · d_i / Σd
//	corrDep_i = −Σdep · d_i / Σd
//
// so the adjusted components sum to zero. A traverse of zero total length
// yields zero corrections and the inputs unchanged.
//
// Errors:
//   - ErrShape if the three slices differ in length.
//
// Complexity: O(n).
func Bowditch(distances, lat, dep []float64) (Adjustment, error) {
	if err := sameLength(distances, lat, dep); err != nil {
		return Adjustment{}, err
	}
	n := len(distances)
	adj := Adjustment{
		Latitudes:      append([]float64(nil), lat...),
		Departures:     append([]float64(nil), dep...),
		LatCorrections: make([]float64, n),
		DepCorrections: make([]float64, n),
	}

	perimeter := sum(distances)
	if perimeter == 0 {
		return adj, nil
	}
	misLat, misDep := sum(lat), sum(dep)
	var share float64
	for i, d := range distances {
		share = d / perimeter
		adj.LatCorrections[i] = -misLat * share
		adj.DepCorrections[i] = -misDep * share
		adj.Latitudes[i] += adj.LatCorrections[i]
		adj.Departures[i] += adj.DepCorrections[i]
	}

	return adj, nil
}

// Misclose reports the latitude, departure and linear misclosure of a
// traverse together with its perimeter and precision ratio
// (perimeter / linear misclosure, +Inf when the traverse closes exactly).
//
// Errors:
//   - ErrShape if the three slices differ in length.
func Misclose(distances, lat, dep []float64) (Misclosure, error) {
	if err := sameLength(distances, lat, dep); err != nil {
		return Misclosure{}, err
	}
	m := Misclosure{
		Latitude:  sum(lat),
		Departure: sum(dep),
		Perimeter: sum(distances),
	}
	m.Linear = math.Hypot(m.Latitude, m.Departure)
	if m.Linear == 0 {
		m.Precision = math.Inf(1)
	} else {
		m.Precision = m.Perimeter / m.Linear
	}

	return m, nil
}

func sameLength(distances, lat, dep []float64) error {
	if len(distances) != len(lat) || len(lat) != len(dep) {
		return fmt.Errorf("%w: %d distances, %d latitudes, %d departures",
			ErrShape, len(distances), len(lat), len(dep))
	}
	return nil
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}
