package network_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/surveyor/network"
)

// ringNetwork builds n free stations on a circle around two fixed ones,
// each tied by distances to both control points and an angle between them.
func ringNetwork(n int) ([]network.Station, []network.Observation) {
	stations := []network.Station{
		{Name: "F1", Easting: -10, Fixed: true},
		{Name: "F2", Easting: 10, Fixed: true},
	}
	var obs []network.Observation
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		p := network.Station{Name: fmt.Sprintf("P%d", i), Easting: 200 * math.Sin(th), Northing: 200 * math.Cos(th)}
		approx := p
		approx.Easting += 0.3
		approx.Northing -= 0.2
		stations = append(stations, approx)
		obs = append(obs,
			network.Distance("F1", p.Name, dist(stations[0], p), sdDist),
			network.Distance("F2", p.Name, dist(stations[1], p), sdDist),
			network.Angle("F1", "F2", p.Name, clockwise(stations[0], stations[1], p), sdAngle),
		)
	}
	return stations, obs
}

func BenchmarkAdjust_Ring20(b *testing.B) {
	st, obs := ringNetwork(20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := network.Adjust(st, obs); err != nil {
			b.Fatal(err)
		}
	}
}
