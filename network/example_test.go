package network_test

import (
	"fmt"

	"github.com/katalvlaran/surveyor/network"
)

// ExampleAdjust fixes a free station by a distance and an azimuth from a
// control point, starting from a rough approximation.
func ExampleAdjust() {
	stations := []network.Station{
		{Name: "CP1", Easting: 5000, Northing: 8000, Fixed: true},
		{Name: "P", Easting: 5071, Northing: 8069},
	}
	obs := []network.Observation{
		network.Distance("CP1", "P", 100, 0.005),
		network.Azimuth("CP1", "P", 45, 5.0/3600),
	}
	res, err := network.Adjust(stations, obs, network.WithTolerance(1e-6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.Station("P")
	fmt.Printf("P %.3f %.3f converged=%v\n", p.Easting, p.Northing, res.Converged)
	// Output:
	// P 5070.711 8070.711 converged=true
}

// ExampleUnconnected lists stations the observations never reach.
func ExampleUnconnected() {
	stations := []network.Station{
		{Name: "A", Fixed: true},
		{Name: "B"},
		{Name: "C"},
	}
	obs := []network.Observation{network.Distance("A", "B", 10, 0.01)}
	fmt.Println(network.Unconnected(stations, obs))
	// Output:
	// [C]
}
