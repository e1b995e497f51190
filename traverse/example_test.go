package traverse_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/traverse"
)

// ExampleCompute reduces a closed four-leg compass traverse.
func ExampleCompute() {
	legs := []traverse.Leg{
		{Line: "A-B", Direction: "45", Distance: 100},
		{Line: "B-C", Direction: "135", Distance: 100},
		{Line: "C-D", Direction: "225", Distance: 100},
		{Line: "D-A", Direction: "315", Distance: 100},
	}
	res, err := traverse.Compute(traverse.Point{Name: "A"}, legs,
		traverse.WithAngleFormat(angle.FormatDecimal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Points[1:] {
		fmt.Printf("%s %.3f %.3f\n", p.Name, clean(p.Easting), clean(p.Northing))
	}
	fmt.Printf("linear misclosure %.6f\n", res.Misclosure.Linear)
	// Output:
	// B 70.711 70.711
	// C 141.421 0.000
	// D 70.711 -70.711
	// A 0.000 0.000
	// linear misclosure 0.000000
}

// clean folds round-off residue below display precision to a plain zero.
func clean(v float64) float64 {
	if math.Abs(v) < 5e-4 {
		return 0
	}
	return v
}

// ExampleBowditch distributes a 0.03 m latitude misclosure over two legs.
func ExampleBowditch() {
	adj, _ := traverse.Bowditch([]float64{300, 200}, []float64{100.03, -100}, []float64{0, 0})
	fmt.Printf("%.3f %.3f\n", adj.LatCorrections[0], adj.LatCorrections[1])
	// Output:
	// -0.018 -0.012
}
