package leveling_test

import (
	"fmt"

	"github.com/katalvlaran/surveyor/angle"
	"github.com/katalvlaran/surveyor/leveling"
)

// ExampleTrig reduces two targets read with DD.MMSS zenith angles.
func ExampleTrig() {
	z1, _ := angle.Decode("85.3000")
	z2, _ := angle.Decode("91.3000")
	res, err := leveling.Trig(120, 1.55, []leveling.TrigObservation{
		{Target: "T1", HorizontalDistance: 250, Zenith: z1, TargetHeight: 1.8},
		{Target: "T2", HorizontalDistance: 1000, Zenith: z2, TargetHeight: 2.0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res {
		fmt.Printf("%s %.3f (c+r %.4f)\n", r.Target, r.Elevation, r.Correction)
	}
	// Output:
	// T1 139.430 (c+r 0.0042)
	// T2 93.432 (c+r 0.0675)
}

// ExampleDifferential books a short run and checks it against the closing
// benchmark.
func ExampleDifferential() {
	s := leveling.Sight
	run, err := leveling.Differential(100, []leveling.Reading{
		{Station: "BM1", Backsight: s(1.500)},
		{Station: "P1", Intermediate: s(2.000)},
		{Station: "TP1", Foresight: s(0.800), Backsight: s(1.200)},
		{Station: "BM2", Foresight: s(1.400)},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range run.Rows {
		fmt.Printf("%-4s HI %.3f  RL %.3f\n", r.Station, r.HI, r.Elevation)
	}
	fmt.Printf("check %.3f misclosure %.3f\n", run.Check, run.Misclosure(100.496))
	// Output:
	// BM1  HI 101.500  RL 100.000
	// P1   HI 101.500  RL 99.500
	// TP1  HI 101.500  RL 100.700
	// BM2  HI 101.900  RL 100.500
	// check 100.500 misclosure 0.004
}
