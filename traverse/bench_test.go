package traverse_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/surveyor/traverse"
)

func BenchmarkCompute_100Legs(b *testing.B) {
	legs := make([]traverse.Leg, 100)
	for i := range legs {
		legs[i] = traverse.Leg{
			Line:      strconv.Itoa(i) + "-" + strconv.Itoa(i+1),
			Direction: strconv.Itoa(i*7%360) + ".1530",
			Distance:  50 + float64(i%13),
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Compute(traverse.Point{Name: "0"}, legs); err != nil {
			b.Fatal(err)
		}
	}
}
