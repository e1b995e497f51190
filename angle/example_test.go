package angle_test

import (
	"fmt"

	"github.com/katalvlaran/surveyor/angle"
)

// ExampleDecode reads a field-book bearing and prints it in decimal degrees.
func ExampleDecode() {
	deg, err := angle.Decode("123.4530")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", deg)
	// Output:
	// 123.758333
}

// ExampleEncode shows the carry from 59.99999° into a whole degree.
func ExampleEncode() {
	fmt.Println(angle.Encode(59.99999))
	fmt.Println(angle.Encode(-5.5))
	// Output:
	// 60.0000
	// -05.3000
}

// ExampleAzimuth prints the azimuth of a north-east diagonal and its back azimuth.
func ExampleAzimuth() {
	az := angle.Azimuth(10, 10)
	fmt.Printf("%.4f %.4f\n", az, angle.Back(az))
	// Output:
	// 45.0000 225.0000
}
