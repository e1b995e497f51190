// Package traverse reduces compass and theodolite traverses to coordinates.
//
// 🚀 What is a traverse?
//
//	A traverse is a chain of legs, each observed as a direction and a
//	horizontal distance. Every leg splits into a latitude (north component)
//	and a departure (east component):
//
//	  latitude  = d · cos(az)
//	  departure = d · sin(az)
//
//	A closed traverse should sum to zero in both components; whatever is
//	left is the misclosure, which the Bowditch (compass) rule distributes
//	over the legs in proportion to their length.
//
// ✨ Key features:
//   - Reduce / ReduceEncoded: azimuths and distances → latitudes, departures
//   - Chain: accumulate coordinates from a start point (n legs → n+1 points)
//   - Bowditch and Misclose: misclosure distribution and precision ratio
//   - PropagateAzimuths: theodolite traverses from included angles, with
//     equal distribution of the angular misclosure on closed loops
//   - Stadia: tacheometric distances from staff intercepts
//   - Compute: the full pipeline behind a functional-options facade
//
// ⚙️ Usage:
//
//	res, err := traverse.Compute(traverse.Point{Name: "A"}, legs,
//	    traverse.WithAngleFormat(angle.FormatDMS),
//	    traverse.WithMethod(traverse.MethodBowditch))
//
// Errors are sentinel values (ErrShape, ErrInvalidReading, ErrOptionViolation)
// matched with errors.Is.
package traverse
