// Package triangulation fixes new stations from observed triangles.
//
// 🚀 What is here?
//
//	Intersect:     one new point from a known baseline and the two
//	               included angles at its ends (law of sines).
//	SolveChain:    a strictly ordered chain of triangles, each resting on
//	               two already-resolved stations. The angular misclosure
//	               of every triangle is spread equally over its angles.
//	Quadrilateral: the braced quadrilateral. Eight angles and a baseline
//	               are checked for closure, approximated by intersection
//	               and finished by a least-squares adjustment.
//
// ✨ Conventions:
//   - Angles are decimal degrees; azimuths are clockwise from grid north.
//   - Direction says on which side of the directed baseline P1→P2 the new
//     station lies: Left subtracts the angle at P1 from the base azimuth,
//     Right adds it.
//
// ⚙️ Usage:
//
//	chain, err := triangulation.SolveChain(start, 100, 90, triangles)
//	c, ok := chain.Station("C")
package triangulation
