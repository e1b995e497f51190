// Package network adjusts two-dimensional survey networks by weighted least
// squares (Gauss-Markov model, variation of coordinates).
//
// 🚀 How it works
//
//	Every free station contributes two unknowns, corrections ΔE and ΔN to its
//	approximate coordinates. Each observation is linearized around the
//	current approximation into one row of the design matrix A and one
//	misclosure l = observed − computed, weighted by 1/σ². One pass solves
//
//	  (AᵀPA) x = AᵀPl
//
//	and applies x. Passes repeat until the largest correction falls below
//	the tolerance or the iteration cap is reached.
//
// ✨ Observations
//   - Distance(from, to): horizontal distance in meters.
//   - Azimuth(from, to): grid bearing in decimal degrees.
//   - Angle(at, from, to): the clockwise angle at "at" from the "from"
//     direction to the "to" direction, in decimal degrees.
//
// Angular rows are formed in radians, with σ converted accordingly, and
// angular misclosures are wrapped into (−π, π].
//
// ⚙️ Usage:
//
//	res, err := network.Adjust(stations, obs,
//	    network.WithMaxIterations(10),
//	    network.WithTolerance(1e-4))
//
// Iterate is the pure single-pass step behind Adjust: it takes a State by
// value and returns a new one, so independent adjustments can run in
// parallel goroutines.
package network
