// Package surveyor turns raw land-survey field observations into adjusted
// station coordinates and elevations.
//
// The computation packages are independent and allocation-local:
//
//	angle/         DD.MMSS codec and direction arithmetic
//	traverse/      latitudes and departures, Bowditch rule, theodolite and stadia traverses
//	triangulation/ two-angle intersection, triangle chains, braced quadrilaterals
//	network/       weighted least-squares adjustment of 2D networks (Gauss-Newton)
//	leveling/      trigonometric and differential leveling
//	matrix/        dense linear algebra behind the normal equations
//
// Around them sit the plumbing packages:
//
//	geo/     WGS84 UTM zones and reprojection
//	ingest/  CSV field books
//	report/  CSV tables and KML
//	job/     YAML/JSON job files and the dispatcher that runs them
//
// cmd/surveyor runs a job file from the command line; cmd/surveyd serves the
// same jobs over HTTP (internal/httpapi).
package surveyor
