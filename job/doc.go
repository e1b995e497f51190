// Package job describes one survey computation as a YAML or JSON document
// and runs it.
//
// A job names its kind and carries the matching section:
//
//	kind: traverse
//	angle_format: dms
//	traverse:
//	  start: {name: A, easting: 1000, northing: 2000}
//	  legs:
//	    - {line: A-B, direction: 45.3000, distance: 120.50}
//
// Angles are kept as booked text until the job runs, so that "45.3000"
// stays 45°30'00" instead of collapsing to the float 45.3. Sections may
// point at CSV field books (legs_csv, stations_csv, ...) resolved against
// the job file's directory; jobs decoded from a stream cannot reference
// files.
//
// Run returns an Outcome holding the kind-specific result plus a flat list
// of points for export.
package job
