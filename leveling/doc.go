// Package leveling reduces height observations to elevations.
//
// Trig covers trigonometric heighting from one instrument station. Each
// target is observed by horizontal distance and zenith angle:
//
//	elev = stationElev + hd·tan(90° − z) + hi − th + 0.0675·(hd/1000)²
//
// The last term is the combined earth-curvature and refraction correction
// in meters.
//
// Differential reduces a spirit-level run booked by the height-of-instrument
// method (backsight, intermediate sight and foresight per row). It carries
// the arithmetic check
//
//	start + ΣBS − ΣFS = last elevation
//
// and an optional misclosure against a closing benchmark.
//
// Errors are the sentinels ErrInvalidReading and ErrBooking.
package leveling
