package traverse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/surveyor/angle"
)

// Compute runs the whole traverse pipeline: read directions, (optionally)
// propagate azimuths from included angles, reduce to latitudes and
// departures, measure the misclosure, adjust, and accumulate coordinates
// from start.
//
// Stage 1 (Validate): apply options, reject empty input and negative distances.
// Stage 2 (Directions): parse Leg.Direction per Options.Format; in
// included-angle mode propagate azimuths with PropagateAzimuths.
// Stage 3 (Reduce): latitudes, departures and misclosure.
// Stage 4 (Adjust): Bowditch or none, then Chain from start.
//
// Points are named after the far end of each line ("A-B" → "B"); unnamed
// lines produce "P1", "P2", ….
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrShape when legs is empty.
//   - ErrInvalidReading for a negative distance.
//   - angle.ErrFormat (wrapped with the leg index) for unreadable directions.
func Compute(start Point, legs []Leg, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: no legs", ErrShape)
	}

	n := len(legs)
	res := &Result{
		Lines:     make([]string, n),
		Distances: make([]float64, n),
		Method:    o.Method,
	}
	directions := make([]float64, n)
	var err error
	for i, leg := range legs {
		if leg.Distance < 0 {
			return nil, fmt.Errorf("%w: leg %d distance %g", ErrInvalidReading, i, leg.Distance)
		}
		if directions[i], err = angle.Parse(leg.Direction, o.Format); err != nil {
			return nil, fmt.Errorf("traverse: leg %d: %w", i, err)
		}
		res.Lines[i] = leg.Line
		res.Distances[i] = leg.Distance
	}

	if o.included {
		p := PropagateAzimuths(o.initialAzimuth, directions, o.kind, o.closed)
		res.Azimuths = p.Azimuths
		res.Angular = p.Closure
	} else {
		res.Azimuths = make([]float64, n)
		for i, d := range directions {
			res.Azimuths[i] = angle.Normalize(d)
		}
	}

	if res.Latitudes, res.Departures, err = Reduce(res.Azimuths, res.Distances); err != nil {
		return nil, err
	}
	if res.Misclosure, err = Misclose(res.Distances, res.Latitudes, res.Departures); err != nil {
		return nil, err
	}

	switch o.Method {
	case MethodNone:
		res.Adjustment = Adjustment{
			Latitudes:      append([]float64(nil), res.Latitudes...),
			Departures:     append([]float64(nil), res.Departures...),
			LatCorrections: make([]float64, n),
			DepCorrections: make([]float64, n),
		}
	default:
		if res.Adjustment, err = Bowditch(res.Distances, res.Latitudes, res.Departures); err != nil {
			return nil, err
		}
	}

	if res.Points, err = Chain(start.Easting, start.Northing, res.Adjustment.Latitudes, res.Adjustment.Departures); err != nil {
		return nil, err
	}
	res.Points[0].Name = start.Name
	for i, line := range res.Lines {
		res.Points[i+1].Name = farEnd(line, i+1)
	}

	return res, nil
}

// farEnd names the station a line ends at.
func farEnd(line string, idx int) string {
	line = strings.TrimSpace(line)
	if i := strings.LastIndexByte(line, '-'); i >= 0 && i < len(line)-1 {
		return strings.TrimSpace(line[i+1:])
	}
	if line == "" {
		return "P" + strconv.Itoa(idx)
	}
	return line
}
