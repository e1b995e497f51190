package network

import (
	"fmt"
	"math"
)

// State is an immutable-by-convention snapshot of station coordinates.
// Iterate consumes a State and returns a new one; nothing aliases the
// caller's slices.
type State struct {
	stations []Station
	index    map[string]int // name → position; shared by clones, never mutated
}

// NewState validates and copies stations.
//
// Errors:
//   - ErrInvalidStation for an empty name or non-finite coordinates.
//   - ErrDuplicateStation when a name repeats.
//   - ErrNoFixedStation when no station is fixed.
func NewState(stations []Station) (State, error) {
	s := State{
		stations: make([]Station, len(stations)),
		index:    make(map[string]int, len(stations)),
	}
	fixed := 0
	for i, st := range stations {
		if st.Name == "" {
			return State{}, fmt.Errorf("%w: station %d has no name", ErrInvalidStation, i)
		}
		if !finite(st.Easting) || !finite(st.Northing) {
			return State{}, fmt.Errorf("%w: %q has non-finite coordinates", ErrInvalidStation, st.Name)
		}
		if _, dup := s.index[st.Name]; dup {
			return State{}, fmt.Errorf("%w: %q", ErrDuplicateStation, st.Name)
		}
		s.index[st.Name] = i
		s.stations[i] = st
		if st.Fixed {
			fixed++
		}
	}
	if fixed == 0 {
		return State{}, ErrNoFixedStation
	}

	return s, nil
}

// Clone returns a copy whose stations can be changed independently.
func (s State) Clone() State {
	cp := make([]Station, len(s.stations))
	copy(cp, s.stations)
	return State{stations: cp, index: s.index}
}

// Len returns the number of stations.
func (s State) Len() int { return len(s.stations) }

// Stations returns a copy of the stations in input order.
func (s State) Stations() []Station {
	cp := make([]Station, len(s.stations))
	copy(cp, s.stations)
	return cp
}

// Station returns the station called name.
func (s State) Station(name string) (Station, bool) {
	i, ok := s.index[name]
	if !ok {
		return Station{}, false
	}
	return s.stations[i], true
}

// Unknowns returns, per station, the column of its ΔE unknown (ΔN follows
// at +1), or −1 for fixed stations, together with the unknown count.
func (s State) Unknowns() (cols []int, n int) {
	cols = make([]int, len(s.stations))
	for i, st := range s.stations {
		if st.Fixed {
			cols[i] = -1
			continue
		}
		cols[i] = n
		n += 2
	}
	return cols, n
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
