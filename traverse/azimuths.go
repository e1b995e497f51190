package traverse

import (
	"github.com/katalvlaran/surveyor/angle"
)

// PropagateAzimuths carries an initial azimuth through the included angles
// of a theodolite traverse. With angles[i] measured at the start station of
// leg i+1, the next forward azimuth is
//
//	interior: az_{i+1} = back(az_i) + angle_i
//	exterior: az_{i+1} = back(az_i) − angle_i
//
// normalized into [0,360). One azimuth is produced per angle, the first
// being the initial azimuth itself.
//
// When closed is true the angles form a loop of n stations and must sum to
// (n−2)·180 (interior) or (n+2)·180 (exterior); the difference is removed
// by correcting every angle by −e/n before propagation.
//
// Complexity: O(n).
func PropagateAzimuths(initial float64, angles []float64, kind AngleKind, closed bool) Propagation {
	n := len(angles)
	p := Propagation{
		Azimuths:  make([]float64, n),
		Corrected: append([]float64(nil), angles...),
	}
	if n == 0 {
		return p
	}

	if closed {
		c := &AngularClosure{Measured: sum(angles)}
		if kind == Exterior {
			c.Theoretical = float64(n+2) * angle.HalfCircle
		} else {
			c.Theoretical = float64(n-2) * angle.HalfCircle
		}
		c.Misclosure = c.Measured - c.Theoretical
		c.Correction = -c.Misclosure / float64(n)
		for i := range p.Corrected {
			p.Corrected[i] += c.Correction
		}
		p.Closure = c
	}

	az := angle.Normalize(initial)
	for i := 0; i < n; i++ {
		p.Azimuths[i] = az
		if kind == Exterior {
			az = angle.Normalize(angle.Back(az) - p.Corrected[i])
		} else {
			az = angle.Normalize(angle.Back(az) + p.Corrected[i])
		}
	}

	return p
}
