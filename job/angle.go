package job

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surveyor/angle"
)

// Angle is an angle as booked. YAML and JSON numbers are kept verbatim, so
// the DD.MMSS value 45.3000 is not rounded to 45.3 before it is parsed.
type Angle string

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Angle) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrAngle, value.Line)
	}
	*a = Angle(strings.TrimSpace(value.Value))
	return nil
}

// UnmarshalJSON accepts a number or a string.
func (a *Angle) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrAngle, err)
		}
		*a = Angle(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrAngle, s)
	}
	*a = Angle(n.String())
	return nil
}

// Degrees parses the angle in format f.
func (a Angle) Degrees(f angle.Format) (float64, error) {
	return angle.Parse(string(a), f)
}
