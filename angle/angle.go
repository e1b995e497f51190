package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sexagesimal factors.
const (
	MinutesPerDegree = 60.0
	SecondsPerDegree = 3600.0

	// packedDigits is the number of significant fractional digits in DD.MMSS.
	packedDigits = 4
)

// Format selects how angle text is interpreted by Parse.
type Format int

const (
	// FormatDMS reads packed DD.MMSS text.
	FormatDMS Format = iota

	// FormatDecimal reads plain decimal degrees.
	FormatDecimal
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatDMS:
		return "dms"
	case FormatDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "dms"/"dd.mmss" and "decimal"/"dd" to a Format.
// The empty string selects FormatDMS.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dms", "dd.mmss":
		return FormatDMS, nil
	case "decimal", "dd", "deg":
		return FormatDecimal, nil
	}
	return 0, fmt.Errorf("%w: unknown angle format %q", ErrFormat, s)
}

// Decode converts packed DD.MMSS text into decimal degrees.
//
// Text without a decimal point, in exponent notation, or whose fraction has
// fewer than four digits, is already decimal and is returned as parsed. Otherwise the first
// two fractional digits are minutes and the next two seconds; any further
// digits are ignored. A leading sign applies to the whole angle.
//
// Errors:
//   - ErrFormat if the text is empty, non-numeric, not finite, or its
//     minutes or seconds are 60 or more.
func Decode(text string) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrFormat, text)
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return v, nil
	}
	frac := s[dot+1:]
	if !allDigits(frac) || len(frac) < packedDigits {
		return v, nil
	}

	neg := strings.HasPrefix(s, "-")
	whole := strings.TrimLeft(s[:dot], "+-")
	deg := 0.0
	if whole != "" {
		if deg, err = strconv.ParseFloat(whole, 64); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrFormat, text)
		}
	}
	minutes := float64((frac[0]-'0')*10 + (frac[1] - '0'))
	seconds := float64((frac[2]-'0')*10 + (frac[3] - '0'))
	if minutes >= MinutesPerDegree || seconds >= MinutesPerDegree {
		return 0, fmt.Errorf("%w: %q has minutes or seconds >= 60", ErrFormat, text)
	}

	dd := deg + minutes/MinutesPerDegree + seconds/SecondsPerDegree
	if neg {
		dd = -dd
	}
	return dd, nil
}

// Encode converts decimal degrees into packed DD.MMSS text, rounding to the
// nearest whole second. Rounding carries into minutes and degrees, and the
// sign is emitted once in front of the whole value.
func Encode(deg float64) string {
	switch {
	case math.IsNaN(deg):
		return "NaN"
	case math.IsInf(deg, 1):
		return "+Inf"
	case math.IsInf(deg, -1):
		return "-Inf"
	}

	total := math.Round(math.Abs(deg) * SecondsPerDegree)
	d := math.Floor(total / SecondsPerDegree)
	rem := total - d*SecondsPerDegree
	m := math.Floor(rem / MinutesPerDegree)
	s := rem - m*MinutesPerDegree

	sign := ""
	if deg < 0 && total > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%02.0f.%02.0f%02.0f", sign, d, m, s)
}

// Parse reads text as DD.MMSS or decimal degrees depending on f.
func Parse(text string, f Format) (float64, error) {
	if f == FormatDMS {
		return Decode(text)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrFormat, text)
	}
	return v, nil
}

// ParseAll parses every element of texts; the returned error names the
// offending index.
func ParseAll(texts []string, f Format) ([]float64, error) {
	out := make([]float64, len(texts))
	var err error
	for i, t := range texts {
		if out[i], err = Parse(t, f); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return out, nil
}

// DecodeAll is ParseAll with FormatDMS.
func DecodeAll(texts []string) ([]float64, error) { return ParseAll(texts, FormatDMS) }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
