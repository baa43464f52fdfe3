// Package units provides length and area conversions for room measurements.
//
// All fusion arithmetic happens in millimetres; regulatory standards and
// human-facing output use metres. Upstream capture pipelines occasionally
// report in feet (spoken measurements especially), so a small unit parser
// is provided for input normalisation.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Conversion factors to millimetres.
const (
	MillimetresPerMetre = 1000.0
	MillimetresPerFoot  = 304.8
)

// MMToM converts millimetres to metres.
func MMToM(mm float64) float64 {
	return mm / MillimetresPerMetre
}

// MToMM converts metres to millimetres.
func MToMM(m float64) float64 {
	return m * MillimetresPerMetre
}

// AreaSqmFromMM derives floor area in square metres from side lengths in
// millimetres.
func AreaSqmFromMM(lengthMM, widthMM float64) float64 {
	return (lengthMM * widthMM) / 1_000_000
}

// Round2 rounds to two decimal places, the precision used for all reported
// dimensions, areas and confidence values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToMillimetres converts a value in the named unit to millimetres.
// Recognised units: millimetres ("mm"), metres ("m"), feet ("ft").
// An empty unit means millimetres. Unit names are case-insensitive.
func ToMillimetres(value float64, unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return value, nil
	case "m", "meter", "meters", "metre", "metres":
		return value * MillimetresPerMetre, nil
	case "ft", "foot", "feet":
		return value * MillimetresPerFoot, nil
	default:
		return 0, fmt.Errorf("unknown length unit %q", unit)
	}
}

// TitleCase converts an identifier like "master_bedroom" into a display
// name like "Master Bedroom".
func TitleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
