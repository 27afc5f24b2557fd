// Package units provides shared angular constants and conversions for sky coordinates
package units

import "math"

// Angular constants
const (
	// DegPerRad converts radians to degrees when multiplied.
	DegPerRad = 180.0 / math.Pi

	// WholeSkyDeg2 is the area of the full celestial sphere in square
	// degrees (4pi steradians), approximately 41252.96.
	WholeSkyDeg2 = 4.0 * math.Pi * DegPerRad * DegPerRad

	// MinDec and MaxDec bound valid declinations in degrees.
	MinDec = -90.0
	MaxDec = 90.0
)

// Radians converts an angle in degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts an angle in radians to degrees
func Degrees(rad float64) float64 {
	return rad * DegPerRad
}

// NormalizeRA wraps a right ascension in degrees into [0, 360).
// Negative values wrap upward, matching the modulo convention used
// throughout the lookup path.
func NormalizeRA(ra float64) float64 {
	ra = math.Mod(ra, 360.0)
	if ra < 0 {
		ra += 360.0
	}
	return ra
}

// ValidDec checks if the given declination in degrees is within [-90, 90]
func ValidDec(dec float64) bool {
	return dec >= MinDec && dec <= MaxDec
}
