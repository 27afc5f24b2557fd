package brick

import "fmt"

// ConfigurationError reports a tiling parameter that cannot produce a
// usable grid.
type ConfigurationError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Param, e.Value, e.Reason)
}

// OutOfRangeError reports a coordinate outside the valid lookup domain.
// Only declination can be out of range; right ascension is always
// normalised modulo 360.
type OutOfRangeError struct {
	Coord string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Coord, e.Value, e.Min, e.Max)
}
