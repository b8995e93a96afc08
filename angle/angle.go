// Package angle normalises degree values into the latitude, longitude and
// bearing domains.
//
// The wraps use triangle and sawtooth waves rather than trigonometric round
// trips, and return their input untouched when it is already in range so no
// floating point error is introduced.
package angle

import "math"

const π = math.Pi

// Epsilon is the machine epsilon for float64, used for point equality.
var Epsilon = math.Nextafter(1, 2) - 1

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

// mod is the floored modulo: the result has the sign of p.
func mod(x, p float64) float64 {
	return math.Mod(math.Mod(x, p)+p, p)
}

// WrapLat constrains degrees to the range -90..+90 (e.g. 91 => 89, -91 => -89, 270 => -90).
func WrapLat(d float64) float64 {
	if -90 <= d && d <= 90 {
		return d
	}

	// triangle wave p:360 a:90
	const a, p = 90.0, 360.0
	return 4*a/p*math.Abs(mod(d-p/4, p)-p/2) - a
}

// WrapLon constrains degrees to the range -180..+180, with -180 folded onto
// +180 (e.g. 181 => -179, -181 => 179).
func WrapLon(d float64) float64 {
	if -180 < d && d <= 180 {
		return d
	}

	// sawtooth wave p:360 a:180
	const a, p = 180.0, 360.0
	w := mod(2*a*d/p-p/2, p) - a
	if w == -180 {
		return 180
	}
	return w
}

// WrapBearing constrains degrees to the range 0..360 (e.g. -1 => 359, 361 => 1).
func WrapBearing(d float64) float64 {
	if 0 <= d && d < 360 {
		return d
	}

	// sawtooth wave p:360 a:360
	const a, p = 180.0, 360.0
	return mod(2*a*d/p, p)
}

// Finite reports whether d is neither NaN nor infinite.
func Finite(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}
