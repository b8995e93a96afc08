package dms

import (
	"fmt"
	"math"

	"github.com/a-bouts/geodesy/angle"
)

// DefaultPrecision is the 16 point compass.
const DefaultPrecision = 3

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassPoint names the compass point nearest to bearing, on a 4 (precision
// 1), 8 (precision 2) or 16 (precision 3) point compass.
func CompassPoint(bearing float64, precision int) (string, error) {
	if precision < 1 || precision > 3 {
		return "", fmt.Errorf("%w: compass precision %d", ErrInvalidFormat, precision)
	}
	if !angle.Finite(bearing) {
		return "", fmt.Errorf("%w: bearing %f", ErrInvalidAngle, bearing)
	}

	b := angle.WrapBearing(bearing)
	n := 4 << (precision - 1)
	i := int(math.Floor(b*float64(n)/360+0.5)) % n * 16 / n

	return cardinals[i], nil
}
