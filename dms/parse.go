package dms

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-bouts/geodesy/angle"
)

var groupSeparator = regexp.MustCompile(`[^0-9.,]+`)

// Parse reads an angle from text in canonical notation and returns it in
// decimal degrees, or NaN when the text is not an angle.
//
// Accepted forms are a signed decimal ("-3.62") or one to three numeric groups
// separated by anything that is not part of a number, optionally prefixed by a
// sign or suffixed by a compass letter: "51° 28′ 40.37″ N", "3 37 12W",
// "51.4779N". South and west are negative.
//
// Numbers written with locale separators must go through FromLocale first; a
// group containing a comma does not parse.
func Parse(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return math.NaN()
	}

	if d, err := strconv.ParseFloat(t, 64); err == nil {
		if !angle.Finite(d) {
			return math.NaN()
		}
		return d
	}

	stripped := strings.TrimLeft(t[:1], "+-") + t[1:]
	if n := len(stripped); n > 0 && strings.ContainsAny(stripped[n-1:], "NSEWnsew") {
		stripped = stripped[:n-1]
	}

	groups := groupSeparator.Split(stripped, -1)
	if len(groups) > 0 && groups[len(groups)-1] == "" {
		groups = groups[:len(groups)-1]
	}
	if len(groups) > 0 && groups[0] == "" {
		groups = groups[1:]
	}

	values := make([]float64, len(groups))
	for i, g := range groups {
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return math.NaN()
		}
		values[i] = v
	}

	var deg float64
	switch len(values) {
	case 3:
		deg = values[0] + values[1]/60 + values[2]/3600
	case 2:
		deg = values[0] + values[1]/60
	case 1:
		deg = values[0]
	default:
		return math.NaN()
	}

	if strings.HasPrefix(t, "-") || strings.ContainsAny(t[len(t)-1:], "WSws") {
		deg = -deg
	}

	return deg
}

// ParseAngle is Parse reporting failure as ErrInvalidAngle.
func ParseAngle(s string) (float64, error) {
	d := Parse(s)
	if math.IsNaN(d) {
		return d, fmt.Errorf("%w: '%s'", ErrInvalidAngle, s)
	}
	return d, nil
}
