package latlon

import (
	"math"
)

// AreaOf returns the area enclosed by polygon, in square radius units. The
// polygon is closed implicitly; a closing vertex equal to the first is
// accepted too. The caller's slice is left untouched.
//
// The area is the spherical excess accumulated edge by edge (the excess of
// the trapezium each edge forms with the equator). A polygon enclosing a pole
// is corrected to |S| - 2π. The pole test is unreliable when an edge itself
// passes over a pole.
func (s Spherical) AreaOf(polygon []LatLon) float64 {
	if len(polygon) < 3 {
		return 0
	}

	vertices := closed(polygon)

	S := 0.0 // spherical excess, in steradians
	for v := 0; v < len(vertices)-1; v++ {
		φ1 := toRadians(vertices[v].lat)
		φ2 := toRadians(vertices[v+1].lat)
		Δλ := toRadians(vertices[v+1].lon - vertices[v].lon)

		E := 2 * math.Atan2(math.Tan(Δλ/2)*(math.Tan(φ1/2)+math.Tan(φ2/2)), 1+math.Tan(φ1/2)*math.Tan(φ2/2))
		S += E
	}

	if enclosesPole(vertices) {
		S = math.Abs(S) - 2*π
	}

	r := s.radius()
	return math.Abs(S * r * r)
}

// EnclosesPole reports whether polygon surrounds either pole: the turns of
// its course sum to about 0° rather than the usual ±360°.
func EnclosesPole(polygon []LatLon) bool {
	if len(polygon) < 3 {
		return false
	}
	return enclosesPole(closed(polygon))
}

// closed returns a copy of polygon whose last vertex is its first.
func closed(polygon []LatLon) []LatLon {
	vertices := make([]LatLon, len(polygon), len(polygon)+1)
	copy(vertices, polygon)
	if !polygon[0].Equals(polygon[len(polygon)-1]) {
		vertices = append(vertices, polygon[0])
	}
	return vertices
}

// turn is the signed change of course from b1 to b2, in -180..180.
func turn(b1, b2 float64) float64 {
	return math.Mod(b2-b1+540, 360) - 180
}

func enclosesPole(p []LatLon) bool {
	var sph Spherical

	ΣΔ := 0.0
	prevBrng, _ := initialBearing(p[0], p[1])
	for v := 0; v < len(p)-1; v++ {
		initBrng, _ := initialBearing(p[v], p[v+1])
		finalBrng, _ := sph.FinalBearingOn(p[v], p[v+1])
		ΣΔ += turn(prevBrng, initBrng)
		ΣΔ += turn(initBrng, finalBrng)
		prevBrng = finalBrng
	}
	initBrng, _ := initialBearing(p[0], p[1])
	ΣΔ += turn(prevBrng, initBrng)

	return math.Abs(ΣΔ) < 90
}
