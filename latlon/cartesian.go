package latlon

import "math"

// vector3 is a point of the unit sphere in earth-centred cartesian space.
type vector3 struct {
	x, y, z float64
}

func (v vector3) plus(w vector3) vector3 {
	return vector3{v.x + w.x, v.y + w.y, v.z + w.z}
}

func (v vector3) scale(f float64) vector3 {
	return vector3{v.x * f, v.y * f, v.z * f}
}

// toVector returns the n-vector of latitude φ, longitude λ (radians).
func toVector(φ, λ float64) vector3 {
	return vector3{
		x: math.Cos(φ) * math.Cos(λ),
		y: math.Cos(φ) * math.Sin(λ),
		z: math.Sin(φ),
	}
}

// spherical returns the latitude and longitude (radians) of v; v need not be
// a unit vector.
func (v vector3) spherical() (float64, float64) {
	φ := math.Atan2(v.z, math.Sqrt(v.x*v.x+v.y*v.y))
	λ := math.Atan2(v.y, v.x)
	return φ, λ
}
