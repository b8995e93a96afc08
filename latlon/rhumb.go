package latlon

import (
	"math"

	"github.com/a-bouts/geodesy/angle"
)

// Rhumb computes along rhumb lines (loxodromes), paths of constant bearing,
// on a sphere of the given radius. The zero value uses R.
type Rhumb struct {
	Radius float64
}

// NewRhumb validates radius; it must be finite and positive.
func NewRhumb(radius float64) (Rhumb, error) {
	if err := checkRadius(radius); err != nil {
		return Rhumb{}, err
	}
	return Rhumb{Radius: radius}, nil
}

func (r Rhumb) radius() float64 {
	if r.Radius == 0 {
		return R
	}
	return r.Radius
}

// ψTolerance is the projected latitude difference under which a course is
// treated as east-west, where the stretch factor Δφ/Δψ becomes 0/0.
const ψTolerance = 10e-12

// atPole reports whether φ is a pole, where longitude carries no meaning
// and the Mercator projection runs to infinity.
func atPole(φ float64) bool {
	return math.Abs(math.Cos(φ)) < 1e-12
}

// projectedΔ is the difference of Mercator projected latitudes φ2 - φ1.
func projectedΔ(φ1, φ2 float64) float64 {
	return math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
}

// stretch is the Mercator stretch factor q = Δφ/Δψ.
func stretch(φ1, Δφ, Δψ float64) float64 {
	if math.Abs(Δψ) > ψTolerance {
		return Δφ / Δψ
	}
	return math.Cos(φ1)
}

// shorter takes the rhumb line across the anti-meridian when |Δλ| > 180°.
func shorter(Δλ float64) float64 {
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			return -(2*π - Δλ)
		}
		return 2*π + Δλ
	}
	return Δλ
}

// DistanceTo is the rhumb line distance, in radius units.
func (r Rhumb) DistanceTo(from, to LatLon) float64 {
	φ1 := toRadians(from.lat)
	φ2 := toRadians(to.lat)
	Δφ := φ2 - φ1
	Δλ := shorter(toRadians(math.Abs(to.lon - from.lon)))

	// longitude distances shrink with latitude on the Mercator projection
	Δψ := projectedΔ(φ1, φ2)
	q := stretch(φ1, Δφ, Δψ)
	if atPole(φ1) || atPole(φ2) {
		q = 0
	}

	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)

	return δ * r.radius()
}

// BearingTo is the constant bearing from from to to, in 0..360.
func (r Rhumb) BearingTo(from, to LatLon) (float64, Outcome) {
	if from.Equals(to) {
		return math.NaN(), Coincident
	}

	φ1 := toRadians(from.lat)
	φ2 := toRadians(to.lat)
	if atPole(φ1) || atPole(φ2) {
		switch {
		case atPole(φ1) && atPole(φ2) && (φ1 > 0) == (φ2 > 0):
			return math.NaN(), Coincident
		case φ2 > φ1:
			return 0, Ok
		default:
			return 180, Ok
		}
	}
	Δλ := shorter(toRadians(to.lon - from.lon))

	Δψ := projectedΔ(φ1, φ2)
	θ := math.Atan2(Δλ, Δψ)

	return angle.WrapBearing(toDegrees(θ)), Ok
}

func (r Rhumb) DistanceAndBearingTo(from, to LatLon) (float64, float64, Outcome) {
	b, o := r.BearingTo(from, to)
	return r.DistanceTo(from, to), b, o
}

// Destination travels distance (radius units) from from on a constant
// bearing. A course running past a pole comes back down the other side.
func (r Rhumb) Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := toRadians(from.lat)
	λ1 := toRadians(from.lon)
	θ := toRadians(bearing)

	δ := distance / r.radius()

	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ

	if math.Abs(φ2) > π/2 {
		if φ2 > 0 {
			φ2 = π - φ2
		} else {
			φ2 = -π - φ2
		}
	}

	// every bearing leaves a pole along the meridian
	if atPole(φ1) {
		return point(toDegrees(φ2), from.lon)
	}

	Δψ := projectedΔ(φ1, φ2)
	q := stretch(φ1, Δφ, Δψ)

	Δλ := δ * math.Sin(θ) / q
	λ2 := λ1 + Δλ
	if !angle.Finite(λ2) {
		λ2 = λ1
	}

	return point(toDegrees(φ2), toDegrees(λ2))
}

// MidpointTo is half way along the rhumb line.
func (r Rhumb) MidpointTo(from, to LatLon) LatLon {
	φ1 := toRadians(from.lat)
	λ1 := toRadians(from.lon)
	φ2 := toRadians(to.lat)
	λ2 := toRadians(to.lon)

	if math.Abs(λ2-λ1) > π {
		// crossing the anti-meridian
		λ1 += 2 * π
	}

	φ3 := (φ1 + φ2) / 2

	f1 := math.Tan(π/4 + φ1/2)
	f2 := math.Tan(π/4 + φ2/2)
	f3 := math.Tan(π/4 + φ3/2)

	λ3 := ((λ2-λ1)*math.Log(f3) + λ1*math.Log(f2) - λ2*math.Log(f1)) / math.Log(f2/f1)
	if !angle.Finite(λ3) {
		// parallel of latitude
		λ3 = (λ1 + λ2) / 2
	}

	return point(toDegrees(φ3), toDegrees(λ3))
}
