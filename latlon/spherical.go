package latlon

import (
	"fmt"
	"math"

	"github.com/a-bouts/geodesy/angle"
)

// Spherical computes along great circles on a sphere of the given radius.
// The zero value uses R.
type Spherical struct {
	Radius float64
}

// NewSpherical validates radius; it must be finite and positive.
func NewSpherical(radius float64) (Spherical, error) {
	if err := checkRadius(radius); err != nil {
		return Spherical{}, err
	}
	return Spherical{Radius: radius}, nil
}

func checkRadius(radius float64) error {
	if !angle.Finite(radius) || radius <= 0 {
		return fmt.Errorf("%w: radius '%v'", ErrInvalidAngle, radius)
	}
	return nil
}

func (s Spherical) radius() float64 {
	if s.Radius == 0 {
		return R
	}
	return s.Radius
}

// angularDistance is the haversine central angle between two points.
func angularDistance(from, to LatLon) float64 {
	φ1 := toRadians(from.lat)
	φ2 := toRadians(to.lat)
	Δφ := φ2 - φ1
	Δλ := toRadians(to.lon - from.lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func initialBearing(from, to LatLon) (float64, Outcome) {
	if from.Equals(to) {
		return math.NaN(), Coincident
	}

	φ1 := toRadians(from.lat)
	φ2 := toRadians(to.lat)
	Δλ := toRadians(to.lon - from.lon)

	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return angle.WrapBearing(toDegrees(θ)), Ok
}

// DistanceTo is the haversine great circle distance, in radius units.
func (s Spherical) DistanceTo(from, to LatLon) float64 {
	return s.radius() * angularDistance(from, to)
}

// InitialBearingTo is the bearing at from of the great circle to to, in
// 0..360. Coincident points have no bearing.
func (s Spherical) InitialBearingTo(from, to LatLon) (float64, Outcome) {
	return initialBearing(from, to)
}

// FinalBearingOn is the bearing on arrival at to, coming from from.
func (s Spherical) FinalBearingOn(from, to LatLon) (float64, Outcome) {
	b, o := initialBearing(to, from)
	if o != Ok {
		return b, o
	}
	return angle.WrapBearing(b + 180), Ok
}

func (s Spherical) BearingTo(from, to LatLon) (float64, Outcome) {
	return initialBearing(from, to)
}

func (s Spherical) DistanceAndBearingTo(from, to LatLon) (float64, float64, Outcome) {
	b, o := initialBearing(from, to)
	return s.DistanceTo(from, to), b, o
}

// Destination travels distance (radius units) from from on the initial bearing.
func (s Spherical) Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := toRadians(from.lat)
	λ1 := toRadians(from.lon)
	θ := toRadians(bearing)

	δ := distance / s.radius()

	sinφ2 := math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)
	φ2 := math.Asin(sinφ2)
	y := math.Sin(θ) * math.Sin(δ) * math.Cos(φ1)
	x := math.Cos(δ) - math.Sin(φ1)*sinφ2
	λ2 := λ1 + math.Atan2(y, x)

	return point(toDegrees(φ2), toDegrees(λ2))
}

// MidpointTo is half way along the great circle, found by summing the
// cartesian vectors of both points.
func (s Spherical) MidpointTo(from, to LatLon) LatLon {
	φ1 := toRadians(from.lat)
	λ1 := toRadians(from.lon)
	φ2 := toRadians(to.lat)
	Δλ := toRadians(to.lon - from.lon)

	// from is placed on the prime meridian
	a := toVector(φ1, 0)
	b := toVector(φ2, Δλ)

	φm, λ := a.plus(b).spherical()
	λm := λ1 + λ

	return point(toDegrees(φm), toDegrees(λm))
}

// IntermediatePointTo is the point at fraction (0 at from, 1 at to) along
// the great circle. Antipodal points have no unique great circle.
func (s Spherical) IntermediatePointTo(from, to LatLon, fraction float64) (LatLon, Outcome) {
	if from.Equals(to) {
		return from, Coincident
	}

	φ1 := toRadians(from.lat)
	λ1 := toRadians(from.lon)
	φ2 := toRadians(to.lat)
	λ2 := toRadians(to.lon)

	δ := angularDistance(from, to)
	if math.Abs(math.Sin(δ)) < 1e-12 {
		if δ < π/2 {
			return from, Coincident
		}
		return from, Ambiguous
	}

	a := math.Sin((1-fraction)*δ) / math.Sin(δ)
	b := math.Sin(fraction*δ) / math.Sin(δ)

	v := toVector(φ1, λ1).scale(a).plus(toVector(φ2, λ2).scale(b))
	φ3, λ3 := v.spherical()

	return point(toDegrees(φ3), toDegrees(λ3)), Ok
}

// CrossTrackDistanceTo is the signed distance of p from the great circle
// pathStart→pathEnd: negative to the left, positive to the right.
func (s Spherical) CrossTrackDistanceTo(p, pathStart, pathEnd LatLon) (float64, Outcome) {
	if p.Equals(pathStart) {
		return 0, Ok
	}

	θ12, o := initialBearing(pathStart, pathEnd)
	if o != Ok {
		return math.NaN(), o
	}
	θ13, _ := initialBearing(pathStart, p)

	δ13 := angularDistance(pathStart, p)
	δxt := math.Asin(clamp(math.Sin(δ13) * math.Sin(toRadians(θ13)-toRadians(θ12))))

	return δxt * s.radius(), Ok
}

// AlongTrackDistanceTo is the signed distance from pathStart to the foot of
// the perpendicular from p onto the path.
func (s Spherical) AlongTrackDistanceTo(p, pathStart, pathEnd LatLon) (float64, Outcome) {
	if p.Equals(pathStart) {
		return 0, Ok
	}

	θ12, o := initialBearing(pathStart, pathEnd)
	if o != Ok {
		return math.NaN(), o
	}
	θ13, _ := initialBearing(pathStart, p)
	θ12, θ13 = toRadians(θ12), toRadians(θ13)

	δ13 := angularDistance(pathStart, p)
	δxt := math.Asin(clamp(math.Sin(δ13) * math.Sin(θ13-θ12)))
	δat := math.Acos(clamp(math.Cos(δ13) / math.Abs(math.Cos(δxt))))

	return δat * sign(math.Cos(θ12-θ13)) * s.radius(), Ok
}

// clamp protects inverse trigonometry against rounding just outside -1..1.
func clamp(v float64) float64 {
	return math.Min(math.Max(v, -1), 1)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// sinZero is the tolerance under which the sine of a path angle counts as zero.
const sinZero = 1e-12

// Intersection returns where the great circle leaving p1 on bearing1
// crosses the one leaving p2 on bearing2.
//
// Coincident p1, p2 yield p1. Paths on the same great circle have no single
// intersection, and paths whose intersection lies behind one of them are
// ambiguous; both return a zero LatLon.
func Intersection(p1 LatLon, bearing1 float64, p2 LatLon, bearing2 float64) (LatLon, Outcome) {
	if p1.Equals(p2) {
		return p1, Coincident
	}

	φ1, λ1 := toRadians(p1.lat), toRadians(p1.lon)
	φ2, λ2 := toRadians(p2.lat), toRadians(p2.lon)
	θ13, θ23 := toRadians(bearing1), toRadians(bearing2)

	δ12 := angularDistance(p1, p2)
	if math.Abs(δ12) < angle.Epsilon {
		return p1, Coincident
	}

	// initial and final bearings between the points
	cosθa := (math.Sin(φ2) - math.Sin(φ1)*math.Cos(δ12)) / (math.Sin(δ12) * math.Cos(φ1))
	cosθb := (math.Sin(φ1) - math.Sin(φ2)*math.Cos(δ12)) / (math.Sin(δ12) * math.Cos(φ2))
	θa := math.Acos(clamp(cosθa))
	θb := math.Acos(clamp(cosθb))

	var θ12, θ21 float64
	if math.Sin(λ2-λ1) > 0 {
		θ12, θ21 = θa, 2*π-θb
	} else {
		θ12, θ21 = 2*π-θa, θb
	}

	α1 := θ13 - θ12 // angle 2-1-3
	α2 := θ21 - θ23 // angle 1-2-3
	sinα1, sinα2 := math.Sin(α1), math.Sin(α2)

	if math.Abs(sinα1) < sinZero && math.Abs(sinα2) < sinZero {
		return LatLon{}, NoIntersection
	}
	if sinα1*sinα2 < 0 {
		return LatLon{}, Ambiguous
	}

	cosα3 := -math.Cos(α1)*math.Cos(α2) + sinα1*sinα2*math.Cos(δ12)

	δ13 := math.Atan2(math.Sin(δ12)*sinα1*sinα2, math.Cos(α2)+math.Cos(α1)*cosα3)

	φ3 := math.Asin(clamp(math.Sin(φ1)*math.Cos(δ13) + math.Cos(φ1)*math.Sin(δ13)*math.Cos(θ13)))

	Δλ13 := math.Atan2(math.Sin(θ13)*math.Sin(δ13)*math.Cos(φ1), math.Cos(δ13)-math.Sin(φ1)*math.Sin(φ3))
	λ3 := λ1 + Δλ13

	return point(toDegrees(φ3), toDegrees(λ3)), Ok
}

// MaxLatitude is the highest latitude reached by the great circle leaving p
// on bearing (Clairaut's formula).
func MaxLatitude(p LatLon, bearing float64) float64 {
	θ := toRadians(bearing)
	φ := toRadians(p.lat)

	φMax := math.Acos(math.Abs(math.Sin(θ) * math.Cos(φ)))

	return toDegrees(φMax)
}

// MinLatitude is the lowest latitude reached by the great circle leaving p
// on bearing.
func MinLatitude(p LatLon, bearing float64) float64 {
	return -MaxLatitude(p, bearing)
}

// Crossing holds the two longitudes where a great circle crosses a parallel.
type Crossing struct {
	Lon1 float64 `json:"lon1"`
	Lon2 float64 `json:"lon2"`
}

// CrossingParallels returns the longitudes where the great circle through
// p1 and p2 crosses latitude.
func CrossingParallels(p1, p2 LatLon, latitude float64) (Crossing, Outcome) {
	if p1.Equals(p2) {
		return Crossing{}, Coincident
	}

	φ := toRadians(latitude)

	φ1 := toRadians(p1.lat)
	λ1 := toRadians(p1.lon)
	φ2 := toRadians(p2.lat)
	λ2 := toRadians(p2.lon)

	Δλ := λ2 - λ1

	x := math.Sin(φ1) * math.Cos(φ2) * math.Cos(φ) * math.Sin(Δλ)
	y := math.Sin(φ1)*math.Cos(φ2)*math.Cos(φ)*math.Cos(Δλ) - math.Cos(φ1)*math.Sin(φ2)*math.Cos(φ)
	z := math.Cos(φ1) * math.Cos(φ2) * math.Sin(φ) * math.Sin(Δλ)

	if z*z > x*x+y*y {
		return Crossing{}, Unreachable
	}
	if x*x+y*y == 0 {
		// the great circle is the parallel itself
		return Crossing{}, Ambiguous
	}

	λm := math.Atan2(-y, x)                         // longitude at max latitude
	Δλi := math.Acos(clamp(z / math.Sqrt(x*x+y*y))) // Δλ from λm to the crossings

	λi1 := λ1 + λm - Δλi
	λi2 := λ1 + λm + Δλi

	return Crossing{
		Lon1: angle.WrapLon(toDegrees(λi1)),
		Lon2: angle.WrapLon(toDegrees(λi2)),
	}, Ok
}
