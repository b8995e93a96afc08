package latlon

// Navigator computes along one path model: Spherical follows great circles,
// Rhumb follows lines of constant bearing.
type Navigator interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) (float64, Outcome)
	DistanceAndBearingTo(from, to LatLon) (float64, float64, Outcome)
	Destination(from LatLon, bearing float64, distance float64) LatLon
}

// Outcome qualifies a geometric result. Anything but Ok is a degenerate
// but valid configuration of the inputs, not an error.
type Outcome uint8

const (
	Ok Outcome = iota
	// Coincident points: no bearing, no unique path.
	Coincident
	// NoIntersection: the paths lie on the same great circle.
	NoIntersection
	// Ambiguous: the intersection is antipodal or not unique.
	Ambiguous
	// Unreachable: the great circle never reaches the requested latitude.
	Unreachable
)

var outcomes = [...]string{
	Ok:             "ok",
	Coincident:     "coincident",
	NoIntersection: "no-intersection",
	Ambiguous:      "ambiguous",
	Unreachable:    "unreachable",
}

func (o Outcome) String() string {
	if int(o) < len(outcomes) {
		return outcomes[o]
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// NewNavigator returns the rhumb line navigator when rhumb is set and the
// great circle one otherwise.
func NewNavigator(radius float64, rhumb bool) (Navigator, error) {
	if rhumb {
		return NewRhumb(radius)
	}
	return NewSpherical(radius)
}
