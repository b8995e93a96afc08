// Package latlon provides spherical earth geodesy: great circle and rhumb
// line distance, bearing, destination and midpoint, path intersection,
// cross/along track offsets and polygon area.
package latlon

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/a-bouts/geodesy/angle"
	"github.com/a-bouts/geodesy/dms"
)

const π = math.Pi

// R is the default (mean) earth radius, in metres.
const R = 6371e3

var (
	// ErrInvalidAngle reports a non numeric latitude, longitude, bearing or radius.
	ErrInvalidAngle = dms.ErrInvalidAngle
	// ErrInvalidPoint reports a point literal that could not be read.
	ErrInvalidPoint = fmt.Errorf("%w: invalid point", ErrInvalidAngle)
)

var toRadians, toDegrees = angle.ToRadians, angle.ToDegrees

// LatLon is a point on the sphere. Latitude is kept in -90..+90 and longitude
// in -180..+180; every constructor and setter wraps its input, so a LatLon
// is always normalised.
type LatLon struct {
	lat float64
	lon float64
}

// New returns the point at lat, lon (degrees), wrapped into range.
func New(lat, lon float64) (LatLon, error) {
	if !angle.Finite(lat) {
		return LatLon{}, fmt.Errorf("%w: latitude '%v'", ErrInvalidAngle, lat)
	}
	if !angle.Finite(lon) {
		return LatLon{}, fmt.Errorf("%w: longitude '%v'", ErrInvalidAngle, lon)
	}
	return point(lat, lon), nil
}

// point builds a LatLon from computed coordinates.
func point(lat, lon float64) LatLon {
	return LatLon{lat: angle.WrapLat(lat), lon: angle.WrapLon(lon)}
}

func (p LatLon) Lat() float64 {
	return p.lat
}

func (p LatLon) Lon() float64 {
	return p.lon
}

func (p *LatLon) SetLat(lat float64) error {
	if !angle.Finite(lat) {
		return fmt.Errorf("%w: latitude '%v'", ErrInvalidAngle, lat)
	}
	p.lat = angle.WrapLat(lat)
	return nil
}

func (p *LatLon) SetLon(lon float64) error {
	if !angle.Finite(lon) {
		return fmt.Errorf("%w: longitude '%v'", ErrInvalidAngle, lon)
	}
	p.lon = angle.WrapLon(lon)
	return nil
}

// Equals reports whether both coordinates differ by no more than machine epsilon.
func (p LatLon) Equals(q LatLon) bool {
	if math.Abs(p.lat-q.lat) > angle.Epsilon {
		return false
	}
	if math.Abs(p.lon-q.lon) > angle.Epsilon {
		return false
	}
	return true
}

// GeoJSONPoint is a GeoJSON Point geometry; coordinates are [lon, lat].
type GeoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func (p LatLon) GeoJSON() GeoJSONPoint {
	return GeoJSONPoint{Type: "Point", Coordinates: []float64{p.lon, p.lat}}
}

// Format renders the point as "lat, lon" with compass letters, or as signed
// "lat,lon" for dms.Decimal.
func (p LatLon) Format(c dms.Codec, style dms.Style, dp int) string {
	if style == dms.Decimal {
		if dp < 0 {
			dp = 4
		}
		return strconv.FormatFloat(p.lat, 'f', dp, 64) + "," + strconv.FormatFloat(p.lon, 'f', dp, 64)
	}
	return c.FormatLat(p.lat, style, dp) + ", " + c.FormatLon(p.lon, style, dp)
}

func (p LatLon) String() string {
	return p.Format(dms.Default(), dms.Degrees, dms.DefaultPlaces)
}

func (p LatLon) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}{p.lat, p.lon})
}
