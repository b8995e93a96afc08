package latlon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/a-bouts/geodesy/dms"
)

// Literal is one of the written forms of a point accepted by Parse:
// LatLon, Scalars, Texts, Text, Keyed or GeoJSONPoint.
type Literal interface {
	degrees() (lat, lon float64)
}

// Scalars is a latitude, longitude pair in decimal degrees.
type Scalars struct {
	Lat float64
	Lon float64
}

// Texts is a latitude, longitude pair written in any notation dms.Parse reads.
type Texts struct {
	Lat string
	Lon string
}

// Text is a single "lat,lon" string, e.g. "51.4778,-0.0015" or
// "51°28′40″N, 000°00′05″W".
type Text string

// Keyed is a decoded object holding the latitude under "lat" or "latitude"
// and the longitude under "lon", "lng" or "longitude". Values may be numbers
// or dms.Parse text.
type Keyed map[string]interface{}

func (p LatLon) degrees() (float64, float64) {
	return p.lat, p.lon
}

func (s Scalars) degrees() (float64, float64) {
	return s.Lat, s.Lon
}

func (t Texts) degrees() (float64, float64) {
	return dms.Parse(t.Lat), dms.Parse(t.Lon)
}

func (t Text) degrees() (float64, float64) {
	parts := strings.Split(string(t), ",")
	if len(parts) != 2 {
		return math.NaN(), math.NaN()
	}
	return dms.Parse(parts[0]), dms.Parse(parts[1])
}

func (k Keyed) degrees() (float64, float64) {
	var lat, lon interface{}
	for _, key := range []string{"latitude", "lat"} {
		if v, ok := k[key]; ok && v != nil {
			lat = v
		}
	}
	for _, key := range []string{"longitude", "lng", "lon"} {
		if v, ok := k[key]; ok && v != nil {
			lon = v
		}
	}
	return value(lat), value(lon)
}

func (g GeoJSONPoint) degrees() (float64, float64) {
	if g.Type != "Point" || len(g.Coordinates) < 2 {
		return math.NaN(), math.NaN()
	}
	return g.Coordinates[1], g.Coordinates[0]
}

// value reads a decoded JSON scalar as degrees.
func value(v interface{}) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		return dms.Parse(v.String())
	case string:
		return dms.Parse(v)
	}
	return math.NaN()
}

// Parse builds a point from any Literal, reporting ErrInvalidPoint when
// either coordinate cannot be read.
func Parse(l Literal) (LatLon, error) {
	if l == nil {
		return LatLon{}, fmt.Errorf("%w: empty point", ErrInvalidPoint)
	}

	lat, lon := l.degrees()
	p, err := New(lat, lon)
	if err != nil {
		return LatLon{}, fmt.Errorf("%w '%v'", ErrInvalidPoint, l)
	}
	return p, nil
}

// UnmarshalJSON accepts every point literal: {"lat":..,"lon":..} and its key
// aliases, a GeoJSON Point, a "lat,lon" string or a [lat, lon] array. A null
// point is an error; optional points are decoded through a *LatLon.
func (p *LatLon) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty point", ErrInvalidPoint)
	}
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null point", ErrInvalidPoint)
	}

	var l Literal
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		l = Text(s)

	case '[':
		var pair []interface{}
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w '%s'", ErrInvalidPoint, data)
		}
		l = Keyed{"lat": pair[0], "lon": pair[1]}

	case '{':
		var k Keyed
		if err := json.Unmarshal(data, &k); err != nil {
			return err
		}
		if k["type"] == "Point" {
			var g GeoJSONPoint
			if err := json.Unmarshal(data, &g); err != nil {
				return err
			}
			l = g
		} else {
			l = k
		}

	default:
		return fmt.Errorf("%w '%s'", ErrInvalidPoint, data)
	}

	q, err := Parse(l)
	if err != nil {
		return err
	}
	*p = q
	return nil
}
