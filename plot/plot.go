// Package plot resolves a dead reckoning plot: a start position followed by
// legs, each either a course and distance or a waypoint to steer for.
package plot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/a-bouts/geodesy/dms"
	"github.com/a-bouts/geodesy/latlon"
)

var (
	ErrInvalidLeg  = errors.New("invalid leg")
	ErrInvalidPlot = errors.New("invalid plot")
)

type Leg struct {
	Name     string         `json:"name"`
	To       *latlon.LatLon `json:"to,omitempty"`
	Bearing  *dms.Angle     `json:"bearing,omitempty"`
	Distance float64        `json:"distance,omitempty"`
	Unit     string         `json:"unit,omitempty"`
	Rhumb    bool           `json:"rhumb"`
}

// Limits bounds the navigable area with a northern and a southern line,
// each given as points sorted by longitude. Between MinLat and MaxLat
// nothing is checked.
type Limits struct {
	North  []latlon.LatLon `json:"north"`
	South  []latlon.LatLon `json:"south"`
	MaxLat float64         `json:"maxLat"`
	MinLat float64         `json:"minLat"`
}

type Plot struct {
	Name   string         `json:"name"`
	Start  *latlon.LatLon `json:"start"`
	Legs   []Leg          `json:"legs"`
	Limits *Limits        `json:"limits,omitempty"`
}

// Fix is the position reached at the end of a leg.
type Fix struct {
	Name        string         `json:"name"`
	Point       latlon.LatLon  `json:"point"`
	Position    string         `json:"position"`
	Bearing     float64        `json:"bearing"`
	Course      string         `json:"course"`
	Compass     string         `json:"compass"`
	Distance    float64        `json:"distance"`
	Unit        string         `json:"unit"`
	Total       float64        `json:"total"`
	OutOfLimits bool           `json:"outOfLimits,omitempty"`
	Outcome     latlon.Outcome `json:"outcome"`
}

// Load reads a list of plots.
func Load(r io.Reader) ([]Plot, error) {
	var plots []Plot
	if err := json.NewDecoder(r).Decode(&plots); err != nil {
		return nil, fmt.Errorf("decode plots: %w", err)
	}
	return plots, nil
}

// Plotter resolves plots on a sphere of the given radius (latlon.R when
// zero) and renders the fixes with its codec.
type Plotter struct {
	Radius float64
	Codec  dms.Codec
	Style  dms.Style
	Places int
}

func (p Plotter) radius() float64 {
	if p.Radius == 0 {
		return latlon.R
	}
	return p.Radius
}

// Resolve runs each leg from the previous fix. Total is the distance sailed
// since the start, in metres. A leg with no bearing (its waypoint is the
// current position) gets a zero Bearing and no Course.
func (p Plotter) Resolve(plot Plot) ([]Fix, error) {
	if plot.Start == nil {
		return nil, fmt.Errorf("%w '%s': no start", ErrInvalidPlot, plot.Name)
	}

	fixes := make([]Fix, 0, len(plot.Legs))

	from := *plot.Start
	total := 0.0
	for i, leg := range plot.Legs {
		nav, err := latlon.NewNavigator(p.radius(), leg.Rhumb)
		if err != nil {
			return nil, err
		}

		unit, err := latlon.ParseUnit(leg.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidLeg, i, err)
		}

		fix := Fix{Name: leg.Name, Unit: unit.String()}
		var to latlon.LatLon
		var metres float64

		if leg.To != nil {
			to = *leg.To
			metres, fix.Bearing, fix.Outcome = nav.DistanceAndBearingTo(from, to)
		} else {
			if leg.Bearing == nil {
				return nil, fmt.Errorf("%w %d: neither bearing nor waypoint", ErrInvalidLeg, i)
			}
			bearing := leg.Bearing.Degrees()
			if leg.Distance < 0 {
				return nil, fmt.Errorf("%w %d: negative distance", ErrInvalidLeg, i)
			}
			metres = unit.ToMetres(leg.Distance)
			to = nav.Destination(from, bearing, metres)
			fix.Bearing = bearing
		}

		total += metres
		fix.Point = to
		fix.Position = to.Format(p.Codec, p.Style, p.Places)
		fix.Distance = unit.FromMetres(metres)
		fix.Total = total
		if fix.Outcome == latlon.Ok {
			fix.Course = p.Codec.FormatBearing(fix.Bearing, p.Style, p.Places)
			fix.Compass, _ = dms.CompassPoint(fix.Bearing, dms.DefaultPrecision)
		} else {
			fix.Bearing = 0
			fix.Course = dms.NotAvailable
			fix.Compass = dms.NotAvailable
		}
		if plot.Limits != nil {
			fix.OutOfLimits = plot.Limits.Outside(to)
		}

		fixes = append(fixes, fix)
		from = to
	}

	return fixes, nil
}

// Outside reports whether p lies north of the northern line or south of
// the southern one.
func (l *Limits) Outside(p latlon.LatLon) bool {
	if l.MinLat < p.Lat() && p.Lat() < l.MaxLat {
		return false
	}

	if p.Lat() > 0.0 {
		lat, ok := interpolate(l.North, p.Lon())
		return ok && p.Lat() >= lat
	}
	lat, ok := interpolate(l.South, p.Lon())
	return ok && p.Lat() <= lat
}

// interpolate returns the latitude of line at lon.
func interpolate(line []latlon.LatLon, lon float64) (float64, bool) {
	for i := 0; i < len(line)-1; i++ {
		a, b := line[i], line[i+1]
		if lon >= a.Lon() && lon <= b.Lon() {
			if b.Lon() == a.Lon() {
				return a.Lat(), true
			}
			return (lon-a.Lon())/(b.Lon()-a.Lon())*(b.Lat()-a.Lat()) + a.Lat(), true
		}
	}
	return 0, false
}
