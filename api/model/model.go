package model

import (
	"github.com/a-bouts/geodesy/dms"
	"github.com/a-bouts/geodesy/latlon"
)

// Points are decoded from any point literal: {"lat":..,"lon":..},
// "lat,lon", [lat, lon] or a GeoJSON Point. Angles are numbers or dms text.

type Inverse struct {
	From  *latlon.LatLon `json:"from"`
	To    *latlon.LatLon `json:"to"`
	Rhumb bool           `json:"rhumb"`
	Unit  string         `json:"unit"`
}

type InverseResult struct {
	Distance       float64        `json:"distance"`
	Unit           string         `json:"unit"`
	InitialBearing *float64       `json:"initialBearing,omitempty"`
	FinalBearing   *float64       `json:"finalBearing,omitempty"`
	Compass        string         `json:"compass,omitempty"`
	Outcome        latlon.Outcome `json:"outcome"`
}

type Destination struct {
	From     *latlon.LatLon `json:"from"`
	Bearing  *dms.Angle     `json:"bearing"`
	Distance float64        `json:"distance"`
	Unit     string         `json:"unit"`
	Rhumb    bool           `json:"rhumb"`
}

type Path struct {
	From  *latlon.LatLon `json:"from"`
	To    *latlon.LatLon `json:"to"`
	Rhumb bool           `json:"rhumb"`
}

type Intermediate struct {
	From     *latlon.LatLon `json:"from"`
	To       *latlon.LatLon `json:"to"`
	Fraction float64        `json:"fraction"`
}

type Intersection struct {
	P1       *latlon.LatLon `json:"p1"`
	Bearing1 *dms.Angle     `json:"bearing1"`
	P2       *latlon.LatLon `json:"p2"`
	Bearing2 *dms.Angle     `json:"bearing2"`
}

type Track struct {
	Point *latlon.LatLon `json:"point"`
	Start *latlon.LatLon `json:"start"`
	End   *latlon.LatLon `json:"end"`
	Unit  string         `json:"unit"`
}

type TrackResult struct {
	CrossTrack float64        `json:"crossTrack"`
	AlongTrack float64        `json:"alongTrack"`
	Unit       string         `json:"unit"`
	Outcome    latlon.Outcome `json:"outcome"`
}

type Crossing struct {
	P1       *latlon.LatLon `json:"p1"`
	P2       *latlon.LatLon `json:"p2"`
	Latitude *dms.Angle     `json:"latitude"`
}

type CrossingResult struct {
	*latlon.Crossing
	Outcome latlon.Outcome `json:"outcome"`
}

type Envelope struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

type Area struct {
	Polygon []latlon.LatLon `json:"polygon"`
	Unit    string          `json:"unit"`
}

type AreaResult struct {
	Area         float64 `json:"area"`
	Unit         string  `json:"unit"`
	EnclosesPole bool    `json:"enclosesPole"`
}

// Point is a computed position, nil when Outcome is not ok.
type Point struct {
	Point    *latlon.LatLon       `json:"point,omitempty"`
	Position string               `json:"position,omitempty"`
	GeoJSON  *latlon.GeoJSONPoint `json:"geojson,omitempty"`
	Outcome  latlon.Outcome       `json:"outcome"`
}

type Text struct {
	Text string `json:"text"`
}

type Degrees struct {
	Degrees float64 `json:"degrees"`
}

type Compass struct {
	Bearing float64 `json:"bearing"`
	Compass string  `json:"compass"`
}

type Error struct {
	Error string `json:"error"`
}
