package api

import (
	"net/http"

	"github.com/a-bouts/geodesy/api/model"
	"github.com/a-bouts/geodesy/dms"
	"github.com/a-bouts/geodesy/latlon"
	"github.com/gorilla/mux"
)

func (s *server) point(p latlon.LatLon, o latlon.Outcome) model.Point {
	g := p.GeoJSON()
	return model.Point{
		Point:    &p,
		Position: p.Format(s.codec, s.style, s.places),
		GeoJSON:  &g,
		Outcome:  o,
	}
}

func (s *server) inverse(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("inverse", req)

	var r model.Inverse
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.From == nil || r.To == nil {
		fail(w, logger, missing("from/to"))
		return
	}
	unit, err := latlon.ParseUnit(r.Unit)
	if err != nil {
		fail(w, logger, err)
		return
	}

	d, b, o := s.navigator(r.Rhumb).DistanceAndBearingTo(*r.From, *r.To)
	countOutcome("inverse", o)

	res := model.InverseResult{
		Distance: unit.FromMetres(d),
		Unit:     unit.String(),
		Outcome:  o,
	}
	if o == latlon.Ok {
		final := b
		if !r.Rhumb {
			final, _ = s.sph.FinalBearingOn(*r.From, *r.To)
		}
		res.InitialBearing = &b
		res.FinalBearing = &final
		res.Compass, _ = dms.CompassPoint(b, dms.DefaultPrecision)
	}

	logger.Debugf("Inverse %s -> %s : %.0f %s (%s)", r.From, r.To, res.Distance, res.Unit, o)

	writeJSON(w, res)
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("destination", req)

	var r model.Destination
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.From == nil || r.Bearing == nil {
		fail(w, logger, missing("from/bearing"))
		return
	}
	unit, err := latlon.ParseUnit(r.Unit)
	if err != nil {
		fail(w, logger, err)
		return
	}

	p := s.navigator(r.Rhumb).Destination(*r.From, r.Bearing.Degrees(), unit.ToMetres(r.Distance))
	countOutcome("destination", latlon.Ok)

	writeJSON(w, s.point(p, latlon.Ok))
}

func (s *server) midpoint(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("midpoint", req)

	var r model.Path
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.From == nil || r.To == nil {
		fail(w, logger, missing("from/to"))
		return
	}

	var p latlon.LatLon
	if r.Rhumb {
		p = latlon.Rhumb{Radius: s.radius}.MidpointTo(*r.From, *r.To)
	} else {
		p = s.sph.MidpointTo(*r.From, *r.To)
	}
	countOutcome("midpoint", latlon.Ok)

	writeJSON(w, s.point(p, latlon.Ok))
}

func (s *server) intermediate(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("intermediate", req)

	var r model.Intermediate
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.From == nil || r.To == nil {
		fail(w, logger, missing("from/to"))
		return
	}

	p, o := s.sph.IntermediatePointTo(*r.From, *r.To, r.Fraction)
	countOutcome("intermediate", o)

	if o == latlon.Ambiguous {
		writeJSON(w, model.Point{Outcome: o})
		return
	}
	writeJSON(w, s.point(p, o))
}

func (s *server) intersection(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("intersection", req)

	var r model.Intersection
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.P1 == nil || r.P2 == nil || r.Bearing1 == nil || r.Bearing2 == nil {
		fail(w, logger, missing("p1/bearing1/p2/bearing2"))
		return
	}

	p, o := latlon.Intersection(*r.P1, r.Bearing1.Degrees(), *r.P2, r.Bearing2.Degrees())
	countOutcome("intersection", o)

	switch o {
	case latlon.Ok, latlon.Coincident:
		writeJSON(w, s.point(p, o))
	default:
		logger.Debugf("No intersection for %s and %s (%s)", r.P1, r.P2, o)
		writeJSON(w, model.Point{Outcome: o})
	}
}

func (s *server) track(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("track", req)

	var r model.Track
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.Point == nil || r.Start == nil || r.End == nil {
		fail(w, logger, missing("point/start/end"))
		return
	}
	unit, err := latlon.ParseUnit(r.Unit)
	if err != nil {
		fail(w, logger, err)
		return
	}

	xt, o := s.sph.CrossTrackDistanceTo(*r.Point, *r.Start, *r.End)
	countOutcome("track", o)
	if o != latlon.Ok {
		writeJSON(w, model.TrackResult{Unit: unit.String(), Outcome: o})
		return
	}
	at, _ := s.sph.AlongTrackDistanceTo(*r.Point, *r.Start, *r.End)

	writeJSON(w, model.TrackResult{
		CrossTrack: unit.FromMetres(xt),
		AlongTrack: unit.FromMetres(at),
		Unit:       unit.String(),
		Outcome:    o,
	})
}

func (s *server) crossing(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("crossing", req)

	var r model.Crossing
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	if r.P1 == nil || r.P2 == nil || r.Latitude == nil {
		fail(w, logger, missing("p1/p2/latitude"))
		return
	}

	c, o := latlon.CrossingParallels(*r.P1, *r.P2, r.Latitude.Degrees())
	countOutcome("crossing", o)

	res := model.CrossingResult{Outcome: o}
	if o == latlon.Ok {
		res.Crossing = &c
	}
	writeJSON(w, res)
}

func (s *server) maxLatitude(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("max-latitude", req)

	lat, err := dms.ParseAngle(mux.Vars(req)["lat"])
	if err != nil {
		fail(w, logger, err)
		return
	}
	lon, err := dms.ParseAngle(mux.Vars(req)["lon"])
	if err != nil {
		fail(w, logger, err)
		return
	}
	bearing, err := dms.ParseAngle(mux.Vars(req)["bearing"])
	if err != nil {
		fail(w, logger, err)
		return
	}
	p, err := latlon.New(lat, lon)
	if err != nil {
		fail(w, logger, err)
		return
	}

	writeJSON(w, model.Envelope{
		Max: latlon.MaxLatitude(p, bearing),
		Min: latlon.MinLatitude(p, bearing),
	})
}

func (s *server) area(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("area", req)

	var r model.Area
	if err := decode(req, &r); err != nil {
		fail(w, logger, err)
		return
	}
	unit, err := latlon.ParseUnit(r.Unit)
	if err != nil {
		fail(w, logger, err)
		return
	}

	a := s.sph.AreaOf(r.Polygon)

	writeJSON(w, model.AreaResult{
		Area:         unit.FromMetres(unit.FromMetres(a)),
		Unit:         unit.String() + "²",
		EnclosesPole: latlon.EnclosesPole(r.Polygon),
	})
}
