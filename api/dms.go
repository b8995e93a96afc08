package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-bouts/geodesy/api/model"
	"github.com/a-bouts/geodesy/dms"
	"github.com/gorilla/mux"
)

// dmsParse reads ?value= written with the server locale.
func (s *server) dmsParse(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("dms-parse", req)

	d, err := dms.ParseAngle(s.codec.FromLocale(req.URL.Query().Get("value")))
	if err != nil {
		fail(w, logger, err)
		return
	}

	writeJSON(w, model.Degrees{Degrees: d})
}

// dmsFormat renders ?degrees= as a plain angle, or as a latitude, longitude
// or bearing when ?kind= says so. ?style= and ?dp= default to the server's.
func (s *server) dmsFormat(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("dms-format", req)
	q := req.URL.Query()

	deg, err := dms.ParseAngle(s.codec.FromLocale(q.Get("degrees")))
	if err != nil {
		fail(w, logger, err)
		return
	}

	style := s.style
	if v := q.Get("style"); v != "" {
		if style, err = dms.ParseStyle(v); err != nil {
			fail(w, logger, err)
			return
		}
	}

	dp := s.places
	if v := q.Get("dp"); v != "" {
		if dp, err = strconv.Atoi(v); err != nil || dp < 0 {
			fail(w, logger, fmt.Errorf("%w: dp '%s'", dms.ErrInvalidFormat, v))
			return
		}
	}

	var text string
	switch q.Get("kind") {
	case "":
		text = s.codec.Format(deg, style, dp)
	case "lat":
		text = s.codec.FormatLat(deg, style, dp)
	case "lon":
		text = s.codec.FormatLon(deg, style, dp)
	case "bearing":
		text = s.codec.FormatBearing(deg, style, dp)
	default:
		fail(w, logger, fmt.Errorf("%w: kind '%s'", dms.ErrInvalidFormat, q.Get("kind")))
		return
	}

	writeJSON(w, model.Text{Text: s.codec.ToLocale(text)})
}

func (s *server) compass(w http.ResponseWriter, req *http.Request) {
	logger := requestLogger("compass", req)

	bearing, err := dms.ParseAngle(mux.Vars(req)["bearing"])
	if err != nil {
		fail(w, logger, err)
		return
	}

	precision := dms.DefaultPrecision
	if v := req.URL.Query().Get("precision"); v != "" {
		if precision, err = strconv.Atoi(v); err != nil {
			fail(w, logger, fmt.Errorf("%w: precision '%s'", dms.ErrInvalidFormat, v))
			return
		}
	}

	c, err := dms.CompassPoint(bearing, precision)
	if err != nil {
		fail(w, logger, err)
		return
	}

	writeJSON(w, model.Compass{Bearing: bearing, Compass: c})
}
