package api

import (
	"net/http"
	"time"

	"github.com/a-bouts/geodesy/plot"
	"github.com/pkg/profile"
)

func (s *server) plot(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	logger := requestLogger("plot", req)

	var p plot.Plot
	if err := decode(req, &p); err != nil {
		fail(w, logger, err)
		return
	}

	logger.Infof("Plot '%s' from %s with %d legs", p.Name, p.Start, len(p.Legs))

	start := time.Now()

	fixes, err := plot.Plotter{
		Radius: s.radius,
		Codec:  s.codec,
		Style:  s.style,
		Places: s.places,
	}.Resolve(p)
	if err != nil {
		fail(w, logger, err)
		return
	}
	for _, f := range fixes {
		countOutcome("plot", f.Outcome)
	}

	logger.Debugf("Plot took %s", time.Since(start))

	writeJSON(w, fixes)
}
