package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geodesy/api/model"
	"github.com/a-bouts/geodesy/dms"
	"github.com/a-bouts/geodesy/latlon"
	"github.com/a-bouts/geodesy/plot"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jasonlvhit/gocron"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	CPUProfile bool
	// Radius of the earth in metres; latlon.R when zero.
	Radius float64
	Codec  dms.Codec
	Style  dms.Style
	// Places is the number of decimal places of rendered angles,
	// dms.DefaultPlaces for the style's own.
	Places int
	// RateLimit is the number of requests per second allowed to each
	// client. Zero disables limiting.
	RateLimit float64
	Burst     int
}

type server struct {
	cpuprofile bool
	radius     float64
	sph        latlon.Spherical
	codec      dms.Codec
	style      dms.Style
	places     int
}

// InitServer builds the handler. The returned stop func halts the background
// jobs started for it and may be called more than once.
func InitServer(c Config) (http.Handler, func(), error) {
	radius := c.Radius
	if radius == 0 {
		radius = latlon.R
	}
	sph, err := latlon.NewSpherical(radius)
	if err != nil {
		return nil, nil, err
	}

	s := server{
		cpuprofile: c.CPUProfile,
		radius:     radius,
		sph:        sph,
		codec:      c.Codec,
		style:      c.Style,
		places:     c.Places,
	}
	if s.style == "" {
		s.style = dms.Degrees
	}
	if s.codec == (dms.Codec{}) {
		s.codec = dms.Default()
	}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(instrument)

	stop := func() {}
	if c.RateLimit > 0 {
		l := newLimiter(c.RateLimit, c.Burst)

		sched := gocron.NewScheduler()
		sched.Every(5).Minutes().Do(l.cleanup)
		stopped := sched.Start()

		var once sync.Once
		stop = func() {
			once.Do(func() { close(stopped) })
		}

		router.Use(l.middleware)
	}

	router.HandleFunc("/geodesy/-/healthz", s.healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/geodesy/api/v1").Subrouter()
	apiV1.HandleFunc("/inverse", s.inverse).Methods(http.MethodPost)
	apiV1.HandleFunc("/destination", s.destination).Methods(http.MethodPost)
	apiV1.HandleFunc("/midpoint", s.midpoint).Methods(http.MethodPost)
	apiV1.HandleFunc("/intermediate", s.intermediate).Methods(http.MethodPost)
	apiV1.HandleFunc("/intersection", s.intersection).Methods(http.MethodPost)
	apiV1.HandleFunc("/track", s.track).Methods(http.MethodPost)
	apiV1.HandleFunc("/crossing", s.crossing).Methods(http.MethodPost)
	apiV1.HandleFunc("/max-latitude/{lat}/{lon}/{bearing}", s.maxLatitude).Methods(http.MethodGet)
	apiV1.HandleFunc("/area", s.area).Methods(http.MethodPost)
	apiV1.HandleFunc("/plot", s.plot).Methods(http.MethodPost)
	apiV1.HandleFunc("/dms/parse", s.dmsParse).Methods(http.MethodGet)
	apiV1.HandleFunc("/dms/format", s.dmsFormat).Methods(http.MethodGet)
	apiV1.HandleFunc("/compass/{bearing}", s.compass).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.StandardLogger()),
		handlers.PrintRecoveryStack(true),
	)

	return cors(recovery(gzhttp.GzipHandler(router))), stop, nil
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	writeJSON(w, health{Status: "Ok"})
}

func (s *server) navigator(rhumb bool) latlon.Navigator {
	if rhumb {
		return latlon.Rhumb{Radius: s.radius}
	}
	return s.sph
}

// requestLogger tags the log entries of a request with its action and client.
func requestLogger(action string, req *http.Request) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Error{Error: err.Error()})
}

// fail answers 400 for unreadable input and 500 for anything else.
func fail(w http.ResponseWriter, logger *log.Entry, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errRequest) || errors.Is(err, dms.ErrInvalidAngle) ||
		errors.Is(err, dms.ErrInvalidFormat) || errors.Is(err, plot.ErrInvalidLeg) ||
		errors.Is(err, plot.ErrInvalidPlot) {
		status = http.StatusBadRequest
	}
	logger.WithError(err).Warn("Rejected")
	writeError(w, status, err)
}

var errRequest = errors.New("bad request")

func missing(name string) error {
	return fmt.Errorf("%w: missing '%s'", errRequest, name)
}

func decode(req *http.Request, v interface{}) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errRequest, err)
	}
	return nil
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
