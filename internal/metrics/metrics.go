// Package metrics exposes Prometheus counters for the SSH server: sessions,
// picks, platform blocks and connection admission.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

// Registry holds all metrics of one server. Each Registry owns its own
// prometheus.Registry, so tests and multiple servers do not collide.
type Registry struct {
	reg *prometheus.Registry

	SessionsStarted  prometheus.Counter
	SessionsFinished *prometheus.CounterVec
	Picks            *prometheus.CounterVec
	PlatformBlocks   *prometheus.CounterVec
	FinalLikes       prometheus.Histogram

	ActiveConnections   prometheus.Gauge
	RejectedConnections prometheus.Counter
}

// NewRegistry creates and registers every metric.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		SessionsStarted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "comments_sessions_started_total",
				Help: "Total number of sessions started, replays included",
			},
		),

		SessionsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comments_sessions_finished_total",
				Help: "Total number of finished sessions by final rating",
			},
			[]string{"rating"},
		),

		Picks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comments_picks_total",
				Help: "Total number of comment style picks by platform and style",
			},
			[]string{"platform", "style"},
		),

		PlatformBlocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comments_platform_blocks_total",
				Help: "Total number of times a platform blocked a player",
			},
			[]string{"platform"},
		),

		FinalLikes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "comments_final_likes",
				Help:    "Likes at the end of a finished session",
				Buckets: []float64{0, 10, 20, 40, 60, 80, 100, 150},
			},
		),

		ActiveConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "comments_active_connections",
				Help: "Number of currently open SSH connections",
			},
		),

		RejectedConnections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "comments_rejected_connections_total",
				Help: "Total number of SSH connections refused by the rate limiter",
			},
		),
	}

	r.reg.MustRegister(
		r.SessionsStarted,
		r.SessionsFinished,
		r.Picks,
		r.PlatformBlocks,
		r.FinalLikes,
		r.ActiveConnections,
		r.RejectedConnections,
	)
	return r
}

// SessionStarted counts a new or replayed session.
func (r *Registry) SessionStarted() {
	r.SessionsStarted.Inc()
}

// RoundResolved counts a pick and a block it caused.
func (r *Registry) RoundResolved(res engine.RoundResult) {
	r.Picks.WithLabelValues(string(res.Platform.Key), string(res.Style)).Inc()
	if res.NewlyBlocked {
		r.PlatformBlocks.WithLabelValues(string(res.Platform.Key)).Inc()
	}
}

// SessionFinished records the outcome of a finished session.
func (r *Registry) SessionFinished(sum engine.Summary) {
	r.SessionsFinished.WithLabelValues(string(sum.Rating)).Inc()
	r.FinalLikes.Observe(float64(sum.Likes))
}

// Handler returns the HTTP handler serving this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Server serves /metrics and /health on their own listener.
type Server struct {
	srv *http.Server
}

// NewServer creates a metrics HTTP server for addr.
func NewServer(addr string, r *Registry) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(r),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter routes /metrics and /health.
func NewRouter(r *Registry) http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", r.Handler()).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}).Methods("GET")
	return router
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *Server) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
