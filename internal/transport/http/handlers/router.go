package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type RouterConfig struct {
	Log      *zap.Logger
	Bookings BookingService
	Admin    Authenticator
	// Metrics is optional. When nil no /metrics route is mounted.
	Metrics     *Metrics
	MetricsPath string
}

func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	bookings := NewBookingHandler(log, cfg.Bookings, cfg.Metrics)
	admin := NewAdminHandler(log, cfg.Bookings, cfg.Admin)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("POST /v1/quotes", bookings.Quote)
	mux.HandleFunc("POST /v1/bookings", bookings.Submit)
	mux.HandleFunc("GET /v1/bookings/current", bookings.Current)
	mux.HandleFunc("DELETE /v1/bookings/current", bookings.StartOver)
	mux.HandleFunc("GET /v1/rates", bookings.Rates)
	mux.HandleFunc("GET /v1/admin/bookings", admin.ListBookings)

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, cfg.Metrics.Handler())
	}

	return observe(log, cfg.Metrics, recoverer(log, mux))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
