package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace = "hotel_booking"
	unmatchedRoute   = "unmatched"
	otherRoomType    = "other"
)

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	gatherer prometheus.Gatherer

	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	quotes     *prometheus.HistogramVec
	bookings   *prometheus.CounterVec
	bookedCost *prometheus.HistogramVec
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	costBuckets := []float64{0, 75, 150, 300, 500, 750, 1000, 1500, 2500, 5000}

	return &Metrics{
		gatherer: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		quotes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "quote_total_cost",
			Help:      "Quoted total cost by room type.",
			Buckets:   costBuckets,
		}, []string{"room_type"}),
		bookings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bookings_total",
			Help:      "Confirmed bookings by room type.",
		}, []string{"room_type"}),
		bookedCost: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "booking_total_cost",
			Help:      "Frozen total cost of confirmed bookings.",
			Buckets:   costBuckets,
		}, []string{"room_type"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveQuote(roomType string, total float64) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(roomTypeLabel(roomType)).Observe(total)
}

func (m *Metrics) ObserveBooking(roomType string, total float64) {
	if m == nil {
		return
	}
	label := roomTypeLabel(roomType)
	m.bookings.WithLabelValues(label).Inc()
	m.bookedCost.WithLabelValues(label).Observe(total)
}

func (m *Metrics) observeRequest(route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = unmatchedRoute
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Room types come from request bodies, so unknown values share one label.
func roomTypeLabel(roomType string) string {
	if rt := models.RoomType(roomType); rt.Valid() {
		return string(rt)
	}
	return otherRoomType
}
