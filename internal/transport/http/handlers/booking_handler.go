package handlers

import (
	"context"
	"net/http"

	"github.com/ozzus/hotel-booking/internal/domain/models"
	"go.uber.org/zap"
)

type BookingService interface {
	Quote(ctx context.Context, req models.BookingRequest) models.Quote
	Submit(ctx context.Context, form models.BookingForm) (models.Booking, error)
	Current(ctx context.Context) (models.Booking, error)
	StartOver(ctx context.Context) error
	ListAll(ctx context.Context) ([]models.Booking, error)
	Rates() models.RateTable
}

type BookingHandler struct {
	log     *zap.Logger
	service BookingService
	metrics *Metrics
}

func NewBookingHandler(log *zap.Logger, service BookingService, metrics *Metrics) *BookingHandler {
	return &BookingHandler{
		log:     log,
		service: service,
		metrics: metrics,
	}
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	quote := h.service.Quote(r.Context(), req.toModel())
	h.metrics.ObserveQuote(req.RoomType, quote.TotalCost)

	writeJSON(w, http.StatusOK, newQuoteResponse(quote))
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	booking, err := h.service.Submit(r.Context(), req.toModel())
	if err != nil {
		if mapHTTPStatus(err) == http.StatusInternalServerError {
			h.log.Error("submit booking failed", zap.Error(err))
		}
		writeDomainError(w, err)
		return
	}
	h.metrics.ObserveBooking(string(booking.RoomType), booking.TotalCost)

	writeJSON(w, http.StatusCreated, newBookingResponse(booking))
}

func (h *BookingHandler) Current(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.Current(r.Context())
	if err != nil {
		if mapHTTPStatus(err) == http.StatusInternalServerError {
			h.log.Error("load current booking failed", zap.Error(err))
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newBookingResponse(booking))
}

func (h *BookingHandler) StartOver(w http.ResponseWriter, r *http.Request) {
	if err := h.service.StartOver(r.Context()); err != nil {
		h.log.Error("clear current booking failed", zap.Error(err))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *BookingHandler) Rates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newRatesResponse(h.service.Rates()))
}
