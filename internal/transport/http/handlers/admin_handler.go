package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type Authenticator interface {
	Authenticate(username, password string) error
}

type AdminHandler struct {
	log     *zap.Logger
	service BookingService
	gate    Authenticator
}

func NewAdminHandler(log *zap.Logger, service BookingService, gate Authenticator) *AdminHandler {
	return &AdminHandler{
		log:     log,
		service: service,
		gate:    gate,
	}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok || h.gate.Authenticate(username, password) != nil {
		h.log.Warn("admin access denied", zap.String("remote_addr", r.RemoteAddr))
		w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	bookings, err := h.service.ListAll(r.Context())
	if err != nil {
		h.log.Error("list bookings failed", zap.Error(err))
		writeDomainError(w, err)
		return
	}

	resp := bookingListResponse{
		Bookings: make([]bookingResponse, 0, len(bookings)),
		Count:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, newBookingResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}
