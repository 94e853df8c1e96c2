package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeDomainError(w http.ResponseWriter, err error) {
	if verr, ok := derr.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid booking",
			Fields: verr.Fields(),
		})
		return
	}

	status := mapHTTPStatus(err)
	writeError(w, status, http.StatusText(status))
}

func mapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, derr.ErrInvalidBooking):
		return http.StatusBadRequest
	case errors.Is(err, derr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, derr.ErrBookingNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}
