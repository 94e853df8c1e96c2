package service

import (
	"crypto/subtle"

	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
)

// AdminGate guards the bookings list with a single configured credential pair.
// It is a convenience gate, not an authentication system.
type AdminGate struct {
	username string
	password string
}

func NewAdminGate(username, password string) *AdminGate {
	return &AdminGate{username: username, password: password}
}

func (g *AdminGate) Authenticate(username, password string) error {
	if g.username == "" {
		return derr.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return derr.ErrUnauthorized
	}

	return nil
}
