package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
	"github.com/ozzus/hotel-booking/internal/domain/models"
)

const (
	MinGuests = 1
	MaxGuests = 6
)

var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

func (s *BookingService) validate(form models.BookingForm) error {
	verr := derr.NewValidationError()

	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		verr.Add("name", "Name is required.")
	case strings.ContainsFunc(name, unicode.IsDigit):
		verr.Add("name", "Name cannot contain numbers.")
	}

	if !emailPattern.MatchString(form.Email) {
		verr.Add("email", "A valid email is required.")
	}

	checkIn, okIn := s.pricer.ParseDate(form.CheckIn)
	checkOut, okOut := s.pricer.ParseDate(form.CheckOut)
	switch {
	case !okIn || !okOut:
		verr.Add("dates", "Check-in and check-out dates are required.")
	case checkOut.Before(checkIn):
		verr.Add("dates", "Check-out date cannot be before check-in date.")
	}

	if !form.RoomType.Valid() {
		verr.Add("roomType", "Choose a single, double or suite room.")
	}

	switch {
	case form.Guests < MinGuests:
		verr.Add("guests", "At least one guest is required.")
	case form.Guests > MaxGuests:
		verr.Add("guests", fmt.Sprintf("No more than %d guests per room.", MaxGuests))
	}

	if verr.Empty() {
		return nil
	}
	return verr
}
