package model

import (
	"time"

	"github.com/ozzus/hotel-booking/internal/domain/models"
)

// BookingRecord is the persisted shape of a booking, shared by the redis and
// postgres stores.
type BookingRecord struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	RoomType        string    `json:"roomType"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests"`
	TotalCost       float64   `json:"totalCost"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBooking(b models.Booking) BookingRecord {
	return BookingRecord{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		RoomType:        string(b.RoomType),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		TotalCost:       b.TotalCost,
		CreatedAt:       b.CreatedAt,
	}
}

func (r BookingRecord) ToBooking() models.Booking {
	return models.Booking{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		RoomType:        models.RoomType(r.RoomType),
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		TotalCost:       r.TotalCost,
		CreatedAt:       r.CreatedAt,
	}
}
