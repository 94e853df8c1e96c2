package models

import "time"

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
)

var RoomTypes = []RoomType{RoomSingle, RoomDouble, RoomSuite}

func (r RoomType) Valid() bool {
	switch r {
	case RoomSingle, RoomDouble, RoomSuite:
		return true
	default:
		return false
	}
}

type RateTable map[RoomType]float64

// BookingRequest is the transient input of a price computation. Dates are kept as
// the raw strings the form sends; the pricing engine parses them.
type BookingRequest struct {
	CheckIn         string
	CheckOut        string
	RoomType        RoomType
	SpecialRequests string
}

type BookingForm struct {
	Name            string
	Email           string
	CheckIn         string
	CheckOut        string
	RoomType        RoomType
	Guests          int
	SpecialRequests string
}

func (f BookingForm) Request() BookingRequest {
	return BookingRequest{
		CheckIn:         f.CheckIn,
		CheckOut:        f.CheckOut,
		RoomType:        f.RoomType,
		SpecialRequests: f.SpecialRequests,
	}
}

// Booking is a confirmed, persisted reservation with its frozen total.
type Booking struct {
	ID              string
	Name            string
	Email           string
	CheckIn         string
	CheckOut        string
	RoomType        RoomType
	Guests          int
	SpecialRequests string
	TotalCost       float64
	CreatedAt       time.Time
}
