package handlers

import (
	"time"

	"github.com/ozzus/hotel-booking/internal/domain/models"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

type quoteRequest struct {
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	RoomType        string `json:"roomType"`
	SpecialRequests string `json:"specialRequests"`
}

func (q quoteRequest) toModel() models.BookingRequest {
	return models.BookingRequest{
		CheckIn:         q.CheckIn,
		CheckOut:        q.CheckOut,
		RoomType:        models.RoomType(q.RoomType),
		SpecialRequests: q.SpecialRequests,
	}
}

type quoteResponse struct {
	Nights           int     `json:"nights"`
	NightlyRate      float64 `json:"nightlyRate"`
	Base             float64 `json:"base"`
	WeekendNights    int     `json:"weekendNights"`
	WeekendSurcharge float64 `json:"weekendSurcharge"`
	Discount         float64 `json:"discount"`
	ViewSurcharge    float64 `json:"viewSurcharge"`
	TotalCost        float64 `json:"totalCost"`
}

func newQuoteResponse(q models.Quote) quoteResponse {
	return quoteResponse{
		Nights:           q.Nights,
		NightlyRate:      q.NightlyRate,
		Base:             q.Base,
		WeekendNights:    q.WeekendNights,
		WeekendSurcharge: q.WeekendSurcharge,
		Discount:         q.Discount,
		ViewSurcharge:    q.ViewSurcharge,
		TotalCost:        q.TotalCost,
	}
}

type bookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	RoomType        string `json:"roomType"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

func (b bookingRequest) toModel() models.BookingForm {
	return models.BookingForm{
		Name:            b.Name,
		Email:           b.Email,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		RoomType:        models.RoomType(b.RoomType),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
	}
}

type bookingResponse struct {
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

func newBookingResponse(b models.Booking) bookingResponse {
	return bookingResponse{
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

type bookingListResponse struct {
	Bookings []bookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

type roomRate struct {
	RoomType    string  `json:"roomType"`
	NightlyRate float64 `json:"nightlyRate"`
}

type ratesResponse struct {
	Rates []roomRate `json:"rates"`
}

func newRatesResponse(rates models.RateTable) ratesResponse {
	resp := ratesResponse{Rates: make([]roomRate, 0, len(models.RoomTypes))}
	for _, rt := range models.RoomTypes {
		resp.Rates = append(resp.Rates, roomRate{RoomType: string(rt), NightlyRate: rates[rt]})
	}
	return resp
}
