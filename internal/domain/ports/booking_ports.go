package ports

import (
	"context"
	"time"

	"github.com/ozzus/hotel-booking/internal/domain/models"
)

// BookingStore is the record store behind the booking form: one "current"
// booking shown on the confirmation screen plus the append-only list the admin
// view reads.
type BookingStore interface {
	SaveCurrent(ctx context.Context, booking models.Booking) error
	AppendToAll(ctx context.Context, booking models.Booking) error
	LoadAll(ctx context.Context) ([]models.Booking, error)
	LoadCurrent(ctx context.Context) (models.Booking, error)
	ClearCurrent(ctx context.Context) error
}

// BookingRecorder is implemented by stores that can set the current booking
// and append it to the history as a single write.
type BookingRecorder interface {
	Record(ctx context.Context, booking models.Booking) error
}

type Pricer interface {
	Quote(req models.BookingRequest) models.Quote
	ParseDate(raw string) (time.Time, bool)
	Rates() models.RateTable
}
