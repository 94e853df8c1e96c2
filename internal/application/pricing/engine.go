package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/ozzus/hotel-booking/internal/domain/models"
)

const (
	DefaultSingleRate           = 75
	DefaultDoubleRate           = 100
	DefaultSuiteRate            = 150
	DefaultWeekendSurcharge     = 25
	DefaultLongStayNights       = 7
	DefaultLongStayDiscountRate = 0.10
	DefaultViewSurcharge        = 50
	DefaultViewKeyword          = "view"
)

type Config struct {
	Rates            models.RateTable
	WeekendSurcharge float64
	// Stays strictly longer than LongStayNights get LongStayDiscountRate off the
	// base lodging cost.
	LongStayNights       int
	LongStayDiscountRate float64
	ViewSurcharge        float64
	ViewKeyword          string
	// Location is the zone dates are normalized to before counting nights.
	Location *time.Location
}

func DefaultRates() models.RateTable {
	return models.RateTable{
		models.RoomSingle: DefaultSingleRate,
		models.RoomDouble: DefaultDoubleRate,
		models.RoomSuite:  DefaultSuiteRate,
	}
}

func DefaultConfig() Config {
	return Config{
		Rates:                DefaultRates(),
		WeekendSurcharge:     DefaultWeekendSurcharge,
		LongStayNights:       DefaultLongStayNights,
		LongStayDiscountRate: DefaultLongStayDiscountRate,
		ViewSurcharge:        DefaultViewSurcharge,
		ViewKeyword:          DefaultViewKeyword,
		Location:             time.UTC,
	}
}

// Engine computes booking prices. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	rates := make(models.RateTable, len(cfg.Rates))
	for roomType, rate := range cfg.Rates {
		rates[roomType] = rate
	}
	cfg.Rates = rates

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	cfg.ViewKeyword = strings.ToLower(strings.TrimSpace(cfg.ViewKeyword))
	if cfg.ViewKeyword == "" {
		cfg.ViewKeyword = DefaultViewKeyword
	}

	return &Engine{cfg: cfg}
}

func (e *Engine) Rates() models.RateTable {
	out := make(models.RateTable, len(e.cfg.Rates))
	for roomType, rate := range e.cfg.Rates {
		out[roomType] = rate
	}
	return out
}

// NightlyRate returns 0 for room types missing from the rate table.
func (e *Engine) NightlyRate(roomType models.RoomType) float64 {
	return e.cfg.Rates[roomType]
}

func (e *Engine) IsWeekendNight(date time.Time) bool {
	switch date.In(e.cfg.Location).Weekday() {
	case time.Friday, time.Saturday:
		return true
	default:
		return false
	}
}

// CountNights returns the number of calendar days between the two dates after
// both are normalized to midnight, or 0 when either is missing or checkOut is
// not after checkIn.
func (e *Engine) CountNights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	diff := civilDay(checkOut, e.cfg.Location).Sub(civilDay(checkIn, e.cfg.Location))
	nights := int(math.Ceil(diff.Hours() / 24))
	if nights <= 0 {
		return 0
	}

	return nights
}

func (e *Engine) Nights(req models.BookingRequest) int {
	checkIn, okIn := e.ParseDate(req.CheckIn)
	checkOut, okOut := e.ParseDate(req.CheckOut)
	if !okIn || !okOut {
		return 0
	}
	return e.CountNights(checkIn, checkOut)
}

func (e *Engine) TotalCost(req models.BookingRequest) float64 {
	return e.Quote(req).TotalCost
}

func (e *Engine) Quote(req models.BookingRequest) models.Quote {
	nights := e.Nights(req)
	if nights <= 0 {
		return models.Quote{}
	}

	checkIn, _ := e.ParseDate(req.CheckIn)
	rate := e.NightlyRate(req.RoomType)
	base := float64(nights) * rate

	weekendNights := e.countWeekendNights(checkIn, nights)
	weekendSurcharge := float64(weekendNights) * e.cfg.WeekendSurcharge

	var discount float64
	if nights > e.cfg.LongStayNights {
		discount = base * e.cfg.LongStayDiscountRate
	}

	total := base - discount + weekendSurcharge

	var viewSurcharge float64
	if strings.Contains(strings.ToLower(req.SpecialRequests), e.cfg.ViewKeyword) {
		viewSurcharge = e.cfg.ViewSurcharge
		total += viewSurcharge
	}

	return models.Quote{
		Nights:           nights,
		NightlyRate:      rate,
		Base:             base,
		WeekendNights:    weekendNights,
		WeekendSurcharge: weekendSurcharge,
		Discount:         roundCents(discount),
		ViewSurcharge:    viewSurcharge,
		TotalCost:        roundCents(total),
	}
}

func (e *Engine) countWeekendNights(checkIn time.Time, nights int) int {
	first := civilDay(checkIn, e.cfg.Location)

	count := 0
	for i := 0; i < nights; i++ {
		if isWeekendDay(first.AddDate(0, 0, i)) {
			count++
		}
	}

	return count
}

func isWeekendDay(day time.Time) bool {
	weekday := day.Weekday()
	return weekday == time.Friday || weekday == time.Saturday
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
