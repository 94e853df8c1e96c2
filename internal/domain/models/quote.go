package models

// Quote is the price breakdown for a BookingRequest. All amounts are zero when
// Nights is zero.
type Quote struct {
	Nights           int
	NightlyRate      float64
	Base             float64
	WeekendNights    int
	WeekendSurcharge float64
	Discount         float64
	ViewSurcharge    float64
	TotalCost        float64
}
