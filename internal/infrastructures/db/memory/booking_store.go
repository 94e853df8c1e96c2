package memory

import (
	"context"
	"sync"

	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
	"github.com/ozzus/hotel-booking/internal/domain/models"
)

// BookingStore keeps bookings in process memory. Everything is lost on restart.
type BookingStore struct {
	mu      sync.RWMutex
	current *models.Booking
	all     []models.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) SaveCurrent(_ context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &booking
	return nil
}

func (s *BookingStore) AppendToAll(_ context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = append(s.all, booking)
	return nil
}

func (s *BookingStore) Record(_ context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = append(s.all, booking)
	s.current = &booking
	return nil
}

func (s *BookingStore) LoadAll(_ context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.all))
	copy(out, s.all)
	return out, nil
}

func (s *BookingStore) LoadCurrent(_ context.Context) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Booking{}, derr.ErrBookingNotFound
	}
	return *s.current, nil
}

func (s *BookingStore) ClearCurrent(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return nil
}
