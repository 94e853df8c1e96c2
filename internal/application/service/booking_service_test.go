package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ozzus/hotel-booking/internal/application/pricing"
	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testStore struct {
	current    *models.Booking
	all        []models.Booking
	calls      []string
	saveErr    error
	appendErr  error
	loadAllErr error
}

func (s *testStore) SaveCurrent(_ context.Context, booking models.Booking) error {
	s.calls = append(s.calls, "SaveCurrent")
	if s.saveErr != nil {
		return s.saveErr
	}
	s.current = &booking
	return nil
}

func (s *testStore) AppendToAll(_ context.Context, booking models.Booking) error {
	s.calls = append(s.calls, "AppendToAll")
	if s.appendErr != nil {
		return s.appendErr
	}
	s.all = append(s.all, booking)
	return nil
}

func (s *testStore) LoadAll(_ context.Context) ([]models.Booking, error) {
	s.calls = append(s.calls, "LoadAll")
	return s.all, s.loadAllErr
}

func (s *testStore) LoadCurrent(_ context.Context) (models.Booking, error) {
	s.calls = append(s.calls, "LoadCurrent")
	if s.current == nil {
		return models.Booking{}, derr.ErrBookingNotFound
	}
	return *s.current, nil
}

func (s *testStore) ClearCurrent(_ context.Context) error {
	s.calls = append(s.calls, "ClearCurrent")
	s.current = nil
	return nil
}

var fixedNow = time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestService(store *testStore) *BookingService {
	return NewBookingService(
		zap.NewNop(),
		pricing.NewEngine(pricing.DefaultConfig()),
		store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "booking-1" }),
	)
}

func validForm() models.BookingForm {
	return models.BookingForm{
		Name:            "Alice Smith",
		Email:           "alice@example.com",
		CheckIn:         "2025-06-02",
		CheckOut:        "2025-06-11",
		RoomType:        models.RoomSingle,
		Guests:          2,
		SpecialRequests: "nice view please",
	}
}

func TestBookingService_Submit_PersistsCurrentThenAll(t *testing.T) {
	store := &testStore{}
	svc := newTestService(store)

	booking, err := svc.Submit(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, 707.5, booking.TotalCost)
	assert.Equal(t, fixedNow, booking.CreatedAt)
	assert.Equal(t, "Alice Smith", booking.Name)
	assert.Equal(t, 2, booking.Guests)

	assert.Equal(t, []string{"AppendToAll", "SaveCurrent"}, store.calls)
	require.NotNil(t, store.current)
	assert.Equal(t, booking, *store.current)
	assert.Equal(t, []models.Booking{booking}, store.all)
}

func TestBookingService_Submit_SameDayIsAcceptedAtZeroCost(t *testing.T) {
	store := &testStore{}
	svc := newTestService(store)

	form := validForm()
	form.CheckOut = form.CheckIn

	booking, err := svc.Submit(context.Background(), form)

	require.NoError(t, err)
	assert.Zero(t, booking.TotalCost)
}

func TestBookingService_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.BookingForm)
		field  string
	}{
		{name: "missing name", mutate: func(f *models.BookingForm) { f.Name = "  " }, field: "name"},
		{name: "digits in name", mutate: func(f *models.BookingForm) { f.Name = "R2D2" }, field: "name"},
		{name: "bad email", mutate: func(f *models.BookingForm) { f.Email = "alice.example.com" }, field: "email"},
		{name: "email with spaces", mutate: func(f *models.BookingForm) { f.Email = "alice @example.com" }, field: "email"},
		{name: "missing check-in", mutate: func(f *models.BookingForm) { f.CheckIn = "" }, field: "dates"},
		{name: "unparseable check-out", mutate: func(f *models.BookingForm) { f.CheckOut = "next week" }, field: "dates"},
		{name: "reversed dates", mutate: func(f *models.BookingForm) { f.CheckOut = "2025-06-01" }, field: "dates"},
		{name: "no guests", mutate: func(f *models.BookingForm) { f.Guests = 0 }, field: "guests"},
		{name: "too many guests", mutate: func(f *models.BookingForm) { f.Guests = 7 }, field: "guests"},
		{name: "unknown room", mutate: func(f *models.BookingForm) { f.RoomType = "penthouse" }, field: "roomType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testStore{}
			svc := newTestService(store)

			form := validForm()
			tt.mutate(&form)

			_, err := svc.Submit(context.Background(), form)

			require.Error(t, err)
			assert.ErrorIs(t, err, derr.ErrInvalidBooking)

			verr, ok := derr.AsValidationError(err)
			require.True(t, ok)
			assert.Contains(t, verr.Fields(), tt.field)
			assert.Len(t, verr.Fields(), 1)
			assert.Empty(t, store.calls, "nothing may be persisted for an invalid form")
		})
	}
}

func TestBookingService_Submit_StoreErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("append leaves no current booking", func(t *testing.T) {
		store := &testStore{appendErr: boom}
		_, err := newTestService(store).Submit(context.Background(), validForm())

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"AppendToAll"}, store.calls)
		assert.Nil(t, store.current)
	})

	t.Run("save current", func(t *testing.T) {
		store := &testStore{saveErr: boom}
		_, err := newTestService(store).Submit(context.Background(), validForm())

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"AppendToAll", "SaveCurrent"}, store.calls)
	})
}

type recordingStore struct {
	testStore
	recordErr error
}

func (s *recordingStore) Record(_ context.Context, booking models.Booking) error {
	s.calls = append(s.calls, "Record")
	if s.recordErr != nil {
		return s.recordErr
	}
	s.current = &booking
	s.all = append(s.all, booking)
	return nil
}

func TestBookingService_Submit_UsesAtomicRecord(t *testing.T) {
	store := &recordingStore{}
	svc := NewBookingService(
		zap.NewNop(),
		pricing.NewEngine(pricing.DefaultConfig()),
		store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "booking-1" }),
	)

	booking, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, []string{"Record"}, store.calls)
	require.NotNil(t, store.current)
	assert.Equal(t, booking, *store.current)
	assert.Equal(t, []models.Booking{booking}, store.all)

	failing := &recordingStore{recordErr: errors.New("tx aborted")}
	svc = NewBookingService(zap.NewNop(), pricing.NewEngine(pricing.DefaultConfig()), failing)

	_, err = svc.Submit(context.Background(), validForm())
	require.ErrorIs(t, err, failing.recordErr)
	assert.Equal(t, []string{"Record"}, failing.calls)
	assert.Nil(t, failing.current)
	assert.Empty(t, failing.all)
}

func TestBookingService_CurrentAndStartOver(t *testing.T) {
	store := &testStore{}
	svc := newTestService(store)

	_, err := svc.Current(context.Background())
	require.ErrorIs(t, err, derr.ErrBookingNotFound)

	booking, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, booking, current)

	require.NoError(t, svc.StartOver(context.Background()))

	_, err = svc.Current(context.Background())
	require.ErrorIs(t, err, derr.ErrBookingNotFound)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "starting over keeps the booking in the admin list")
}

func TestBookingService_ListAll_Error(t *testing.T) {
	boom := errors.New("redis down")
	svc := newTestService(&testStore{loadAllErr: boom})

	_, err := svc.ListAll(context.Background())

	require.ErrorIs(t, err, boom)
}

func TestBookingService_Quote(t *testing.T) {
	svc := newTestService(&testStore{})

	quote := svc.Quote(context.Background(), models.BookingRequest{
		CheckIn:  "2025-06-02",
		CheckOut: "2025-06-09",
		RoomType: models.RoomDouble,
	})

	assert.Equal(t, 7, quote.Nights)
	assert.Equal(t, 750.0, quote.TotalCost)
}

func TestBookingService_Rates(t *testing.T) {
	svc := newTestService(&testStore{})

	assert.Equal(t, models.RateTable{
		models.RoomSingle: 75,
		models.RoomDouble: 100,
		models.RoomSuite:  150,
	}, svc.Rates())
}

func TestAdminGate_Authenticate(t *testing.T) {
	gate := NewAdminGate("admin", "password123")

	assert.NoError(t, gate.Authenticate("admin", "password123"))
	assert.ErrorIs(t, gate.Authenticate("admin", "wrong"), derr.ErrUnauthorized)
	assert.ErrorIs(t, gate.Authenticate("root", "password123"), derr.ErrUnauthorized)
	assert.ErrorIs(t, gate.Authenticate("", ""), derr.ErrUnauthorized)

	assert.ErrorIs(t, NewAdminGate("", "").Authenticate("", ""), derr.ErrUnauthorized)
}
