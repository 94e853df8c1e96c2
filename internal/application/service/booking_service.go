package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "hotel-booking/service"

type BookingService struct {
	log    *zap.Logger
	pricer ports.Pricer
	store  ports.BookingStore
	now    func() time.Time
	newID  func() string
}

type Option func(*BookingService)

func WithClock(now func() time.Time) Option {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func NewBookingService(log *zap.Logger, pricer ports.Pricer, store ports.BookingStore, opts ...Option) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}

	s := &BookingService{
		log:    log,
		pricer: pricer,
		store:  store,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Quote is the live estimate shown while the form is being edited.
func (s *BookingService) Quote(ctx context.Context, req models.BookingRequest) models.Quote {
	const op = "service.Quote"
	_, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	quote := s.pricer.Quote(req)

	span.SetAttributes(
		attribute.String("booking.room_type", string(req.RoomType)),
		attribute.Int("booking.nights", quote.Nights),
		attribute.Float64("booking.total_cost", quote.TotalCost),
	)
	s.log.Debug("quote computed",
		zap.String("op", op),
		zap.String("room_type", string(req.RoomType)),
		zap.Int("nights", quote.Nights),
		zap.Float64("total_cost", quote.TotalCost),
	)

	return quote
}

func (s *BookingService) Submit(ctx context.Context, form models.BookingForm) (models.Booking, error) {
	const op = "service.Submit"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(
		zap.String("op", op),
		zap.String("room_type", string(form.RoomType)),
	)

	if err := s.validate(form); err != nil {
		logger.Info("booking rejected", zap.Error(err))
		span.SetStatus(otelcodes.Error, "invalid booking")
		return models.Booking{}, err
	}

	quote := s.pricer.Quote(form.Request())
	booking := models.Booking{
		ID:              s.newID(),
		Name:            form.Name,
		Email:           form.Email,
		CheckIn:         form.CheckIn,
		CheckOut:        form.CheckOut,
		RoomType:        form.RoomType,
		Guests:          form.Guests,
		SpecialRequests: form.SpecialRequests,
		TotalCost:       quote.TotalCost,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.record(ctx, booking); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "record booking")
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	span.SetAttributes(
		attribute.String("booking.id", booking.ID),
		attribute.Float64("booking.total_cost", booking.TotalCost),
	)
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.Int("nights", quote.Nights),
		zap.Float64("total_cost", booking.TotalCost),
	)

	return booking, nil
}

// record persists a confirmed booking. Stores without an atomic write get the
// history entry first, so a confirmation is never shown for a booking missing
// from the admin list.
func (s *BookingService) record(ctx context.Context, booking models.Booking) error {
	if recorder, ok := s.store.(ports.BookingRecorder); ok {
		if err := recorder.Record(ctx, booking); err != nil {
			return fmt.Errorf("record booking: %w", err)
		}
		return nil
	}

	if err := s.store.AppendToAll(ctx, booking); err != nil {
		return fmt.Errorf("append booking: %w", err)
	}
	if err := s.store.SaveCurrent(ctx, booking); err != nil {
		return fmt.Errorf("save current booking: %w", err)
	}
	return nil
}

func (s *BookingService) Current(ctx context.Context) (models.Booking, error) {
	const op = "service.Current"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	booking, err := s.store.LoadCurrent(ctx)
	if err != nil {
		span.RecordError(err)
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

// StartOver forgets the current booking so the form can take a new one. The
// booking stays in the admin list.
func (s *BookingService) StartOver(ctx context.Context) error {
	const op = "service.StartOver"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	if err := s.store.ClearCurrent(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("current booking cleared", zap.String("op", op))
	return nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	const op = "service.ListAll"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	bookings, err := s.store.LoadAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	span.SetAttributes(attribute.Int("booking.count", len(bookings)))
	return bookings, nil
}

func (s *BookingService) Rates() models.RateTable {
	return s.pricer.Rates()
}
