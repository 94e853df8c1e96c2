package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/infrastructures/db/model"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "booking"

// BookingStore keeps the current booking under <prefix>:current and the
// submission history as a list under <prefix>:all.
type BookingStore struct {
	redis  *redis.Client
	prefix string
}

func NewBookingStore(redisClient *redis.Client, prefix string) *BookingStore {
	prefix = strings.Trim(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &BookingStore{redis: redisClient, prefix: prefix}
}

func (s *BookingStore) SaveCurrent(ctx context.Context, booking models.Booking) error {
	data, err := json.Marshal(model.FromBooking(booking))
	if err != nil {
		return fmt.Errorf("marshal current booking: %w", err)
	}

	if err := s.redis.Set(ctx, s.currentKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set current booking: %w", err)
	}

	return nil
}

func (s *BookingStore) AppendToAll(ctx context.Context, booking models.Booking) error {
	data, err := json.Marshal(model.FromBooking(booking))
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	if err := s.redis.RPush(ctx, s.allKey(), data).Err(); err != nil {
		return fmt.Errorf("redis append booking: %w", err)
	}

	return nil
}

// Record appends the booking to the history and sets it as current in one
// MULTI/EXEC block.
func (s *BookingStore) Record(ctx context.Context, booking models.Booking) error {
	data, err := json.Marshal(model.FromBooking(booking))
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, s.allKey(), data)
		pipe.Set(ctx, s.currentKey(), data, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis record booking: %w", err)
	}

	return nil
}

func (s *BookingStore) LoadAll(ctx context.Context) ([]models.Booking, error) {
	items, err := s.redis.LRange(ctx, s.allKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(items))
	for i, item := range items {
		booking, err := decodeBooking(item)
		if err != nil {
			return nil, fmt.Errorf("decode booking #%d: %w", i, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (s *BookingStore) LoadCurrent(ctx context.Context) (models.Booking, error) {
	data, err := s.redis.Get(ctx, s.currentKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Booking{}, derr.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("redis get current booking: %w", err)
	}

	booking, err := decodeBooking(data)
	if err != nil {
		return models.Booking{}, fmt.Errorf("decode current booking: %w", err)
	}

	return booking, nil
}

func (s *BookingStore) ClearCurrent(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.currentKey()).Err(); err != nil {
		return fmt.Errorf("redis delete current booking: %w", err)
	}
	return nil
}

func (s *BookingStore) currentKey() string {
	return s.prefix + ":current"
}

func (s *BookingStore) allKey() string {
	return s.prefix + ":all"
}

func decodeBooking(data string) (models.Booking, error) {
	var record model.BookingRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return models.Booking{}, err
	}
	return record.ToBooking(), nil
}
