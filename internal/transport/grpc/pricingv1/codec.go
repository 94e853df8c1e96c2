package pricingv1

import (
	"errors"
	"fmt"

	"github.com/ozzus/hotel-booking/internal/domain/models"
	"google.golang.org/protobuf/types/known/structpb"
)

// Request keys.
const (
	KeyCheckIn         = "check_in"
	KeyCheckOut        = "check_out"
	KeyRoomType        = "room_type"
	KeySpecialRequests = "special_requests"
)

// Response keys.
const (
	KeyNights           = "nights"
	KeyNightlyRate      = "nightly_rate"
	KeyBase             = "base"
	KeyWeekendNights    = "weekend_nights"
	KeyWeekendSurcharge = "weekend_surcharge"
	KeyDiscount         = "discount"
	KeyViewSurcharge    = "view_surcharge"
	KeyTotalCost        = "total_cost"
)

func EncodeRequest(req models.BookingRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		KeyCheckIn:         req.CheckIn,
		KeyCheckOut:        req.CheckOut,
		KeyRoomType:        string(req.RoomType),
		KeySpecialRequests: req.SpecialRequests,
	})
}

// DecodeRequest treats absent keys as empty strings and rejects values of
// any other kind.
func DecodeRequest(in *structpb.Struct) (models.BookingRequest, error) {
	if in == nil {
		return models.BookingRequest{}, errors.New("request is required")
	}

	fields := in.GetFields()
	var (
		req models.BookingRequest
		err error
	)
	if req.CheckIn, err = stringField(fields, KeyCheckIn); err != nil {
		return models.BookingRequest{}, err
	}
	if req.CheckOut, err = stringField(fields, KeyCheckOut); err != nil {
		return models.BookingRequest{}, err
	}
	roomType, err := stringField(fields, KeyRoomType)
	if err != nil {
		return models.BookingRequest{}, err
	}
	req.RoomType = models.RoomType(roomType)
	if req.SpecialRequests, err = stringField(fields, KeySpecialRequests); err != nil {
		return models.BookingRequest{}, err
	}

	return req, nil
}

func EncodeQuote(q models.Quote) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyNights:           structpb.NewNumberValue(float64(q.Nights)),
		KeyNightlyRate:      structpb.NewNumberValue(q.NightlyRate),
		KeyBase:             structpb.NewNumberValue(q.Base),
		KeyWeekendNights:    structpb.NewNumberValue(float64(q.WeekendNights)),
		KeyWeekendSurcharge: structpb.NewNumberValue(q.WeekendSurcharge),
		KeyDiscount:         structpb.NewNumberValue(q.Discount),
		KeyViewSurcharge:    structpb.NewNumberValue(q.ViewSurcharge),
		KeyTotalCost:        structpb.NewNumberValue(q.TotalCost),
	}}
}

func DecodeQuote(in *structpb.Struct) (models.Quote, error) {
	if in == nil {
		return models.Quote{}, errors.New("quote payload is empty")
	}

	fields := in.GetFields()
	values := make(map[string]float64, len(fields))
	for _, key := range []string{
		KeyNights, KeyNightlyRate, KeyBase, KeyWeekendNights,
		KeyWeekendSurcharge, KeyDiscount, KeyViewSurcharge, KeyTotalCost,
	} {
		v, ok := fields[key]
		if !ok {
			return models.Quote{}, fmt.Errorf("quote payload misses %q", key)
		}
		num, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return models.Quote{}, fmt.Errorf("quote field %q must be a number", key)
		}
		values[key] = num.NumberValue
	}

	return models.Quote{
		Nights:           int(values[KeyNights]),
		NightlyRate:      values[KeyNightlyRate],
		Base:             values[KeyBase],
		WeekendNights:    int(values[KeyWeekendNights]),
		WeekendSurcharge: values[KeyWeekendSurcharge],
		Discount:         values[KeyDiscount],
		ViewSurcharge:    values[KeyViewSurcharge],
		TotalCost:        values[KeyTotalCost],
	}, nil
}

func stringField(fields map[string]*structpb.Value, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", fmt.Errorf("%s must be a string", key)
	}
}
