package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	derr "github.com/ozzus/hotel-booking/internal/domain/errors"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/transport/grpc/pricingv1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Client struct {
	client  pricingv1.PricingServiceClient
	timeout time.Duration
}

func NewClient(client pricingv1.PricingServiceClient, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Client{
		client:  client,
		timeout: timeout,
	}
}

func (c *Client) Quote(ctx context.Context, req models.BookingRequest) (models.Quote, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	in, err := pricingv1.EncodeRequest(req)
	if err != nil {
		return models.Quote{}, fmt.Errorf("encode quote request: %w", err)
	}

	resp, err := c.client.Quote(reqCtx, in)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return models.Quote{}, err
		}
		st, ok := status.FromError(err)
		if ok {
			switch st.Code() {
			case codes.InvalidArgument:
				return models.Quote{}, fmt.Errorf("%w: %s", derr.ErrInvalidBooking, st.Message())
			case codes.Unavailable, codes.DeadlineExceeded:
				return models.Quote{}, derr.ErrPricingUnavailable
			}
		}
		return models.Quote{}, fmt.Errorf("quote from pricing service: %w", err)
	}

	quote, err := pricingv1.DecodeQuote(resp)
	if err != nil {
		return models.Quote{}, fmt.Errorf("pricing service returned incomplete payload: %w", err)
	}

	return quote, nil
}
