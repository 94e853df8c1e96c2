package grpc

import (
	"context"

	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/transport/grpc/pricingv1"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type Quoter interface {
	Quote(ctx context.Context, req models.BookingRequest) models.Quote
}

type serverAPI struct {
	pricingv1.UnimplementedPricingServiceServer
	log    *zap.Logger
	quoter Quoter
}

func Register(gRPCServer *grpc.Server, log *zap.Logger, quoter Quoter) {
	pricingv1.RegisterPricingServiceServer(gRPCServer, &serverAPI{
		log:    log,
		quoter: quoter,
	})
}

func (s *serverAPI) Quote(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	req, err := pricingv1.DecodeRequest(in)
	if err != nil {
		s.log.Warn("validation failed", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return pricingv1.EncodeQuote(s.quoter.Quote(ctx, req)), nil
}
