// Package pricingv1 declares the hotel.pricing.v1.PricingService contract.
// Messages travel as google.protobuf.Struct; codec.go maps them to domain types.
package pricingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName       = "hotel.pricing.v1.PricingService"
	QuoteFullMethod   = "/hotel.pricing.v1.PricingService/Quote"
	quoteMethodName   = "Quote"
	serviceDescSource = "hotel/pricing/v1/pricing.proto"
)

type PricingServiceClient interface {
	Quote(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type pricingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPricingServiceClient(cc grpc.ClientConnInterface) PricingServiceClient {
	return &pricingServiceClient{cc: cc}
}

func (c *pricingServiceClient) Quote(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, QuoteFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type PricingServiceServer interface {
	Quote(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedPricingServiceServer can be embedded to satisfy PricingServiceServer.
type UnimplementedPricingServiceServer struct{}

func (UnimplementedPricingServiceServer) Quote(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Quote not implemented")
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func quoteHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).Quote(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuoteFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).Quote(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: quoteMethodName,
			Handler:    quoteHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceDescSource,
}
