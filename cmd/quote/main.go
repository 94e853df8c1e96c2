package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/ozzus/hotel-booking/internal/application/pricing"
	pricingclient "github.com/ozzus/hotel-booking/internal/clients/pricing"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/transport/grpc/pricingv1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	var (
		checkIn  = flag.String("check-in", "", "check-in date, YYYY-MM-DD")
		checkOut = flag.String("check-out", "", "check-out date, YYYY-MM-DD")
		room     = flag.String("room", string(models.RoomSingle), "room type: single, double or suite")
		requests = flag.String("requests", "", "special requests")
		addr     = flag.String("addr", "", "pricing gRPC address; quotes locally when empty")
		timeout  = flag.Duration("timeout", 3*time.Second, "gRPC call timeout")
	)
	flag.Parse()

	req := models.BookingRequest{
		CheckIn:         *checkIn,
		CheckOut:        *checkOut,
		RoomType:        models.RoomType(*room),
		SpecialRequests: *requests,
	}

	quote, err := fetchQuote(context.Background(), req, *addr, *timeout)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "quote failed: %v\n", err)
		os.Exit(1)
	}

	printQuote(os.Stdout, req, quote)
}

func fetchQuote(ctx context.Context, req models.BookingRequest, addr string, timeout time.Duration) (models.Quote, error) {
	if addr == "" {
		return pricing.NewEngine(pricing.DefaultConfig()).Quote(req), nil
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return models.Quote{}, fmt.Errorf("connect pricing service %s: %w", addr, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	return pricingclient.NewClient(pricingv1.NewPricingServiceClient(conn), timeout).Quote(ctx, req)
}

func printQuote(w io.Writer, req models.BookingRequest, q models.Quote) {
	header := color.New(color.Bold, color.FgCyan)
	label := color.New(color.FgWhite)
	plus := color.New(color.FgYellow)
	minus := color.New(color.FgGreen)
	total := color.New(color.Bold, color.FgHiWhite)

	header.Fprintf(w, "%s room, %s to %s\n", req.RoomType, req.CheckIn, req.CheckOut)
	if q.Nights == 0 {
		color.New(color.FgRed).Fprintln(w, "no billable nights: check the dates")
		total.Fprintf(w, "Total: %s\n", money(0))
		return
	}

	label.Fprintf(w, "%-22s %d x %s = %s\n", "Nights:", q.Nights, money(q.NightlyRate), money(q.Base))
	if q.Discount > 0 {
		minus.Fprintf(w, "%-22s -%s\n", "Long-stay discount:", money(q.Discount))
	}
	if q.WeekendSurcharge > 0 {
		plus.Fprintf(w, "%-22s +%s (%d nights)\n", "Weekend surcharge:", money(q.WeekendSurcharge), q.WeekendNights)
	}
	if q.ViewSurcharge > 0 {
		plus.Fprintf(w, "%-22s +%s\n", "View request:", money(q.ViewSurcharge))
	}
	total.Fprintf(w, "Total: %s\n", money(q.TotalCost))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
