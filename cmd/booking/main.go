package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/hotel-booking/grpcapp"
	"github.com/ozzus/hotel-booking/internal/application/pricing"
	"github.com/ozzus/hotel-booking/internal/application/service"
	"github.com/ozzus/hotel-booking/internal/config"
	"github.com/ozzus/hotel-booking/internal/domain/models"
	"github.com/ozzus/hotel-booking/internal/domain/ports"
	"github.com/ozzus/hotel-booking/internal/infrastructures/db/memory"
	"github.com/ozzus/hotel-booking/internal/infrastructures/db/postgres"
	storeredis "github.com/ozzus/hotel-booking/internal/infrastructures/db/redis"
	"github.com/ozzus/hotel-booking/internal/infrastructures/tracing"
	grpcapi "github.com/ozzus/hotel-booking/internal/transport/grpc"
	"github.com/ozzus/hotel-booking/internal/transport/http/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
)

const serviceName = "hotel-booking"

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.InitTracer(serviceName, cfg.Env, cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	engineCfg, err := engineConfig(cfg.Pricing)
	if err != nil {
		log.Fatal("invalid pricing config", zap.Error(err))
	}
	engine := pricing.NewEngine(engineCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open booking store", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	defer closeStore()

	bookingService := service.NewBookingService(log, engine, store)
	adminGate := service.NewAdminGate(cfg.Admin.Username, cfg.Admin.Password)

	var metrics *handlers.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = handlers.NewMetrics(reg)
	}

	server := &http.Server{
		Addr: cfg.HTTP.Address(),
		Handler: handlers.NewRouter(handlers.RouterConfig{
			Log:         log,
			Bookings:    bookingService,
			Admin:       adminGate,
			Metrics:     metrics,
			MetricsPath: cfg.Metrics.Path,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	log.Info("hotel-booking starting",
		zap.String("env", cfg.Env),
		zap.String("http_addr", cfg.HTTP.Address()),
		zap.String("storage", cfg.Storage.Driver),
		zap.Float64("long_stay_discount_rate", engineCfg.LongStayDiscountRate),
	)

	errCh := make(chan error, 2)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var app *grpcapp.GrpcApp
	if cfg.GRPC.Enabled {
		app = grpcapp.New(log, cfg.GRPC.Address(), func(s *grpc.Server) {
			grpcapi.Register(s, log, bookingService)
		})
		go func() {
			if err := app.Run(); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}
	if app != nil {
		app.Stop()
	}
}

func openStore(ctx context.Context, cfg *config.Config) (ports.BookingStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return storeredis.NewBookingStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil
	case config.StoragePostgres:
		repo, err := postgres.New(ctx, cfg.DB.DatabaseURL())
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return memory.NewBookingStore(), func() {}, nil
	}
}

func engineConfig(c config.PricingConfig) (pricing.Config, error) {
	loc, err := c.Location()
	if err != nil {
		return pricing.Config{}, err
	}

	return pricing.Config{
		Rates: models.RateTable{
			models.RoomSingle: c.SingleRate,
			models.RoomDouble: c.DoubleRate,
			models.RoomSuite:  c.SuiteRate,
		},
		WeekendSurcharge:     c.WeekendSurcharge,
		LongStayNights:       c.LongStayNights,
		LongStayDiscountRate: c.LongStayDiscountRate,
		ViewSurcharge:        c.ViewSurcharge,
		ViewKeyword:          c.ViewKeyword,
		Location:             loc,
	}, nil
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
