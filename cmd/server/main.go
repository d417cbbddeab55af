package main

import (
	"context"

	"splendico/internal/auth/gate"
	authhandler "splendico/internal/auth/handler"
	"splendico/internal/auth/token"
	bookinghandler "splendico/internal/bookings/handler"
	bookingrepository "splendico/internal/bookings/repository"
	bookingservice "splendico/internal/bookings/service"
	bookingvalidator "splendico/internal/bookings/validator"
	"splendico/internal/events"
	healthhandler "splendico/internal/health/handler"
	reviewhandler "splendico/internal/reviews/handler"
	reviewrepository "splendico/internal/reviews/repository"
	reviewservice "splendico/internal/reviews/service"
	reviewvalidator "splendico/internal/reviews/validator"
	roomhandler "splendico/internal/rooms/handler"
	roomrepository "splendico/internal/rooms/repository"
	roomservice "splendico/internal/rooms/service"
	roomvalidator "splendico/internal/rooms/validator"
	"splendico/pkg/app"
	"splendico/pkg/config"
	"splendico/pkg/contracts"
	"splendico/pkg/metrics"
	"splendico/pkg/middleware"
)

const ServiceName = "splendico-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	collector := metrics.NewCollector()

	publisher, err := events.NewPublisher(cfg, collector)
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "error", err)
	}

	store := initIdempotencyStore(cfg)

	cfg.Log.Info("Starting Splendico hotel service")
	serverApp := app.NewApplication(cfg, collector, store, publisher)
	serverApp.SetApp(
		healthhandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		initHandlers(cfg, publisher)...,
	)
	serverApp.Run()
}

func initIdempotencyStore(cfg *config.Config) middleware.IdempotencyStore {
	if cfg.RedisURL == "" {
		cfg.Log.Info("Using in-memory idempotency store", "ttl", cfg.IdempotencyTTL)
		return middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	store, err := middleware.NewRedisIdempotencyStoreFromURL(ctx, cfg.RedisURL, cfg.IdempotencyTTL)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to Redis", "error", err)
	}
	cfg.Log.Info("Using Redis idempotency store", "ttl", cfg.IdempotencyTTL)
	return store
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	tokens := token.NewManager(cfg.AccessTokenSecret, config.TokenTTL)
	authGate := gate.New(tokens, cfg.Log)

	roomService := roomservice.NewRoomService(
		roomrepository.NewMongoRoomRepository(cfg),
		roomvalidator.NewRoomValidator(cfg.Log),
		cfg.Log,
	)
	bookingService := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg.Log,
	)
	reviewService := reviewservice.NewReviewService(
		reviewrepository.NewMongoReviewRepository(cfg),
		reviewvalidator.NewReviewValidator(cfg.Log),
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		healthhandler.NewBannerHandler(cfg.Log),
		roomhandler.NewRoomHandler(roomService, cfg.MaxPageSize, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, authGate.OwnerOf("email"), cfg.Log),
		reviewhandler.NewReviewHandler(reviewService, cfg.Log),
		authhandler.NewAuthHandler(tokens, token.NewCookiePolicy(cfg.IsProduction()), cfg.Log),
	}
}
