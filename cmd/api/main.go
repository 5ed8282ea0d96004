package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/scalable_parking/internal/adapter/cache"
	"github.com/srgjo27/scalable_parking/internal/adapter/gateway"
	"github.com/srgjo27/scalable_parking/internal/adapter/handler"
	"github.com/srgjo27/scalable_parking/internal/adapter/notifier"
	"github.com/srgjo27/scalable_parking/internal/adapter/repository/memory"
	"github.com/srgjo27/scalable_parking/internal/adapter/repository/postgres"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/core/services"
	"github.com/srgjo27/scalable_parking/internal/platform/auth"
	"github.com/srgjo27/scalable_parking/internal/platform/config"
	"github.com/srgjo27/scalable_parking/internal/platform/database"
)

func main() {
	config.LoadEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var (
		tx    ports.Transactor
		repos ports.Repositories
		db    *sql.DB
	)

	switch cfg.StorageDriver {
	case "memory":
		log.Println("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		tx, repos = store, store.Repositories()
	default:
		db, err = database.NewPostgresDB(database.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			MaxConns: cfg.DBMaxConns,
		})
		if err != nil {
			log.Fatalf("Failed to connect to db after retries: %v", err)
		}
		defer db.Close()

		if cfg.DBMigrate {
			if err := postgres.Migrate(context.Background(), db); err != nil {
				log.Fatalf("Failed to migrate database: %v", err)
			}
		}
		tx, repos = postgres.NewTransactor(db), postgres.Repositories(db)
	}

	var slotCache ports.SlotCache
	if cfg.RedisAddr != "" {
		log.Printf("Connecting to Redis at %s...", cfg.RedisAddr)

		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Redis connected successfully!")
		defer redisClient.Close()

		slotCache = cache.NewSlotCache(redisClient, cfg.SlotsCacheTTL)
	}

	var events ports.Notifier = notifier.Log{}
	if cfg.AMQPURL != "" {
		pub, err := notifier.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		events = pub
	}

	gw, err := gateway.New(gateway.Config{
		Mode:           cfg.PaymentMode,
		SimulatedDelay: cfg.SimulatedDelay,
		Daraja: gateway.DarajaConfig{
			BaseURL:        cfg.DarajaBaseURL,
			ConsumerKey:    cfg.DarajaKey,
			ConsumerSecret: cfg.DarajaSecret,
			Shortcode:      cfg.DarajaShortcode,
			Passkey:        cfg.DarajaPasskey,
			CallbackURL:    cfg.DarajaCallback,
			Timeout:        cfg.DarajaTimeout,
		},
	}, nil)
	if err != nil {
		log.Fatalf("Failed to set up payment gateway: %v", err)
	}

	opts := []services.BookingOption{
		services.WithNotifier(events),
		services.WithSlotCache(slotCache),
		services.WithConflictGuard(services.NewConflictGuard(cfg.PendingWindow)),
	}
	sim, simulated := gw.(*gateway.Simulated)
	if simulated {
		opts = append(opts, services.WithConfirmationCanceller(sim))
	}

	bookingService := services.NewBookingService(tx, repos, gw, services.BookingConfig{
		GraceWindow:       cfg.GraceWindow,
		UndoWindow:        cfg.UndoWindow,
		StalePendingAfter: cfg.StalePendingAfter,
		SweepInterval:     cfg.SweepInterval,
	}, opts...)
	reconciliationService := services.NewReconciliationService(bookingService)
	if simulated {
		sim.Bind(reconciliationService)
		defer sim.Close()
		log.Printf("Payments run in simulate mode, confirmations after %s", cfg.SimulatedDelay)
	}

	slotService := services.NewSlotService(tx, repos, slotCache, nil)
	pricingService := services.NewPricingService(tx, repos)

	router := handler.NewRouter(handler.Handlers{
		Bookings: handler.NewBookingHandler(bookingService),
		Payments: handler.NewPaymentHandler(reconciliationService, cfg.CallbackSecret),
		Slots:    handler.NewSlotHandler(slotService, pricingService),
	}, auth.NewVerifier(cfg.JWTSecret))

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if cfg.SweeperEnabled {
		go func() {
			bookingService.RunBackgroundCleanup(workerCtx)
		}()
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
