package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightwatch-service/internal/infrastructure/config"
	"flightwatch-service/internal/infrastructure/oauth"
	"flightwatch-service/internal/infrastructure/persistence"
	mongoRepo "flightwatch-service/internal/interface/repository"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"

	domainRepo "flightwatch-service/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flightwatch Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	searchRepo := mongoRepo.NewMongoSearchRepository(db)
	flightRecordRepo := mongoRepo.NewMongoFlightRecordRepository(db)
	locationRepo := mongoRepo.NewGormLocationRepository(gormDB)
	priceRepo := mongoRepo.NewTravelpayoutsRepository(cfg.TravelpayoutsToken, cfg.Origin, log)

	// Set up notification channels; only configured ones are wired in
	var notifiers []domainRepo.Notifier

	if cfg.TelegramToken != "" {
		telegram, err := mongoRepo.NewTelegramRepository(cfg.TelegramToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Fatal("Failed to create Telegram notifier", "error", err)
		}
		notifiers = append(notifiers, telegram)
	}

	if cfg.VKToken != "" {
		notifiers = append(notifiers, mongoRepo.NewVKRepository(cfg.VKToken, cfg.VKOwnerID, log))
	}

	if cfg.GmailRefreshToken != "" {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		gmailNotifier, err := mongoRepo.NewGmailRepository(ctx, gmailOAuth.GetTokenSource(ctx), cfg.GmailFrom, cfg.GmailTo, log)
		if err != nil {
			log.Fatal("Failed to create Gmail notifier", "error", err)
		}
		notifiers = append(notifiers, gmailNotifier)
	}

	if len(notifiers) == 0 {
		log.Warn("No notification channels configured; found flights will only be recorded")
	}

	// Set up metrics and the poll cycle processor
	m := metrics.NewMetrics("flightwatch")
	formatter := usecase.NewFlightFormatter(ctx, locationRepo, log)
	processor := usecase.NewSearchProcessor(
		searchRepo,
		priceRepo,
		flightRecordRepo,
		notifiers,
		formatter,
		m,
		log,
		cfg.MaxHoursPassed,
	)

	// Run the poll cycle on an interval, once immediately at startup
	go func() {
		if err := processor.ProcessSearches(ctx); err != nil {
			log.Error("Poll cycle failed", "error", err)
		}

		ticker := time.NewTicker(cfg.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Poll cycle stopped")
				return
			case <-ticker.C:
				if err := processor.ProcessSearches(ctx); err != nil {
					log.Error("Poll cycle failed", "error", err)
				}
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flightwatch Service stopped")
}
