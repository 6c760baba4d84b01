package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"homeservice.backend/internal/config"
	"homeservice.backend/internal/infrastructure/billing"
	"homeservice.backend/internal/infrastructure/datasources/postgres"
	"homeservice.backend/internal/infrastructure/identity"
	"homeservice.backend/internal/infrastructure/jobs"
	"homeservice.backend/internal/infrastructure/realtime"
	"homeservice.backend/internal/infrastructure/repositories"
	"homeservice.backend/internal/interfaces/http/handlers"
	"homeservice.backend/internal/interfaces/http/middleware"
	"homeservice.backend/internal/usecases"
	"homeservice.backend/pkg/jwt"
	"homeservice.backend/pkg/logger"
	"homeservice.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	migrateDB  = postgres.Migrate
	fetchJWKS  = func(ctx context.Context, url, clientID string) (*jwt.Verifier, error) {
		keys, err := jwt.FetchJWKS(ctx, &http.Client{Timeout: 10 * time.Second}, url)
		if err != nil {
			return nil, err
		}
		return jwt.NewVerifier(keys, clientID), nil
	}
	runServer = func(ctx context.Context, r *gin.Engine, port string) error {
		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	bootCtx := context.Background()
	logger.Info(bootCtx, "Logger initialized", zap.String("env", cfg.Server.Env))
	if cfg.Server.LogLevel != "" {
		if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
			logger.Warn(bootCtx, "Ignoring invalid LOG_LEVEL", zap.String("level", cfg.Server.LogLevel))
		}
	}

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(bootCtx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer func() { _ = redis.Close() }()
	logger.Info(bootCtx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := migrateDB(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(bootCtx, "Connected to database")

	var tokenVerifier middleware.TokenVerifier
	if cfg.Identity.JWKSURL != "" {
		v, err := fetchJWKS(bootCtx, cfg.Identity.JWKSURL, cfg.Identity.ClientID)
		if err != nil {
			return fmt.Errorf("failed to load identity provider keys: %w", err)
		}
		tokenVerifier = v
	} else {
		logger.Warn(bootCtx, "CLERK_JWKS_URL not set, API routes are open")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := buildApp(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer app.close()

	r := newRouter(cfg, app.deps, tokenVerifier)

	go app.retention.Start(ctx)

	logger.Info(bootCtx, "Home services backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	if err := runServer(ctx, r, cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(bootCtx, "Server stopped")
	return nil
}

type app struct {
	deps      routeDeps
	hub       *realtime.Hub
	relay     *realtime.Relay
	retention *jobs.LiveLocationRetentionJob
}

// close stops the retention job and the relay, then drops every socket.
func (a *app) close() {
	a.retention.Stop()
	if err := a.relay.Stop(); err != nil {
		logger.Warn(context.Background(), "Failed to stop realtime relay", zap.Error(err))
	}
	a.hub.Close()
}

// buildApp wires repositories, usecases and handlers and subscribes the relay.
func buildApp(ctx context.Context, cfg *config.Config, db *gorm.DB) (*app, error) {
	userRepo := repositories.NewUserRepository(db)
	workerRepo := repositories.NewWorkerRepository(db)
	specRepo := repositories.NewSpecializationRepository(db)
	locationRepo := repositories.NewLiveLocationRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	uow := repositories.NewUnitOfWork(db)

	hub := realtime.NewHub()
	relay := realtime.NewRelay(redis.GetClient(), cfg.Realtime.Channel, hub)
	if err := relay.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start realtime relay: %w", err)
	}

	var gateway usecases.BillingGateway
	if cfg.Billing.Configured() {
		gateway = billing.NewStripeGateway(cfg.Billing.SecretKey)
	} else {
		logger.Warn(ctx, "STRIPE_SECRET_KEY not set, payment endpoints will fail")
	}

	var verifier usecases.SignatureVerifier
	if v, err := identity.NewSvixVerifier(cfg.Identity.WebhookSecret); err == nil {
		verifier = v
	} else {
		logger.Warn(ctx, "Identity webhook verifier unavailable", zap.Error(err))
	}

	userUsecase := usecases.NewUserUsecase(userRepo, uow)
	workerUsecase := usecases.NewWorkerUsecase(workerRepo, uow)
	specUsecase := usecases.NewSpecializationUsecase(specRepo, workerRepo, uow)
	locationUsecase := usecases.NewLiveLocationUsecase(locationRepo, workerRepo, uow, relay)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, userRepo, workerRepo, uow, relay)
	txUsecase := usecases.NewTransactionUsecase(txRepo, orderRepo, userRepo, uow, cfg.Payment.SignatureSecret)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, orderRepo, uow)
	billingUsecase := usecases.NewBillingUsecase(gateway, cfg.Billing)
	webhookUsecase := usecases.NewIdentityWebhookUsecase(verifier, userUsecase)

	locationHandler := handlers.NewLiveLocationHandler(locationUsecase)
	hub.OnLocationUpdate(locationHandler.HandleSocketUpdate)

	return &app{
		deps: routeDeps{
			userHandler:           handlers.NewUserHandler(userUsecase),
			workerHandler:         handlers.NewWorkerHandler(workerUsecase),
			specializationHandler: handlers.NewSpecializationHandler(specUsecase, workerUsecase),
			liveLocationHandler:   locationHandler,
			orderHandler:          handlers.NewOrderHandler(orderUsecase),
			transactionHandler:    handlers.NewTransactionHandler(txUsecase),
			reviewHandler:         handlers.NewReviewHandler(reviewUsecase),
			billingHandler:        handlers.NewBillingHandler(billingUsecase),
			webhookHandler:        handlers.NewIdentityWebhookHandler(webhookUsecase),
			socketHandler:         handlers.NewSocketHandler(hub, cfg.Server.AllowedOrigins),
		},
		hub:       hub,
		relay:     relay,
		retention: jobs.NewLiveLocationRetentionJob(locationRepo, cfg.Realtime.LocationRetention, cfg.Realtime.PruneInterval),
	}, nil
}
