package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/config"
	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/internal/infrastructure/cache"
	"github.com/sangkips/temple-billing/internal/infrastructure/database"
	"github.com/sangkips/temple-billing/internal/infrastructure/logger"
	"github.com/sangkips/temple-billing/internal/infrastructure/repository"
	"github.com/sangkips/temple-billing/internal/presentation/http/handler"
	"github.com/sangkips/temple-billing/internal/presentation/http/middleware"
	"github.com/sangkips/temple-billing/internal/presentation/http/routes"
	"github.com/sangkips/temple-billing/pkg/printer"
	"github.com/sangkips/temple-billing/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database.Driver, zapLogger); err != nil {
			zapLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	if err := database.SeedAdmin(context.Background(), db, cfg.Admin, zapLogger); err != nil {
		zapLogger.Warn("Failed to seed admin user", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.SessionTimeout)
	loc := cfg.App.Location()
	clock := service.NewSystemClock(loc)

	// Repositories
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	poojaRepo := repository.NewPoojaRepository(db)
	counterRepo := repository.NewReceiptCounterRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	var idempotencyRepo domainRepo.IdempotencyRepository = repository.NewIdempotencyRepository(db)
	if cfg.Idempotency.Store == "redis" {
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		redisRepo := cache.NewRedisIdempotencyRepository(client, "")
		defer func() { _ = redisRepo.Close() }()
		idempotencyRepo = redisRepo
	}

	// Thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:      cfg.Printer.Type,
		USBPath:   cfg.Printer.USBPath,
		Address:   cfg.Printer.Address,
		CharWidth: cfg.Printer.CharWidth,
	})
	if err != nil {
		zapLogger.Warn("Failed to initialize printer, printing disabled", zap.Error(err))
		thermalPrinter, _ = printer.New(printer.Config{Type: "none"})
	}
	defer func() { _ = thermalPrinter.Close() }()

	// Services
	printerService := service.NewPrinterService(thermalPrinter, billingRepo, entity.ReceiptHeader{
		TempleName: cfg.Temple.Name,
		Address:    cfg.Temple.Address,
		Phone:      cfg.Temple.Phone,
	}, cfg.Printer.CharWidth, loc)
	sequencer := service.NewReceiptSequencer(cfg.Billing.Sequencer, cfg.Billing.ReceiptPrefix, billingRepo, counterRepo)

	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	billingService := service.NewBillingService(transactor, billingRepo, poojaRepo, sequencer, printerService, clock)
	collectionService := service.NewCollectionService(transactor, analyticsRepo, withdrawalRepo, cfg.Billing.WithdrawalDatePolicy, clock)
	dashboardService := service.NewDashboardService(analyticsRepo, clock)
	poojaService := service.NewPoojaService(poojaRepo)
	reportService := service.NewReportService(billingRepo, loc)
	expenseService := service.NewExpenseService(expenseRepo)

	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Billing:    handler.NewBillingHandler(billingService),
		Collection: handler.NewCollectionHandler(collectionService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Pooja:      handler.NewPoojaHandler(poojaService),
		Report:     handler.NewReportHandler(reportService),
		Expense:    handler.NewExpenseHandler(expenseService),
		Printer:    handler.NewPrinterHandler(printerService),
		User:       handler.NewUserHandler(userService),
	}

	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Logger:          zapLogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepIdempotencyKeys(ctx, idempotencyRepo, zapLogger)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("port", port),
			zap.String("db_driver", cfg.Database.Driver),
			zap.String("sequencer", string(cfg.Billing.Sequencer)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// sweepIdempotencyKeys removes expired keys every hour until ctx ends
func sweepIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				log.Warn("Failed to sweep idempotency keys", zap.Error(err))
			}
		}
	}
}
