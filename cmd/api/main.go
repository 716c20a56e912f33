// Package main is the entry point for the POS Payments API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	goredis "github.com/redis/go-redis/v9"

	"github.com/pos-payments/backend/config"
	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/application/usecase/aggregation"
	"github.com/pos-payments/backend/internal/application/usecase/export"
	"github.com/pos-payments/backend/internal/application/usecase/orders"
	"github.com/pos-payments/backend/internal/application/usecase/payments"
	"github.com/pos-payments/backend/internal/infra/cache"
	"github.com/pos-payments/backend/internal/infra/db"
	"github.com/pos-payments/backend/internal/infra/server/router"
	"github.com/pos-payments/backend/internal/integration/adapters"
	"github.com/pos-payments/backend/internal/integration/entrypoint/controller"
	"github.com/pos-payments/backend/internal/integration/entrypoint/middleware"
	"github.com/pos-payments/backend/internal/integration/persistence"
	"github.com/pos-payments/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting POS Payments API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.CustomerPaymentModel{},
			&model.PurchaseOrderPaymentModel{},
			&model.PaymentTransactionModel{},
			&model.FinanceAccountEntryModel{},
			&model.PurchaseOrderModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis connection (optional, summaries recompute on miss)
	var redisClient *goredis.Client
	cacheHealthChecker := func() bool { return false }

	redisClient, err = cache.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, running without summary cache",
			"error", err,
		)
		redisClient = nil
	} else {
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
		defer cache.Close(redisClient)
	}

	// Initialize MinIO client (optional, exports disabled without it)
	var minioClient *minio.Client
	minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		slog.Warn("MinIO client creation failed, export endpoint disabled",
			"error", err,
		)
		minioClient = nil
	}

	// Create health controller with dependency health checkers
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	// Create controllers (only if database is available)
	var paymentsController *controller.PaymentsController
	var ordersController *controller.OrdersController
	var exportController *controller.ExportController

	if database != nil {
		opts := aggregation.Options{
			BaseCurrency:        cfg.Aggregation.BaseCurrency,
			CanonicalizeMethods: cfg.Aggregation.CanonicalizeMethods,
		}
		sourcePriority := cfg.Aggregation.SourcePriority

		// Create repositories
		sourceRepo := persistence.NewPaymentSourceRepository(database.DB())
		orderRepo := persistence.NewPurchaseOrderRepository(database.DB())

		// Create summary cache (nil cache degrades to recomputation)
		var summaryCache adapter.SummaryCache
		if redisClient != nil {
			summaryCache = adapters.NewRedisSummaryCache(redisClient)
		}

		// Create payment use cases
		listPaymentsUseCase := payments.NewListPaymentsUseCase(sourceRepo, sourcePriority, opts)
		getSummaryUseCase := payments.NewGetSummaryUseCase(
			sourceRepo, summaryCache, sourcePriority, opts, cfg.Aggregation.SummaryCacheTTL)
		getMethodBreakdownUseCase := payments.NewGetMethodBreakdownUseCase(sourceRepo, sourcePriority, opts)

		// Create order use cases
		listOrderPaymentStatesUseCase := orders.NewListOrderPaymentStatesUseCase(orderRepo)

		paymentsController = controller.NewPaymentsController(
			listPaymentsUseCase,
			getSummaryUseCase,
			getMethodBreakdownUseCase,
		)
		ordersController = controller.NewOrdersController(listOrderPaymentStatesUseCase)

		// Create export use case (only if object storage is available)
		if minioClient != nil {
			reportStorage := adapters.NewMinioReportStorage(minioClient, cfg.MinIO.Bucket, cfg.MinIO.Prefix)
			exportPaymentsUseCase := export.NewExportPaymentsUseCase(sourceRepo, reportStorage, sourcePriority, opts)
			exportController = controller.NewExportController(exportPaymentsUseCase)
		}

		slog.Info("Payment aggregation system initialized successfully")
	} else {
		slog.Warn("Payment aggregation system not initialized due to missing database connection")
	}

	// Setup router
	exportRateLimiter := middleware.NewRateLimiter()
	r := router.NewRouter(healthController, paymentsController, ordersController, exportController, exportRateLimiter)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
