package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siamsupply/shop-api/docs"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/database"
	"github.com/siamsupply/shop-api/internal/document"
	"github.com/siamsupply/shop-api/internal/http/handler"
	"github.com/siamsupply/shop-api/internal/http/middleware"
	"github.com/siamsupply/shop-api/internal/http/router"
	"github.com/siamsupply/shop-api/internal/jobs"
	"github.com/siamsupply/shop-api/internal/logger"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/segment"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/siamsupply/shop-api/internal/storage"
	"github.com/siamsupply/shop-api/internal/wms"
	"go.uber.org/zap"
)

// @title Siam Supply Shop API
// @version 1.0
// @description Storefront, customer profile and back office API: catalogue, checkout, customer segmentation, quotations and orders.
// @description Error messages are returned in Thai.

// @contact.name Siam Supply IT
// @contact.email it@siamsupply.co.th

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token (role admin or customer)

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API key for back office integrations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if host := os.Getenv("SWAGGER_HOST"); host != "" {
		docs.SwaggerInfo.Host = host
	} else {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Secrets come from Azure Key Vault in staging/production, env otherwise
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	archive, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	stock, closeStock, err := wms.NewStockChecker(&cfg.WMS, log)
	if err != nil {
		// checkout and stock lookups fail closed without the warehouse
		log.Warn("WMS connection failed, stock checks disabled", zap.Error(err))
		stock = wms.Disabled{}
	}
	defer func() {
		if err := closeStock(); err != nil {
			log.Warn("Error closing WMS connection", zap.Error(err))
		}
	}()

	m := metrics.New()
	renderer := document.NewChromePDFRenderer(&cfg.PDF, log)

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	orderRepo := repository.NewSalesOrderRepository(db)
	settingRepo := repository.NewSiteSettingRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	numberSequenceRepo := repository.NewNumberSequenceRepository(db)

	// Services
	numberSequenceService := service.NewNumberSequenceService(numberSequenceRepo, log)
	customerService := service.NewCustomerService(customerRepo, activityRepo, segment.PolicyFromConfig(&cfg.Shop), m, log)
	settingService := service.NewSettingService(settingRepo, activityRepo, &cfg.Shop, log)
	productService := service.NewProductService(productRepo, activityRepo, stock, m, log)
	quotationService := service.NewQuotationService(db, quotationRepo, customerRepo, orderRepo, activityRepo,
		numberSequenceService, customerService, renderer, archive, &cfg.Shop, &cfg.PDF, m, log)
	orderService := service.NewOrderService(db, orderRepo, productRepo, customerRepo, activityRepo,
		numberSequenceService, customerService, settingService, stock, m, log)
	exportService := service.NewExportService(customerRepo, m, log)
	activityService := service.NewActivityService(activityRepo, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(cfg, log, db, m, authMiddleware, rateLimiter, router.Handlers{
		Customer:  handler.NewCustomerHandler(customerService, exportService, log),
		Product:   handler.NewProductHandler(productService, log),
		Shop:      handler.NewShopHandler(orderService, settingService, log),
		Profile:   handler.NewProfileHandler(customerService, orderService, log),
		Quotation: handler.NewQuotationHandler(quotationService, log),
		Order:     handler.NewOrderHandler(orderService, log),
		Setting:   handler.NewSettingHandler(settingService, log),
		Activity:  handler.NewActivityHandler(activityService, log),
	})

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler, err = newScheduler(cfg, customerService, quotationService, m, log)
		if err != nil {
			return err
		}
		scheduler.Start()
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           rt.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

// newScheduler registers the segmentation and quotation expiry jobs. Cron
// expressions are evaluated in Bangkok time.
func newScheduler(cfg *config.Config, customers *service.CustomerService, quotations *service.QuotationService, m *metrics.Metrics, log *zap.Logger) (*jobs.Scheduler, error) {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		log.Warn("Asia/Bangkok time zone unavailable, scheduling in UTC+7", zap.Error(err))
		loc = time.FixedZone("ICT", 7*60*60)
	}
	scheduler := jobs.NewScheduler(log, loc)
	timeout := cfg.Jobs.TimeoutDuration()

	segmentationCron := cfg.Jobs.SegmentationCron
	if segmentationCron == "" {
		segmentationCron = jobs.DefaultSegmentationCron
	}
	if err := scheduler.AddJob(jobs.CustomerSegmentationJobName, segmentationCron,
		jobs.NewCustomerSegmentationJob(customers, m, log, timeout)); err != nil {
		return nil, fmt.Errorf("failed to register segmentation job: %w", err)
	}

	expiryCron := cfg.Jobs.QuotationExpiryCron
	if expiryCron == "" {
		expiryCron = jobs.DefaultQuotationExpiryCron
	}
	if err := scheduler.AddJob(jobs.QuotationExpiryJobName, expiryCron,
		jobs.NewQuotationExpiryJob(quotations, m, log, timeout)); err != nil {
		return nil, fmt.Errorf("failed to register quotation expiry job: %w", err)
	}

	return scheduler, nil
}
