package main

import (
	"fmt"

	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/database"
	"github.com/siamsupply/shop-api/internal/document"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/segment"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/siamsupply/shop-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the services a command needs. The warehouse integration is not
// opened since no command touches stock.
type app struct {
	db         *gorm.DB
	customers  *service.CustomerService
	quotations *service.QuotationService
}

func newApp(cfg *config.Config, log *zap.Logger) (*app, error) {
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	archive, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	m := metrics.New()
	customerRepo := repository.NewCustomerRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	numbers := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), log)
	customers := service.NewCustomerService(customerRepo, activityRepo, segment.PolicyFromConfig(&cfg.Shop), m, log)
	quotations := service.NewQuotationService(db,
		repository.NewQuotationRepository(db),
		customerRepo,
		repository.NewSalesOrderRepository(db),
		activityRepo,
		numbers,
		customers,
		document.NewChromePDFRenderer(&cfg.PDF, log),
		archive,
		&cfg.Shop,
		&cfg.PDF,
		m,
		log,
	)

	return &app{db: db, customers: customers, quotations: quotations}, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
