package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/export"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"go.uber.org/zap"
)

// ExportService produces spreadsheet downloads for the back office
type ExportService struct {
	customerRepo *repository.CustomerRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

func NewExportService(customerRepo *repository.CustomerRepository, m *metrics.Metrics, logger *zap.Logger) *ExportService {
	return &ExportService{
		customerRepo: customerRepo,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Customers exports active customers, optionally limited to one type
func (s *ExportService) Customers(ctx context.Context, format export.Format, customerType *domain.CustomerType) (*File, error) {
	customers, err := s.customerRepo.ListAll(ctx, &repository.CustomerFilters{Type: customerType})
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	var buf bytes.Buffer
	switch format {
	case export.FormatXLSX:
		err = export.WriteCustomersXLSX(&buf, customers)
	default:
		format = export.FormatCSV
		err = export.WriteCustomersCSV(&buf, customers)
	}
	s.metrics.DocumentRendered(string(format), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentGeneration, err)
	}

	s.logger.Info("customers exported",
		zap.String("format", string(format)),
		zap.Int("count", len(customers)))

	name := "customers"
	if customerType != nil {
		name += "-" + string(*customerType)
	}
	return &File{
		Filename:    fmt.Sprintf("%s-%s.%s", name, s.now().In(bangkok).Format("20060102"), format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}
