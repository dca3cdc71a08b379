package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/siamsupply/shop-api/internal/repository"
	"go.uber.org/zap"
)

// Document number prefixes
const (
	PrefixQuotation  = "QT"
	PrefixSalesOrder = "SO"
)

var documentNumberPattern = regexp.MustCompile(`^(QT|SO)-\d{4}-\d{4,}$`)

// NumberSequenceService hands out document numbers per prefix and calendar year.
//
// Format: {PREFIX}-{YEAR}-{SEQUENCE}
// Example: QT-2026-0001, SO-2026-0042
type NumberSequenceService struct {
	repo   *repository.NumberSequenceRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewNumberSequenceService creates a new NumberSequenceService
func NewNumberSequenceService(repo *repository.NumberSequenceRepository, logger *zap.Logger) *NumberSequenceService {
	return &NumberSequenceService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GenerateQuotationNumber returns the next QT number for the current year
func (s *NumberSequenceService) GenerateQuotationNumber(ctx context.Context) (string, error) {
	return s.generateNumber(ctx, PrefixQuotation)
}

// GenerateOrderNumber returns the next SO number for the current year
func (s *NumberSequenceService) GenerateOrderNumber(ctx context.Context) (string, error) {
	return s.generateNumber(ctx, PrefixSalesOrder)
}

func (s *NumberSequenceService) generateNumber(ctx context.Context, prefix string) (string, error) {
	year := s.now().In(bangkok).Year()

	nextSeq, err := s.repo.GetNextNumber(ctx, prefix, year)
	if err != nil {
		s.logger.Error("failed to get next sequence number",
			zap.String("prefix", prefix),
			zap.Int("year", year),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate %s number: %w", prefix, err)
	}

	number := fmt.Sprintf("%s-%d-%04d", prefix, year, nextSeq)

	s.logger.Info("generated number",
		zap.String("number", number),
		zap.Int("sequence", nextSeq))

	return number, nil
}

// GetCurrentSequence returns the last issued sequence without incrementing it
func (s *NumberSequenceService) GetCurrentSequence(ctx context.Context, prefix string, year int) (int, error) {
	return s.repo.GetCurrentSequence(ctx, prefix, year)
}

// IsValidDocumentNumber checks the PREFIX-YYYY-NNNN format
func IsValidDocumentNumber(number string) bool {
	return documentNumberPattern.MatchString(number)
}
