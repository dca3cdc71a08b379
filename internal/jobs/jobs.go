package jobs

import (
	"context"
	"time"

	"github.com/siamsupply/shop-api/internal/logger"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

const (
	// CustomerSegmentationJobName reclassifies every active customer
	CustomerSegmentationJobName = "customer_segmentation"
	// QuotationExpiryJobName expires sent quotations past their validity
	QuotationExpiryJobName = "quotation_expiry"

	DefaultSegmentationCron    = "0 0 2 * * *"
	DefaultQuotationExpiryCron = "0 5 * * * *"
	DefaultTimeout             = 10 * time.Minute
)

// Job is a unit of scheduled work
type Job interface {
	Run()
}

// CustomerReclassifier is implemented by the customer service
type CustomerReclassifier interface {
	ReclassifyAll(ctx context.Context) (*service.ReclassifyResult, error)
}

// QuotationExpirer is implemented by the quotation service
type QuotationExpirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}

// runner holds what every job needs: a timeout, a logger and metrics
type runner struct {
	name    string
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func newRunner(name string, timeout time.Duration, m *metrics.Metrics, log *zap.Logger) runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return runner{name: name, timeout: timeout, metrics: m, logger: logger.ForJob(log, name)}
}

// run executes fn under the job timeout and records the outcome
func (r runner) run(fn func(ctx context.Context) ([]zap.Field, error)) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	r.logger.Info("running scheduled job")

	fields, err := fn(ctx)
	duration := time.Since(start)
	r.metrics.JobFinished(r.name, duration, err)

	fields = append(fields, zap.Duration("duration", duration))
	if err != nil {
		r.logger.Error("scheduled job failed", append(fields, zap.Error(err))...)
		return err
	}
	r.logger.Info("completed scheduled job", fields...)
	return nil
}

// CustomerSegmentationJob recomputes customer types from order history
type CustomerSegmentationJob struct {
	customers CustomerReclassifier
	runner    runner
}

func NewCustomerSegmentationJob(customers CustomerReclassifier, m *metrics.Metrics, logger *zap.Logger, timeout time.Duration) *CustomerSegmentationJob {
	return &CustomerSegmentationJob{
		customers: customers,
		runner:    newRunner(CustomerSegmentationJobName, timeout, m, logger),
	}
}

func (j *CustomerSegmentationJob) Run() {
	_ = j.RunOnce()
}

// RunOnce runs the job synchronously and returns its error
func (j *CustomerSegmentationJob) RunOnce() error {
	return j.runner.run(func(ctx context.Context) ([]zap.Field, error) {
		result, err := j.customers.ReclassifyAll(ctx)
		if err != nil {
			return nil, err
		}
		return []zap.Field{zap.Int("scanned", result.Scanned), zap.Int("changed", result.Changed)}, nil
	})
}

// QuotationExpiryJob expires sent quotations whose validity has ended
type QuotationExpiryJob struct {
	quotations QuotationExpirer
	runner     runner
}

func NewQuotationExpiryJob(quotations QuotationExpirer, m *metrics.Metrics, logger *zap.Logger, timeout time.Duration) *QuotationExpiryJob {
	return &QuotationExpiryJob{
		quotations: quotations,
		runner:     newRunner(QuotationExpiryJobName, timeout, m, logger),
	}
}

func (j *QuotationExpiryJob) Run() {
	_ = j.RunOnce()
}

// RunOnce runs the job synchronously and returns its error
func (j *QuotationExpiryJob) RunOnce() error {
	return j.runner.run(func(ctx context.Context) ([]zap.Field, error) {
		expired, err := j.quotations.ExpireOverdue(ctx)
		return []zap.Field{zap.Int("expired", expired)}, err
	})
}
