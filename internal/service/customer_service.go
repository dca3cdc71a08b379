package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/mapper"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/segment"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Customer service errors
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicatePhone    = errors.New("phone number already registered to another customer")
	ErrInvalidPostalCode = errors.New("postal code must be exactly five digits")
)

const reclassifyBatchSize = 200

// ReclassifyResult summarizes a segmentation run
type ReclassifyResult struct {
	Scanned int
	Changed int
}

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	activities   activityRecorder
	policy       segment.Policy
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

func NewCustomerService(
	customerRepo *repository.CustomerRepository,
	activityRepo *repository.ActivityRepository,
	policy segment.Policy,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		activities:   activityRecorder{repo: activityRepo, logger: logger},
		policy:       policy,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *CustomerService) load(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer.Status == domain.CustomerStatusDeleted {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// ensurePhoneAvailable checks no other active customer uses the phone
func (s *CustomerService) ensurePhoneAvailable(ctx context.Context, phone string, self uuid.UUID) error {
	existing, err := s.customerRepo.GetActiveByPhone(ctx, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check phone: %w", err)
	}
	if existing.ID != self {
		return ErrDuplicatePhone
	}
	return nil
}

func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	if req.PostalCode != "" && !domain.IsValidPostalCode(req.PostalCode) {
		return nil, ErrInvalidPostalCode
	}
	if err := s.ensurePhoneAvailable(ctx, req.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:        strings.TrimSpace(req.Name),
		CompanyName: req.CompanyName,
		TaxID:       req.TaxID,
		Email:       strings.ToLower(req.Email),
		Phone:       req.Phone,
		Address:     req.Address,
		SubDistrict: req.SubDistrict,
		District:    req.District,
		Province:    req.Province,
		PostalCode:  req.PostalCode,
		Type:        domain.CustomerTypeNew,
		Status:      domain.CustomerStatusActive,
		TotalSpent:  decimal.Zero,
		Notes:       req.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetCustomer, customer.ID, "created",
		"สร้างข้อมูลลูกค้า", fmt.Sprintf("สร้างลูกค้า '%s'", customer.Name))

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerDTO, error) {
	customer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// Update applies the non-nil fields of the request
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PostalCode != nil && *req.PostalCode != "" && !domain.IsValidPostalCode(*req.PostalCode) {
		return nil, ErrInvalidPostalCode
	}
	if req.Phone != nil && *req.Phone != customer.Phone {
		if err := s.ensurePhoneAvailable(ctx, *req.Phone, customer.ID); err != nil {
			return nil, err
		}
	}

	var changed []string
	apply := func(field string, dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = append(changed, field)
		}
	}
	apply("name", &customer.Name, req.Name)
	apply("companyName", &customer.CompanyName, req.CompanyName)
	apply("taxId", &customer.TaxID, req.TaxID)
	apply("email", &customer.Email, req.Email)
	apply("phone", &customer.Phone, req.Phone)
	apply("address", &customer.Address, req.Address)
	apply("subDistrict", &customer.SubDistrict, req.SubDistrict)
	apply("district", &customer.District, req.District)
	apply("province", &customer.Province, req.Province)
	apply("postalCode", &customer.PostalCode, req.PostalCode)
	apply("notes", &customer.Notes, req.Notes)

	if len(changed) == 0 {
		dto := mapper.ToCustomerDTO(customer)
		return &dto, nil
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetCustomer, customer.ID, "updated",
		"แก้ไขข้อมูลลูกค้า", "แก้ไข: "+strings.Join(changed, ", "))

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// Delete marks the customer deleted; orders and quotations keep their snapshot
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetCustomer, id, "deleted", "ลบข้อมูลลูกค้า", "")
	return nil
}

func (s *CustomerService) List(ctx context.Context, page, pageSize int, filters *repository.CustomerFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	customers, total, err := s.customerRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	dtos := make([]domain.CustomerDTO, len(customers))
	for i := range customers {
		dtos[i] = mapper.ToCustomerDTO(&customers[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// Summary counts active customers per type, listing every type even when zero
func (s *CustomerService) Summary(ctx context.Context) (*domain.CustomerSummaryDTO, error) {
	counts, err := s.customerRepo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	summary := &domain.CustomerSummaryDTO{ByType: make([]domain.CustomerTypeCountDTO, 0, len(domain.AllCustomerTypes))}
	for _, t := range domain.AllCustomerTypes {
		summary.ByType = append(summary.ByType, domain.CustomerTypeCountDTO{
			Type:  t,
			Label: t.Label(),
			Count: counts[t],
		})
		summary.Total += counts[t]
	}
	return summary, nil
}

// Reclassify recomputes the type of one customer
func (s *CustomerService) Reclassify(ctx context.Context, id uuid.UUID) (*domain.CustomerDTO, error) {
	customer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.applyClassification(ctx, s.customerRepo, customer); err != nil {
		return nil, err
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// applyClassification stores the computed type when it differs and reports whether it changed
func (s *CustomerService) applyClassification(ctx context.Context, repo *repository.CustomerRepository, customer *domain.Customer) (bool, error) {
	next := segment.Classify(segment.FromCustomer(customer), s.now(), s.policy)
	if next == customer.Type {
		return false, nil
	}

	previous := customer.Type
	if err := repo.UpdateType(ctx, customer.ID, next); err != nil {
		return false, fmt.Errorf("failed to update customer type: %w", err)
	}
	customer.Type = next

	s.metrics.CustomerReclassified(string(next))
	s.logger.Debug("customer reclassified",
		zap.String("customer_id", customer.ID.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(next)))
	return true, nil
}

// ReclassifyAll walks every active customer and updates types that changed
func (s *CustomerService) ReclassifyAll(ctx context.Context) (*ReclassifyResult, error) {
	result := &ReclassifyResult{}

	err := s.customerRepo.EachActiveBatch(ctx, reclassifyBatchSize, func(batch []domain.Customer) error {
		for i := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			result.Scanned++
			changed, err := s.applyClassification(ctx, s.customerRepo, &batch[i])
			if err != nil {
				return err
			}
			if changed {
				result.Changed++
			}
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("reclassification stopped after %d customers: %w", result.Scanned, err)
	}

	s.logger.Info("customer reclassification completed",
		zap.Int("scanned", result.Scanned),
		zap.Int("changed", result.Changed))
	return result, nil
}

// RecordOrder adds an order to the customer aggregates and reclassifies.
// Pass the surrounding transaction so the update commits with the order.
func (s *CustomerService) RecordOrder(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, amount decimal.Decimal, placedAt time.Time) error {
	repo := s.customerRepo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	if err := repo.AddOrder(ctx, customerID, amount, placedAt); err != nil {
		return fmt.Errorf("failed to update customer aggregates: %w", err)
	}

	customer, err := repo.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to reload customer: %w", err)
	}
	_, err = s.applyClassification(ctx, repo, customer)
	return err
}

// RefreshOrderStats recomputes the customer aggregates from counted orders and
// reclassifies. Used when an order is cancelled, returned or refunded.
func (s *CustomerService) RefreshOrderStats(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) error {
	repo := s.customerRepo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	if err := repo.RecalculateOrders(ctx, customerID); err != nil {
		return fmt.Errorf("failed to recalculate customer aggregates: %w", err)
	}

	customer, err := repo.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to reload customer: %w", err)
	}
	_, err = s.applyClassification(ctx, repo, customer)
	return err
}
