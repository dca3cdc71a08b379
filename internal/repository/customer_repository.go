package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"gorm.io/gorm"
)

var customerSortFields = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"name":        "name",
	"totalSpent":  "total_spent",
	"orderCount":  "order_count",
	"lastOrderAt": "last_order_at",
}

// CustomerFilters holds filters for listing customers
type CustomerFilters struct {
	Search string
	Type   *domain.CustomerType
	// Status defaults to active when nil
	Status *domain.CustomerStatus
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetActiveByPhone finds a non-deleted customer by phone number
func (r *CustomerRepository) GetActiveByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ? AND status = ?", phone, domain.CustomerStatusActive).
		Order("created_at ASC").
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// SoftDelete marks the customer as deleted
func (r *CustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ? AND status <> ?", id, domain.CustomerStatusDeleted).
		Update("status", domain.CustomerStatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns customers with filters, sorting and pagination
func (r *CustomerRepository) List(ctx context.Context, page, pageSize int, filters *CustomerFilters, sort SortConfig) ([]domain.Customer, int64, error) {
	var customers []domain.Customer
	var total int64

	status := domain.CustomerStatusActive
	query := r.db.WithContext(ctx).Model(&domain.Customer{})

	if filters != nil {
		if filters.Status != nil {
			status = *filters.Status
		}
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(company_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}
		if filters.Type != nil {
			query = query.Where("type = ?", *filters.Type)
		}
	}
	query = query.Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Order(BuildOrderClause(sort, customerSortFields, "created_at")).
		Order("id").
		Find(&customers).Error

	return customers, total, err
}

// ListAll returns every customer matching the filters, without pagination (exports)
func (r *CustomerRepository) ListAll(ctx context.Context, filters *CustomerFilters) ([]domain.Customer, error) {
	var customers []domain.Customer
	query := r.db.WithContext(ctx).Where("status = ?", domain.CustomerStatusActive)
	if filters != nil && filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	err := query.Order("name ASC").Find(&customers).Error
	return customers, err
}

// CountByType counts active customers per type
func (r *CustomerRepository) CountByType(ctx context.Context) (map[domain.CustomerType]int64, error) {
	var rows []struct {
		Type  domain.CustomerType
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Select("type, COUNT(*) AS count").
		Where("status = ?", domain.CustomerStatusActive).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.CustomerType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

// EachActiveBatch calls fn for every batch of active customers
func (r *CustomerRepository) EachActiveBatch(ctx context.Context, batchSize int, fn func(batch []domain.Customer) error) error {
	var batch []domain.Customer
	result := r.db.WithContext(ctx).
		Where("status = ?", domain.CustomerStatusActive).
		Order("id").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		})
	return result.Error
}

// UpdateType sets the classification of a customer
func (r *CustomerRepository) UpdateType(ctx context.Context, id uuid.UUID, customerType domain.CustomerType) error {
	return r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"type":       customerType,
			"updated_at": time.Now(),
		}).Error
}

// AddOrder increments the order aggregates of a customer
func (r *CustomerRepository) AddOrder(ctx context.Context, id uuid.UUID, amount decimal.Decimal, placedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"order_count":   gorm.Expr("order_count + 1"),
			"total_spent":   gorm.Expr("total_spent + ?", amount),
			"last_order_at": placedAt,
			"updated_at":    time.Now(),
		}).Error
}

// RecalculateOrders rebuilds the order aggregates of a customer from the
// orders that still count: not cancelled, not returned and not refunded.
func (r *CustomerRepository) RecalculateOrders(ctx context.Context, id uuid.UUID) error {
	counted := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.SalesOrder{}).
			Where("customer_id = ?", id).
			Where("delivery_status NOT IN ?", []domain.DeliveryStatus{domain.DeliveryStatusCancelled, domain.DeliveryStatusReturned}).
			Where("payment_status <> ?", domain.PaymentStatusRefunded)
	}

	var totals []decimal.Decimal
	if err := counted().Pluck("total", &totals).Error; err != nil {
		return err
	}
	spent := decimal.Zero
	for _, t := range totals {
		spent = spent.Add(t)
	}

	var lastOrderAt *time.Time
	var placed []time.Time
	if err := counted().Order("placed_at DESC").Limit(1).Pluck("placed_at", &placed).Error; err != nil {
		return err
	}
	if len(placed) > 0 {
		lastOrderAt = &placed[0]
	}

	return r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"order_count":   len(totals),
			"total_spent":   spent,
			"last_order_at": lastOrderAt,
			"updated_at":    time.Now(),
		}).Error
}
