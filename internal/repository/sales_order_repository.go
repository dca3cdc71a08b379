package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var salesOrderSortFields = map[string]string{
	"placedAt":  "placed_at",
	"createdAt": "created_at",
	"number":    "number",
	"total":     "total",
}

// SalesOrderFilters holds filters for listing orders
type SalesOrderFilters struct {
	Search         string
	CustomerID     *uuid.UUID
	DeliveryStatus *domain.DeliveryStatus
	PaymentStatus  *domain.PaymentStatus
	PlacedFrom     *time.Time
	PlacedTo       *time.Time
}

type SalesOrderRepository struct {
	db *gorm.DB
}

func NewSalesOrderRepository(db *gorm.DB) *SalesOrderRepository {
	return &SalesOrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *SalesOrderRepository) WithTx(tx *gorm.DB) *SalesOrderRepository {
	return &SalesOrderRepository{db: tx}
}

func withOrderDetails(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Preload("Claims", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

// Create inserts the order and its items
func (r *SalesOrderRepository) Create(ctx context.Context, order *domain.SalesOrder) error {
	return r.db.WithContext(ctx).Omit("Customer").Create(order).Error
}

func (r *SalesOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesOrder, error) {
	var order domain.SalesOrder
	err := withOrderDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetForCustomer loads an order only if it belongs to the customer
func (r *SalesOrderRepository) GetForCustomer(ctx context.Context, id, customerID uuid.UUID) (*domain.SalesOrder, error) {
	var order domain.SalesOrder
	err := withOrderDetails(r.db.WithContext(ctx)).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update saves order columns without touching items or claims
func (r *SalesOrderRepository) Update(ctx context.Context, order *domain.SalesOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

// List returns orders with filters, sorting and pagination
func (r *SalesOrderRepository) List(ctx context.Context, page, pageSize int, filters *SalesOrderFilters, sort SortConfig) ([]domain.SalesOrder, int64, error) {
	var orders []domain.SalesOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.SalesOrder{})
	if filters != nil {
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(number) LIKE ? OR LOWER(recipient_name) LIKE ? OR recipient_phone LIKE ?",
				pattern, pattern, pattern)
		}
		if filters.CustomerID != nil {
			query = query.Where("customer_id = ?", *filters.CustomerID)
		}
		if filters.DeliveryStatus != nil {
			query = query.Where("delivery_status = ?", *filters.DeliveryStatus)
		}
		if filters.PaymentStatus != nil {
			query = query.Where("payment_status = ?", *filters.PaymentStatus)
		}
		if filters.PlacedFrom != nil {
			query = query.Where("placed_at >= ?", *filters.PlacedFrom)
		}
		if filters.PlacedTo != nil {
			query = query.Where("placed_at < ?", *filters.PlacedTo)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := withOrderDetails(paginate(query, page, pageSize)).
		Order(BuildOrderClause(sort, salesOrderSortFields, "placed_at")).
		Order("id").
		Find(&orders).Error

	return orders, total, err
}

// CreateClaim inserts a claim for an order
func (r *SalesOrderRepository) CreateClaim(ctx context.Context, claim *domain.OrderClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// GetClaim loads a claim belonging to the given order
func (r *SalesOrderRepository) GetClaim(ctx context.Context, orderID, claimID uuid.UUID) (*domain.OrderClaim, error) {
	var claim domain.OrderClaim
	err := r.db.WithContext(ctx).
		Where("id = ? AND sales_order_id = ?", claimID, orderID).
		First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// UpdateClaim saves a claim
func (r *SalesOrderRepository) UpdateClaim(ctx context.Context, claim *domain.OrderClaim) error {
	return r.db.WithContext(ctx).Save(claim).Error
}

// CountOpenClaims counts claims on an order that still need action
func (r *SalesOrderRepository) CountOpenClaims(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.OrderClaim{}).
		Where("sales_order_id = ? AND status IN ?", orderID,
			[]domain.ClaimStatus{domain.ClaimStatusOpen, domain.ClaimStatusApproved}).
		Count(&count).Error
	return count, err
}
