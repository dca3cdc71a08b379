package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var quotationSortFields = map[string]string{
	"createdAt":  "created_at",
	"issueDate":  "issue_date",
	"validUntil": "valid_until",
	"number":     "number",
	"grandTotal": "grand_total",
	"customer":   "customer_name",
}

// QuotationFilters holds filters for listing quotations
type QuotationFilters struct {
	Search     string
	Status     *domain.QuotationStatus
	CustomerID *uuid.UUID
}

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *QuotationRepository) WithTx(tx *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: tx}
}

func withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") })
}

// Create inserts the quotation and its items
func (r *QuotationRepository) Create(ctx context.Context, quotation *domain.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *QuotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quotation, error) {
	var quotation domain.Quotation
	err := withItems(r.db.WithContext(ctx)).Where("id = ?", id).First(&quotation).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// Update saves quotation columns without touching items
func (r *QuotationRepository) Update(ctx context.Context, quotation *domain.Quotation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(quotation).Error
}

// UpdateWithItems saves the quotation and replaces all of its items in one transaction
func (r *QuotationRepository) UpdateWithItems(ctx context.Context, quotation *domain.Quotation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&domain.QuotationItem{}).Error; err != nil {
			return err
		}
		for i := range quotation.Items {
			quotation.Items[i].ID = uuid.Nil
			quotation.Items[i].QuotationID = quotation.ID
		}
		if len(quotation.Items) > 0 {
			if err := tx.Create(&quotation.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(quotation).Error
	})
}

// UpdateStatus moves a quotation from one status to another, guarding against
// concurrent changes. Returns gorm.ErrRecordNotFound when the quotation is no
// longer in the expected status.
func (r *QuotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.QuotationStatus, fields map[string]interface{}) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range fields {
		updates[k] = v
	}
	result := r.db.WithContext(ctx).Model(&domain.Quotation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns quotations with filters, sorting and pagination (items not loaded)
func (r *QuotationRepository) List(ctx context.Context, page, pageSize int, filters *QuotationFilters, sort SortConfig) ([]domain.Quotation, int64, error) {
	var quotations []domain.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Quotation{})
	if filters != nil {
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(number) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(customer_company) LIKE ?",
				pattern, pattern, pattern)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.CustomerID != nil {
			query = query.Where("customer_id = ?", *filters.CustomerID)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Order(BuildOrderClause(sort, quotationSortFields, "created_at")).
		Order("id").
		Find(&quotations).Error

	return quotations, total, err
}

// FindExpiredCandidates returns sent quotations whose validity ended before now
func (r *QuotationRepository) FindExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Quotation, error) {
	var quotations []domain.Quotation
	err := r.db.WithContext(ctx).
		Where("status = ? AND valid_until < ?", domain.QuotationStatusSent, now).
		Order("valid_until ASC").
		Limit(limit).
		Find(&quotations).Error
	return quotations, err
}

// SetSalesOrder links the quotation to the order created from it. Returns
// gorm.ErrRecordNotFound when the quotation is already linked.
func (r *QuotationRepository) SetSalesOrder(ctx context.Context, id, orderID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&domain.Quotation{}).
		Where("id = ? AND sales_order_id IS NULL", id).
		Updates(map[string]interface{}{
			"sales_order_id": orderID,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
