package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var productSortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"sku":       "sku",
	"price":     "price",
	"category":  "category",
}

// ProductFilters holds filters for listing products
type ProductFilters struct {
	Search   string
	Category string
	// Statuses restricts the result; empty means every status except deleted
	Statuses []domain.ProductStatus
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func withProductDetails(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Units", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Options.Values", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") })
}

// Create inserts the product together with its units and options
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := withProductDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs loads several products with details, keyed by id
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error) {
	var products []domain.Product
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.Product{}, nil
	}
	err := withProductDetails(r.db.WithContext(ctx)).Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID]*domain.Product, len(products))
	for i := range products {
		result[products[i].ID] = &products[i]
	}
	return result, nil
}

// ExistsBySKU reports whether a product other than excludeID already uses sku
func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Product{}).Where("sku = ?", sku)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Update saves the product columns only; use ReplaceUnits and ReplaceOptions for children
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// SoftDelete marks the product as deleted
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ? AND status <> ?", id, domain.ProductStatusDeleted).
		Update("status", domain.ProductStatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceUnits swaps the unit variants of a product in one transaction
func (r *ProductRepository) ReplaceUnits(ctx context.Context, productID uuid.UUID, units []domain.ProductUnit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&domain.ProductUnit{}).Error; err != nil {
			return err
		}
		if len(units) == 0 {
			return nil
		}
		for i := range units {
			units[i].ProductID = productID
		}
		return tx.Create(&units).Error
	})
}

// ReplaceOptions swaps the options and their values of a product in one transaction
func (r *ProductRepository) ReplaceOptions(ctx context.Context, productID uuid.UUID, options []domain.ProductOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var optionIDs []uuid.UUID
		if err := tx.Model(&domain.ProductOption{}).Where("product_id = ?", productID).Pluck("id", &optionIDs).Error; err != nil {
			return err
		}
		if len(optionIDs) > 0 {
			if err := tx.Where("option_id IN ?", optionIDs).Delete(&domain.ProductOptionValue{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", optionIDs).Delete(&domain.ProductOption{}).Error; err != nil {
				return err
			}
		}
		for i := range options {
			options[i].ProductID = productID
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetOptionValue loads an option value and checks it belongs to the product and option
func (r *ProductRepository) GetOptionValue(ctx context.Context, productID, optionID, valueID uuid.UUID) (*domain.ProductOptionValue, error) {
	var value domain.ProductOptionValue
	err := r.db.WithContext(ctx).
		Joins("JOIN product_options ON product_options.id = product_option_values.option_id").
		Where("product_option_values.id = ? AND product_option_values.option_id = ? AND product_options.product_id = ?",
			valueID, optionID, productID).
		First(&value).Error
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// SetOptionAvailability toggles a single option value
func (r *ProductRepository) SetOptionAvailability(ctx context.Context, valueID uuid.UUID, available bool) error {
	return r.db.WithContext(ctx).Model(&domain.ProductOptionValue{}).
		Where("id = ?", valueID).
		Update("available", available).Error
}

// List returns products with filters, sorting and pagination
func (r *ProductRepository) List(ctx context.Context, page, pageSize int, filters *ProductFilters, sort SortConfig) ([]domain.Product, int64, error) {
	var products []domain.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Product{})

	if filters != nil && len(filters.Statuses) > 0 {
		query = query.Where("status IN ?", filters.Statuses)
	} else {
		query = query.Where("status <> ?", domain.ProductStatusDeleted)
	}
	if filters != nil {
		if filters.Search != "" {
			pattern := likePattern(filters.Search)
			query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?",
				pattern, pattern, pattern)
		}
		if filters.Category != "" {
			query = query.Where("category = ?", filters.Category)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := withProductDetails(paginate(query, page, pageSize)).
		Order(BuildOrderClause(sort, productSortFields, "created_at")).
		Order("id").
		Find(&products).Error

	return products, total, err
}
