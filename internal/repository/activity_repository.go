package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/domain"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// List returns activities newest first, optionally narrowed to one target
func (r *ActivityRepository) List(ctx context.Context, page, pageSize int, targetType *domain.ActivityTargetType, targetID *uuid.UUID) ([]domain.Activity, int64, error) {
	var activities []domain.Activity
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Activity{})
	if targetType != nil {
		query = query.Where("target_type = ?", *targetType)
	}
	if targetID != nil {
		query = query.Where("target_id = ?", *targetID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query, page, pageSize).
		Order("occurred_at DESC").
		Order("id").
		Find(&activities).Error
	return activities, total, err
}
