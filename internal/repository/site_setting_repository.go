package repository

import (
	"context"
	"errors"

	"github.com/siamsupply/shop-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingRepository struct {
	db *gorm.DB
}

func NewSiteSettingRepository(db *gorm.DB) *SiteSettingRepository {
	return &SiteSettingRepository{db: db}
}

// Get returns the setting stored under key, or nil when it has never been saved
func (r *SiteSettingRepository) Get(ctx context.Context, key string) (*domain.SiteSetting, error) {
	var setting domain.SiteSetting
	err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts or replaces the setting row
func (r *SiteSettingRepository) Upsert(ctx context.Context, setting *domain.SiteSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_shipping_fee", "free_shipping_threshold", "updated_by", "updated_at"}),
	}).Create(setting).Error
}
