package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/mapper"
	"github.com/siamsupply/shop-api/internal/pricing"
	"github.com/siamsupply/shop-api/internal/repository"
	"go.uber.org/zap"
)

// settingTargetID is the activity target id used for store-wide settings
var settingTargetID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("site_setting/"+domain.SiteSettingShipping))

type SettingService struct {
	settingRepo *repository.SiteSettingRepository
	defaults    domain.SiteSetting
	vatRate     decimal.Decimal
	activities  activityRecorder
	logger      *zap.Logger
}

func NewSettingService(settingRepo *repository.SiteSettingRepository, activityRepo *repository.ActivityRepository, shop *config.ShopConfig, logger *zap.Logger) *SettingService {
	return &SettingService{
		settingRepo: settingRepo,
		defaults: domain.SiteSetting{
			Key:                   domain.SiteSettingShipping,
			BaseShippingFee:       decimal.NewFromFloat(shop.DefaultShippingFee),
			FreeShippingThreshold: decimal.NewFromFloat(shop.FreeShippingThreshold),
		},
		vatRate:    decimal.NewFromFloat(shop.VATRate),
		activities: activityRecorder{repo: activityRepo, logger: logger},
		logger:     logger,
	}
}

// shipping returns the saved shipping setting or the configured defaults
func (s *SettingService) shipping(ctx context.Context) (*domain.SiteSetting, error) {
	setting, err := s.settingRepo.Get(ctx, domain.SiteSettingShipping)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipping setting: %w", err)
	}
	if setting == nil {
		defaults := s.defaults
		return &defaults, nil
	}
	return setting, nil
}

func (s *SettingService) GetShipping(ctx context.Context) (*domain.ShippingSettingDTO, error) {
	setting, err := s.shipping(ctx)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToShippingSettingDTO(setting)
	return &dto, nil
}

// ShippingPolicy is the pricing input for cart totals
func (s *SettingService) ShippingPolicy(ctx context.Context) (pricing.ShippingPolicy, error) {
	setting, err := s.shipping(ctx)
	if err != nil {
		return pricing.ShippingPolicy{}, err
	}
	return pricing.ShippingPolicy{
		BaseFee:       setting.BaseShippingFee,
		FreeThreshold: setting.FreeShippingThreshold,
		VATRate:       s.vatRate,
	}, nil
}

func (s *SettingService) UpdateShipping(ctx context.Context, req *domain.UpdateShippingSettingRequest) (*domain.ShippingSettingDTO, error) {
	now := time.Now().UTC()
	setting := &domain.SiteSetting{
		Key:                   domain.SiteSettingShipping,
		BaseShippingFee:       pricing.Round2(decimal.NewFromFloat(req.BaseShippingFee)),
		FreeShippingThreshold: pricing.Round2(decimal.NewFromFloat(req.FreeShippingThreshold)),
		UpdatedBy:             auth.ActorFromContext(ctx),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save shipping setting: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetSetting, settingTargetID, "updated",
		"แก้ไขค่าจัดส่ง",
		fmt.Sprintf("ค่าจัดส่ง %s บาท, ส่งฟรีเมื่อซื้อครบ %s บาท",
			setting.BaseShippingFee.StringFixed(2), setting.FreeShippingThreshold.StringFixed(2)))

	s.logger.Info("shipping setting updated",
		zap.String("base_fee", setting.BaseShippingFee.StringFixed(2)),
		zap.String("free_threshold", setting.FreeShippingThreshold.StringFixed(2)),
		zap.String("updated_by", setting.UpdatedBy))

	dto := mapper.ToShippingSettingDTO(setting)
	return &dto, nil
}
