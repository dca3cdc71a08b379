package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/mapper"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/wms"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Product service errors
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateSKU         = errors.New("sku already in use")
	ErrOptionValueNotFound  = errors.New("option value not found")
	ErrStockCheckDisabled   = errors.New("stock check is not configured")
	ErrStockItemNotFound    = errors.New("item not found in warehouse")
	ErrStockCheckFailed     = errors.New("stock check failed")
	ErrDuplicateOptionValue = errors.New("option values must be unique within an option")
)

type ProductService struct {
	productRepo *repository.ProductRepository
	stock       wms.StockChecker
	activities  activityRecorder
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewProductService(
	productRepo *repository.ProductRepository,
	activityRepo *repository.ActivityRepository,
	stock wms.StockChecker,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ProductService {
	if stock == nil {
		stock = wms.Disabled{}
	}
	return &ProductService{
		productRepo: productRepo,
		stock:       stock,
		activities:  activityRecorder{repo: activityRepo, logger: logger},
		metrics:     m,
		logger:      logger,
	}
}

func (s *ProductService) load(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product.Status == domain.ProductStatusDeleted {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func toUnits(inputs []domain.ProductUnitInput) []domain.ProductUnit {
	units := make([]domain.ProductUnit, 0, len(inputs))
	for i, in := range inputs {
		units = append(units, domain.ProductUnit{
			Name:      strings.TrimSpace(in.Name),
			Factor:    decimal.NewFromFloat(in.Factor),
			Price:     decimal.NewFromFloat(in.Price),
			SortOrder: i,
		})
	}
	return units
}

func toOptions(inputs []domain.ProductOptionInput) ([]domain.ProductOption, error) {
	options := make([]domain.ProductOption, 0, len(inputs))
	for i, in := range inputs {
		option := domain.ProductOption{
			Name:      strings.TrimSpace(in.Name),
			SortOrder: i,
			Values:    make([]domain.ProductOptionValue, 0, len(in.Values)),
		}
		seen := make(map[string]bool, len(in.Values))
		for j, v := range in.Values {
			value := strings.TrimSpace(v.Value)
			if seen[value] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateOptionValue, value)
			}
			seen[value] = true

			available := true
			if v.Available != nil {
				available = *v.Available
			}
			option.Values = append(option.Values, domain.ProductOptionValue{
				Value:     value,
				Available: available,
				SortOrder: j,
			})
		}
		options = append(options, option)
	}
	return options, nil
}

func (s *ProductService) Create(ctx context.Context, req *domain.CreateProductRequest) (*domain.ProductDTO, error) {
	sku := strings.TrimSpace(req.SKU)
	exists, err := s.productRepo.ExistsBySKU(ctx, sku, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSKU
	}

	options, err := toOptions(req.Options)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.ProductStatusActive
	}

	product := &domain.Product{
		SKU:         sku,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Price:       decimal.NewFromFloat(req.Price),
		ShippingFee: decimal.NewFromFloat(req.ShippingFee),
		BaseUnit:    req.BaseUnit,
		ImageURL:    req.ImageURL,
		Status:      status,
		WMSItemCode: strings.TrimSpace(req.WMSItemCode),
		Units:       toUnits(req.Units),
		Options:     options,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetProduct, product.ID, "created",
		"เพิ่มสินค้า", fmt.Sprintf("เพิ่มสินค้า '%s' (%s)", product.Name, product.SKU))

	return s.GetByID(ctx, product.ID)
}

// GetByID returns any product that is not deleted
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductDTO, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

// GetStorefront returns a product only while it is on sale
func (s *ProductService) GetStorefront(ctx context.Context, id uuid.UUID) (*domain.ProductDTO, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status != domain.ProductStatusActive {
		return nil, ErrProductNotFound
	}
	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

// Update applies the non-nil fields; Units and Options replace the existing sets when present
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProductRequest) (*domain.ProductDTO, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil {
		sku := strings.TrimSpace(*req.SKU)
		if sku != product.SKU {
			exists, err := s.productRepo.ExistsBySKU(ctx, sku, &product.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check sku: %w", err)
			}
			if exists {
				return nil, ErrDuplicateSKU
			}
			product.SKU = sku
		}
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.ShippingFee != nil {
		product.ShippingFee = decimal.NewFromFloat(*req.ShippingFee)
	}
	if req.BaseUnit != nil {
		product.BaseUnit = *req.BaseUnit
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.WMSItemCode != nil {
		product.WMSItemCode = strings.TrimSpace(*req.WMSItemCode)
	}

	var options []domain.ProductOption
	if req.Options != nil {
		if options, err = toOptions(req.Options); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if req.Units != nil {
		if err := s.productRepo.ReplaceUnits(ctx, product.ID, toUnits(req.Units)); err != nil {
			return nil, fmt.Errorf("failed to replace units: %w", err)
		}
	}
	if req.Options != nil {
		if err := s.productRepo.ReplaceOptions(ctx, product.ID, options); err != nil {
			return nil, fmt.Errorf("failed to replace options: %w", err)
		}
	}

	s.activities.record(ctx, domain.ActivityTargetProduct, product.ID, "updated",
		"แก้ไขสินค้า", fmt.Sprintf("แก้ไขสินค้า '%s'", product.Name))

	return s.GetByID(ctx, product.ID)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.activities.record(ctx, domain.ActivityTargetProduct, id, "deleted", "ลบสินค้า", "")
	return nil
}

func (s *ProductService) list(ctx context.Context, page, pageSize int, filters *repository.ProductFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	products, total, err := s.productRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	dtos := make([]domain.ProductDTO, len(products))
	for i := range products {
		dtos[i] = mapper.ToProductDTO(&products[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// ListAdmin lists products in any status except deleted unless filters say otherwise
func (s *ProductService) ListAdmin(ctx context.Context, page, pageSize int, filters *repository.ProductFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	return s.list(ctx, page, pageSize, filters, sort)
}

// ListStorefront lists active products only
func (s *ProductService) ListStorefront(ctx context.Context, page, pageSize int, search, category string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	filters := &repository.ProductFilters{
		Search:   search,
		Category: category,
		Statuses: []domain.ProductStatus{domain.ProductStatusActive},
	}
	return s.list(ctx, page, pageSize, filters, sort)
}

// SetOptionAvailability marks one option value as orderable or sold out
func (s *ProductService) SetOptionAvailability(ctx context.Context, productID, optionID, valueID uuid.UUID, available bool) (*domain.ProductDTO, error) {
	if _, err := s.load(ctx, productID); err != nil {
		return nil, err
	}

	value, err := s.productRepo.GetOptionValue(ctx, productID, optionID, valueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionValueNotFound
		}
		return nil, fmt.Errorf("failed to get option value: %w", err)
	}

	if value.Available != available {
		if err := s.productRepo.SetOptionAvailability(ctx, value.ID, available); err != nil {
			return nil, fmt.Errorf("failed to update option value: %w", err)
		}
		state := "พร้อมขาย"
		if !available {
			state = "สินค้าหมด"
		}
		s.activities.record(ctx, domain.ActivityTargetProduct, productID, "option_availability",
			"ปรับสถานะตัวเลือกสินค้า", fmt.Sprintf("'%s' เป็น %s", value.Value, state))
	}

	return s.GetByID(ctx, productID)
}

// itemCode is the warehouse code of a product, defaulting to its SKU
func itemCode(product *domain.Product) string {
	if product.WMSItemCode != "" {
		return product.WMSItemCode
	}
	return product.SKU
}

// CheckStock asks the warehouse for the on-hand quantity of a product
func (s *ProductService) CheckStock(ctx context.Context, id uuid.UUID) (*domain.StockLevelDTO, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	code := itemCode(product)
	level, err := s.stock.CheckStock(ctx, code)
	switch {
	case err == nil:
		s.metrics.StockChecked("ok")
	case errors.Is(err, wms.ErrWMSDisabled):
		s.metrics.StockChecked("disabled")
		return nil, ErrStockCheckDisabled
	case errors.Is(err, wms.ErrItemNotFound):
		s.metrics.StockChecked("not_found")
		return nil, ErrStockItemNotFound
	default:
		s.metrics.StockChecked("error")
		s.logger.Warn("stock check failed",
			zap.String("product_id", product.ID.String()),
			zap.String("item_code", code),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStockCheckFailed, err)
	}

	return &domain.StockLevelDTO{
		ProductID: product.ID,
		SKU:       product.SKU,
		ItemCode:  level.ItemCode,
		Warehouse: level.Warehouse,
		OnHand:    level.OnHand,
		Reserved:  level.Reserved,
		Available: level.Available(),
		InStock:   level.Available() > 0,
		CheckedAt: level.CheckedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}, nil
}
