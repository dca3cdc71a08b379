package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/segment"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/siamsupply/shop-api/internal/storage"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/siamsupply/shop-api/internal/wms"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeRenderer stands in for headless Chrome
type fakeRenderer struct {
	mu    sync.Mutex
	calls int
	err   error

	// during runs inside RenderPDF, e.g. to change a record mid-send
	during func()
}

func (f *fakeRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.during != nil {
		f.during()
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]byte("%PDF-1.7\n"), html...), nil
}

func (f *fakeRenderer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeStock answers stock checks from a fixed table
type fakeStock struct {
	levels map[string]float64
	err    error
}

func (f *fakeStock) CheckStock(ctx context.Context, itemCode string) (*wms.StockLevel, error) {
	if f.err != nil {
		return nil, f.err
	}
	onHand, ok := f.levels[itemCode]
	if !ok {
		return nil, wms.ErrItemNotFound
	}
	return &wms.StockLevel{
		ItemCode:  itemCode,
		Warehouse: "BKK01",
		OnHand:    onHand,
		CheckedAt: time.Now(),
	}, nil
}

func testShopConfig() *config.ShopConfig {
	return &config.ShopConfig{
		CompanyName:           "บริษัท ทดสอบ จำกัด",
		CompanyAddress:        "1 ถนนพระราม 4 กรุงเทพมหานคร 10500",
		CompanyTaxID:          "0105561000001",
		CompanyPhone:          "021234567",
		VATRate:               7,
		QuotationValidityDays: 30,
		InactiveAfterDays:     90,
		TargetSpendThreshold:  50000,
		RegularOrderThreshold: 2,
		DefaultShippingFee:    50,
		FreeShippingThreshold: 1000,
	}
}

type testEnv struct {
	db         *gorm.DB
	metrics    *metrics.Metrics
	renderer   *fakeRenderer
	stock      *fakeStock
	store      storage.Storage
	customers  *service.CustomerService
	products   *service.ProductService
	quotations *service.QuotationService
	orders     *service.OrderService
	settings   *service.SettingService
	exports    *service.ExportService
	activities *service.ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	m := metrics.New()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	orderRepo := repository.NewSalesOrderRepository(db)
	settingRepo := repository.NewSiteSettingRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	numbers := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), logger)

	shop := testShopConfig()
	env := &testEnv{
		db:       db,
		metrics:  m,
		renderer: &fakeRenderer{},
		stock:    &fakeStock{levels: map[string]float64{}},
		store:    store,
	}

	env.customers = service.NewCustomerService(customerRepo, activityRepo, segment.DefaultPolicy(), m, logger)
	env.settings = service.NewSettingService(settingRepo, activityRepo, shop, logger)
	env.products = service.NewProductService(productRepo, activityRepo, env.stock, m, logger)
	env.quotations = service.NewQuotationService(db, quotationRepo, customerRepo, orderRepo, activityRepo,
		numbers, env.customers, env.renderer, store, shop, &config.PDFConfig{ItemsPerPage: 15}, m, logger)
	env.orders = service.NewOrderService(db, orderRepo, productRepo, customerRepo, activityRepo,
		numbers, env.customers, env.settings, env.stock, m, logger)
	env.exports = service.NewExportService(customerRepo, m, logger)
	env.activities = service.NewActivityService(activityRepo, logger)
	return env
}

func adminContext() context.Context {
	return auth.WithUserContext(context.Background(), &auth.UserContext{
		Subject:     "admin-1",
		DisplayName: "ผู้ดูแลระบบ",
		Role:        auth.RoleAdmin,
	})
}

func customerContext(id uuid.UUID) context.Context {
	return auth.WithUserContext(context.Background(), &auth.UserContext{
		Subject:    id.String(),
		Role:       auth.RoleCustomer,
		CustomerID: &id,
	})
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
