package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/http/handler"
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

type fakeRenderer struct{}

func (fakeRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	return append([]byte("%PDF-1.7\n"), html...), nil
}

type fakeStock struct {
	levels map[string]float64
}

func (f *fakeStock) CheckStock(ctx context.Context, itemCode string) (*wms.StockLevel, error) {
	onHand, ok := f.levels[itemCode]
	if !ok {
		return nil, wms.ErrItemNotFound
	}
	return &wms.StockLevel{ItemCode: itemCode, Warehouse: "BKK01", OnHand: onHand, CheckedAt: time.Now()}, nil
}

type testEnv struct {
	db     *gorm.DB
	stock  *fakeStock
	router http.Handler
}

// newTestEnv mounts every handler on a chi router with the production paths.
// Authentication is replaced by the user context attached to each request.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	m := metrics.New()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	shop := &config.ShopConfig{
		CompanyName:           "บริษัท ทดสอบ จำกัด",
		CompanyTaxID:          "0105561000001",
		VATRate:               7,
		QuotationValidityDays: 30,
		DefaultShippingFee:    50,
		FreeShippingThreshold: 1000,
	}
	stock := &fakeStock{levels: map[string]float64{}}

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewSalesOrderRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	numbers := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), logger)

	customers := service.NewCustomerService(customerRepo, activityRepo, segment.DefaultPolicy(), m, logger)
	settings := service.NewSettingService(repository.NewSiteSettingRepository(db), activityRepo, shop, logger)
	products := service.NewProductService(productRepo, activityRepo, stock, m, logger)
	quotations := service.NewQuotationService(db, repository.NewQuotationRepository(db), customerRepo, orderRepo, activityRepo,
		numbers, customers, fakeRenderer{}, store, shop, &config.PDFConfig{ItemsPerPage: 15}, m, logger)
	orders := service.NewOrderService(db, orderRepo, productRepo, customerRepo, activityRepo,
		numbers, customers, settings, stock, m, logger)

	customerHandler := handler.NewCustomerHandler(customers, service.NewExportService(customerRepo, m, logger), logger)
	productHandler := handler.NewProductHandler(products, logger)
	shopHandler := handler.NewShopHandler(orders, settings, logger)
	profileHandler := handler.NewProfileHandler(customers, orders, logger)
	quotationHandler := handler.NewQuotationHandler(quotations, logger)
	orderHandler := handler.NewOrderHandler(orders, logger)
	settingHandler := handler.NewSettingHandler(settings, logger)
	activityHandler := handler.NewActivityHandler(service.NewActivityService(activityRepo, logger), logger)

	r := chi.NewRouter()
	r.Get("/api/products", productHandler.ListStorefront)
	r.Get("/api/products/{id}", productHandler.GetStorefront)
	r.Get("/api/shop/settings", shopHandler.Settings)
	r.Post("/api/shop/cart/quote", shopHandler.QuoteCart)
	r.Post("/api/shop/checkout", shopHandler.Checkout)

	r.Get("/api/profile", profileHandler.Get)
	r.Patch("/api/profile", profileHandler.Update)
	r.Get("/api/profile/orders", profileHandler.ListOrders)
	r.Get("/api/profile/orders/{id}", profileHandler.GetOrder)
	r.Post("/api/profile/orders/{id}/claims", profileHandler.OpenClaim)

	r.Get("/api/admin/customers", customerHandler.List)
	r.Post("/api/admin/customers", customerHandler.Create)
	r.Get("/api/admin/customers/summary", customerHandler.Summary)
	r.Get("/api/admin/customers/export", customerHandler.Export)
	r.Get("/api/admin/customers/{id}", customerHandler.GetByID)
	r.Patch("/api/admin/customers/{id}", customerHandler.Update)
	r.Delete("/api/admin/customers/{id}", customerHandler.Delete)
	r.Post("/api/admin/customers/{id}/reclassify", customerHandler.Reclassify)

	r.Get("/api/admin/products", productHandler.List)
	r.Post("/api/admin/products", productHandler.Create)
	r.Get("/api/admin/products/{id}", productHandler.GetByID)
	r.Patch("/api/admin/products/{id}", productHandler.Update)
	r.Delete("/api/admin/products/{id}", productHandler.Delete)
	r.Patch("/api/admin/products/{id}/options/{optionId}/values/{valueId}", productHandler.SetOptionAvailability)
	r.Get("/api/admin/products/{id}/stock", productHandler.CheckStock)

	r.Get("/api/admin/orders", orderHandler.List)
	r.Get("/api/admin/orders/{id}", orderHandler.GetByID)
	r.Patch("/api/admin/orders/{id}/delivery", orderHandler.UpdateDelivery)
	r.Patch("/api/admin/orders/{id}/payment", orderHandler.UpdatePayment)
	r.Patch("/api/admin/orders/{id}/claims/{claimId}", orderHandler.ResolveClaim)

	r.Get("/api/admin/settings/shipping", settingHandler.GetShipping)
	r.Put("/api/admin/settings/shipping", settingHandler.UpdateShipping)
	r.Get("/api/admin/activities", activityHandler.List)

	r.Get("/api/quotations", quotationHandler.List)
	r.Post("/api/quotations", quotationHandler.Create)
	r.Get("/api/quotations/{id}", quotationHandler.GetByID)
	r.Patch("/api/quotations/{id}", quotationHandler.Update)
	r.Delete("/api/quotations/{id}", quotationHandler.Delete)
	r.Put("/api/quotations/{id}/items", quotationHandler.ReplaceItems)
	r.Post("/api/quotations/{id}/send", quotationHandler.Send)
	r.Post("/api/quotations/{id}/accept", quotationHandler.Accept)
	r.Post("/api/quotations/{id}/reject", quotationHandler.Reject)
	r.Post("/api/quotations/{id}/convert", quotationHandler.Convert)
	r.Get("/api/quotations/{id}/pdf", quotationHandler.PDF)
	r.Get("/api/quotations/{id}/html", quotationHandler.HTML)
	r.Get("/api/quotations/{id}/export", quotationHandler.Export)

	return &testEnv{db: db, stock: stock, router: r}
}

func adminUser() *auth.UserContext {
	return &auth.UserContext{Subject: "admin-1", DisplayName: "ผู้ดูแลระบบ", Role: auth.RoleAdmin}
}

func customerUser(id uuid.UUID) *auth.UserContext {
	return &auth.UserContext{Subject: id.String(), Role: auth.RoleCustomer, CustomerID: &id}
}

// do sends a request as user (nil for anonymous). A non-nil body is JSON encoded
// unless it is already a string.
func (e *testEnv) do(t *testing.T, user *auth.UserContext, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(auth.WithUserContext(req.Context(), user))
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	return decode[domain.ErrorResponse](t, rr)
}
