package handler_test

import (
	"net/http"
	"testing"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRequest(sku string) domain.CreateProductRequest {
	return domain.CreateProductRequest{
		SKU:      sku,
		Name:     "เสื้อยืดคอกลม",
		Category: "เสื้อผ้า",
		Price:    250,
		BaseUnit: "ตัว",
		Units:    []domain.ProductUnitInput{{Name: "โหล", Factor: 12, Price: 2700}},
		Options: []domain.ProductOptionInput{{
			Name:   "ไซซ์",
			Values: []domain.ProductOptionValueInput{{Value: "M"}, {Value: "L"}},
		}},
	}
}

func TestProductHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/products", newProductRequest("TS-001"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	product := decode[domain.ProductDTO](t, rr)
	assert.Equal(t, "/api/admin/products/"+product.ID.String(), rr.Header().Get("Location"))
	assert.Equal(t, domain.ProductStatusActive, product.Status)
	require.Len(t, product.Units, 1)
	assert.Equal(t, 12.0, product.Units[0].Factor)
	require.Len(t, product.Options, 1)
	require.Len(t, product.Options[0].Values, 2)
	assert.True(t, product.Options[0].Values[1].Available)

	t.Run("duplicate sku", func(t *testing.T) {
		rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/products", newProductRequest("TS-001"))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "รหัสสินค้านี้ถูกใช้แล้ว", errorBody(t, rr).Message)
	})

	t.Run("duplicate option value", func(t *testing.T) {
		req := newProductRequest("TS-002")
		req.Options[0].Values = []domain.ProductOptionValueInput{{Value: "M"}, {Value: " M "}}
		rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/products", req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "ค่าตัวเลือกในกลุ่มเดียวกันต้องไม่ซ้ำกัน", errorBody(t, rr).Message)
	})

	t.Run("unit factor must be positive", func(t *testing.T) {
		req := newProductRequest("TS-003")
		req.Units[0].Factor = 0
		rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/products", req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode[domain.APIError](t, rr).Errors, "units[0].factor")
	})
}

func TestProductHandler_Storefront(t *testing.T) {
	env := newTestEnv(t)
	active := testutil.CreateTestProduct(t, env.db, "สมุดโน้ต", 45)
	hidden := testutil.CreateTestProduct(t, env.db, "สมุดเลิกขาย", 45)
	require.NoError(t, env.db.Model(hidden).Update("status", domain.ProductStatusInactive).Error)

	rr := env.do(t, nil, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decode[domain.PaginatedResponse](t, rr).Total)

	rr = env.do(t, nil, http.MethodGet, "/api/products/"+active.ID.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "สมุดโน้ต", decode[domain.ProductDTO](t, rr).Name)

	rr = env.do(t, nil, http.MethodGet, "/api/products/"+hidden.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/products", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2), decode[domain.PaginatedResponse](t, rr).Total)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/products?status=inactive", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decode[domain.PaginatedResponse](t, rr).Total)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/products?status=sold", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	product := testutil.CreateTestProduct(t, env.db, "ปากกาลูกลื่น", 12)
	path := "/api/admin/products/" + product.ID.String()

	rr := env.do(t, adminUser(), http.MethodPatch, path, map[string]interface{}{"price": 15, "category": "เครื่องเขียน"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	updated := decode[domain.ProductDTO](t, rr)
	assert.Equal(t, 15.0, updated.Price)
	assert.Equal(t, "เครื่องเขียน", updated.Category)
	assert.Equal(t, "ปากกาลูกลื่น", updated.Name)

	rr = env.do(t, adminUser(), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, adminUser(), http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "ไม่พบสินค้า", errorBody(t, rr).Message)
}

func TestProductHandler_SetOptionAvailability(t *testing.T) {
	env := newTestEnv(t)
	product := testutil.CreateTestProductWithOption(t, env.db, "รองเท้าผ้าใบ", 990, "สี", "ขาว", "ดำ")
	option := product.Options[0]
	black := option.Values[1]
	path := "/api/admin/products/" + product.ID.String() + "/options/" + option.ID.String() + "/values/" + black.ID.String()

	rr := env.do(t, adminUser(), http.MethodPatch, path, map[string]bool{"available": true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	dto := decode[domain.ProductDTO](t, rr)
	require.Len(t, dto.Options, 1)
	for _, v := range dto.Options[0].Values {
		assert.True(t, v.Available, v.Value)
	}

	rr = env.do(t, adminUser(), http.MethodPatch, path, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	missing := "/api/admin/products/" + product.ID.String() + "/options/" + option.ID.String() + "/values/" + product.ID.String()
	rr = env.do(t, adminUser(), http.MethodPatch, missing, map[string]bool{"available": false})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "ไม่พบตัวเลือกสินค้า", errorBody(t, rr).Message)
}

func TestProductHandler_CheckStock(t *testing.T) {
	env := newTestEnv(t)
	product := testutil.CreateTestProduct(t, env.db, "กาวลาเท็กซ์", 35)
	env.stock.levels[product.SKU] = 40

	rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/products/"+product.ID.String()+"/stock", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	level := decode[domain.StockLevelDTO](t, rr)
	assert.Equal(t, product.SKU, level.ItemCode)
	assert.Equal(t, 40.0, level.OnHand)
	assert.True(t, level.InStock)

	unknown := testutil.CreateTestProduct(t, env.db, "สินค้าไม่มีในคลัง", 10)
	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/products/"+unknown.ID.String()+"/stock", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "ไม่พบสินค้านี้ในระบบคลังสินค้า", errorBody(t, rr).Message)
}
