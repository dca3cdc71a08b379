package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	req := domain.CreateCustomerRequest{
		Name:        "สมศรี รักดี",
		CompanyName: "หจก. รักดีการค้า",
		Phone:       "021234567",
		PostalCode:  "10400",
	}

	rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/customers", req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	created := decode[domain.CustomerDTO](t, rr)
	assert.Equal(t, "/api/admin/customers/"+created.ID.String(), rr.Header().Get("Location"))
	assert.Equal(t, domain.CustomerTypeNew, created.Type)
	assert.Equal(t, domain.CustomerStatusActive, created.Status)

	t.Run("duplicate phone", func(t *testing.T) {
		rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/customers", req)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "หมายเลขโทรศัพท์นี้ถูกใช้กับลูกค้ารายอื่นแล้ว", errorBody(t, rr).Message)
	})

	t.Run("invalid fields", func(t *testing.T) {
		rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/customers", domain.CreateCustomerRequest{
			Name:  "ทดสอบ",
			Phone: "abc",
			TaxID: "123",
		})
		require.Equal(t, http.StatusBadRequest, rr.Code)

		apiErr := decode[domain.APIError](t, rr)
		assert.Contains(t, apiErr.Errors, "phone")
		assert.Contains(t, apiErr.Errors, "taxId")
	})
}

func TestCustomerHandler_ListAndSummary(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestCustomer(t, env.db, "ลูกค้าใหม่")
	regular := testutil.CreateTestCustomer(t, env.db, "ลูกค้าประจำ")
	require.NoError(t, env.db.Model(regular).Update("type", domain.CustomerTypeRegular).Error)

	rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/customers?type=regular", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, int64(1), decode[domain.PaginatedResponse](t, rr).Total)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers?type=vip", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ประเภทลูกค้าไม่ถูกต้อง", errorBody(t, rr).Message)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "สถานะลูกค้าไม่ถูกต้อง", errorBody(t, rr).Message)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers?status=deleted", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, int64(0), decode[domain.PaginatedResponse](t, rr).Total)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers/summary", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	summary := decode[domain.CustomerSummaryDTO](t, rr)
	assert.Equal(t, int64(2), summary.Total)
	require.Len(t, summary.ByType, len(domain.AllCustomerTypes))
	for i, row := range summary.ByType {
		assert.Equal(t, domain.AllCustomerTypes[i], row.Type)
	}
}

func TestCustomerHandler_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้าแก้ไข")
	path := "/api/admin/customers/" + customer.ID.String()

	rr := env.do(t, adminUser(), http.MethodPatch, path, map[string]string{"notes": "ติดต่อช่วงบ่าย"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "ติดต่อช่วงบ่าย", decode[domain.CustomerDTO](t, rr).Notes)

	rr = env.do(t, adminUser(), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, adminUser(), http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "ไม่พบข้อมูลลูกค้า", errorBody(t, rr).Message)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers/123", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCustomerHandler_Reclassify(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้าเก่า")
	lastOrder := time.Now().UTC().AddDate(0, 0, -200)
	require.NoError(t, env.db.Model(customer).Updates(map[string]interface{}{
		"order_count":   4,
		"total_spent":   decimal.NewFromInt(8000),
		"last_order_at": lastOrder,
	}).Error)

	rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/customers/"+customer.ID.String()+"/reclassify", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, domain.CustomerTypeInactive, decode[domain.CustomerDTO](t, rr).Type)
}

func TestCustomerHandler_Export(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestCustomer(t, env.db, "ลูกค้าส่งออก")

	rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/customers/export?format=csv", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Disposition"), "attachment; filename=\"customers-"))
	assert.Contains(t, rr.Body.String(), "ลูกค้าส่งออก")

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers/export?format=xlsx", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "PK"))

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/customers/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
