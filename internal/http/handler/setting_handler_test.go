package handler_test

import (
	"net/http"
	"testing"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingHandler_Shipping(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/settings/shipping", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 50.0, decode[domain.ShippingSettingDTO](t, rr).BaseShippingFee)

	rr = env.do(t, adminUser(), http.MethodPut, "/api/admin/settings/shipping", domain.UpdateShippingSettingRequest{
		BaseShippingFee:       60.555,
		FreeShippingThreshold: 1500,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	updated := decode[domain.ShippingSettingDTO](t, rr)
	assert.Equal(t, 60.56, updated.BaseShippingFee)
	assert.Equal(t, 1500.0, updated.FreeShippingThreshold)
	assert.Equal(t, "ผู้ดูแลระบบ", updated.UpdatedBy)

	// the storefront reads the stored setting, not the configured default
	product := testutil.CreateTestProduct(t, env.db, "แก้วน้ำ", 1200)
	rr = env.do(t, nil, http.MethodPost, "/api/shop/cart/quote", domain.CartQuoteRequest{
		Items: []domain.CartLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	quote := decode[domain.CartQuoteDTO](t, rr)
	assert.False(t, quote.FreeShipping)
	assert.Equal(t, 60.56, quote.ShippingFee)

	rr = env.do(t, adminUser(), http.MethodPut, "/api/admin/settings/shipping", map[string]float64{"baseShippingFee": -1})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[domain.APIError](t, rr).Errors, "baseShippingFee")
}

func TestActivityHandler_List(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, adminUser(), http.MethodPost, "/api/admin/customers", domain.CreateCustomerRequest{
		Name:  "ลูกค้ากิจกรรม",
		Phone: "0898765432",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	customer := decode[domain.CustomerDTO](t, rr)

	rr = env.do(t, adminUser(), http.MethodPut, "/api/admin/settings/shipping", domain.UpdateShippingSettingRequest{
		BaseShippingFee:       40,
		FreeShippingThreshold: 800,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/activities", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2), decode[domain.PaginatedResponse](t, rr).Total)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/activities?targetType=customer&targetId="+customer.ID.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[struct {
		Data  []domain.ActivityDTO `json:"data"`
		Total int64                `json:"total"`
	}](t, rr)
	require.Len(t, page.Data, 1)
	assert.Equal(t, customer.ID, page.Data[0].TargetID)
	assert.Equal(t, "ผู้ดูแลระบบ", page.Data[0].ActorID)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/activities?targetType=invoice", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, adminUser(), http.MethodGet, "/api/admin/activities?targetId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
