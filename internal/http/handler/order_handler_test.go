package handler_test

import (
	"net/http"
	"testing"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_List(t *testing.T) {
	env := newTestEnv(t)
	a := testutil.CreateTestCustomer(t, env.db, "ลูกค้า ก")
	b := testutil.CreateTestCustomer(t, env.db, "ลูกค้า ข")
	testutil.CreateTestOrder(t, env.db, a, domain.DeliveryStatusPending)
	testutil.CreateTestOrder(t, env.db, a, domain.DeliveryStatusShipped)
	testutil.CreateTestOrder(t, env.db, b, domain.DeliveryStatusShipped)

	tests := []struct {
		name  string
		query string
		total int64
	}{
		{"all", "", 3},
		{"by customer", "?customerId=" + a.ID.String(), 2},
		{"by delivery status", "?deliveryStatus=shipped", 2},
		{"by payment status", "?paymentStatus=paid", 0},
		{"future window", "?from=2999-01-01", 0},
		{"wide window", "?from=2000-01-01&to=2999-12-31", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/orders"+tt.query, nil)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, tt.total, decode[domain.PaginatedResponse](t, rr).Total)
		})
	}

	t.Run("bad date", func(t *testing.T) {
		rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/orders?from=01/02/2026", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad customer id", func(t *testing.T) {
		rr := env.do(t, adminUser(), http.MethodGet, "/api/admin/orders?customerId=x", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOrderHandler_UpdateDelivery(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ผู้รับ")
	order := testutil.CreateTestOrder(t, env.db, customer, domain.DeliveryStatusPreparing)
	path := "/api/admin/orders/" + order.ID.String() + "/delivery"

	rr := env.do(t, adminUser(), http.MethodPatch, path, domain.UpdateDeliveryRequest{
		Status:         domain.DeliveryStatusShipped,
		Carrier:        "Kerry Express",
		TrackingNumber: "KEX123456789",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	dto := decode[domain.SalesOrderDTO](t, rr)
	assert.Equal(t, domain.DeliveryStatusShipped, dto.DeliveryStatus)
	assert.Equal(t, "จัดส่งแล้ว", dto.DeliveryStatusLabel)
	assert.Equal(t, "KEX123456789", dto.TrackingNumber)
	assert.NotNil(t, dto.ShippedAt)

	rr = env.do(t, adminUser(), http.MethodPatch, path, domain.UpdateDeliveryRequest{Status: domain.DeliveryStatusPending})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, adminUser(), http.MethodPatch, path, map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[domain.APIError](t, rr).Errors, "status")
}

func TestOrderHandler_UpdatePayment(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ผู้ชำระ")
	order := testutil.CreateTestOrder(t, env.db, customer, domain.DeliveryStatusPending)
	path := "/api/admin/orders/" + order.ID.String() + "/payment"

	rr := env.do(t, adminUser(), http.MethodPatch, path, domain.UpdatePaymentRequest{Status: domain.PaymentStatusRefunded})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, adminUser(), http.MethodPatch, path, domain.UpdatePaymentRequest{Status: domain.PaymentStatusPaid})
	require.Equal(t, http.StatusOK, rr.Code)
	dto := decode[domain.SalesOrderDTO](t, rr)
	assert.Equal(t, domain.PaymentStatusPaid, dto.PaymentStatus)
	assert.NotNil(t, dto.PaidAt)
}

func TestOrderHandler_ResolveClaim(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ผู้เคลม")
	order := testutil.CreateTestOrder(t, env.db, customer, domain.DeliveryStatusDelivered)
	claim := &domain.OrderClaim{SalesOrderID: order.ID, Reason: "ของไม่ครบ", Status: domain.ClaimStatusOpen}
	require.NoError(t, env.db.Create(claim).Error)
	path := "/api/admin/orders/" + order.ID.String() + "/claims/" + claim.ID.String()

	rr := env.do(t, adminUser(), http.MethodPatch, path, domain.ResolveClaimRequest{
		Status:     domain.ClaimStatusResolved,
		Resolution: "ส่งสินค้าทดแทนแล้ว",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	dto := decode[domain.SalesOrderDTO](t, rr)
	require.Len(t, dto.Claims, 1)
	assert.Equal(t, domain.ClaimStatusResolved, dto.Claims[0].Status)
	assert.NotNil(t, dto.Claims[0].ResolvedAt)

	rr = env.do(t, adminUser(), http.MethodPatch, path, domain.ResolveClaimRequest{Status: domain.ClaimStatusApproved})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "รายการเคลมนี้ปิดไปแล้ว", errorBody(t, rr).Message)

	other := "/api/admin/orders/" + order.ID.String() + "/claims/" + order.ID.String()
	rr = env.do(t, adminUser(), http.MethodPatch, other, domain.ResolveClaimRequest{Status: domain.ClaimStatusApproved})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
