package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/pricing"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func asFieldErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve), "expected validation errors, got %v", err)
	return ve
}

func TestToJSONFieldName(t *testing.T) {
	tests := map[string]string{
		"Quantity":        "quantity",
		"PostalCode":      "postalCode",
		"SKU":             "sku",
		"VATRate":         "vatRate",
		"WMSItemCode":     "wmsItemCode",
		"ID":              "id",
		"TaxID":           "taxId",
		"CustomerID":      "customerId",
		"Items[0]":        "items[0]",
		"DiscountPercent": "discountPercent",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, toJSONFieldName(in), in)
	}
}

func TestFieldPath(t *testing.T) {
	req := domain.CheckoutRequest{
		Items:         []domain.CartLineInput{{Quantity: 0}},
		RecipientName: "ทดสอบ",
		Phone:         "0812345678",
		Address:       "1 ถนนสีลม",
		Province:      "กรุงเทพมหานคร",
		PostalCode:    "10500",
		PaymentMethod: domain.PaymentMethodPromptPay,
	}

	err := validate.Struct(req)
	var paths []string
	for _, fe := range asFieldErrors(t, err) {
		paths = append(paths, fieldPath(fe))
	}
	assert.Contains(t, paths, "items[0].quantity")
	assert.Contains(t, paths, "items[0].productId")
}

func TestLookupError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		known  bool
	}{
		{"direct", service.ErrCustomerNotFound, http.StatusNotFound, true},
		{"wrapped", fmt.Errorf("load: %w", service.ErrOutOfStock), http.StatusUnprocessableEntity, true},
		{"pricing reason before generic", fmt.Errorf("%w: %w", service.ErrInvalidQuotationPricing, pricing.ErrDiscountExceedsSubtotal), http.StatusBadRequest, true},
		{"stock backend down", fmt.Errorf("%w: timeout", service.ErrStockCheckFailed), http.StatusBadGateway, true},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, known := lookupError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.known, known)
			assert.NotEmpty(t, message)
		})
	}

	_, message, _ := lookupError(fmt.Errorf("%w: %w", service.ErrInvalidQuotationPricing, pricing.ErrDiscountExceedsSubtotal))
	assert.Equal(t, "ส่วนลดพิเศษต้องไม่เกินยอดรวมหลังหักส่วนลดรายการ", message)
}

func TestHandleServiceError_HidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	handleServiceError(rr, zap.NewNop(), errors.New("pq: connection refused"), "failed")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
	assert.Contains(t, rr.Body.String(), domain.ErrorTypeInternal)
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, domain.ErrorTypeBadRequest, getErrorType(http.StatusUnprocessableEntity))
	assert.Equal(t, domain.ErrorTypeUnavailable, getErrorType(http.StatusBadGateway))
	assert.Equal(t, domain.ErrorTypeConflict, getErrorType(http.StatusConflict))
	assert.Equal(t, domain.ErrorTypeInternal, getErrorType(http.StatusTeapot))
}

func TestServiceErrorTable(t *testing.T) {
	seen := make(map[error]bool, len(serviceErrors))
	for _, m := range serviceErrors {
		assert.False(t, seen[m.err], "duplicate entry for %v", m.err)
		seen[m.err] = true
		assert.NotEmpty(t, m.message, m.err.Error())

		status, _, known := lookupError(fmt.Errorf("wrapped: %w", m.err))
		assert.True(t, known, m.err.Error())
		assert.NotZero(t, status)
	}
}
