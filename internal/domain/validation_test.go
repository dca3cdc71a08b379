package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPostalCode(t *testing.T) {
	valid := []string{"10110", "50200", "00000"}
	invalid := []string{"", "1011", "101100", "1011a", " 10110", "๑๐๑๑๐", "10-11"}

	for _, s := range valid {
		assert.True(t, IsValidPostalCode(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidPostalCode(s), s)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0812345678"))
	assert.True(t, IsValidPhone("021234567"))
	assert.False(t, IsValidPhone("812345678"))
	assert.False(t, IsValidPhone("08123456789"))
	assert.False(t, IsValidPhone("08-1234567"))
}

func TestValidator_ThaiTags(t *testing.T) {
	v := NewValidator()

	type address struct {
		PostalCode string `validate:"required,thpostal"`
		Phone      string `validate:"omitempty,thphone"`
	}

	require.NoError(t, v.Struct(address{PostalCode: "10400", Phone: "0899999999"}))
	assert.Error(t, v.Struct(address{PostalCode: "1040"}))
	assert.Error(t, v.Struct(address{PostalCode: "10400", Phone: "123"}))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, QuotationStatusDraft.CanTransitionTo(QuotationStatusSent))
	assert.False(t, QuotationStatusDraft.CanTransitionTo(QuotationStatusAccepted))
	assert.True(t, QuotationStatusSent.CanTransitionTo(QuotationStatusExpired))
	assert.False(t, QuotationStatusAccepted.CanTransitionTo(QuotationStatusRejected))

	assert.True(t, DeliveryStatusPending.CanTransitionTo(DeliveryStatusPreparing))
	assert.False(t, DeliveryStatusPending.CanTransitionTo(DeliveryStatusDelivered))
	assert.True(t, DeliveryStatusShipped.CanTransitionTo(DeliveryStatusDelivered))
	assert.False(t, DeliveryStatusCancelled.CanTransitionTo(DeliveryStatusPending))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "ลูกค้าไม่เคลื่อนไหว", CustomerTypeInactive.Label())
	assert.Equal(t, "ส่งแล้ว", QuotationStatusSent.Label())
	assert.Equal(t, "เก็บเงินปลายทาง", PaymentMethodCOD.Label())
	assert.Equal(t, "unknown", CustomerType("unknown").Label())
}
