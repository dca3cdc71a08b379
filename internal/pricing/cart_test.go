package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCart(t *testing.T) {
	policy := ShippingPolicy{BaseFee: d("50"), FreeThreshold: d("1000"), VATRate: d("7")}

	tests := []struct {
		name  string
		lines []CartLine
		want  CartTotals
	}{
		{
			name:  "empty cart",
			lines: nil,
			want: CartTotals{
				LineTotals:  []decimal.Decimal{},
				Subtotal:    d("0"),
				Shipping:    d("0"),
				VATIncluded: d("0"),
				Total:       d("0"),
			},
		},
		{
			name: "base fee plus per unit fee",
			lines: []CartLine{
				{UnitPrice: d("120"), Quantity: 2, ShippingFee: d("10")},
				{UnitPrice: d("59.50"), Quantity: 1, ShippingFee: d("0")},
			},
			want: CartTotals{
				LineTotals:  []decimal.Decimal{d("240"), d("59.5")},
				Subtotal:    d("299.5"),
				Shipping:    d("70"),
				VATIncluded: d("24.17"),
				Total:       d("369.5"),
			},
		},
		{
			name: "free shipping at threshold",
			lines: []CartLine{
				{UnitPrice: d("500"), Quantity: 2, ShippingFee: d("40")},
			},
			want: CartTotals{
				LineTotals:   []decimal.Decimal{d("1000")},
				Subtotal:     d("1000"),
				Shipping:     d("0"),
				FreeShipping: true,
				VATIncluded:  d("65.42"),
				Total:        d("1000"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCart(tt.lines, policy)
			if diff := cmp.Diff(tt.want, got, decimalEqual); diff != "" {
				t.Errorf("CalculateCart() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateCart_NoThresholdMeansAlwaysCharge(t *testing.T) {
	policy := ShippingPolicy{BaseFee: d("50"), VATRate: d("7")}
	got := CalculateCart([]CartLine{{UnitPrice: d("99999"), Quantity: 1}}, policy)
	assert.False(t, got.FreeShipping)
	assert.True(t, got.Shipping.Equal(d("50")))
}
