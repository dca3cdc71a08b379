package pricing

import (
	"github.com/shopspring/decimal"
)

// CartLine is a storefront cart line. Prices are VAT inclusive.
type CartLine struct {
	UnitPrice   decimal.Decimal
	Quantity    int
	ShippingFee decimal.Decimal // per unit
}

// ShippingPolicy is the store-wide shipping configuration
type ShippingPolicy struct {
	BaseFee decimal.Decimal
	// FreeThreshold waives shipping when the subtotal reaches it; zero disables free shipping
	FreeThreshold decimal.Decimal
	VATRate       decimal.Decimal
}

// CartTotals is the price breakdown shown at checkout
type CartTotals struct {
	LineTotals   []decimal.Decimal
	Subtotal     decimal.Decimal
	Shipping     decimal.Decimal
	FreeShipping bool
	VATIncluded  decimal.Decimal
	Total        decimal.Decimal
}

// CalculateCart sums a cart. Shipping is the base fee plus each product's
// per-unit shipping fee, and is waived when the subtotal reaches the free
// shipping threshold.
func CalculateCart(lines []CartLine, policy ShippingPolicy) CartTotals {
	totals := CartTotals{
		LineTotals: make([]decimal.Decimal, 0, len(lines)),
		Subtotal:   decimal.Zero,
		Shipping:   decimal.Zero,
	}
	if len(lines) == 0 {
		totals.VATIncluded = decimal.Zero
		totals.Total = decimal.Zero
		return totals
	}

	shipping := policy.BaseFee
	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		lineTotal := Round2(l.UnitPrice.Mul(qty))
		totals.LineTotals = append(totals.LineTotals, lineTotal)
		totals.Subtotal = totals.Subtotal.Add(lineTotal)
		shipping = shipping.Add(l.ShippingFee.Mul(qty))
	}

	if policy.FreeThreshold.IsPositive() && totals.Subtotal.GreaterThanOrEqual(policy.FreeThreshold) {
		totals.FreeShipping = true
		shipping = decimal.Zero
	}

	totals.Shipping = Round2(shipping)
	totals.Total = totals.Subtotal.Add(totals.Shipping)
	totals.VATIncluded = IncludedVAT(totals.Total, policy.VATRate)
	return totals
}
