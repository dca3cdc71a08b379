// Package pricing computes quotation and cart totals.
//
// All amounts are decimal and rounded to satang (2 places, half away from zero)
// at the points where a figure is shown to the customer: each line total,
// the VAT amount and the VAT included in a cart total.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity         = errors.New("quantity must be greater than zero")
	ErrInvalidPrice            = errors.New("unit price must not be negative")
	ErrInvalidDiscountPercent  = errors.New("line discount must be between 0 and 100 percent")
	ErrInvalidSpecialDiscount  = errors.New("special discount must not be negative")
	ErrDiscountExceedsSubtotal = errors.New("special discount exceeds subtotal")
	ErrInvalidVATRate          = errors.New("VAT rate must be between 0 and 100 percent")
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds to two decimal places
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineInput is one quotation line before pricing
type LineInput struct {
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
}

// LineResult is a priced quotation line
type LineResult struct {
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// QuotationTotals holds every figure printed in a quotation summary.
// Gross - ItemDiscount - SpecialDiscount + VAT == Grand always holds.
type QuotationTotals struct {
	Lines           []LineResult
	Gross           decimal.Decimal
	ItemDiscount    decimal.Decimal
	Subtotal        decimal.Decimal
	SpecialDiscount decimal.Decimal
	AfterDiscount   decimal.Decimal
	VATRate         decimal.Decimal
	VAT             decimal.Decimal
	Grand           decimal.Decimal
}

// CalculateLine prices a single line: qty*price*(1-discount/100), rounded to 2 places
func CalculateLine(in LineInput) (LineResult, error) {
	if !in.Quantity.IsPositive() {
		return LineResult{}, ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return LineResult{}, ErrInvalidPrice
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(hundred) {
		return LineResult{}, ErrInvalidDiscountPercent
	}

	gross := in.Quantity.Mul(in.UnitPrice)
	factor := decimal.NewFromInt(1).Sub(in.DiscountPercent.Div(hundred))
	total := Round2(gross.Mul(factor))

	return LineResult{
		Gross:    gross,
		Discount: gross.Sub(total),
		Total:    total,
	}, nil
}

// CalculateQuotation prices all lines and applies the special discount and VAT.
// specialDiscount is an absolute amount; vatRate is a percentage.
func CalculateQuotation(items []LineInput, specialDiscount, vatRate decimal.Decimal) (QuotationTotals, error) {
	if specialDiscount.IsNegative() {
		return QuotationTotals{}, ErrInvalidSpecialDiscount
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(hundred) {
		return QuotationTotals{}, ErrInvalidVATRate
	}

	totals := QuotationTotals{
		Lines:           make([]LineResult, 0, len(items)),
		Gross:           decimal.Zero,
		Subtotal:        decimal.Zero,
		SpecialDiscount: specialDiscount,
		VATRate:         vatRate,
	}

	for i, item := range items {
		line, err := CalculateLine(item)
		if err != nil {
			return QuotationTotals{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		totals.Lines = append(totals.Lines, line)
		totals.Gross = totals.Gross.Add(line.Gross)
		totals.Subtotal = totals.Subtotal.Add(line.Total)
	}

	if specialDiscount.GreaterThan(totals.Subtotal) {
		return QuotationTotals{}, ErrDiscountExceedsSubtotal
	}

	totals.ItemDiscount = totals.Gross.Sub(totals.Subtotal)
	totals.AfterDiscount = totals.Subtotal.Sub(specialDiscount)
	totals.VAT = Round2(totals.AfterDiscount.Mul(vatRate).Div(hundred))
	totals.Grand = totals.AfterDiscount.Add(totals.VAT)

	return totals, nil
}

// IncludedVAT extracts the VAT contained in a VAT-inclusive amount
func IncludedVAT(total, vatRate decimal.Decimal) decimal.Decimal {
	if vatRate.IsZero() {
		return decimal.Zero
	}
	return Round2(total.Mul(vatRate).Div(hundred.Add(vatRate)))
}
