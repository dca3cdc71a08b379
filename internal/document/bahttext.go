package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thaiDigits = [...]string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

var thaiPositions = [...]string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}

// BahtText spells an amount in Thai words the way it is printed on invoices and
// quotations, e.g. 123.50 -> หนึ่งร้อยยี่สิบสามบาทห้าสิบสตางค์, 100 -> หนึ่งร้อยบาทถ้วน.
func BahtText(amount decimal.Decimal) string {
	amount = amount.Round(2)

	var sb strings.Builder
	if amount.IsNegative() {
		sb.WriteString("ลบ")
		amount = amount.Neg()
	}

	baht := amount.Truncate(0)
	satang := amount.Sub(baht).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	bahtInt := baht.IntPart()

	switch {
	case bahtInt == 0 && satang == 0:
		sb.WriteString("ศูนย์บาทถ้วน")
		return sb.String()
	case bahtInt > 0:
		sb.WriteString(spellNumber(bahtInt))
		sb.WriteString("บาท")
	}

	if satang == 0 {
		sb.WriteString("ถ้วน")
	} else {
		sb.WriteString(spellNumber(satang))
		sb.WriteString("สตางค์")
	}
	return sb.String()
}

// spellNumber reads a positive integer in groups of six digits joined by ล้าน
func spellNumber(n int64) string {
	if n == 0 {
		return thaiDigits[0]
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1_000_000)
		n /= 1_000_000
	}

	var sb strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g > 0 {
			sb.WriteString(spellGroup(g, i < len(groups)-1))
		}
		if i > 0 {
			sb.WriteString("ล้าน")
		}
	}
	return sb.String()
}

// spellGroup reads 1..999999. A trailing one becomes เอ็ด when anything precedes it.
func spellGroup(n int64, hasHigher bool) string {
	var sb strings.Builder
	digits := make([]int, 0, 6)
	for v := n; v > 0; v /= 10 {
		digits = append(digits, int(v%10))
	}

	for pos := len(digits) - 1; pos >= 0; pos-- {
		d := digits[pos]
		if d == 0 {
			continue
		}
		switch {
		case pos == 0 && d == 1 && (n > 1 || hasHigher):
			sb.WriteString("เอ็ด")
		case pos == 1 && d == 1:
			sb.WriteString(thaiPositions[1])
		case pos == 1 && d == 2:
			sb.WriteString("ยี่")
			sb.WriteString(thaiPositions[1])
		default:
			sb.WriteString(thaiDigits[d])
			sb.WriteString(thaiPositions[pos])
		}
	}
	return sb.String()
}
