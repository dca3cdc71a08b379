package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBahtText(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "ศูนย์บาทถ้วน"},
		{"1", "หนึ่งบาทถ้วน"},
		{"11", "สิบเอ็ดบาทถ้วน"},
		{"21", "ยี่สิบเอ็ดบาทถ้วน"},
		{"100", "หนึ่งร้อยบาทถ้วน"},
		{"101", "หนึ่งร้อยเอ็ดบาทถ้วน"},
		{"123.50", "หนึ่งร้อยยี่สิบสามบาทห้าสิบสตางค์"},
		{"0.25", "ยี่สิบห้าสตางค์"},
		{"1070", "หนึ่งพันเจ็ดสิบบาทถ้วน"},
		{"1000000", "หนึ่งล้านบาทถ้วน"},
		{"1000001", "หนึ่งล้านเอ็ดบาทถ้วน"},
		{"11000000", "สิบเอ็ดล้านบาทถ้วน"},
		{"2500000.01", "สองล้านห้าแสนบาทหนึ่งสตางค์"},
		{"53500.75", "ห้าหมื่นสามพันห้าร้อยบาทเจ็ดสิบห้าสตางค์"},
		{"-5", "ลบห้าบาทถ้วน"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, BahtText(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestBahtText_RoundsToSatang(t *testing.T) {
	assert.Equal(t, "หนึ่งบาทถ้วน", BahtText(decimal.RequireFromString("0.999")))
}
