package segment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func at(t time.Time) *time.Time { return &t }

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	policy := DefaultPolicy()

	tests := []struct {
		name  string
		stats Stats
		want  domain.CustomerType
	}{
		{"no orders", Stats{}, domain.CustomerTypeNew},
		{"one recent order", Stats{OrderCount: 1, TotalSpent: decimal.NewFromInt(500), LastOrderAt: at(now.AddDate(0, 0, -3))}, domain.CustomerTypeNew},
		{"two recent orders", Stats{OrderCount: 2, TotalSpent: decimal.NewFromInt(1500), LastOrderAt: at(now.AddDate(0, 0, -10))}, domain.CustomerTypeRegular},
		{"big spender with one order", Stats{OrderCount: 1, TotalSpent: decimal.NewFromInt(50000), LastOrderAt: at(now.AddDate(0, 0, -1))}, domain.CustomerTypeTarget},
		{"just under target", Stats{OrderCount: 5, TotalSpent: decimal.RequireFromString("49999.99"), LastOrderAt: at(now)}, domain.CustomerTypeRegular},
		{"inactive beats target", Stats{OrderCount: 9, TotalSpent: decimal.NewFromInt(900000), LastOrderAt: at(now.AddDate(0, 0, -91))}, domain.CustomerTypeInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.stats, now, policy))
		})
	}
}

func TestClassify_InactiveBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	policy := DefaultPolicy()
	stats := func(last time.Time) Stats {
		return Stats{OrderCount: 3, TotalSpent: decimal.NewFromInt(3000), LastOrderAt: &last}
	}

	exactly := now.Add(-policy.InactiveAfter)
	assert.Equal(t, domain.CustomerTypeRegular, Classify(stats(exactly), now, policy))
	assert.Equal(t, domain.CustomerTypeInactive, Classify(stats(exactly.Add(-time.Second)), now, policy))
	assert.Equal(t, domain.CustomerTypeRegular, Classify(stats(exactly.Add(time.Second)), now, policy))
}

func TestClassify_CustomPolicy(t *testing.T) {
	now := time.Now()
	policy := Policy{InactiveAfter: 30 * 24 * time.Hour, TargetSpend: decimal.NewFromInt(10000), RegularOrders: 3}

	s := Stats{OrderCount: 2, TotalSpent: decimal.NewFromInt(2000), LastOrderAt: at(now.AddDate(0, 0, -5))}
	assert.Equal(t, domain.CustomerTypeNew, Classify(s, now, policy))

	s.LastOrderAt = at(now.AddDate(0, 0, -31))
	assert.Equal(t, domain.CustomerTypeInactive, Classify(s, now, policy))
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(&config.ShopConfig{
		InactiveAfterDays:     60,
		TargetSpendThreshold:  20000,
		RegularOrderThreshold: 3,
	})
	assert.Equal(t, 60*24*time.Hour, p.InactiveAfter)
	assert.True(t, p.TargetSpend.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, 3, p.RegularOrders)

	assert.Equal(t, DefaultPolicy(), PolicyFromConfig(nil))

	partial := PolicyFromConfig(&config.ShopConfig{InactiveAfterDays: 30})
	assert.Equal(t, 30*24*time.Hour, partial.InactiveAfter)
	assert.Equal(t, 2, partial.RegularOrders)
}
