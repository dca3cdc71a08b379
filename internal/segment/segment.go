// Package segment derives a customer's lifecycle type from order history.
package segment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
)

// Stats are the order aggregates a classification is based on
type Stats struct {
	OrderCount  int
	TotalSpent  decimal.Decimal
	LastOrderAt *time.Time
}

// Policy holds the classification thresholds
type Policy struct {
	InactiveAfter time.Duration
	TargetSpend   decimal.Decimal
	RegularOrders int
}

// DefaultPolicy is 90 days of inactivity, 50,000 THB target spend and 2 orders for regular
func DefaultPolicy() Policy {
	return Policy{
		InactiveAfter: 90 * 24 * time.Hour,
		TargetSpend:   decimal.NewFromInt(50000),
		RegularOrders: 2,
	}
}

// PolicyFromConfig reads the thresholds from the shop settings; unset values keep the defaults
func PolicyFromConfig(shop *config.ShopConfig) Policy {
	p := DefaultPolicy()
	if shop == nil {
		return p
	}
	if shop.InactiveAfterDays > 0 {
		p.InactiveAfter = time.Duration(shop.InactiveAfterDays) * 24 * time.Hour
	}
	if shop.TargetSpendThreshold > 0 {
		p.TargetSpend = decimal.NewFromFloat(shop.TargetSpendThreshold)
	}
	if shop.RegularOrderThreshold > 0 {
		p.RegularOrders = shop.RegularOrderThreshold
	}
	return p
}

// Classify returns the customer type. Rules are checked in order:
// no orders is new, a last order more than InactiveAfter ago is inactive,
// spend at or above TargetSpend is target, RegularOrders or more orders is
// regular, anything else is new. A last order exactly InactiveAfter ago
// still counts as active.
func Classify(stats Stats, now time.Time, policy Policy) domain.CustomerType {
	if stats.OrderCount <= 0 || stats.LastOrderAt == nil {
		return domain.CustomerTypeNew
	}
	if now.Sub(*stats.LastOrderAt) > policy.InactiveAfter {
		return domain.CustomerTypeInactive
	}
	if policy.TargetSpend.IsPositive() && stats.TotalSpent.GreaterThanOrEqual(policy.TargetSpend) {
		return domain.CustomerTypeTarget
	}
	if stats.OrderCount >= policy.RegularOrders {
		return domain.CustomerTypeRegular
	}
	return domain.CustomerTypeNew
}

// FromCustomer extracts classification stats from a customer record
func FromCustomer(c *domain.Customer) Stats {
	return Stats{
		OrderCount:  c.OrderCount,
		TotalSpent:  c.TotalSpent,
		LastOrderAt: c.LastOrderAt,
	}
}
