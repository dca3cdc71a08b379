// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/database"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// SetupTestDB opens a fresh in-memory sqlite database with the schema migrated.
// The pool is limited to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func next() int64 {
	return seq.Add(1)
}

// CreateTestCustomer inserts an active customer of type new
func CreateTestCustomer(t *testing.T, db *gorm.DB, name string) *domain.Customer {
	t.Helper()
	n := next()
	customer := &domain.Customer{
		Name:       name,
		Email:      fmt.Sprintf("customer%d@example.co.th", n),
		Phone:      fmt.Sprintf("08%08d", n%100000000),
		Address:    "99/1 ถนนสุขุมวิท",
		District:   "วัฒนา",
		Province:   "กรุงเทพมหานคร",
		PostalCode: "10110",
		Type:       domain.CustomerTypeNew,
		Status:     domain.CustomerStatusActive,
		TotalSpent: decimal.Zero,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// CreateTestProduct inserts an active product with no units or options
func CreateTestProduct(t *testing.T, db *gorm.DB, name string, price float64) *domain.Product {
	t.Helper()
	product := &domain.Product{
		SKU:         fmt.Sprintf("SKU-%05d", next()),
		Name:        name,
		Category:    "ทั่วไป",
		Price:       decimal.NewFromFloat(price),
		ShippingFee: decimal.Zero,
		BaseUnit:    "ชิ้น",
		Status:      domain.ProductStatusActive,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

// CreateTestProductWithOption inserts a product with one option holding the given values.
// The first value is available, the rest are not.
func CreateTestProductWithOption(t *testing.T, db *gorm.DB, name string, price float64, optionName string, values ...string) *domain.Product {
	t.Helper()
	product := CreateTestProduct(t, db, name, price)

	option := domain.ProductOption{ProductID: product.ID, Name: optionName}
	for i, v := range values {
		option.Values = append(option.Values, domain.ProductOptionValue{
			Value:     v,
			Available: i == 0,
			SortOrder: i,
		})
	}
	require.NoError(t, db.Create(&option).Error)
	product.Options = []domain.ProductOption{option}
	return product
}

// CreateTestQuotation inserts a quotation with a single line of 1 x 1000 THB
func CreateTestQuotation(t *testing.T, db *gorm.DB, customer *domain.Customer, status domain.QuotationStatus) *domain.Quotation {
	t.Helper()
	now := time.Now().UTC()
	amount := decimal.NewFromInt(1000)
	vat := decimal.NewFromInt(70)
	quotation := &domain.Quotation{
		Number:              fmt.Sprintf("QT-%d-%05d", now.Year(), 90000+next()),
		CustomerID:          customer.ID,
		CustomerName:        customer.Name,
		Status:              status,
		IssueDate:           now,
		ValidUntil:          now.AddDate(0, 0, 30),
		GrossAmount:         amount,
		ItemDiscount:        decimal.Zero,
		Subtotal:            amount,
		SpecialDiscount:     decimal.Zero,
		AmountAfterDiscount: amount,
		VATRate:             decimal.NewFromInt(7),
		VATAmount:           vat,
		GrandTotal:          amount.Add(vat),
		Items: []domain.QuotationItem{{
			LineNo:          1,
			Description:     "สินค้าทดสอบ",
			Quantity:        decimal.NewFromInt(1),
			Unit:            "ชิ้น",
			UnitPrice:       amount,
			DiscountPercent: decimal.Zero,
			LineTotal:       amount,
		}},
	}
	require.NoError(t, db.Create(quotation).Error)
	return quotation
}

// CreateTestOrder inserts an order for the customer in the given delivery status
func CreateTestOrder(t *testing.T, db *gorm.DB, customer *domain.Customer, status domain.DeliveryStatus) *domain.SalesOrder {
	t.Helper()
	now := time.Now().UTC()
	total := decimal.NewFromInt(500)
	productID := uuid.New()
	order := &domain.SalesOrder{
		Number:          fmt.Sprintf("SO-%d-%05d", now.Year(), 90000+next()),
		CustomerID:      customer.ID,
		RecipientName:   customer.Name,
		RecipientPhone:  customer.Phone,
		ShippingAddress: customer.Address,
		Province:        customer.Province,
		PostalCode:      "10110",
		Subtotal:        total,
		ShippingFee:     decimal.Zero,
		Discount:        decimal.Zero,
		VATAmount:       decimal.RequireFromString("32.71"),
		Total:           total,
		PaymentMethod:   domain.PaymentMethodBankTransfer,
		PaymentStatus:   domain.PaymentStatusPending,
		DeliveryStatus:  status,
		PlacedAt:        now,
		Items: []domain.SalesOrderItem{{
			ProductID:   &productID,
			Name:        "สินค้าทดสอบ",
			Unit:        "ชิ้น",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   total,
			ShippingFee: decimal.Zero,
			LineTotal:   total,
		}},
	}
	require.NoError(t, db.Omit("Customer").Create(order).Error)
	return order
}
