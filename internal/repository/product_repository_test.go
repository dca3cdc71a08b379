package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductRepository_CreateWithChildren(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &domain.Product{
		SKU:         "TS-001",
		Name:        "เสื้อยืด",
		Price:       decimal.NewFromInt(199),
		ShippingFee: decimal.NewFromInt(20),
		BaseUnit:    "ตัว",
		Status:      domain.ProductStatusActive,
		Units: []domain.ProductUnit{
			{Name: "แพ็ค 3 ตัว", Factor: decimal.NewFromInt(3), Price: decimal.NewFromInt(550), SortOrder: 1},
		},
		Options: []domain.ProductOption{
			{Name: "สี", Values: []domain.ProductOptionValue{
				{Value: "ขาว", Available: true, SortOrder: 0},
				{Value: "ดำ", Available: false, SortOrder: 1},
			}},
		},
	}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, got.Units, 1)
	require.Len(t, got.Options, 1)
	require.Len(t, got.Options[0].Values, 2)
	assert.Equal(t, "ขาว", got.Options[0].Values[0].Value)
	assert.True(t, got.Options[0].Values[0].Available)
	assert.False(t, got.Options[0].Values[1].Available)
}

func TestProductRepository_ReplaceOptionsAndAvailability(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := testutil.CreateTestProductWithOption(t, db, "รองเท้า", 990, "ไซส์", "40", "41")
	oldOption := product.Options[0]

	_, err := repo.GetOptionValue(ctx, product.ID, oldOption.ID, oldOption.Values[1].ID)
	require.NoError(t, err)

	_, err = repo.GetOptionValue(ctx, uuid.New(), oldOption.ID, oldOption.Values[1].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.SetOptionAvailability(ctx, oldOption.Values[1].ID, true))
	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, got.Options[0].Values[1].Available)

	require.NoError(t, repo.ReplaceOptions(ctx, product.ID, []domain.ProductOption{
		{Name: "สี", Values: []domain.ProductOptionValue{{Value: "แดง", Available: true}}},
	}))
	got, err = repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, got.Options, 1)
	assert.Equal(t, "สี", got.Options[0].Name)

	var orphanValues int64
	require.NoError(t, db.Model(&domain.ProductOptionValue{}).Where("option_id = ?", oldOption.ID).Count(&orphanValues).Error)
	assert.Zero(t, orphanValues)
}

func TestProductRepository_ListExcludesDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	keep := testutil.CreateTestProduct(t, db, "Hammer", 250)
	gone := testutil.CreateTestProduct(t, db, "Saw", 400)
	require.NoError(t, repo.SoftDelete(ctx, gone.ID))

	products, total, err := repo.List(ctx, 1, 20, nil, DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, keep.ID, products[0].ID)

	products, _, err = repo.List(ctx, 1, 20, &ProductFilters{Statuses: []domain.ProductStatus{domain.ProductStatusDeleted}}, DefaultSortConfig())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, gone.ID, products[0].ID)

	exists, err := repo.ExistsBySKU(ctx, keep.SKU, nil)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsBySKU(ctx, keep.SKU, &keep.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
