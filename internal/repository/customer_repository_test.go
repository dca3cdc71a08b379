package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCustomerRepository_ListFiltersAndSort(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	a := testutil.CreateTestCustomer(t, db, "Anong Shop")
	b := testutil.CreateTestCustomer(t, db, "Boonmee Trading")
	c := testutil.CreateTestCustomer(t, db, "Chai Hardware")

	require.NoError(t, repo.UpdateType(ctx, b.ID, domain.CustomerTypeTarget))
	require.NoError(t, repo.SoftDelete(ctx, c.ID))

	customers, total, err := repo.List(ctx, 1, 10, nil, SortConfig{Field: "name", Order: SortOrderAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, customers, 2)
	assert.Equal(t, a.ID, customers[0].ID)
	assert.Equal(t, b.ID, customers[1].ID)

	target := domain.CustomerTypeTarget
	customers, total, err = repo.List(ctx, 1, 10, &CustomerFilters{Type: &target}, DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, b.ID, customers[0].ID)

	customers, _, err = repo.List(ctx, 1, 10, &CustomerFilters{Search: "boon"}, DefaultSortConfig())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, b.ID, customers[0].ID)

	deleted := domain.CustomerStatusDeleted
	customers, _, err = repo.List(ctx, 1, 10, &CustomerFilters{Status: &deleted}, DefaultSortConfig())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, c.ID, customers[0].ID)
}

func TestCustomerRepository_SoftDeleteTwice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCustomerRepository(db)
	c := testutil.CreateTestCustomer(t, db, "Dao")

	require.NoError(t, repo.SoftDelete(context.Background(), c.ID))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), c.ID), gorm.ErrRecordNotFound)
}

func TestCustomerRepository_AddOrderAndCountByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := testutil.CreateTestCustomer(t, db, "Ekachai")
	testutil.CreateTestCustomer(t, db, "Fon")

	placed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddOrder(ctx, c.ID, decimal.RequireFromString("1250.50"), placed))
	require.NoError(t, repo.AddOrder(ctx, c.ID, decimal.RequireFromString("749.50"), placed.Add(time.Hour)))
	require.NoError(t, repo.UpdateType(ctx, c.ID, domain.CustomerTypeRegular))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.OrderCount)
	assert.True(t, got.TotalSpent.Equal(decimal.NewFromInt(2000)), got.TotalSpent.String())
	require.NotNil(t, got.LastOrderAt)
	assert.True(t, got.LastOrderAt.Equal(placed.Add(time.Hour)))

	counts, err := repo.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.CustomerTypeRegular])
	assert.Equal(t, int64(1), counts[domain.CustomerTypeNew])
}

func TestCustomerRepository_EachActiveBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		testutil.CreateTestCustomer(t, db, "Batch")
	}
	gone := testutil.CreateTestCustomer(t, db, "Gone")
	require.NoError(t, repo.SoftDelete(ctx, gone.ID))

	seen := 0
	batches := 0
	err := repo.EachActiveBatch(ctx, 2, func(batch []domain.Customer) error {
		batches++
		seen += len(batch)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
	assert.Equal(t, 3, batches)
}
