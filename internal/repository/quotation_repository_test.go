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

func TestQuotationRepository_UpdateStatusGuardsCurrentStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewQuotationRepository(db)
	ctx := context.Background()

	customer := testutil.CreateTestCustomer(t, db, "Kasem")
	q := testutil.CreateTestQuotation(t, db, customer, domain.QuotationStatusDraft)

	now := time.Now()
	require.NoError(t, repo.UpdateStatus(ctx, q.ID, domain.QuotationStatusDraft, domain.QuotationStatusSent,
		map[string]interface{}{"sent_at": now}))

	err := repo.UpdateStatus(ctx, q.ID, domain.QuotationStatusDraft, domain.QuotationStatusSent, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusSent, got.Status)
	assert.NotNil(t, got.SentAt)
}

func TestQuotationRepository_UpdateWithItems(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewQuotationRepository(db)
	ctx := context.Background()

	customer := testutil.CreateTestCustomer(t, db, "Lamai")
	q := testutil.CreateTestQuotation(t, db, customer, domain.QuotationStatusDraft)

	q.Items = []domain.QuotationItem{
		{LineNo: 1, Description: "A", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10), DiscountPercent: decimal.Zero, LineTotal: decimal.NewFromInt(20)},
		{LineNo: 2, Description: "B", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5), DiscountPercent: decimal.Zero, LineTotal: decimal.NewFromInt(5)},
	}
	q.Subtotal = decimal.NewFromInt(25)
	require.NoError(t, repo.UpdateWithItems(ctx, q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "A", got.Items[0].Description)
	assert.Equal(t, "B", got.Items[1].Description)
	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(25)))

	var count int64
	require.NoError(t, db.Model(&domain.QuotationItem{}).Where("quotation_id = ?", q.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestQuotationRepository_FindExpiredCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewQuotationRepository(db)
	ctx := context.Background()

	customer := testutil.CreateTestCustomer(t, db, "Manee")
	overdue := testutil.CreateTestQuotation(t, db, customer, domain.QuotationStatusSent)
	draft := testutil.CreateTestQuotation(t, db, customer, domain.QuotationStatusDraft)
	testutil.CreateTestQuotation(t, db, customer, domain.QuotationStatusSent)

	past := time.Now().UTC().AddDate(0, 0, -1)
	require.NoError(t, db.Model(&domain.Quotation{}).Where("id IN ?", []interface{}{overdue.ID, draft.ID}).
		Update("valid_until", past).Error)

	found, err := repo.FindExpiredCandidates(ctx, time.Now().UTC(), 100)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, overdue.ID, found[0].ID)
}
