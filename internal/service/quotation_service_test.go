package service_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/export"
	"github.com/siamsupply/shop-api/internal/pricing"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/siamsupply/shop-api/internal/storage"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quotationTotals struct {
	Gross, ItemDiscount, Subtotal, Special, AfterDiscount, VAT, Grand float64
}

func totalsOf(q *domain.QuotationDTO) quotationTotals {
	return quotationTotals{
		Gross:         q.GrossAmount,
		ItemDiscount:  q.ItemDiscount,
		Subtotal:      q.Subtotal,
		Special:       q.SpecialDiscount,
		AfterDiscount: q.AmountAfterDiscount,
		VAT:           q.VATAmount,
		Grand:         q.GrandTotal,
	}
}

func createQuotationRequest(customer *domain.Customer) *domain.CreateQuotationRequest {
	return &domain.CreateQuotationRequest{
		CustomerID: customer.ID,
		Items: []domain.QuotationItemInput{
			{Description: "เหล็กเส้น 12 มม.", Quantity: 2, Unit: "เส้น", UnitPrice: 1000, DiscountPercent: 10},
			{Description: "ลวดผูกเหล็ก", Quantity: 1, Unit: "ม้วน", UnitPrice: 500},
		},
		SpecialDiscount: 100,
		Notes:           "ราคานี้รวมค่าขนส่งในเขตกรุงเทพฯ",
	}
}

func TestQuotationService_Create(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "บริษัท ก่อสร้างไทย จำกัด")

	q, err := env.quotations.Create(adminContext(), createQuotationRequest(customer))
	require.NoError(t, err)

	want := quotationTotals{
		Gross:         2500,
		ItemDiscount:  200,
		Subtotal:      2300,
		Special:       100,
		AfterDiscount: 2200,
		VAT:           154,
		Grand:         2354,
	}
	if diff := cmp.Diff(want, totalsOf(q)); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, domain.QuotationStatusDraft, q.Status)
	assert.True(t, service.IsValidDocumentNumber(q.Number), q.Number)
	assert.Equal(t, customer.Name, q.CustomerName)
	assert.Contains(t, q.CustomerAddress, customer.PostalCode)
	assert.Equal(t, 7.0, q.VATRate)
	assert.Equal(t, "สองพันสามร้อยห้าสิบสี่บาทถ้วน", q.GrandTotalText)
	require.Len(t, q.Items, 2)
	assert.Equal(t, 1800.0, q.Items[0].LineTotal)
	assert.Equal(t, 2, q.Items[1].LineNo)

	issue, err := time.Parse(time.RFC3339, q.IssueDate)
	require.NoError(t, err)
	valid, err := time.Parse(time.RFC3339, q.ValidUntil)
	require.NoError(t, err)
	assert.InDelta(t, (30*24*time.Hour + 24*time.Hour - time.Second).Seconds(), valid.Sub(issue).Seconds(), 1)
}

func TestQuotationService_Create_Errors(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")

	req := createQuotationRequest(customer)
	req.SpecialDiscount = 5000
	_, err := env.quotations.Create(adminContext(), req)
	assert.ErrorIs(t, err, service.ErrInvalidQuotationPricing)
	assert.ErrorIs(t, err, pricing.ErrDiscountExceedsSubtotal)

	require.NoError(t, env.customers.Delete(adminContext(), customer.ID))
	_, err = env.quotations.Create(adminContext(), createQuotationRequest(customer))
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)
}

func TestQuotationService_TotalsAlwaysBalance(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้าสุ่ม")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 25; i++ {
		n := 1 + rng.Intn(6)
		items := make([]domain.QuotationItemInput, n)
		for j := range items {
			items[j] = domain.QuotationItemInput{
				Description:     fmt.Sprintf("รายการ %d", j+1),
				Quantity:        float64(1 + rng.Intn(50)),
				UnitPrice:       float64(rng.Intn(1000000)) / 100,
				DiscountPercent: float64(rng.Intn(101)),
			}
		}
		q, err := env.quotations.Create(adminContext(), &domain.CreateQuotationRequest{
			CustomerID: customer.ID,
			Items:      items,
		})
		require.NoError(t, err)

		d := decimal.NewFromFloat
		balance := d(q.GrossAmount).Sub(d(q.ItemDiscount)).Sub(d(q.SpecialDiscount)).Add(d(q.VATAmount))
		assert.True(t, balance.Equal(d(q.GrandTotal)), "run %d: %s != %v", i, balance, q.GrandTotal)
	}
}

func TestQuotationService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	created, err := env.quotations.Create(ctx, createQuotationRequest(customer))
	require.NoError(t, err)

	updated, err := env.quotations.Update(ctx, created.ID, &domain.UpdateQuotationRequest{
		VATRate:         floatPtr(0),
		SpecialDiscount: floatPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 2300.0, updated.GrandTotal)
	assert.Len(t, updated.Items, 2)

	replaced, err := env.quotations.ReplaceItems(ctx, created.ID, []domain.QuotationItemInput{
		{Description: "ค่าบริการติดตั้ง", Quantity: 1, UnitPrice: 3000},
	})
	require.NoError(t, err)
	require.Len(t, replaced.Items, 1)
	assert.Equal(t, 3000.0, replaced.GrandTotal)
}

func TestQuotationService_Update_OnlyDraft(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	sent := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)

	_, err := env.quotations.Update(adminContext(), sent.ID, &domain.UpdateQuotationRequest{Notes: strPtr("x")})
	assert.ErrorIs(t, err, service.ErrQuotationNotEditable)
}

func TestQuotationService_Send_ArchivesPDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	created, err := env.quotations.Create(ctx, createQuotationRequest(customer))
	require.NoError(t, err)

	sent, err := env.quotations.Send(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusSent, sent.Status)
	assert.NotNil(t, sent.SentAt)
	assert.True(t, sent.HasDocument)
	assert.Equal(t, 1, env.renderer.Calls())

	// served from the archive without rendering again
	file, err := env.quotations.RenderPDF(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, env.renderer.Calls())
	assert.Equal(t, created.Number+".pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))

	_, err = env.quotations.Send(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrInvalidQuotationTransition)
}

func TestQuotationService_Send_RenderFailureKeepsDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	created, err := env.quotations.Create(ctx, createQuotationRequest(customer))
	require.NoError(t, err)

	env.renderer.err = errors.New("chrome crashed")
	_, err = env.quotations.Send(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrDocumentGeneration)

	got, err := env.quotations.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusDraft, got.Status)
}

func TestQuotationService_Send_LostStatusChangeRemovesPDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	created, err := env.quotations.Create(ctx, createQuotationRequest(customer))
	require.NoError(t, err)

	env.renderer.during = func() {
		require.NoError(t, env.db.Model(&domain.Quotation{}).
			Where("id = ?", created.ID).
			Update("status", domain.QuotationStatusCancelled).Error)
	}
	_, err = env.quotations.Send(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrInvalidQuotationTransition)

	got, err := env.quotations.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusCancelled, got.Status)
	assert.False(t, got.HasDocument)

	var stored domain.Quotation
	require.NoError(t, env.db.First(&stored, "id = ?", created.ID).Error)
	year := stored.IssueDate.In(time.FixedZone("ICT", 7*60*60)).Year()
	_, err = env.store.Download(ctx, storage.QuotationKey(year, created.Number))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestQuotationService_AcceptReject(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")

	draft := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusDraft)
	_, err := env.quotations.Accept(ctx, draft.ID)
	assert.ErrorIs(t, err, service.ErrInvalidQuotationTransition)

	toAccept := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	accepted, err := env.quotations.Accept(ctx, toAccept.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusAccepted, accepted.Status)
	assert.NotNil(t, accepted.RespondedAt)

	toReject := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	rejected, err := env.quotations.Reject(ctx, toReject.ID, "  ราคาสูงเกินงบประมาณ ")
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusRejected, rejected.Status)
	assert.Equal(t, "ราคาสูงเกินงบประมาณ", rejected.RejectReason)
}

func TestQuotationService_Accept_PastValidity(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	q := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	require.NoError(t, env.db.Model(q).Update("valid_until", time.Now().Add(-time.Hour)).Error)

	_, err := env.quotations.Accept(adminContext(), q.ID)
	assert.ErrorIs(t, err, service.ErrQuotationExpired)

	got, err := env.quotations.GetByID(adminContext(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusExpired, got.Status)
}

func TestQuotationService_ExpireOverdue(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	past := time.Now().AddDate(0, 0, -1)

	overdue1 := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	overdue2 := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	current := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	draft := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusDraft)
	for _, q := range []*domain.Quotation{overdue1, overdue2, draft} {
		require.NoError(t, env.db.Model(q).Update("valid_until", past).Error)
	}

	count, err := env.quotations.ExpireOverdue(adminContext())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	status := domain.QuotationStatusExpired
	list, err := env.quotations.List(adminContext(), 1, 20, &repository.QuotationFilters{Status: &status}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)

	got, err := env.quotations.GetByID(adminContext(), current.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusSent, got.Status)

	count, err = env.quotations.ExpireOverdue(adminContext())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQuotationService_Delete_Cancels(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	q := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusDraft)

	require.NoError(t, env.quotations.Delete(adminContext(), q.ID))
	got, err := env.quotations.GetByID(adminContext(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusCancelled, got.Status)

	err = env.quotations.Delete(adminContext(), q.ID)
	assert.ErrorIs(t, err, service.ErrInvalidQuotationTransition)
}

func TestQuotationService_ConvertToOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้าองค์กร")
	q := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusAccepted)

	order, err := env.quotations.ConvertToOrder(ctx, q.ID)
	require.NoError(t, err)

	assert.True(t, service.IsValidDocumentNumber(order.Number), order.Number)
	assert.Equal(t, customer.ID, order.CustomerID)
	require.NotNil(t, order.QuotationID)
	assert.Equal(t, q.ID, *order.QuotationID)
	assert.Equal(t, 1070.0, order.Total)
	assert.Equal(t, 70.0, order.VATAmount)
	assert.False(t, order.VATIncluded)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "สินค้าทดสอบ", order.Items[0].Name)

	quotation, err := env.quotations.GetByID(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, quotation.SalesOrderID)
	assert.Equal(t, order.ID, *quotation.SalesOrderID)

	buyer, err := env.customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, buyer.OrderCount)
	assert.Equal(t, 1070.0, buyer.TotalSpent)

	_, err = env.quotations.ConvertToOrder(ctx, q.ID)
	assert.ErrorIs(t, err, service.ErrQuotationAlreadyConverted)

	sent := testutil.CreateTestQuotation(t, env.db, customer, domain.QuotationStatusSent)
	_, err = env.quotations.ConvertToOrder(ctx, sent.ID)
	assert.ErrorIs(t, err, service.ErrInvalidQuotationTransition)
}

func TestQuotationService_ExportMatchesItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้า")
	created, err := env.quotations.Create(ctx, createQuotationRequest(customer))
	require.NoError(t, err)

	file, err := env.quotations.Export(ctx, created.ID, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, created.Number+".csv", file.Filename)
	assert.Equal(t, export.ContentTypeCSV, file.ContentType)

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(file.Data, []byte{0xEF, 0xBB, 0xBF})))
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, export.QuotationItemHeader, records[0])

	var rows [][]string
	for _, rec := range records[1:] {
		if rec[0] == "" {
			break
		}
		rows = append(rows, rec)
	}
	require.Len(t, rows, len(created.Items))
	for i, item := range created.Items {
		assert.Equal(t, item.Description, rows[i][1])
	}

	xlsx, err := env.quotations.Export(ctx, created.ID, export.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, export.ContentTypeXLSX, xlsx.ContentType)
	assert.NotEmpty(t, xlsx.Data)

	html, err := env.quotations.RenderHTML(ctx, created.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(bytes.NewReader(html.Data))
	require.NoError(t, err)
	assert.Contains(t, string(body), created.Number)
}
