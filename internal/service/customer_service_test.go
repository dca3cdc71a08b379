package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()

	customer, err := env.customers.Create(ctx, &domain.CreateCustomerRequest{
		Name:        "สมชาย ใจดี",
		CompanyName: "ร้านสมชายการค้า",
		Email:       "Somchai@Example.co.th",
		Phone:       "0812345678",
		Address:     "12/3 ถนนนิมมานเหมินท์",
		Province:    "เชียงใหม่",
		PostalCode:  "50200",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, domain.CustomerTypeNew, customer.Type)
	assert.Equal(t, "ลูกค้าใหม่", customer.TypeLabel)
	assert.Equal(t, domain.CustomerStatusActive, customer.Status)
	assert.Equal(t, "somchai@example.co.th", customer.Email)
	assert.Zero(t, customer.TotalSpent)

	activities, err := env.activities.List(ctx, 1, 20, nil, &customer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, activities.Total)
}

func TestCustomerService_Create_DuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	existing := testutil.CreateTestCustomer(t, env.db, "ลูกค้าเดิม")

	_, err := env.customers.Create(adminContext(), &domain.CreateCustomerRequest{
		Name:  "ลูกค้าใหม่",
		Phone: existing.Phone,
	})
	assert.ErrorIs(t, err, service.ErrDuplicatePhone)
}

func TestCustomerService_Create_InvalidPostalCode(t *testing.T) {
	env := newTestEnv(t)

	for _, code := range []string{"1234", "123456", "12a45", "๑๐๑๑๐"} {
		_, err := env.customers.Create(adminContext(), &domain.CreateCustomerRequest{
			Name:       "ทดสอบ",
			Phone:      "0899999999",
			PostalCode: code,
		})
		assert.ErrorIs(t, err, service.ErrInvalidPostalCode, code)
	}
}

func TestCustomerService_Update_PatchSemantics(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	existing := testutil.CreateTestCustomer(t, env.db, "ชื่อเดิม")

	updated, err := env.customers.Update(ctx, existing.ID, &domain.UpdateCustomerRequest{
		Name:     strPtr("ชื่อใหม่"),
		Province: strPtr("ขอนแก่น"),
	})
	require.NoError(t, err)

	assert.Equal(t, "ชื่อใหม่", updated.Name)
	assert.Equal(t, "ขอนแก่น", updated.Province)
	assert.Equal(t, existing.Phone, updated.Phone)
	assert.Equal(t, existing.Address, updated.Address)
	assert.Equal(t, existing.PostalCode, updated.PostalCode)
}

func TestCustomerService_Update_PhoneTakenByOther(t *testing.T) {
	env := newTestEnv(t)
	first := testutil.CreateTestCustomer(t, env.db, "คนแรก")
	second := testutil.CreateTestCustomer(t, env.db, "คนที่สอง")

	_, err := env.customers.Update(adminContext(), second.ID, &domain.UpdateCustomerRequest{
		Phone: strPtr(first.Phone),
	})
	assert.ErrorIs(t, err, service.ErrDuplicatePhone)

	// keeping your own phone is fine
	_, err = env.customers.Update(adminContext(), second.ID, &domain.UpdateCustomerRequest{
		Phone: strPtr(second.Phone),
	})
	assert.NoError(t, err)
}

func TestCustomerService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "จะถูกลบ")

	require.NoError(t, env.customers.Delete(ctx, customer.ID))

	_, err := env.customers.GetByID(ctx, customer.ID)
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)

	err = env.customers.Delete(ctx, customer.ID)
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)

	// the row is kept for order history
	var stored domain.Customer
	require.NoError(t, env.db.First(&stored, "id = ?", customer.ID).Error)
	assert.Equal(t, domain.CustomerStatusDeleted, stored.Status)
}

func TestCustomerService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	testutil.CreateTestCustomer(t, env.db, "อรุณ")
	testutil.CreateTestCustomer(t, env.db, "บุญมี")
	deleted := testutil.CreateTestCustomer(t, env.db, "อรุณี")
	require.NoError(t, env.customers.Delete(ctx, deleted.ID))

	result, err := env.customers.List(ctx, 1, 10, &repository.CustomerFilters{Search: "อรุ"}, repository.DefaultSortConfig())
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.Total)
	customers := result.Data.([]domain.CustomerDTO)
	require.Len(t, customers, 1)
	assert.Equal(t, "อรุณ", customers[0].Name)
}

func TestCustomerService_Summary(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestCustomer(t, env.db, "ก")
	testutil.CreateTestCustomer(t, env.db, "ข")
	regular := testutil.CreateTestCustomer(t, env.db, "ค")
	require.NoError(t, env.db.Model(regular).Update("type", domain.CustomerTypeRegular).Error)

	summary, err := env.customers.Summary(adminContext())
	require.NoError(t, err)

	assert.EqualValues(t, 3, summary.Total)
	require.Len(t, summary.ByType, len(domain.AllCustomerTypes))
	counts := map[domain.CustomerType]int64{}
	for _, c := range summary.ByType {
		counts[c.Type] = c.Count
		assert.NotEmpty(t, c.Label)
	}
	assert.EqualValues(t, 2, counts[domain.CustomerTypeNew])
	assert.EqualValues(t, 1, counts[domain.CustomerTypeRegular])
	assert.EqualValues(t, 0, counts[domain.CustomerTypeInactive])
}

func setAggregates(t *testing.T, env *testEnv, c *domain.Customer, orders int, spent int64, lastOrder time.Time) {
	t.Helper()
	require.NoError(t, env.db.Model(c).Updates(map[string]interface{}{
		"order_count":   orders,
		"total_spent":   decimal.NewFromInt(spent),
		"last_order_at": lastOrder,
	}).Error)
}

func TestCustomerService_ReclassifyAll(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	dormant := testutil.CreateTestCustomer(t, env.db, "หายไปนาน")
	setAggregates(t, env, dormant, 5, 80000, now.AddDate(0, 0, -91))

	boundary := testutil.CreateTestCustomer(t, env.db, "ครบเก้าสิบวัน")
	setAggregates(t, env, boundary, 1, 500, now.Add(-90*24*time.Hour).Add(time.Minute))

	big := testutil.CreateTestCustomer(t, env.db, "ยอดสูง")
	setAggregates(t, env, big, 1, 60000, now.AddDate(0, 0, -3))

	loyal := testutil.CreateTestCustomer(t, env.db, "ซื้อบ่อย")
	setAggregates(t, env, loyal, 3, 3000, now.AddDate(0, 0, -10))

	fresh := testutil.CreateTestCustomer(t, env.db, "ยังไม่ซื้อ")

	result, err := env.customers.ReclassifyAll(adminContext())
	require.NoError(t, err)
	assert.Equal(t, 5, result.Scanned)
	assert.Equal(t, 3, result.Changed)

	expect := map[uuid.UUID]domain.CustomerType{
		dormant.ID:  domain.CustomerTypeInactive,
		boundary.ID: domain.CustomerTypeNew,
		big.ID:      domain.CustomerTypeTarget,
		loyal.ID:    domain.CustomerTypeRegular,
		fresh.ID:    domain.CustomerTypeNew,
	}
	for id, want := range expect {
		got, err := env.customers.GetByID(adminContext(), id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Type, got.Name)
	}

	again, err := env.customers.ReclassifyAll(adminContext())
	require.NoError(t, err)
	assert.Zero(t, again.Changed)
}

func TestCustomerService_RecordOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้าประจำ")

	placed := time.Now()
	require.NoError(t, env.customers.RecordOrder(ctx, nil, customer.ID, decimal.NewFromInt(1200), placed))
	require.NoError(t, env.customers.RecordOrder(ctx, nil, customer.ID, decimal.RequireFromString("350.50"), placed))

	got, err := env.customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.OrderCount)
	assert.Equal(t, 1550.50, got.TotalSpent)
	assert.NotNil(t, got.LastOrderAt)
	assert.Equal(t, domain.CustomerTypeRegular, got.Type)
}

func TestCustomerService_Reclassify(t *testing.T) {
	env := newTestEnv(t)
	customer := testutil.CreateTestCustomer(t, env.db, "ลูกค้าเป้าหมาย")
	setAggregates(t, env, customer, 1, 75000, time.Now().AddDate(0, 0, -1))

	got, err := env.customers.Reclassify(adminContext(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerTypeTarget, got.Type)

	_, err = env.customers.Reclassify(adminContext(), uuid.New())
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)
}
