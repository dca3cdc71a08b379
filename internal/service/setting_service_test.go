package service_test

import (
	"testing"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingService_Shipping(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext()

	defaults, err := env.settings.GetShipping(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, defaults.BaseShippingFee)
	assert.Equal(t, 1000.0, defaults.FreeShippingThreshold)
	assert.Empty(t, defaults.UpdatedBy)

	saved, err := env.settings.UpdateShipping(ctx, &domain.UpdateShippingSettingRequest{
		BaseShippingFee:       45.555,
		FreeShippingThreshold: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, 45.56, saved.BaseShippingFee)
	assert.Equal(t, "ผู้ดูแลระบบ", saved.UpdatedBy)

	_, err = env.settings.UpdateShipping(ctx, &domain.UpdateShippingSettingRequest{
		BaseShippingFee:       60,
		FreeShippingThreshold: 0,
	})
	require.NoError(t, err)

	got, err := env.settings.GetShipping(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60.0, got.BaseShippingFee)
	assert.Zero(t, got.FreeShippingThreshold)

	policy, err := env.settings.ShippingPolicy(ctx)
	require.NoError(t, err)
	assert.True(t, policy.FreeThreshold.IsZero())
	assert.Equal(t, "7", policy.VATRate.String())

	target := domain.ActivityTargetSetting
	activities, err := env.activities.List(ctx, 1, 10, &target, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, activities.Total)
}
