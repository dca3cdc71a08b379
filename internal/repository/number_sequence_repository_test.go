package repository

import (
	"context"
	"testing"

	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSequenceRepository_GetNextNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewNumberSequenceRepository(db)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.GetNextNumber(ctx, "QT", 2025)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Independent per prefix and per year
	got, err := repo.GetNextNumber(ctx, "SO", 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = repo.GetNextNumber(ctx, "QT", 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	current, err := repo.GetCurrentSequence(ctx, "QT", 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, current)

	current, err = repo.GetCurrentSequence(ctx, "XX", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, current)
}
