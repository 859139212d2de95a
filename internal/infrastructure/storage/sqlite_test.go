package storage_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/infrastructure/storage"
)

func newStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleAnalysis(id string, at time.Time) *domain.Analysis {
	return &domain.Analysis{
		ID: id,
		Input: domain.IndicatorState{
			PriceAction:  domain.RawPriceBreakout,
			CVD:          domain.RawCVDDivergence,
			OpenInterest: domain.RawOIIncreasing,
			FundingRate:  domain.FundingNegative,
			Volume:       domain.VolumeHigh,
		},
		Key:            "up-negative-rising",
		Locale:         domain.LocaleHE,
		ScenarioNumber: 4,
		ScenarioName:   "הפצה נסתרת ⚠️",
		ScenarioType:   domain.BiasWarning,
		VolumeInsight:  "ווליום גבוה",
		CreatedAt:      at,
	}
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	want := sampleAnalysis("a-1", at)
	require.NoError(t, store.SaveAnalysis(ctx, want))

	got, err := store.GetAnalysis(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, want.Input, got.Input)
	assert.Equal(t, want.Key, got.Key)
	assert.Equal(t, want.Locale, got.Locale)
	assert.Equal(t, want.ScenarioNumber, got.ScenarioNumber)
	assert.Equal(t, want.ScenarioName, got.ScenarioName)
	assert.Equal(t, want.ScenarioType, got.ScenarioType)
	assert.Equal(t, want.VolumeInsight, got.VolumeInsight)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, want.CreatedAt)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newStore(t)
	_, err := store.GetAnalysis(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAnalysisNotFound)
}

func TestSQLiteStore_DuplicateID(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	a := sampleAnalysis("dup", time.Now())
	require.NoError(t, store.SaveAnalysis(ctx, a))
	assert.Error(t, store.SaveAnalysis(ctx, a))
}

func TestSQLiteStore_ListNewestFirst(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveAnalysis(ctx, sampleAnalysis(fmt.Sprintf("a-%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	list, err := store.ListAnalyses(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a-4", list[0].ID)
	assert.Equal(t, "a-3", list[1].ID)
	assert.Equal(t, "a-2", list[2].ID)
}

func TestSQLiteStore_ListEmpty(t *testing.T) {
	store := newStore(t)
	list, err := store.ListAnalyses(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
