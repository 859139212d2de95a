package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/usecase"
)

func TestNormalizeIndicators(t *testing.T) {
	tests := []struct {
		name    string
		pa      domain.RawPriceAction
		cvd     domain.RawCVD
		oi      domain.RawOpenInterest
		wantPA  domain.PriceAction
		wantCVD domain.CVD
		wantOI  domain.OpenInterest
	}{
		{"uptrend increasing increasing", "uptrend", "increasing", "increasing", domain.PriceUp, domain.CVDPositive, domain.OIRising},
		{"downtrend decreasing decreasing", "downtrend", "decreasing", "decreasing", domain.PriceDown, domain.CVDNegative, domain.OIFalling},
		{"range flat flat", "range", "flat", "flat", domain.PriceSideways, domain.CVDNeutral, domain.OIStable},
		{"breakout divergence increasing", "breakout", "divergence", "increasing", domain.PriceUp, domain.CVDNegative, domain.OIRising},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa, cvd, oi, err := usecase.NormalizeIndicators(tt.pa, tt.cvd, tt.oi)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPA, pa)
			assert.Equal(t, tt.wantCVD, cvd)
			assert.Equal(t, tt.wantOI, oi)
		})
	}
}

func TestNormalizeIndicators_LossyCollapses(t *testing.T) {
	breakout, _, _, err := usecase.NormalizeIndicators(domain.RawPriceBreakout, domain.RawCVDFlat, domain.RawOIFlat)
	require.NoError(t, err)
	uptrend, _, _, err := usecase.NormalizeIndicators(domain.RawPriceUptrend, domain.RawCVDFlat, domain.RawOIFlat)
	require.NoError(t, err)
	assert.Equal(t, uptrend, breakout)

	_, divergence, _, err := usecase.NormalizeIndicators(domain.RawPriceRange, domain.RawCVDDivergence, domain.RawOIFlat)
	require.NoError(t, err)
	_, decreasing, _, err := usecase.NormalizeIndicators(domain.RawPriceRange, domain.RawCVDDecreasing, domain.RawOIFlat)
	require.NoError(t, err)
	assert.Equal(t, decreasing, divergence)
}

func TestNormalizeIndicators_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pa      domain.RawPriceAction
		cvd     domain.RawCVD
		oi      domain.RawOpenInterest
		wantErr error
	}{
		{"missing price action", "", "flat", "flat", usecase.ErrIncompleteInput},
		{"missing cvd", "range", "", "flat", usecase.ErrIncompleteInput},
		{"missing open interest", "range", "flat", "", usecase.ErrIncompleteInput},
		{"normalized value is not raw vocabulary", "up", "flat", "flat", usecase.ErrUnknownIndicator},
		{"unknown cvd", "range", "positive", "flat", usecase.ErrUnknownIndicator},
		{"divergence is not an open interest state", "range", "flat", "divergence", usecase.ErrUnknownIndicator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := usecase.NormalizeIndicators(tt.pa, tt.cvd, tt.oi)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
