package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitos/crypto_scenario/internal/domain"
)

func TestAllScenarioKeys(t *testing.T) {
	keys := domain.AllScenarioKeys()
	assert.Len(t, keys, 27)
	assert.Equal(t, domain.ScenarioKey("up-positive-rising"), keys[0])
	assert.Equal(t, domain.ScenarioKey("down-positive-rising"), keys[9])
	assert.Equal(t, domain.ScenarioKey("sideways-neutral-stable"), keys[26])

	seen := map[domain.ScenarioKey]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate %s", k)
		seen[k] = true
	}
}

func TestLocale(t *testing.T) {
	assert.True(t, domain.LocaleHE.RTL())
	assert.False(t, domain.LocaleEN.RTL())
	assert.False(t, domain.Locale("fr").Valid())
}

func TestIndicatorState_Complete(t *testing.T) {
	s := domain.IndicatorState{PriceAction: "range", CVD: "flat"}
	assert.False(t, s.Complete())

	s.OpenInterest = "flat"
	assert.True(t, s.Complete(), "funding rate and volume are optional")
}

func TestBias_Closed(t *testing.T) {
	for _, b := range domain.AllBiases() {
		assert.True(t, b.Valid())
	}
	assert.False(t, domain.Bias("bullish-ish").Valid())
}
