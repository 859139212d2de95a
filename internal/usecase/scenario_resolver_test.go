package usecase_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newResolver(t *testing.T) *usecase.ScenarioResolver {
	t.Helper()
	r, err := usecase.NewScenarioResolver(zap.NewNop())
	require.NoError(t, err)
	return r
}

type countingRecorder struct {
	mu      sync.Mutex
	reasons []string
}

func (c *countingRecorder) RecordUnresolved(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reasons = append(c.reasons, reason)
}

func TestResolve_Exhaustive(t *testing.T) {
	r := newResolver(t)

	for _, pa := range domain.AllPriceActions() {
		for _, cvd := range domain.AllCVDs() {
			for _, oi := range domain.AllOpenInterests() {
				en, ok := r.Resolve(pa, cvd, oi, domain.LocaleEN)
				require.True(t, ok, "en %s-%s-%s", pa, cvd, oi)
				he, ok := r.Resolve(pa, cvd, oi, domain.LocaleHE)
				require.True(t, ok, "he %s-%s-%s", pa, cvd, oi)

				assert.Equal(t, en.Number, he.Number, "number differs across locales")
				assert.Equal(t, en.Type, he.Type, "type differs across locales")
				assert.Equal(t, domain.NewScenarioKey(pa, cvd, oi), en.Key)
				assert.Equal(t, domain.LocaleHE, he.Locale)
			}
		}
	}
}

func TestResolve_DistinctNumbers(t *testing.T) {
	r := newResolver(t)
	seen := map[int]domain.ScenarioKey{}
	for _, k := range domain.AllScenarioKeys() {
		parts := strings.Split(string(k), "-")
		s, ok := r.Resolve(domain.PriceAction(parts[0]), domain.CVD(parts[1]), domain.OpenInterest(parts[2]), domain.LocaleEN)
		require.True(t, ok)
		prev, dup := seen[s.Number]
		assert.False(t, dup, "number %d used by %s and %s", s.Number, prev, k)
		seen[s.Number] = k
	}
	assert.Len(t, seen, 27)
}

func TestResolve_LocaleCompleteness(t *testing.T) {
	r := newResolver(t)
	for _, loc := range domain.AllLocales() {
		scenarios := r.Scenarios(loc)
		require.Len(t, scenarios, 27)
		for i, s := range scenarios {
			assert.Equal(t, i+1, s.Number)
			assert.NotEmpty(t, s.Name)
			assert.NotEmpty(t, s.MarketInterpretation)
			assert.NotEmpty(t, s.SmartMoney)
			assert.NotEmpty(t, s.Retail)
			assert.NotEmpty(t, s.Recommendation)
			require.Len(t, s.VolumeInsights, 3, "#%d %s", s.Number, loc)
			for _, v := range domain.AllVolumes() {
				assert.NotEmpty(t, s.VolumeInsights[v], "#%d %s %s", s.Number, loc, v)
			}
			assert.True(t, s.Type.Valid(), "#%d has type %q", s.Number, s.Type)
		}
	}
}

func TestResolve_KnownScenarios(t *testing.T) {
	r := newResolver(t)

	s, ok := r.Resolve(domain.PriceUp, domain.CVDPositive, domain.OIRising, domain.LocaleEN)
	require.True(t, ok)
	assert.Equal(t, 1, s.Number)
	assert.Equal(t, "True Bullish Trend 🚀", s.Name)
	assert.Equal(t, domain.BiasBullish, s.Type)

	insight, ok := usecase.SelectVolumeInsight(s, domain.VolumeLow)
	require.True(t, ok)
	assert.Equal(t, "Low volume is slightly concerning - the trend might weaken. Look for additional confirmation before entry.", insight)

	s, ok = r.Resolve(domain.PriceDown, domain.CVDPositive, domain.OIRising, domain.LocaleEN)
	require.True(t, ok)
	assert.Equal(t, 10, s.Number)
	assert.Equal(t, domain.BiasBullish, s.Type)

	s, ok = r.Resolve(domain.PriceSideways, domain.CVDNeutral, domain.OIStable, domain.LocaleHE)
	require.True(t, ok)
	assert.Equal(t, 27, s.Number)
	assert.Contains(t, s.Name, "ריינג' מושלם")
}

func TestResolve_Deterministic(t *testing.T) {
	r := newResolver(t)
	a, ok := r.Resolve(domain.PriceDown, domain.CVDNegative, domain.OIFalling, domain.LocaleHE)
	require.True(t, ok)
	b, ok := r.Resolve(domain.PriceDown, domain.CVDNegative, domain.OIFalling, domain.LocaleHE)
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestResolve_ResultIsACopy(t *testing.T) {
	r := newResolver(t)
	a, _ := r.Resolve(domain.PriceUp, domain.CVDPositive, domain.OIRising, domain.LocaleEN)
	a.VolumeInsights[domain.VolumeLow] = "changed"
	a.Name = "changed"

	b, _ := r.Resolve(domain.PriceUp, domain.CVDPositive, domain.OIRising, domain.LocaleEN)
	assert.NotEqual(t, "changed", b.VolumeInsights[domain.VolumeLow])
	assert.Equal(t, "True Bullish Trend 🚀", b.Name)
}

func TestResolve_MissIsLoudAndEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rec := &countingRecorder{}
	r, err := usecase.NewScenarioResolver(zap.New(core), usecase.WithUnresolvedRecorder(rec))
	require.NoError(t, err)

	// Raw vocabulary is not normalized by the resolver.
	s, ok := r.Resolve("uptrend", "increasing", "increasing", domain.LocaleEN)
	assert.False(t, ok)
	assert.Equal(t, domain.Scenario{}, s)

	// No fallback to English.
	s, ok = r.Resolve(domain.PriceUp, domain.CVDPositive, domain.OIRising, "fr")
	assert.False(t, ok)
	assert.Equal(t, domain.Scenario{}, s)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "Scenario not found", logs.All()[0].Message)
	assert.Equal(t, []string{"key", "locale"}, rec.reasons)
}

func TestResolve_Concurrent(t *testing.T) {
	r := newResolver(t)
	want, _ := r.Resolve(domain.PriceSideways, domain.CVDNeutral, domain.OIRising, domain.LocaleEN)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := r.Resolve(domain.PriceSideways, domain.CVDNeutral, domain.OIRising, domain.LocaleEN)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestByNumber(t *testing.T) {
	r := newResolver(t)

	s, ok := r.ByNumber(13, domain.LocaleEN)
	require.True(t, ok)
	assert.Equal(t, domain.NewScenarioKey(domain.PriceDown, domain.CVDNegative, domain.OIRising), s.Key)
	assert.Equal(t, domain.BiasBearish, s.Type)

	_, ok = r.ByNumber(0, domain.LocaleEN)
	assert.False(t, ok)
	_, ok = r.ByNumber(28, domain.LocaleHE)
	assert.False(t, ok)
}

func TestSelectVolumeInsight(t *testing.T) {
	r := newResolver(t)
	s, _ := r.Resolve(domain.PriceUp, domain.CVDPositive, domain.OIRising, domain.LocaleEN)

	tests := []struct {
		name   string
		volume domain.Volume
		wantOK bool
	}{
		{"high", domain.VolumeHigh, true},
		{"normal", domain.VolumeNormal, true},
		{"low", domain.VolumeLow, true},
		{"not selected", "", false},
		{"unknown", "extreme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := usecase.SelectVolumeInsight(s, tt.volume)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, s.VolumeInsights[tt.volume], got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestDefaultResolver_IsShared(t *testing.T) {
	assert.Same(t, usecase.DefaultResolver(), usecase.DefaultResolver())
}
