package usecase

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/scenario"
	"go.uber.org/zap"
)

// UnresolvedRecorder counts lookups that found nothing.
type UnresolvedRecorder interface {
	RecordUnresolved(reason string)
}

type ResolverOption func(*ScenarioResolver)

func WithUnresolvedRecorder(m UnresolvedRecorder) ResolverOption {
	return func(r *ScenarioResolver) {
		r.metrics = m
	}
}

// ScenarioResolver maps a normalized indicator triple to a scenario.
// It is immutable after construction and safe for concurrent use.
type ScenarioResolver struct {
	byLocale map[domain.Locale]map[domain.ScenarioKey]domain.Scenario
	metrics  UnresolvedRecorder
	logger   *zap.Logger
}

func NewScenarioResolver(logger *zap.Logger, opts ...ResolverOption) (*ScenarioResolver, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("scenario table incomplete: %w", err)
	}

	r := &ScenarioResolver{
		byLocale: make(map[domain.Locale]map[domain.ScenarioKey]domain.Scenario),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, loc := range domain.AllLocales() {
		table := make(map[domain.ScenarioKey]domain.Scenario, len(domain.AllScenarioKeys()))
		for _, e := range scenario.Entries() {
			text, ok := scenario.LocalizedText(loc, e.Number)
			if !ok {
				// Validate already covers this.
				return nil, fmt.Errorf("scenario #%d has no %s text", e.Number, loc)
			}
			table[e.Key] = domain.Scenario{
				Number:               e.Number,
				Key:                  e.Key,
				Locale:               loc,
				Name:                 text.Name,
				Type:                 e.Type,
				MarketInterpretation: text.MarketInterpretation,
				SmartMoney:           text.SmartMoney,
				Retail:               text.Retail,
				Recommendation:       text.Recommendation,
				VolumeInsights:       maps.Clone(text.VolumeInsights),
			}
		}
		r.byLocale[loc] = table
	}

	logger.Debug("Scenario resolver ready",
		zap.Int("scenarios", len(scenario.Entries())),
		zap.Int("locales", len(r.byLocale)))
	return r, nil
}

// Resolve returns the scenario for an already normalized triple.
// A miss is a table defect: it is logged and reported as ok=false,
// never substituted with another scenario or locale.
func (r *ScenarioResolver) Resolve(pa domain.PriceAction, cvd domain.CVD, oi domain.OpenInterest, locale domain.Locale) (domain.Scenario, bool) {
	key := domain.NewScenarioKey(pa, cvd, oi)

	table, ok := r.byLocale[locale]
	if !ok {
		r.miss("locale", key, locale)
		return domain.Scenario{}, false
	}
	s, ok := table[key]
	if !ok {
		r.miss("key", key, locale)
		return domain.Scenario{}, false
	}
	return clone(s), true
}

func (r *ScenarioResolver) miss(reason string, key domain.ScenarioKey, locale domain.Locale) {
	r.logger.Error("Scenario not found",
		zap.String("reason", reason),
		zap.String("key", string(key)),
		zap.String("locale", string(locale)))
	if r.metrics != nil {
		r.metrics.RecordUnresolved(reason)
	}
}

// ByNumber looks a scenario up by its stable number.
func (r *ScenarioResolver) ByNumber(number int, locale domain.Locale) (domain.Scenario, bool) {
	for _, s := range r.byLocale[locale] {
		if s.Number == number {
			return clone(s), true
		}
	}
	return domain.Scenario{}, false
}

// Scenarios lists every scenario of a locale in number order.
func (r *ScenarioResolver) Scenarios(locale domain.Locale) []domain.Scenario {
	table := r.byLocale[locale]
	out := make([]domain.Scenario, 0, len(table))
	for _, s := range table {
		out = append(out, clone(s))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}

// SelectVolumeInsight returns the commentary for volume.
// No volume selected means no insight, not "normal".
func SelectVolumeInsight(s domain.Scenario, volume domain.Volume) (string, bool) {
	if volume == "" {
		return "", false
	}
	insight, ok := s.VolumeInsights[volume]
	return insight, ok
}

func clone(s domain.Scenario) domain.Scenario {
	s.VolumeInsights = maps.Clone(s.VolumeInsights)
	return s
}

var (
	defaultResolver     *ScenarioResolver
	defaultResolverOnce sync.Once
)

// DefaultResolver returns a process-wide resolver logging to zap.L().
// It panics if the scenario table is incomplete.
func DefaultResolver() *ScenarioResolver {
	defaultResolverOnce.Do(func() {
		r, err := NewScenarioResolver(zap.L())
		if err != nil {
			panic(err)
		}
		defaultResolver = r
	})
	return defaultResolver
}
