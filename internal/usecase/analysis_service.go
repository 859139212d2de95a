package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vitos/crypto_scenario/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrInvalidFunding    = errors.New("invalid funding rate")
	ErrInvalidVolume     = errors.New("invalid volume")
	ErrScenarioNotFound  = errors.New("no scenario available")
)

const DefaultHistoryLimit = 50

type AnalysisConfig struct {
	DefaultLocale domain.Locale
	HistoryLimit  int
}

// AnalysisMetrics records successful resolutions.
type AnalysisMetrics interface {
	RecordResolution(bias, locale string)
	ObserveAnalysis(start time.Time)
}

type AnalysisResult struct {
	Analysis      *domain.Analysis `json:"analysis"`
	Scenario      domain.Scenario  `json:"scenario"`
	VolumeInsight string           `json:"volumeInsight,omitempty"`
	RTL           bool             `json:"rtl"`
}

// AnalysisListener is notified after every successful analysis.
type AnalysisListener func(result *AnalysisResult)

// AnalysisService runs the analysis page flow: normalize the selections,
// resolve the scenario, attach the volume insight, record and publish it.
type AnalysisService struct {
	resolver  *ScenarioResolver
	repo      domain.AnalysisRepository // nil disables history
	metrics   AnalysisMetrics
	config    AnalysisConfig
	logger    *zap.Logger
	listeners []AnalysisListener
	mu        sync.RWMutex
	timeNow   func() time.Time // For testing
}

func NewAnalysisService(resolver *ScenarioResolver, repo domain.AnalysisRepository, metrics AnalysisMetrics, config AnalysisConfig, logger *zap.Logger) *AnalysisService {
	if !config.DefaultLocale.Valid() {
		config.DefaultLocale = domain.LocaleEN
	}
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = DefaultHistoryLimit
	}
	return &AnalysisService{
		resolver: resolver,
		repo:     repo,
		metrics:  metrics,
		config:   config,
		logger:   logger,
		timeNow:  time.Now,
	}
}

func (s *AnalysisService) Subscribe(l AnalysisListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Analyze resolves one set of selections. An empty locale uses the default.
func (s *AnalysisService) Analyze(ctx context.Context, input domain.IndicatorState, locale domain.Locale) (*AnalysisResult, error) {
	start := s.timeNow()

	if !input.Complete() {
		return nil, ErrIncompleteInput
	}
	if locale == "" {
		locale = s.config.DefaultLocale
	}
	if !locale.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	// Funding rate is validated and recorded only; it is not a lookup axis.
	if input.FundingRate != "" && !input.FundingRate.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFunding, input.FundingRate)
	}
	if input.Volume != "" && !input.Volume.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVolume, input.Volume)
	}

	pa, cvd, oi, err := NormalizeIndicators(input.PriceAction, input.CVD, input.OpenInterest)
	if err != nil {
		return nil, err
	}

	sc, ok := s.resolver.Resolve(pa, cvd, oi, locale)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, domain.NewScenarioKey(pa, cvd, oi))
	}

	insight, _ := SelectVolumeInsight(sc, input.Volume)

	analysis := &domain.Analysis{
		ID:             uuid.New().String(),
		Input:          input,
		Key:            sc.Key,
		Locale:         locale,
		ScenarioNumber: sc.Number,
		ScenarioName:   sc.Name,
		ScenarioType:   sc.Type,
		VolumeInsight:  insight,
		CreatedAt:      start,
	}

	if s.repo != nil {
		if err := s.repo.SaveAnalysis(ctx, analysis); err != nil {
			// History is auxiliary; the caller still gets the scenario.
			s.logger.Error("Failed to save analysis", zap.String("id", analysis.ID), zap.Error(err))
		}
	}

	result := &AnalysisResult{
		Analysis:      analysis,
		Scenario:      sc,
		VolumeInsight: insight,
		RTL:           locale.RTL(),
	}

	if s.metrics != nil {
		s.metrics.RecordResolution(string(sc.Type), string(locale))
		s.metrics.ObserveAnalysis(start)
	}

	s.logger.Info("Scenario resolved",
		zap.String("key", string(sc.Key)),
		zap.Int("number", sc.Number),
		zap.String("type", string(sc.Type)),
		zap.String("locale", string(locale)),
		zap.String("funding_rate", string(input.FundingRate)))

	s.publish(result)
	return result, nil
}

func (s *AnalysisService) publish(result *AnalysisResult) {
	s.mu.RLock()
	listeners := make([]AnalysisListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(result)
	}
}

// History returns the most recent analyses, newest first.
func (s *AnalysisService) History(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	if s.repo == nil {
		return []*domain.Analysis{}, nil
	}
	if limit <= 0 || limit > s.config.HistoryLimit {
		limit = s.config.HistoryLimit
	}
	return s.repo.ListAnalyses(ctx, limit)
}

func (s *AnalysisService) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	if s.repo == nil {
		return nil, domain.ErrAnalysisNotFound
	}
	return s.repo.GetAnalysis(ctx, id)
}

// Catalogue lists all scenarios in a locale.
func (s *AnalysisService) Catalogue(locale domain.Locale) ([]domain.Scenario, error) {
	if locale == "" {
		locale = s.config.DefaultLocale
	}
	if !locale.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return s.resolver.Scenarios(locale), nil
}

func (s *AnalysisService) Scenario(number int, locale domain.Locale) (domain.Scenario, error) {
	if locale == "" {
		locale = s.config.DefaultLocale
	}
	if !locale.Valid() {
		return domain.Scenario{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	sc, ok := s.resolver.ByNumber(number, locale)
	if !ok {
		return domain.Scenario{}, fmt.Errorf("%w: #%d", ErrScenarioNotFound, number)
	}
	return sc, nil
}
