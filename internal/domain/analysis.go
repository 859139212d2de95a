package domain

import (
	"context"
	"errors"
	"time"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// Analysis is a recorded scenario resolution.
type Analysis struct {
	ID             string         `json:"id"`
	Input          IndicatorState `json:"input"`
	Key            ScenarioKey    `json:"key"`
	Locale         Locale         `json:"locale"`
	ScenarioNumber int            `json:"scenarioNumber"`
	ScenarioName   string         `json:"scenarioName"`
	ScenarioType   Bias           `json:"scenarioType"`
	VolumeInsight  string         `json:"volumeInsight,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// AnalysisRepository stores the history of resolved analyses.
type AnalysisRepository interface {
	SaveAnalysis(ctx context.Context, a *Analysis) error
	GetAnalysis(ctx context.Context, id string) (*Analysis, error)
	ListAnalyses(ctx context.Context, limit int) ([]*Analysis, error)
}
