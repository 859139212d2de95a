package domain

// Raw selector vocabulary, as submitted by the analysis page.

type RawPriceAction string

const (
	RawPriceUptrend   RawPriceAction = "uptrend"
	RawPriceDowntrend RawPriceAction = "downtrend"
	RawPriceRange     RawPriceAction = "range"
	RawPriceBreakout  RawPriceAction = "breakout"
)

type RawCVD string

const (
	RawCVDIncreasing RawCVD = "increasing"
	RawCVDDecreasing RawCVD = "decreasing"
	RawCVDFlat       RawCVD = "flat"
	RawCVDDivergence RawCVD = "divergence"
)

type RawOpenInterest string

const (
	RawOIIncreasing RawOpenInterest = "increasing"
	RawOIDecreasing RawOpenInterest = "decreasing"
	RawOIFlat       RawOpenInterest = "flat"
)

// FundingRate is collected with every analysis but is not part of the scenario key.
type FundingRate string

const (
	FundingPositive FundingRate = "positive"
	FundingNeutral  FundingRate = "neutral"
	FundingNegative FundingRate = "negative"
)

func (f FundingRate) Valid() bool {
	switch f {
	case FundingPositive, FundingNeutral, FundingNegative:
		return true
	}
	return false
}

// Volume selects a commentary variant after a scenario is resolved.
type Volume string

const (
	VolumeHigh   Volume = "high"
	VolumeNormal Volume = "normal"
	VolumeLow    Volume = "low"
)

func (v Volume) Valid() bool {
	switch v {
	case VolumeHigh, VolumeNormal, VolumeLow:
		return true
	}
	return false
}

func AllVolumes() []Volume {
	return []Volume{VolumeHigh, VolumeNormal, VolumeLow}
}

// Normalized lookup axes.

type PriceAction string

const (
	PriceUp       PriceAction = "up"
	PriceDown     PriceAction = "down"
	PriceSideways PriceAction = "sideways"
)

func (p PriceAction) Valid() bool {
	switch p {
	case PriceUp, PriceDown, PriceSideways:
		return true
	}
	return false
}

func AllPriceActions() []PriceAction {
	return []PriceAction{PriceUp, PriceDown, PriceSideways}
}

type CVD string

const (
	CVDPositive CVD = "positive"
	CVDNegative CVD = "negative"
	CVDNeutral  CVD = "neutral"
)

func (c CVD) Valid() bool {
	switch c {
	case CVDPositive, CVDNegative, CVDNeutral:
		return true
	}
	return false
}

func AllCVDs() []CVD {
	return []CVD{CVDPositive, CVDNegative, CVDNeutral}
}

type OpenInterest string

const (
	OIRising  OpenInterest = "rising"
	OIFalling OpenInterest = "falling"
	OIStable  OpenInterest = "stable"
)

func (o OpenInterest) Valid() bool {
	switch o {
	case OIRising, OIFalling, OIStable:
		return true
	}
	return false
}

func AllOpenInterests() []OpenInterest {
	return []OpenInterest{OIRising, OIFalling, OIStable}
}

// ScenarioKey is "<priceAction>-<cvd>-<openInterest>".
type ScenarioKey string

func NewScenarioKey(pa PriceAction, cvd CVD, oi OpenInterest) ScenarioKey {
	return ScenarioKey(string(pa) + "-" + string(cvd) + "-" + string(oi))
}

// AllScenarioKeys enumerates the full 3x3x3 key space in table order.
func AllScenarioKeys() []ScenarioKey {
	keys := make([]ScenarioKey, 0, 27)
	for _, pa := range AllPriceActions() {
		for _, cvd := range AllCVDs() {
			for _, oi := range AllOpenInterests() {
				keys = append(keys, NewScenarioKey(pa, cvd, oi))
			}
		}
	}
	return keys
}

// IndicatorState is one set of selections from the analysis page.
// FundingRate and Volume are optional.
type IndicatorState struct {
	PriceAction  RawPriceAction  `json:"priceAction"`
	CVD          RawCVD          `json:"cvd"`
	OpenInterest RawOpenInterest `json:"openInterest"`
	FundingRate  FundingRate     `json:"fundingRate,omitempty"`
	Volume       Volume          `json:"volume,omitempty"`
}

// Complete reports whether the three key axes are all selected.
func (s IndicatorState) Complete() bool {
	return s.PriceAction != "" && s.CVD != "" && s.OpenInterest != ""
}
