package domain

// Bias is the market-bias classification of a scenario.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
	BiasWarning Bias = "warning" // distinct from neutral, never folded into it
)

func (b Bias) Valid() bool {
	switch b {
	case BiasBullish, BiasBearish, BiasNeutral, BiasWarning:
		return true
	}
	return false
}

func AllBiases() []Bias {
	return []Bias{BiasBullish, BiasBearish, BiasNeutral, BiasWarning}
}

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleHE Locale = "he"
)

func (l Locale) Valid() bool {
	return l == LocaleEN || l == LocaleHE
}

// RTL reports whether text in this locale is laid out right-to-left.
func (l Locale) RTL() bool {
	return l == LocaleHE
}

func AllLocales() []Locale {
	return []Locale{LocaleEN, LocaleHE}
}

// Scenario is one pre-authored market scenario in a single locale.
type Scenario struct {
	Number               int               `json:"number"`
	Key                  ScenarioKey       `json:"key"`
	Locale               Locale            `json:"locale"`
	Name                 string            `json:"name"`
	Type                 Bias              `json:"type"`
	MarketInterpretation string            `json:"marketInterpretation"`
	SmartMoney           string            `json:"smartMoney"`
	Retail               string            `json:"retail"`
	Recommendation       string            `json:"recommendation"`
	VolumeInsights       map[Volume]string `json:"volumeInsights"`
}
