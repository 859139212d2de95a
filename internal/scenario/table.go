// Package scenario holds the static catalogue of market scenarios.
// It is pure data; lookup lives in the usecase package.
package scenario

import (
	"slices"

	"github.com/vitos/crypto_scenario/internal/domain"
)

// Entry binds a scenario key to its stable number and bias.
type Entry struct {
	Key    domain.ScenarioKey
	Number int
	Type   domain.Bias
}

// Text is the localized wording of one scenario.
type Text struct {
	Name                 string
	MarketInterpretation string
	SmartMoney           string
	Retail               string
	Recommendation       string
	VolumeInsights       map[domain.Volume]string
}

func key(pa domain.PriceAction, cvd domain.CVD, oi domain.OpenInterest) domain.ScenarioKey {
	return domain.NewScenarioKey(pa, cvd, oi)
}

var entries = []Entry{
	// Price up
	{key(domain.PriceUp, domain.CVDPositive, domain.OIRising), 1, domain.BiasBullish},
	{key(domain.PriceUp, domain.CVDPositive, domain.OIFalling), 2, domain.BiasWarning},
	{key(domain.PriceUp, domain.CVDPositive, domain.OIStable), 3, domain.BiasBullish},
	{key(domain.PriceUp, domain.CVDNegative, domain.OIRising), 4, domain.BiasWarning},
	{key(domain.PriceUp, domain.CVDNegative, domain.OIFalling), 5, domain.BiasBearish},
	{key(domain.PriceUp, domain.CVDNegative, domain.OIStable), 6, domain.BiasWarning},
	{key(domain.PriceUp, domain.CVDNeutral, domain.OIRising), 7, domain.BiasBullish},
	{key(domain.PriceUp, domain.CVDNeutral, domain.OIFalling), 8, domain.BiasNeutral},
	{key(domain.PriceUp, domain.CVDNeutral, domain.OIStable), 9, domain.BiasNeutral},

	// Price down
	{key(domain.PriceDown, domain.CVDPositive, domain.OIRising), 10, domain.BiasBullish},
	{key(domain.PriceDown, domain.CVDPositive, domain.OIFalling), 11, domain.BiasBullish},
	{key(domain.PriceDown, domain.CVDPositive, domain.OIStable), 12, domain.BiasBullish},
	{key(domain.PriceDown, domain.CVDNegative, domain.OIRising), 13, domain.BiasBearish},
	{key(domain.PriceDown, domain.CVDNegative, domain.OIFalling), 14, domain.BiasWarning},
	{key(domain.PriceDown, domain.CVDNegative, domain.OIStable), 15, domain.BiasBearish},
	{key(domain.PriceDown, domain.CVDNeutral, domain.OIRising), 16, domain.BiasBearish},
	{key(domain.PriceDown, domain.CVDNeutral, domain.OIFalling), 17, domain.BiasNeutral},
	{key(domain.PriceDown, domain.CVDNeutral, domain.OIStable), 18, domain.BiasBearish},

	// Sideways
	{key(domain.PriceSideways, domain.CVDPositive, domain.OIRising), 19, domain.BiasBullish},
	{key(domain.PriceSideways, domain.CVDPositive, domain.OIFalling), 20, domain.BiasBullish},
	{key(domain.PriceSideways, domain.CVDPositive, domain.OIStable), 21, domain.BiasNeutral},
	{key(domain.PriceSideways, domain.CVDNegative, domain.OIRising), 22, domain.BiasBearish},
	{key(domain.PriceSideways, domain.CVDNegative, domain.OIFalling), 23, domain.BiasWarning},
	{key(domain.PriceSideways, domain.CVDNegative, domain.OIStable), 24, domain.BiasNeutral},
	{key(domain.PriceSideways, domain.CVDNeutral, domain.OIRising), 25, domain.BiasWarning},
	{key(domain.PriceSideways, domain.CVDNeutral, domain.OIFalling), 26, domain.BiasNeutral},
	{key(domain.PriceSideways, domain.CVDNeutral, domain.OIStable), 27, domain.BiasNeutral},
}

var texts = map[domain.Locale]map[int]Text{
	domain.LocaleEN: textEN,
	domain.LocaleHE: textHE,
}

// Entries returns the scenario rows in number order.
func Entries() []Entry {
	return slices.Clone(entries)
}

// LocalizedText returns the wording of scenario number in locale.
// There is no fallback to another locale.
func LocalizedText(locale domain.Locale, number int) (Text, bool) {
	byNumber, ok := texts[locale]
	if !ok {
		return Text{}, false
	}
	t, ok := byNumber[number]
	return t, ok
}
