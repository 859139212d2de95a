package usecase

import (
	"errors"
	"fmt"

	"github.com/vitos/crypto_scenario/internal/domain"
)

var (
	ErrIncompleteInput  = errors.New("price action, cvd and open interest are all required")
	ErrUnknownIndicator = errors.New("unknown indicator value")
)

// NormalizeIndicators maps selector vocabulary onto the lookup axes.
// breakout collapses onto up and divergence onto negative; both are lossy.
func NormalizeIndicators(rawPA domain.RawPriceAction, rawCVD domain.RawCVD, rawOI domain.RawOpenInterest) (domain.PriceAction, domain.CVD, domain.OpenInterest, error) {
	if rawPA == "" || rawCVD == "" || rawOI == "" {
		return "", "", "", ErrIncompleteInput
	}

	var pa domain.PriceAction
	switch rawPA {
	case domain.RawPriceUptrend, domain.RawPriceBreakout:
		pa = domain.PriceUp
	case domain.RawPriceDowntrend:
		pa = domain.PriceDown
	case domain.RawPriceRange:
		pa = domain.PriceSideways
	default:
		return "", "", "", fmt.Errorf("%w: price action %q", ErrUnknownIndicator, rawPA)
	}

	var cvd domain.CVD
	switch rawCVD {
	case domain.RawCVDIncreasing:
		cvd = domain.CVDPositive
	case domain.RawCVDDecreasing, domain.RawCVDDivergence:
		cvd = domain.CVDNegative
	case domain.RawCVDFlat:
		cvd = domain.CVDNeutral
	default:
		return "", "", "", fmt.Errorf("%w: cvd %q", ErrUnknownIndicator, rawCVD)
	}

	var oi domain.OpenInterest
	switch rawOI {
	case domain.RawOIIncreasing:
		oi = domain.OIRising
	case domain.RawOIDecreasing:
		oi = domain.OIFalling
	case domain.RawOIFlat:
		oi = domain.OIStable
	default:
		return "", "", "", fmt.Errorf("%w: open interest %q", ErrUnknownIndicator, rawOI)
	}

	return pa, cvd, oi, nil
}
