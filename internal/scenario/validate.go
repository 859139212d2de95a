package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitos/crypto_scenario/internal/domain"
)

var (
	ErrMissingKey    = errors.New("scenario key missing from table")
	ErrDuplicateKey  = errors.New("scenario key defined twice")
	ErrBadNumber     = errors.New("scenario number out of range or duplicated")
	ErrBadType       = errors.New("scenario type outside the closed set")
	ErrMissingLocale = errors.New("scenario text missing for locale")
	ErrEmptyField    = errors.New("scenario text field empty")
	ErrBadInsights   = errors.New("volume insights must be exactly high, normal, low")
)

// Validate checks the catalogue for completeness and consistency.
// All defects are reported together.
func Validate() error {
	return validate(entries, texts)
}

func validate(rows []Entry, byLocale map[domain.Locale]map[int]Text) error {
	var errs []error

	seenKeys := make(map[domain.ScenarioKey]bool, len(rows))
	seenNumbers := make(map[int]bool, len(rows))
	total := len(domain.AllScenarioKeys())

	for _, e := range rows {
		if seenKeys[e.Key] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key))
		}
		seenKeys[e.Key] = true

		if e.Number < 1 || e.Number > total || seenNumbers[e.Number] {
			errs = append(errs, fmt.Errorf("%w: %d (%s)", ErrBadNumber, e.Number, e.Key))
		}
		seenNumbers[e.Number] = true

		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q (%s)", ErrBadType, e.Type, e.Key))
		}

		for _, loc := range domain.AllLocales() {
			t, ok := byLocale[loc][e.Number]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: #%d %s", ErrMissingLocale, e.Number, loc))
				continue
			}
			errs = append(errs, checkText(loc, e.Number, t)...)
		}
	}

	for _, k := range domain.AllScenarioKeys() {
		if !seenKeys[k] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingKey, k))
		}
	}

	return errors.Join(errs...)
}

func checkText(loc domain.Locale, number int, t Text) []error {
	var errs []error
	fields := map[string]string{
		"name":                 t.Name,
		"marketInterpretation": t.MarketInterpretation,
		"smartMoney":           t.SmartMoney,
		"retail":               t.Retail,
		"recommendation":       t.Recommendation,
	}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%w: #%d %s %s", ErrEmptyField, number, loc, name))
		}
	}

	if len(t.VolumeInsights) != len(domain.AllVolumes()) {
		errs = append(errs, fmt.Errorf("%w: #%d %s has %d", ErrBadInsights, number, loc, len(t.VolumeInsights)))
		return errs
	}
	for _, v := range domain.AllVolumes() {
		if strings.TrimSpace(t.VolumeInsights[v]) == "" {
			errs = append(errs, fmt.Errorf("%w: #%d %s missing %s", ErrBadInsights, number, loc, v))
		}
	}
	return errs
}
