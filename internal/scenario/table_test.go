package scenario

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_scenario/internal/domain"
)

func TestValidate_CatalogueIsComplete(t *testing.T) {
	require.NoError(t, Validate())
}

func TestEntries_NumberingFollowsKeyOrder(t *testing.T) {
	rows := Entries()
	keys := domain.AllScenarioKeys()
	require.Len(t, rows, len(keys))

	for i, e := range rows {
		assert.Equal(t, keys[i], e.Key)
		assert.Equal(t, i+1, e.Number)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	rows := Entries()
	rows[0].Number = 99
	assert.Equal(t, 1, Entries()[0].Number)
}

func TestEntries_WarningIsUsed(t *testing.T) {
	counts := map[domain.Bias]int{}
	for _, e := range Entries() {
		counts[e.Type]++
	}
	for _, b := range domain.AllBiases() {
		assert.NotZero(t, counts[b], "no scenario classified %s", b)
	}
}

func TestLocalizedText_NoFallback(t *testing.T) {
	_, ok := LocalizedText("fr", 1)
	assert.False(t, ok)

	_, ok = LocalizedText(domain.LocaleEN, 28)
	assert.False(t, ok)

	he, ok := LocalizedText(domain.LocaleHE, 27)
	require.True(t, ok)
	assert.Contains(t, he.Name, "ריינג' מושלם")
}

func cloneTexts() map[domain.Locale]map[int]Text {
	out := make(map[domain.Locale]map[int]Text, len(texts))
	for loc, byNumber := range texts {
		out[loc] = maps.Clone(byNumber)
	}
	return out
}

func TestValidate_Defects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(rows []Entry, tx map[domain.Locale]map[int]Text) []Entry
		wantErr error
	}{
		{
			name: "missing key",
			mutate: func(rows []Entry, _ map[domain.Locale]map[int]Text) []Entry {
				return rows[:len(rows)-1]
			},
			wantErr: ErrMissingKey,
		},
		{
			name: "duplicate key",
			mutate: func(rows []Entry, _ map[domain.Locale]map[int]Text) []Entry {
				rows[1].Key = rows[0].Key
				return rows
			},
			wantErr: ErrDuplicateKey,
		},
		{
			name: "duplicate number",
			mutate: func(rows []Entry, _ map[domain.Locale]map[int]Text) []Entry {
				rows[1].Number = 1
				return rows
			},
			wantErr: ErrBadNumber,
		},
		{
			name: "unknown type",
			mutate: func(rows []Entry, _ map[domain.Locale]map[int]Text) []Entry {
				rows[0].Type = "sideways"
				return rows
			},
			wantErr: ErrBadType,
		},
		{
			name: "missing hebrew row",
			mutate: func(rows []Entry, tx map[domain.Locale]map[int]Text) []Entry {
				delete(tx[domain.LocaleHE], 5)
				return rows
			},
			wantErr: ErrMissingLocale,
		},
		{
			name: "empty recommendation",
			mutate: func(rows []Entry, tx map[domain.Locale]map[int]Text) []Entry {
				txt := tx[domain.LocaleEN][3]
				txt.Recommendation = "  "
				tx[domain.LocaleEN][3] = txt
				return rows
			},
			wantErr: ErrEmptyField,
		},
		{
			name: "two volume insights",
			mutate: func(rows []Entry, tx map[domain.Locale]map[int]Text) []Entry {
				txt := tx[domain.LocaleEN][7]
				txt.VolumeInsights = map[domain.Volume]string{
					domain.VolumeHigh: "a",
					domain.VolumeLow:  "b",
				}
				tx[domain.LocaleEN][7] = txt
				return rows
			},
			wantErr: ErrBadInsights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := cloneTexts()
			rows := tt.mutate(Entries(), tx)
			err := validate(rows, tx)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
