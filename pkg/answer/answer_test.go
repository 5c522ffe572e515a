package answer

import (
	"testing"

	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	unitedStates := countries.Country{ID: 1, Name: "United States", AlternativeNames: []string{"USA", "America"}}
	france := countries.Country{ID: 2, Name: "France"}
	japan := countries.Country{ID: 3, Name: "Japan", AlternativeNames: []string{"Nippon"}}
	mexico := countries.Country{ID: 12, Name: "Mexico", AlternativeNames: []string{"México"}}

	tests := []struct {
		name    string
		country countries.Country
		text    string
		want    bool
	}{
		{name: "lower case canonical", country: france, text: "france", want: true},
		{name: "upper case canonical", country: france, text: "FRANCE", want: true},
		{name: "alternative name", country: unitedStates, text: "USA", want: true},
		{name: "alternative name lower case", country: unitedStates, text: "america", want: true},
		{name: "unrelated", country: japan, text: "china", want: false},
		{name: "leading whitespace is significant", country: france, text: " france", want: false},
		{name: "trailing whitespace is significant", country: france, text: "france ", want: false},
		{name: "internal whitespace is significant", country: unitedStates, text: "united  states", want: false},
		{name: "no diacritic folding", country: mexico, text: "mexico", want: true},
		{name: "diacritic alternative", country: mexico, text: "MÉXICO", want: true},
		{name: "partial name", country: unitedStates, text: "united", want: false},
		{name: "empty text", country: france, text: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.country, tt.text))
		})
	}
}

func TestEvaluate_diacriticsNotFolded(t *testing.T) {
	spain := countries.Country{Name: "España"}
	assert.False(t, Evaluate(spain, "espana"))
	assert.True(t, Evaluate(spain, "ESPAÑA"))
}
