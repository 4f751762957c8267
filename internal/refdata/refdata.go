// Package refdata serves the static country reference data shipped with
// the gateway.
package refdata

import (
	_ "embed"
	"encoding/json"
	"strings"

	"mintology-gateway/internal/core/domain"
)

//go:embed countries.json
var countriesJSON []byte

type country struct {
	Alpha2   string `json:"alpha2Code"`
	Currency string `json:"currency"`
}

var currencyByAlpha2 = loadCurrencies()

func loadCurrencies() map[string]string {
	var countries []country
	if err := json.Unmarshal(countriesJSON, &countries); err != nil {
		panic("refdata: embedded countries.json is invalid: " + err.Error())
	}

	m := make(map[string]string, len(countries))
	for _, c := range countries {
		if c.Alpha2 != "" && c.Currency != "" {
			m[c.Alpha2] = c.Currency
		}
	}
	return m
}

// CurrencyFor returns the ISO 4217 currency for an ISO 3166-1 alpha-2
// country code, defaulting to SGD for unknown codes.
func CurrencyFor(alpha2 string) string {
	if cur, ok := currencyByAlpha2[strings.ToUpper(alpha2)]; ok {
		return cur
	}
	return domain.DefaultCurrency
}
