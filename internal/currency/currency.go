// Package currency converts between a fixed set of currencies using static
// demo rates. Rates are expressed relative to USD; conversion always routes
// through USD. Real rate retrieval is deliberately out of scope.
package currency

import (
	"fmt"
	"sort"
)

type Info struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

var currencies = map[string]Info{
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 1},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.91},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 0.78},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: 150.59},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Rate: 1.51},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Rate: 1.36},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "Fr", Rate: 0.89},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Rate: 7.19},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹", Rate: 83.48},
	"MXN": {Code: "MXN", Name: "Mexican Peso", Symbol: "Mex$", Rate: 17.10},
	"BRL": {Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Rate: 5.04},
}

// All returns every supported currency sorted by code.
func All() []Info {
	out := make([]Info, 0, len(currencies))
	for _, info := range currencies {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Lookup returns the currency for a code.
func Lookup(code string) (Info, bool) {
	info, ok := currencies[code]
	return info, ok
}

// Convert exchanges amount from one currency to another via USD.
func Convert(amount float64, from, to string) (float64, error) {
	fromInfo, ok := currencies[from]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", from)
	}
	toInfo, ok := currencies[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", to)
	}

	valueInUSD := amount / fromInfo.Rate
	return valueInUSD * toInfo.Rate, nil
}

// UnitRate returns how much one unit of from is worth in to.
func UnitRate(from, to string) (float64, error) {
	return Convert(1, from, to)
}
