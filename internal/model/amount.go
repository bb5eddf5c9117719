package model

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for amounts until a document declares #VALUTA.
const DefaultCurrency = "SEK"

// Amount is a decimal monetary value in a currency.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// ParseAmount parses a SIE amount such as "-10.5" in the given currency.
// A single fraction digit is padded, so "10.1" keeps two decimal places.
func ParseAmount(s, currency string) (Amount, error) {
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot == 2 {
		s += "0"
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return Amount{Value: v, Currency: currency}, nil
}

// MustAmount is like ParseAmount but panics on error.
func MustAmount(s, currency string) Amount {
	a, err := ParseAmount(s, currency)
	if err != nil {
		panic(err)
	}
	return a
}

// KnownCurrency reports whether code is an ISO 4217 currency code.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// Equal reports whether a and b hold the same value in the same currency.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency && a.Value.Equal(b.Value)
}

// String formats the amount with the currency's fraction digits, e.g. "10.10 SEK".
func (a Amount) String() string {
	places := int32(2)
	if cur := money.GetCurrency(a.Currency); cur != nil {
		places = int32(cur.Fraction)
	}
	return a.Value.StringFixed(places) + " " + a.Currency
}
