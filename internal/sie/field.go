package sie

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sie4/internal/model"
)

// Kind is the declared type of a directive field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindAmount
	KindDate
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindAmount:
		return "amount"
	case KindDate:
		return "date"
	case KindDecimal:
		return "decimal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseBool accepts "0" and "1" only.
func ParseBool(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// ParseInt accepts an optionally negative decimal integer.
func ParseInt(s string) (int, error) {
	if !isNumber(s, false) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// ParseDate accepts YYYYMMDD, YYYYMM and YYYY. Missing parts default to 01.
func ParseDate(s string) (time.Time, error) {
	var layout string
	switch len(s) {
	case 8:
		layout = "20060102"
	case 6:
		layout = "200601"
	case 4:
		layout = "2006"
	default:
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if !isNumber(s, false) || s[0] == '-' {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseAmount parses a monetary amount in currency.
func ParseAmount(s, currency string) (model.Amount, error) {
	if !isNumber(s, true) {
		return model.Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	return model.ParseAmount(s, currency)
}

// ParseDecimal parses a plain decimal such as a quantity.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if !isNumber(s, true) {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q", s)
	}
	return decimal.NewFromString(s)
}

// coerce converts f to the Go value of kind.
func coerce(f Field, kind Kind, currency string) (interface{}, error) {
	switch kind {
	case KindInt:
		return ParseInt(f.Raw)
	case KindBool:
		return ParseBool(f.Raw)
	case KindAmount:
		return ParseAmount(f.Raw, currency)
	case KindDate:
		return ParseDate(f.Raw)
	case KindDecimal:
		return ParseDecimal(f.Raw)
	}
	return f.Raw, nil
}

// isNumber matches -?[0-9]+ and, if fraction is set, an optional .[0-9]+.
func isNumber(s string, fraction bool) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if !fraction || s[i] != '.' {
		return false
	}
	i++
	frac := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		frac++
	}
	return frac > 0 && i == len(s)
}
