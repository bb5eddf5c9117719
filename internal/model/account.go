package model

import (
	"errors"
	"fmt"
	"maps"
)

// AccountType classifies ledger accounts.
type AccountType string

const (
	AccountTypeAsset       AccountType = "asset"
	AccountTypeDebt        AccountType = "debt"
	AccountTypeCost        AccountType = "cost"
	AccountTypeEarning     AccountType = "earning"
	AccountTypeUnspecified AccountType = "unspecified"
)

// ErrInvalidAccount is returned by NewAccount when the number is not usable.
var ErrInvalidAccount = errors.New("invalid account")

// Account is a ledger account declared by #KONTO.
type Account struct {
	Number      string
	Description string
	Type        AccountType
	Attributes  map[string]string
}

// NewAccount validates number and returns an Account owning a copy of attrs.
// Account numbers are non-empty strings of ASCII digits.
func NewAccount(number, description string, typ AccountType, attrs map[string]string) (Account, error) {
	if number == "" {
		return Account{}, fmt.Errorf("%w: empty number", ErrInvalidAccount)
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return Account{}, fmt.Errorf("%w: number %q is not numeric", ErrInvalidAccount, number)
		}
	}
	if typ == "" {
		typ = AccountTypeUnspecified
	}
	return Account{
		Number:      number,
		Description: description,
		Type:        typ,
		Attributes:  cloneAttributes(attrs),
	}, nil
}

// WithType returns a copy of a carrying typ.
func (a Account) WithType(typ AccountType) (Account, error) {
	return NewAccount(a.Number, a.Description, typ, a.Attributes)
}

// WithAttribute returns a copy of a with key set to value.
func (a Account) WithAttribute(key, value string) (Account, error) {
	attrs := cloneAttributes(a.Attributes)
	attrs[key] = value
	return NewAccount(a.Number, a.Description, a.Type, attrs)
}

// Attribute returns the attribute stored under key.
func (a Account) Attribute(key string) (string, bool) {
	v, ok := a.Attributes[key]
	return v, ok
}

func cloneAttributes(attrs map[string]string) map[string]string {
	if attrs == nil {
		return map[string]string{}
	}
	return maps.Clone(attrs)
}
