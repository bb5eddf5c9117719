package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	acct, err := NewAccount("1920", "bank", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "1920", acct.Number)
	assert.Equal(t, "bank", acct.Description)
	assert.Equal(t, AccountTypeUnspecified, acct.Type)
	assert.NotNil(t, acct.Attributes)
}

func TestNewAccount_Rejects(t *testing.T) {
	for _, number := range []string{"", "19a0", "-1", " 1920", "1.5"} {
		_, err := NewAccount(number, "x", AccountTypeAsset, nil)
		assert.ErrorIs(t, err, ErrInvalidAccount, "number %q", number)
	}
}

func TestWithTypeKeepsFields(t *testing.T) {
	acct, err := NewAccount("1920", "bank", AccountTypeUnspecified, map[string]string{"sru": "7281"})
	require.NoError(t, err)

	debt, err := acct.WithType(AccountTypeDebt)
	require.NoError(t, err)

	assert.Equal(t, AccountTypeDebt, debt.Type)
	assert.Equal(t, "1920", debt.Number)
	assert.Equal(t, "bank", debt.Description)
	assert.Equal(t, map[string]string{"sru": "7281"}, debt.Attributes)
	assert.Equal(t, AccountTypeUnspecified, acct.Type, "original must not change")
}

func TestWithAttributeCopies(t *testing.T) {
	acct, err := NewAccount("3000", "sales", AccountTypeEarning, nil)
	require.NoError(t, err)

	withUnit, err := acct.WithAttribute("unit", "st")
	require.NoError(t, err)

	v, ok := withUnit.Attribute("unit")
	assert.True(t, ok)
	assert.Equal(t, "st", v)

	_, ok = acct.Attribute("unit")
	assert.False(t, ok)
}
