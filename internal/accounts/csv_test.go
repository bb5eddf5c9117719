package accounts

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/model"
)

func TestMarshalAccount(t *testing.T) {
	acct, err := model.NewAccount("1920", "bank", model.AccountTypeAsset, map[string]string{AttrSRU: "7281"})
	require.NoError(t, err)

	row := MarshalAccount(acct)
	assert.Equal(t, []string{"1920", "bank", "asset", "T", "7281", ""}, row)
}

func TestMarshalAccount_Unspecified(t *testing.T) {
	acct, err := model.NewAccount("9999", Unspecified, model.AccountTypeUnspecified, nil)
	require.NoError(t, err)

	row := MarshalAccount(acct)
	assert.Equal(t, "unspecified", row[colType])
	assert.Empty(t, row[colTypeCode])
}

func TestWriteAccounts(t *testing.T) {
	b := NewBuilder(diag.Discard())
	b.Add("1920", "bank, main")
	b.Add("3000", `sales "domestic"`)
	require.NoError(t, b.SetType("1920", "T"))
	require.NoError(t, b.SetType("3000", "I"))
	require.NoError(t, b.SetAttribute("3000", AttrUnit, "st"))

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, b.All()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"1920", "bank, main", "asset", "T", "", ""}, records[1])
	assert.Equal(t, []string{"3000", `sales "domestic"`, "earning", "I", "", "st"}, records[2])
}

func TestTypeCodes(t *testing.T) {
	for _, code := range []string{"T", "S", "K", "I"} {
		typ, ok := TypeFromCode(code)
		require.True(t, ok, code)
		assert.Equal(t, code, CodeFromType(typ))
	}

	_, ok := TypeFromCode("Q")
	assert.False(t, ok)
	_, ok = TypeFromCode("t")
	assert.False(t, ok)
}
