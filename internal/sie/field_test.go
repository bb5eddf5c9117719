package sie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	v, err := ParseBool("0")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = ParseBool("1")
	require.NoError(t, err)
	assert.True(t, v)

	for _, raw := range []string{"", "2", "true", "01", "-1"} {
		_, err := ParseBool(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseInt(t *testing.T) {
	tests := map[string]int{"1": 1, "0": 0, "-1": -1, "1234": 1234, "007": 7}
	for raw, want := range tests {
		got, err := ParseInt(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "-", "1.5", "12a", "+1", "99999999999999999999"} {
		_, err := ParseInt(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseDate(t *testing.T) {
	tests := map[string]time.Time{
		"20160722": time.Date(2016, 7, 22, 0, 0, 0, 0, time.UTC),
		"201607":   time.Date(2016, 7, 1, 0, 0, 0, 0, time.UTC),
		"2016":     time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range tests {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s: got %s", raw, got)
	}

	for _, raw := range []string{"", "16", "2016072", "20161301", "2016-07", "abcd", "-2016"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseAmountField(t *testing.T) {
	a, err := ParseAmount("10.1", "SEK")
	require.NoError(t, err)
	assert.Equal(t, "10.10", a.Value.StringFixed(2))
	assert.Equal(t, "SEK", a.Currency)

	for _, raw := range []string{"", "1,5", "1.", ".5", "1e3", "--1", "1.2.3"} {
		_, err := ParseAmount(raw, "SEK")
		assert.Error(t, err, raw)
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("-2.5")
	require.NoError(t, err)
	assert.Equal(t, "-2.5", d.String())

	_, err = ParseDecimal("x")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "amount", KindAmount.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
