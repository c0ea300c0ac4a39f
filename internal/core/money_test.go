package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1.0", "1", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{"0.01", "0.01", true},
		{" 2.50 ", "2.5", true},
		{"0", "0", true},
		{"99999999999999999999", "99999999999999999999", true},
		{"-1", "", false},
		{"+1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"1e3", "", false},
		{".", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.out)), "input %q: got %s", tc.in, got)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$4.50", FormatAmount(decimal.RequireFromString("4.5"), "USD"))
	assert.Equal(t, "$999.00", FormatAmount(decimal.NewFromInt(999), "usd"))
	assert.Equal(t, "$0.01", FormatAmount(decimal.RequireFromString("0.005"), "USD"))
	// unknown codes fall back to the default currency
	assert.Equal(t, "$1.00", FormatAmount(decimal.NewFromInt(1), "???"))
}

func TestFormatAmountBeyondInt64MinorUnits(t *testing.T) {
	cases := []struct {
		in       string
		currency string
		want     string
	}{
		{"100000000000000000", "USD", "$100,000,000,000,000,000.00"},
		{"99999999999999999999", "USD", "$99,999,999,999,999,999,999.00"},
		{"-100000000000000000", "USD", "-$100,000,000,000,000,000.00"},
		// largest value still on the int64 path
		{"92233720368547758.07", "USD", "$92,233,720,368,547,758.07"},
	}
	for _, tc := range cases {
		amount, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, FormatAmount(amount, tc.currency), tc.in)
	}

	parsed, err := ParseAmount("100000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "$100,000,000,000,000,000.00", FormatAmount(parsed, "USD"))
}

func TestTierOf(t *testing.T) {
	cases := []struct {
		amount string
		want   Tier
	}{
		{"0", TierLow},
		{"9.99", TierLow},
		{"10", TierMedium},
		{"99.99", TierMedium},
		{"100", TierHigh},
		{"999", TierHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierOf(decimal.RequireFromString(tc.amount)), tc.amount)
	}
	assert.Equal(t, "medium", TierMedium.String())
}
