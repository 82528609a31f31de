package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return n
}

func TestToTokenUnits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100.5", "100500000000000000000"},
		{"100", "100000000000000000000"},
		{"0", "0"},
		{"0.0", "0"},
		{".5", "500000000000000000"},
		{"5.", "5000000000000000000"},
		{" 1.25 ", "1250000000000000000"},
		{"0.000000000000000001", "1"},
		{"123456789.123456789123456789", "123456789123456789123456789"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ToTokenUnits(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestToTokenUnitsRejects(t *testing.T) {
	cases := map[string]error{
		"":                      ErrEmptyAmount,
		"   ":                   ErrEmptyAmount,
		".":                     ErrInvalidAmount,
		"1.2.3":                 ErrInvalidAmount,
		"abc":                   ErrInvalidAmount,
		"1e18":                  ErrInvalidAmount,
		"+1":                    ErrInvalidAmount,
		"-1":                    ErrNegativeAmount,
		"0.0000000000000000001": ErrTooManyDecimals,
		"1.1234567890123456789": ErrTooManyDecimals,
	}
	for in, want := range cases {
		_, err := ToTokenUnits(in)
		assert.ErrorIs(t, err, want, "input %q", in)
	}

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256).String()
	_, err := ToTokenUnits(tooBig)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestFromTokenUnits(t *testing.T) {
	assert.Equal(t, "100.5", FromTokenUnits(mustBig(t, "100500000000000000000")))
	assert.Equal(t, "0.0", FromTokenUnits(big.NewInt(0)))
	assert.Equal(t, "0.0", FromTokenUnits(nil))
	assert.Equal(t, "1.0", FromTokenUnits(mustBig(t, "1000000000000000000")))
	assert.Equal(t, "0.000000000000000001", FromTokenUnits(big.NewInt(1)))
	assert.Equal(t, "-2.5", FromTokenUnits(mustBig(t, "-2500000000000000000")))
}

func TestTokenUnitsRoundTrip(t *testing.T) {
	for _, in := range []string{"100.5", "1", "0.1", "42.000000000000000042", "999999999.999999999999999999"} {
		units, err := ToTokenUnits(in)
		require.NoError(t, err)

		back, err := ToTokenUnits(FromTokenUnits(units))
		require.NoError(t, err)
		assert.Zero(t, units.Cmp(back), "round trip of %q", in)
	}
}
