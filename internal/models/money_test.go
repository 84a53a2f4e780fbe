package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "whole number", raw: "1000", want: "1000"},
		{name: "two decimals", raw: "250.50", want: "250.5"},
		{name: "surrounding space", raw: " 99.99 ", want: "99.99"},
		{name: "zero", raw: "0", want: "0"},
		{name: "negative", raw: "-1.00", wantErr: true},
		{name: "three decimals", raw: "1.005", wantErr: true},
		{name: "not a number", raw: "ten", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestAmountArithmeticIsExact(t *testing.T) {
	// 0.1 added ten times drifts in binary floating point.
	sum := decimal.Zero
	for i := 0; i < 10; i++ {
		sum = sum.Add(decimal.RequireFromString("0.10"))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "1.00", FormatAmount(sum))
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, "2.12", FormatAmount(RoundAmount(decimal.RequireFromString("2.125"))))
	assert.Equal(t, "2.14", FormatAmount(RoundAmount(decimal.RequireFromString("2.135"))))
}

func TestNormalizeCurrency(t *testing.T) {
	code, err := NormalizeCurrency("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, code)

	code, err = NormalizeCurrency("eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)

	_, err = NormalizeCurrency("EURO")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}
