package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// AmountScale is the number of fractional digits every stored amount carries.
const AmountScale = 2

const DefaultCurrency = "USD"

var (
	ErrInvalidAmount   = errors.New("amount must be a non-negative decimal with at most two fractional digits")
	ErrInvalidCurrency = errors.New("currency must be an ISO 4217 code")
)

// ParseAmount parses a user supplied amount string into a fixed-point decimal.
// Negative values and values with more than two fractional digits are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// ValidateAmount checks that an amount is non-negative and fits the stored scale.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return ErrInvalidAmount
	}
	return nil
}

// RoundAmount rounds to the stored scale using banker's rounding.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(AmountScale)
}

// FormatAmount renders an amount with exactly two fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountScale)
}

// NormalizeCurrency upper-cases and validates an ISO 4217 currency code.
// An empty code resolves to DefaultCurrency.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidCurrency, code)
	}

	return unit.String(), nil
}
