package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// TokenDecimals is the fixed-point scale used by the vesting contract for all amounts.
const TokenDecimals = 18

var (
	ErrEmptyAmount      = errors.New("empty amount")
	ErrInvalidAmount    = errors.New("invalid decimal format")
	ErrTooManyDecimals  = errors.New("too many fractional digits")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrAmountOutOfRange = errors.New("amount does not fit in uint256")
	maxUint256          = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// ToTokenUnits converts a decimal token string to its 18-decimal fixed-point integer
// without float precision loss. Example: "100.5" -> 100500000000000000000
func ToTokenUnits(amount string) (*big.Int, error) {
	return parseWithDecimals(amount, TokenDecimals)
}

// FromTokenUnits converts an 18-decimal fixed-point integer to a decimal string.
// Example: 100500000000000000000 -> "100.5", 0 -> "0.0"
func FromTokenUnits(units *big.Int) string {
	return formatWithDecimals(units, TokenDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point.
// Trailing fractional zeros are dropped but at least one fractional digit is kept.
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value *big.Int, decimals int) string {
	if value == nil {
		value = new(big.Int)
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}
	s := new(big.Int).Abs(value).String()

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")
	if frac == "" {
		frac = "0"
	}
	return sign + whole + "." + frac
}

// parseWithDecimals converts decimal string to integer by removing decimal point.
// Unlike truncating parsers it refuses fractions longer than decimals.
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyAmount
	}
	if strings.HasPrefix(s, "-") {
		return nil, ErrNegativeAmount
	}

	whole, frac, hasPoint := strings.Cut(s, ".")
	if hasPoint && strings.Contains(frac, ".") {
		return nil, ErrInvalidAmount
	}
	if whole == "" && frac == "" {
		return nil, ErrInvalidAmount
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyDecimals, len(frac), decimals)
	}

	// Pad fractional part to exact decimals
	frac += strings.Repeat("0", decimals-len(frac))

	n, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if n.Cmp(maxUint256) > 0 {
		return nil, ErrAmountOutOfRange
	}
	return n, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
