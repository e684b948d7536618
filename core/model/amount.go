package model

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrorAmountFormat = errors.New("invalid amount")

// FormatUnits renders raw / 10^decimals exactly. Trailing fractional zeros are
// dropped but one fractional digit is always kept, so 0 with 18 decimals is "0.0".
func FormatUnits(raw *big.Int, decimals uint8) string {
	if raw == nil {
		raw = new(big.Int)
	}
	s := decimal.NewFromBigInt(raw, -int32(decimals)).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseUnits is the inverse of FormatUnits.
func ParseUnits(s string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrorAmountFormat, s, err)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrorAmountFormat, s, decimals)
	}
	return shifted.BigInt(), nil
}
