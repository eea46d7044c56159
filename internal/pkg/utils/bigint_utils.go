package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fractional digits kept in caller-facing amounts.
const DisplayPlaces = 2

// ParseHexQuantity decodes a 0x-prefixed big-endian hex integer of any width up to 256 bits.
// Leading zeros are accepted, which is how providers usually pad token balances.
// Values wider than uint256 are rejected; token balances are uint256 on chain.
// Example: "0x00000000000000000000000000000000000000000000000000000000000003e8" => 1000
func ParseHexQuantity(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex quantity %q is missing 0x prefix", s)
	}
	if len(s) == 2 {
		return nil, fmt.Errorf("hex quantity %q has no digits", s)
	}
	v, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", s)
	}
	return v, nil
}

// ToDecimalAmount converts a fixed-point integer into a decimal amount by dividing it
// by 10^decimals, then rounds half-to-even to DisplayPlaces.
// Example: amount=1000, decimals=2 => 10.00; amount=12345, decimals=4 => 1.23 (1.2345);
// amount=125, decimals=3 => 0.12 (0.125 ties to even).
func ToDecimalAmount(amount *big.Int, decimals int32) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Zero, nil
	}
	if decimals < 0 {
		return decimal.Zero, fmt.Errorf("negative decimals %d", decimals)
	}
	// amount < 10^digits, so past digits+DisplayPlaces the value is below 0.001 and rounds to zero.
	if digits := len(new(big.Int).Abs(amount).Text(10)); int64(decimals) > int64(digits)+DisplayPlaces {
		return decimal.Zero, nil
	}
	// NewFromBigInt(v, -d) is v * 10^-d, exact.
	return decimal.NewFromBigInt(amount, -decimals).RoundBank(DisplayPlaces), nil
}
