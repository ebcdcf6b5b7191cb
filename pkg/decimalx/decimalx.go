package decimalx

import (
	"strings"

	"github.com/shopspring/decimal"
)

func MustFromString(s string) decimal.Decimal {
	f, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseOrZero parses a provider-formatted number, falling back to zero for
// missing or malformed values.
func ParseOrZero(s string) decimal.Decimal {
	f, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return f
}
