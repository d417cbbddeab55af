package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePriceRange reads "min-max", splitting on the first '-'. Both bounds
// must be finite, non-negative and ordered.
func ParsePriceRange(s string) (PriceBetween, error) {
	minStr, maxStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return PriceBetween{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}

	lo, err := parseBound(minStr)
	if err != nil {
		return PriceBetween{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	hi, err := parseBound(maxStr)
	if err != nil {
		return PriceBetween{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	if lo > hi {
		return PriceBetween{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}

	return PriceBetween{Min: lo, Max: hi}, nil
}

func parseBound(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
