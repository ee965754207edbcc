// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// StringToUint64 parses a decimal or 0x prefixed hex string, as found in .env files, into a
// uint64.
func StringToUint64(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty value cannot be converted to uint64")
	}
	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("value %s is negative, cannot convert to uint64", value)
	}

	// cast parses strings as int64, which cannot hold every chain selector
	return strconv.ParseUint(value, 0, 64)
}
