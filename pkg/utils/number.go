package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseInt converts a numeric string from the Meta API to an int. Missing or
// malformed values count as zero so a single bad row never poisons a report.
func ParseInt(value string) int {
	if value == "" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return n
}

// ParseFloat converts a monetary string from the Meta API to a float64.
// Missing or malformed values count as zero.
func ParseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return f
}
