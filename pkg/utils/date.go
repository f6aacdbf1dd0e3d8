package utils

import "time"

func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.Parse("2006-01-02", dateStr)
}
