package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// EndOfDay parses a YYYY-MM-DD date in the server's location and returns the last
// instant of that day.
func EndOfDay(date string) (time.Time, error) {
	t, err := now.Parse(date)
	if err != nil {
		return time.Time{}, err
	}
	return now.With(t).EndOfDay(), nil
}
