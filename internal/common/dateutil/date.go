package dateutil

import (
	"time"
)

// ParseISODate parses a strict YYYY-MM-DD calendar date: 4-digit year, 2-digit
// month 01-12, 2-digit day 01-31, all numeric, and the triple must form a real
// calendar date (2024-02-30 is rejected). The returned time is midnight UTC.
func ParseISODate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, ch := range s {
		if i == 4 || i == 7 {
			continue
		}
		if ch < '0' || ch > '9' {
			return time.Time{}, false
		}
	}

	year := atoi(s[0:4])
	month := atoi(s[5:7])
	day := atoi(s[8:10])

	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 1), so an
	// impossible date is detected by the round trip changing the triple.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// CompareToUTCDay compares the calendar day of t against the calendar day of
// now, both in UTC. Returns 1 when t is a later day, -1 when earlier, 0 when
// the same day.
func CompareToUTCDay(t, now time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.After(today):
		return 1
	case day.Before(today):
		return -1
	default:
		return 0
	}
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
