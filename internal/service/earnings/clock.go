package earnings

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	minutesPerDay = 24 * 60

	// standardWorkDayMinutes separates regular from overtime/excess hours.
	standardWorkDayMinutes = 8 * 60
)

var sixty = decimal.NewFromInt(60)

// parseClock converts a "HH:MM" string to minutes since midnight.
// ok is false for empty or malformed input; callers treat that as "absent".
func parseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h := digits2(s[0], s[1])
	m := digits2(s[3], s[4])
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func digits2(a, b byte) int {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return -1
	}
	return int(a-'0')*10 + int(b-'0')
}

// clockDiff returns the duration in minutes between two wall-clock times.
// An end numerically before the start means the interval crosses midnight.
// Absent or malformed input yields 0, never an error.
func clockDiff(start, end string) int {
	s, ok := parseClock(start)
	if !ok {
		return 0
	}
	e, ok := parseClock(end)
	if !ok {
		return 0
	}
	if e < s {
		return (minutesPerDay - s) + e
	}
	return e - s
}

// hoursFromMinutes converts a minute count to decimal hours.
func hoursFromMinutes(min int) decimal.Decimal {
	return decimal.NewFromInt(int64(min)).Div(sixty)
}

// safeParseDate parses a YYYY-MM-DD date; ok is false on failure and the
// caller short-circuits to zero-filled results.
func safeParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}
