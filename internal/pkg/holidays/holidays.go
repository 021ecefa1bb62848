package holidays

import "time"

// Calendar reports whether a date is a public holiday.
type Calendar interface {
	IsHoliday(date time.Time) bool
}

// ItalianCalendar implements Calendar for the Italian national holidays:
// the fixed-date set plus Easter Monday.
type ItalianCalendar struct{}

func NewItalianCalendar() ItalianCalendar {
	return ItalianCalendar{}
}

type monthDay struct {
	month time.Month
	day   int
}

var fixedHolidays = map[monthDay]bool{
	{time.January, 1}:    true, // Capodanno
	{time.January, 6}:    true, // Epifania
	{time.April, 25}:     true, // Liberazione
	{time.May, 1}:        true, // Festa del Lavoro
	{time.June, 2}:       true, // Festa della Repubblica
	{time.August, 15}:    true, // Ferragosto
	{time.November, 1}:   true, // Ognissanti
	{time.December, 8}:   true, // Immacolata
	{time.December, 25}:  true, // Natale
	{time.December, 26}:  true, // Santo Stefano
}

func (c ItalianCalendar) IsHoliday(date time.Time) bool {
	if fixedHolidays[monthDay{date.Month(), date.Day()}] {
		return true
	}

	easter := easterSunday(date.Year())
	if sameDay(date, easter) {
		return true
	}
	// Pasquetta
	return sameDay(date, easter.AddDate(0, 0, 1))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// easterSunday computes Gregorian Easter using the Meeus/Jones/Butcher
// algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
