package earnings

import (
	"time"

	"github.com/turniapp/turni-backend-go/internal/pkg/holidays"
)

// dayInfo is the classification every premium decision is made from.
type dayInfo struct {
	saturday bool
	sunday   bool
	holiday  bool
	rest     bool
}

// classify resolves the four day-type booleans for a date. Holiday status
// is delegated to the holiday calendar; restDay folds in the contract's
// saturday-as-rest flag.
func classify(date time.Time, saturdayAsRest bool, cal holidays.Calendar) dayInfo {
	d := dayInfo{
		saturday: date.Weekday() == time.Saturday,
		sunday:   date.Weekday() == time.Sunday,
	}
	if cal != nil {
		d.holiday = cal.IsHoliday(date)
	}
	d.rest = d.sunday || d.holiday || (d.saturday && saturdayAsRest)
	return d
}

// weekday reports a plain working day: not Saturday, Sunday or holiday.
func (d dayInfo) weekday() bool {
	return !d.saturday && !d.sunday && !d.holiday
}
