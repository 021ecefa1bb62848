package earnings

import (
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/pkg/holidays"
)

// Calculator turns a raw work entry plus a settings snapshot into an
// itemized pay breakdown. It is stateless apart from the holiday calendar
// and never mutates its inputs.
type Calculator struct {
	cal holidays.Calendar
}

func NewCalculator(cal holidays.Calendar) *Calculator {
	return &Calculator{cal: cal}
}

// DailyBreakdown computes one day's gross pay estimate.
func (c *Calculator) DailyBreakdown(e timesheet.WorkEntry, s contract.Settings) earnings.Breakdown {
	b := earnings.Breakdown{Date: e.Date}

	// Vacation or paid leave zeroes the whole day, whatever else was logged.
	if e.Absent() {
		return b
	}

	date, dateOK := safeParseDate(e.Date)
	var day dayInfo
	if dateOK {
		day = classify(date, s.Standby.SaturdayAsRest, c.cal)
	}

	workMin := clockDiff(e.WorkStart1, e.WorkEnd1) + clockDiff(e.WorkStart2, e.WorkEnd2)
	travelMin := clockDiff(e.TravelOutStart, e.TravelOutEnd) + clockDiff(e.TravelReturnStart, e.TravelReturnEnd)
	totalMin := workMin + travelMin

	base := s.Contract.HourlyRate
	rt := s.Contract.Rates

	b.Hours.Work = hoursFromMinutes(workMin)
	b.Hours.Travel = hoursFromMinutes(travelMin)

	nightDay := startsAtNight(e)
	overtimeDay := false

	if totalMin >= standardWorkDayMinutes {
		// The daily rate covers the first 8 hours; the excess is routed by
		// the travel-hours policy.
		b.RegularPay = s.Contract.DailyRate
		excessMin := totalMin - standardWorkDayMinutes
		if excessMin > 0 {
			switch s.TravelHoursPolicy {
			case contract.ExcessAsOvertime:
				overtimeDay = true
				rate := resolveRate(base, rt, true, nightDay, day.holiday, day.sunday)
				b.OvertimePay = rate.Mul(hoursFromMinutes(excessMin))
				b.Hours.Overtime = hoursFromMinutes(excessMin)
			default:
				b.TravelPay = base.Mul(s.TravelCompensationRate).Mul(hoursFromMinutes(excessMin))
			}
		}
	} else if totalMin > 0 {
		// No daily-rate floor under 8 hours.
		b.RegularPay = base.Mul(hoursFromMinutes(workMin))
		b.TravelPay = base.Mul(s.TravelCompensationRate).Mul(hoursFromMinutes(travelMin))
	}

	// Night/holiday/Sunday premium on days not already paid as overtime.
	ordinaryMin := totalMin
	if ordinaryMin > standardWorkDayMinutes {
		ordinaryMin = standardWorkDayMinutes
	}
	if !overtimeDay && ordinaryMin > 0 && (nightDay || day.holiday || day.sunday) {
		bonusRate := resolveRate(base, rt, false, nightDay, day.holiday, day.sunday)
		b.OrdinaryBonusPay = bonusRate.Sub(base).Mul(hoursFromMinutes(ordinaryMin))
	}

	active := standbyActive(e, s.Standby)

	// Interventions pay whether or not the day resolved standby-active;
	// logged work is paid work. An unparsable date skips the walk entirely.
	var sm standbyMinutes
	if dateOK && len(e.Interventi) > 0 {
		sm = bucketStandby(e.Interventi, day)
		b.Hours.StandbyWork = hoursFromMinutes(sm.workTotal)
		b.Hours.StandbyTravel = hoursFromMinutes(sm.travelTotal)
		promote := day.weekday() && totalMin+sm.workTotal+sm.travelTotal > standardWorkDayMinutes
		b.StandbyWorkPay = priceBuckets(sm.work, base, rt, promote)
		b.StandbyTravelPay = priceBuckets(sm.travel, base.Mul(s.TravelCompensationRate), rt, promote)
	}

	if active && s.Standby.Enabled {
		b.StandbyAllowance = standbyAllowanceFor(day, s.Standby)
	}

	b.TravelAllowance = travelAllowanceFor(e, s, day, totalMin, travelMin, sm.workTotal, active)
	b.Meal = mealAllowanceFor(e, s.Meal)

	b.Total = b.RegularPay.
		Add(b.OvertimePay).
		Add(b.OrdinaryBonusPay).
		Add(b.TravelPay).
		Add(b.StandbyWorkPay).
		Add(b.StandbyTravelPay).
		Add(b.StandbyAllowance).
		Add(b.TravelAllowance)

	return b
}

// startsAtNight reports whether the first logged work shift begins inside
// the night window. Day-level flag; the per-minute walk is reserved for
// standby segments.
func startsAtNight(e timesheet.WorkEntry) bool {
	start := e.WorkStart1
	if start == "" {
		start = e.WorkStart2
	}
	m, ok := parseClock(start)
	if !ok {
		return false
	}
	return nightMinute(m)
}
