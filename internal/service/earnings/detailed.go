package earnings

import (
	"github.com/shopspring/decimal"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
)

// DetailedDailyBreakdown computes the same totals as DailyBreakdown and
// additionally partitions ordinary and standby hours into time-of-day
// categories. The partitions are display detail; the embedded Breakdown is
// the authoritative money, and the standby daily indemnity appears in it
// exactly once.
func (c *Calculator) DetailedDailyBreakdown(e timesheet.WorkEntry, s contract.Settings) earnings.DetailedBreakdown {
	d := earnings.DetailedBreakdown{
		Breakdown:      c.DailyBreakdown(e, s),
		OrdinaryDetail: make(map[earnings.RateCategory]earnings.CategoryDetail),
		StandbyDetail:  make(map[earnings.RateCategory]earnings.CategoryDetail),
	}
	if e.Absent() {
		return d
	}
	date, ok := safeParseDate(e.Date)
	if !ok {
		return d
	}
	day := classify(date, s.Standby.SaturdayAsRest, c.cal)

	base := s.Contract.HourlyRate
	rt := s.Contract.Rates

	ordinary := make(map[earnings.RateCategory]int)
	walkOrdinary(ordinary, e.WorkStart1, e.WorkEnd1, day)
	walkOrdinary(ordinary, e.WorkStart2, e.WorkEnd2, day)
	for cat, minutes := range ordinary {
		hours := hoursFromMinutes(minutes)
		d.OrdinaryDetail[cat] = earnings.CategoryDetail{
			Hours:    hours,
			Earnings: displayRate(base, rt, cat).Mul(hours),
		}
	}

	if len(e.Interventi) == 0 {
		return d
	}
	sm := bucketStandby(e.Interventi, day)
	workMin := clockDiff(e.WorkStart1, e.WorkEnd1) + clockDiff(e.WorkStart2, e.WorkEnd2)
	travelMin := clockDiff(e.TravelOutStart, e.TravelOutEnd) + clockDiff(e.TravelReturnStart, e.TravelReturnEnd)
	promote := day.weekday() && workMin+travelMin+sm.workTotal+sm.travelTotal > standardWorkDayMinutes

	premiums := standbyPremiums(rt)
	travelBase := base.Mul(s.TravelCompensationRate)
	for _, cat := range []earnings.RateCategory{
		earnings.CategoryOrdinary,
		earnings.CategoryNight,
		earnings.CategorySaturday,
		earnings.CategorySaturdayNight,
		earnings.CategoryHoliday,
		earnings.CategoryNightHoliday,
	} {
		wMin := sm.work[cat]
		tMin := sm.travel[cat]
		if wMin == 0 && tMin == 0 {
			continue
		}
		pct := premiums[cat]
		if promote && cat == earnings.CategoryOrdinary {
			pct = rt.OvertimeDay
		}
		money := premiumRate(base, pct).Mul(hoursFromMinutes(wMin)).
			Add(premiumRate(travelBase, pct).Mul(hoursFromMinutes(tMin)))
		d.StandbyDetail[cat] = earnings.CategoryDetail{
			Hours:    hoursFromMinutes(wMin + tMin),
			Earnings: money,
		}
	}
	return d
}

func walkOrdinary(buckets map[earnings.RateCategory]int, start, end string, day dayInfo) {
	s, ok := parseClock(start)
	if !ok {
		return
	}
	dur := clockDiff(start, end)
	for i := 0; i < dur; i++ {
		m := (s + i) % minutesPerDay
		buckets[ordinaryCategoryFor(m, day)]++
	}
}

// displayRate prices an ordinary display category. Combined standby-style
// categories keep their additive composition here too.
func displayRate(base decimal.Decimal, rt contract.RateTable, cat earnings.RateCategory) decimal.Decimal {
	switch cat {
	case earnings.CategoryEveningUntil22:
		return premiumRate(base, rt.OrdinaryNightUntil22)
	case earnings.CategoryNight:
		return premiumRate(base, rt.OrdinaryNightAfter22)
	case earnings.CategorySaturday:
		return premiumRate(base, rt.OrdinarySaturday)
	case earnings.CategorySaturdayNight:
		return premiumRate(base, rt.OrdinarySaturday.Add(rt.OrdinaryNightAfter22))
	case earnings.CategoryHoliday:
		return premiumRate(base, rt.OrdinaryHoliday)
	case earnings.CategoryNightHoliday:
		return premiumRate(base, rt.OrdinaryNightHoliday)
	default:
		return base
	}
}
