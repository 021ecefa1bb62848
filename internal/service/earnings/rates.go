package earnings

import (
	"github.com/shopspring/decimal"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
)

var hundred = decimal.NewFromInt(100)

// premiumRate applies a percentage premium to the base hourly rate.
func premiumRate(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(1).Add(pct.Div(hundred)))
}

// resolveRate maps a paid-hour classification to its hourly rate. Rules are
// ordered, first match wins.
func resolveRate(base decimal.Decimal, rt contract.RateTable, overtime, night, holiday, sunday bool) decimal.Decimal {
	switch {
	case overtime && night:
		return premiumRate(base, rt.OvertimeNightAfter22)
	case overtime && holiday:
		return premiumRate(base, rt.OvertimeHoliday)
	case overtime && sunday:
		return premiumRate(base, rt.OvertimeSunday)
	case overtime:
		return premiumRate(base, rt.OvertimeDay)
	case night && holiday:
		return premiumRate(base, rt.OrdinaryNightHoliday)
	case night:
		return premiumRate(base, rt.OrdinaryNightAfter22)
	case holiday:
		return premiumRate(base, rt.OrdinaryHoliday)
	case sunday:
		return premiumRate(base, rt.OrdinarySunday)
	default:
		return base
	}
}

// standbyPremiums is the additive composition table for standby pricing.
// Combined categories sum their component percentages: Saturday(+25) and
// night(+25) compose to +50, never to a multiplied +56.25.
func standbyPremiums(rt contract.RateTable) map[earnings.RateCategory]decimal.Decimal {
	night := rt.OrdinaryNightAfter22
	sat := rt.OrdinarySaturday
	hol := rt.OrdinaryHoliday
	return map[earnings.RateCategory]decimal.Decimal{
		earnings.CategoryOrdinary:      decimal.Zero,
		earnings.CategoryNight:         night,
		earnings.CategorySaturday:      sat,
		earnings.CategorySaturdayNight: sat.Add(night),
		earnings.CategoryHoliday:       hol,
		earnings.CategoryNightHoliday:  hol.Add(night),
	}
}

// nightMinute reports whether a minute-of-day falls in the night window:
// before 06:00 or at/after 22:00.
func nightMinute(m int) bool {
	return m < 6*60 || m >= 22*60
}

// standbyCategoryFor classifies one standby minute. Sundays price like
// holidays here; Saturday keeps its own tier.
func standbyCategoryFor(m int, day dayInfo) earnings.RateCategory {
	night := nightMinute(m)
	switch {
	case day.holiday || day.sunday:
		if night {
			return earnings.CategoryNightHoliday
		}
		return earnings.CategoryHoliday
	case day.saturday:
		if night {
			return earnings.CategorySaturdayNight
		}
		return earnings.CategorySaturday
	case night:
		return earnings.CategoryNight
	default:
		return earnings.CategoryOrdinary
	}
}

// ordinaryCategoryFor is the display partition used by the detailed
// breakdown. It adds the evening 20:00-22:00 band on plain weekdays.
func ordinaryCategoryFor(m int, day dayInfo) earnings.RateCategory {
	cat := standbyCategoryFor(m, day)
	if cat == earnings.CategoryOrdinary && m >= 20*60 {
		return earnings.CategoryEveningUntil22
	}
	return cat
}

// priceBuckets prices per-category minute counts at base*(1+premium).
// When promote is set the day exceeded the standard 8 hours on a weekday,
// and ordinary-rate minutes are promoted to the day-overtime premium.
func priceBuckets(buckets map[earnings.RateCategory]int, base decimal.Decimal, rt contract.RateTable, promote bool) decimal.Decimal {
	premiums := standbyPremiums(rt)
	total := decimal.Zero
	for cat, minutes := range buckets {
		if minutes == 0 {
			continue
		}
		pct := premiums[cat]
		if promote && cat == earnings.CategoryOrdinary {
			pct = rt.OvertimeDay
		}
		total = total.Add(premiumRate(base, pct).Mul(hoursFromMinutes(minutes)))
	}
	return total
}
