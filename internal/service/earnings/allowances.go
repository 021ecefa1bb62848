package earnings

import (
	"github.com/shopspring/decimal"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// travelAllowanceFor computes the flat daily travel stipend.
//
// Activation and amount are decided independently. A manual per-entry
// override beats the configured activation rules (and the special-day
// suppression); the amount side applies exactly one computation method,
// in priority order PROPORTIONAL_CCNL, then FULL_ALLOWANCE_HALF_DAY, then
// HALF_ALLOWANCE_HALF_DAY, even when several are configured at once.
func travelAllowanceFor(e timesheet.WorkEntry, s contract.Settings, day dayInfo, totalMin, travelMin, standbyWorkMin int, standbyOn bool) decimal.Decimal {
	ta := s.TravelAllowance
	if !ta.Enabled {
		return decimal.Zero
	}

	override := e.TravelAllowanceOverride
	if override.Off() {
		return decimal.Zero
	}
	if !override.On() {
		activated := totalMin > 0
		if ta.Selected(contract.TravelAllowanceWithTravelOnly) {
			activated = travelMin > 0
		}
		if ta.Selected(contract.TravelAllowanceFullDayOnly) {
			activated = activated && totalMin >= standardWorkDayMinutes
		}
		if ta.Selected(contract.TravelAllowanceAlways) {
			activated = true
		}
		if !activated && ta.Selected(contract.TravelAllowanceAlsoOnStandby) && standbyOn {
			activated = true
		}
		if !activated {
			return decimal.Zero
		}
		// Suppressed on Sundays and holidays unless explicitly extended.
		if (day.sunday || day.holiday) && !ta.Selected(contract.TravelAllowanceOnSpecialDays) {
			return decimal.Zero
		}
	}

	switch {
	case ta.Selected(contract.TravelAllowanceProportionalCCNL):
		effMin := totalMin
		if ta.Selected(contract.TravelAllowanceCountStandbyHours) {
			effMin += standbyWorkMin
		}
		frac := hoursFromMinutes(effMin).Div(decimal.NewFromInt(8))
		if frac.GreaterThan(one) {
			frac = one
		}
		return ta.DailyAmount.Mul(frac)
	case ta.Selected(contract.TravelAllowanceFullHalfDay):
		return ta.DailyAmount
	case ta.Selected(contract.TravelAllowanceHalfHalfDay):
		if totalMin < standardWorkDayMinutes {
			return ta.DailyAmount.Div(two)
		}
		return ta.DailyAmount
	default:
		return ta.DailyAmount
	}
}

// mealAllowanceFor itemizes lunch and dinner independently. An explicit
// cash amount on the entry replaces the settings-derived voucher and
// standard cash amounts for that meal.
func mealAllowanceFor(e timesheet.WorkEntry, ms contract.MealSettings) earnings.MealAllowance {
	var m earnings.MealAllowance

	if e.LunchCash.IsPositive() {
		m.LunchCash = e.LunchCash
	} else if e.LunchVoucher.On() {
		m.LunchVoucher = ms.LunchVoucherAmount
		m.LunchCash = ms.LunchCashAmount
		m.Vouchers++
	}

	if e.DinnerCash.IsPositive() {
		m.DinnerCash = e.DinnerCash
	} else if e.DinnerVoucher.On() {
		m.DinnerVoucher = ms.DinnerVoucherAmount
		m.DinnerCash = ms.DinnerCashAmount
		m.Vouchers++
	}

	m.Total = m.LunchVoucher.Add(m.LunchCash).Add(m.DinnerVoucher).Add(m.DinnerCash)
	return m
}
