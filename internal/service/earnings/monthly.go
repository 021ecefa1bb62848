package earnings

import (
	"log/slog"

	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
)

// MonthlySummary folds one month of entries through the daily composer and
// synthesizes standby-only days for calendar dates with no logged entry.
// Entries outside the target month are ignored; entries with an unparsable
// date are logged and skipped rather than failing the whole month.
func (c *Calculator) MonthlySummary(entries []timesheet.WorkEntry, s contract.Settings, year, month int) earnings.MonthlySummary {
	sum := earnings.MonthlySummary{Year: year, Month: month}
	seen := make(map[string]bool)

	for _, e := range entries {
		date, ok := safeParseDate(e.Date)
		if !ok {
			slog.Warn("monthly summary: skipping entry with invalid date", "date", e.Date)
			continue
		}
		if date.Year() != year || int(date.Month()) != month {
			continue
		}
		seen[e.Date] = true

		b := c.DailyBreakdown(e, s)

		sum.WorkHours = sum.WorkHours.Add(b.Hours.Work)
		sum.TravelHours = sum.TravelHours.Add(b.Hours.Travel)
		sum.OvertimeHours = sum.OvertimeHours.Add(b.Hours.Overtime)
		sum.StandbyWorkHours = sum.StandbyWorkHours.Add(b.Hours.StandbyWork)
		sum.StandbyTravelHours = sum.StandbyTravelHours.Add(b.Hours.StandbyTravel)

		sum.RegularPay = sum.RegularPay.Add(b.RegularPay)
		sum.OvertimePay = sum.OvertimePay.Add(b.OvertimePay)
		sum.OrdinaryBonusPay = sum.OrdinaryBonusPay.Add(b.OrdinaryBonusPay)
		sum.TravelPay = sum.TravelPay.Add(b.TravelPay)
		sum.StandbyWorkPay = sum.StandbyWorkPay.Add(b.StandbyWorkPay)
		sum.StandbyTravelPay = sum.StandbyTravelPay.Add(b.StandbyTravelPay)
		sum.StandbyAllowanceTotal = sum.StandbyAllowanceTotal.Add(b.StandbyAllowance)
		sum.TravelAllowanceTotal = sum.TravelAllowanceTotal.Add(b.TravelAllowance)

		if b.Meal.LunchVoucher.IsPositive() || b.Meal.LunchCash.IsPositive() {
			sum.Lunches++
		}
		if b.Meal.DinnerVoucher.IsPositive() || b.Meal.DinnerCash.IsPositive() {
			sum.Dinners++
		}
		sum.MealTotal = sum.MealTotal.Add(b.Meal.Total)

		day := classify(date, s.Standby.SaturdayAsRest, c.cal)
		if b.Hours.Work.IsPositive() || b.Hours.Travel.IsPositive() {
			if day.rest {
				sum.RestDaysWorked++
			} else {
				sum.WorkDays++
			}
		}
		if standbyActive(e, s.Standby) {
			sum.StandbyDays++
		}
	}

	// Calendar dates marked standby with no logged entry still earn the
	// daily indemnity.
	if s.Standby.Enabled {
		for dateStr, selected := range s.Standby.Calendar {
			if !selected || seen[dateStr] {
				continue
			}
			date, ok := safeParseDate(dateStr)
			if !ok || date.Year() != year || int(date.Month()) != month {
				continue
			}
			day := classify(date, s.Standby.SaturdayAsRest, c.cal)
			sum.StandbyAllowanceTotal = sum.StandbyAllowanceTotal.Add(standbyAllowanceFor(day, s.Standby))
			sum.StandbyDays++
			sum.StandbyOnlyDays++
		}
	}

	sum.TotalHours = sum.WorkHours.
		Add(sum.TravelHours).
		Add(sum.StandbyWorkHours).
		Add(sum.StandbyTravelHours)

	sum.Total = sum.RegularPay.
		Add(sum.OvertimePay).
		Add(sum.OrdinaryBonusPay).
		Add(sum.TravelPay).
		Add(sum.StandbyWorkPay).
		Add(sum.StandbyTravelPay).
		Add(sum.StandbyAllowanceTotal).
		Add(sum.TravelAllowanceTotal)

	return sum
}
