package earnings

import "github.com/shopspring/decimal"

// RateCategory names a time-of-day / day-type pricing bucket. Standby
// minutes are classified into exactly one category each; the detailed
// breakdown also partitions ordinary hours this way for display.
type RateCategory string

const (
	CategoryOrdinary       RateCategory = "ordinary"
	CategoryEveningUntil22 RateCategory = "night_until_22"
	CategoryNight          RateCategory = "night"
	CategorySaturday       RateCategory = "saturday"
	CategorySaturdayNight  RateCategory = "saturday_night"
	CategoryHoliday        RateCategory = "holiday"
	CategoryNightHoliday   RateCategory = "night_holiday"
)

// CategoryDetail is the hours logged and earnings accrued in one category.
type CategoryDetail struct {
	Hours    decimal.Decimal `json:"hours"`
	Earnings decimal.Decimal `json:"earnings"`
}

// MealAllowance itemizes the lunch/dinner reimbursement for one day.
// It is reported separately and excluded from the taxable total.
type MealAllowance struct {
	LunchVoucher  decimal.Decimal `json:"lunch_voucher"`
	LunchCash     decimal.Decimal `json:"lunch_cash"`
	DinnerVoucher decimal.Decimal `json:"dinner_voucher"`
	DinnerCash    decimal.Decimal `json:"dinner_cash"`
	Vouchers      int             `json:"vouchers"`
	Total         decimal.Decimal `json:"total"`
}

// HoursBreakdown is the diagnostic split of a day's hours.
type HoursBreakdown struct {
	Work          decimal.Decimal `json:"work"`
	Travel        decimal.Decimal `json:"travel"`
	Overtime      decimal.Decimal `json:"overtime"`
	StandbyWork   decimal.Decimal `json:"standby_work"`
	StandbyTravel decimal.Decimal `json:"standby_travel"`
}

// Breakdown is the itemized gross pay estimate for one day.
type Breakdown struct {
	Date string `json:"date"`

	RegularPay       decimal.Decimal `json:"regular_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	OrdinaryBonusPay decimal.Decimal `json:"ordinary_bonus_pay"`
	TravelPay        decimal.Decimal `json:"travel_pay"`
	StandbyWorkPay   decimal.Decimal `json:"standby_work_pay"`
	StandbyTravelPay decimal.Decimal `json:"standby_travel_pay"`
	StandbyAllowance decimal.Decimal `json:"standby_allowance"`
	TravelAllowance  decimal.Decimal `json:"travel_allowance"`

	Meal MealAllowance `json:"meal"`

	// Total is the taxable sum of the pay items above; meal excluded.
	Total decimal.Decimal `json:"total"`

	Hours HoursBreakdown `json:"hours"`
}

// DetailedBreakdown is a Breakdown plus per-category partitions of the
// ordinary and standby hours. The standby daily allowance appears once, in
// the embedded Breakdown, never in the partitions.
type DetailedBreakdown struct {
	Breakdown

	OrdinaryDetail map[RateCategory]CategoryDetail `json:"ordinary_detail"`
	StandbyDetail  map[RateCategory]CategoryDetail `json:"standby_detail"`
}

// MonthlySummary accumulates one month of daily breakdowns plus the
// standby-only days synthesized from the standby calendar.
type MonthlySummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalHours         decimal.Decimal `json:"total_hours"`
	WorkHours          decimal.Decimal `json:"work_hours"`
	TravelHours        decimal.Decimal `json:"travel_hours"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	StandbyWorkHours   decimal.Decimal `json:"standby_work_hours"`
	StandbyTravelHours decimal.Decimal `json:"standby_travel_hours"`

	WorkDays        int `json:"work_days"`
	RestDaysWorked  int `json:"rest_days_worked"`
	StandbyDays     int `json:"standby_days"`
	StandbyOnlyDays int `json:"standby_only_days"`

	Lunches    int             `json:"lunches"`
	Dinners    int             `json:"dinners"`
	MealTotal  decimal.Decimal `json:"meal_total"`

	RegularPay            decimal.Decimal `json:"regular_pay"`
	OvertimePay           decimal.Decimal `json:"overtime_pay"`
	OrdinaryBonusPay      decimal.Decimal `json:"ordinary_bonus_pay"`
	TravelPay             decimal.Decimal `json:"travel_pay"`
	StandbyWorkPay        decimal.Decimal `json:"standby_work_pay"`
	StandbyTravelPay      decimal.Decimal `json:"standby_travel_pay"`
	StandbyAllowanceTotal decimal.Decimal `json:"standby_allowance_total"`
	TravelAllowanceTotal  decimal.Decimal `json:"travel_allowance_total"`

	Total decimal.Decimal `json:"total"`
}
