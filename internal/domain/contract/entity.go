package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelHoursPolicy selects how hours beyond the standard work day are paid
// when the daily-rate threshold is crossed.
type TravelHoursPolicy string

const (
	ExcessAsTravel   TravelHoursPolicy = "EXCESS_AS_TRAVEL"
	ExcessAsOvertime TravelHoursPolicy = "EXCESS_AS_OVERTIME"
)

// StandbyAllowanceType selects which weekday standby tier applies.
type StandbyAllowanceType string

const (
	StandbyAllowance16h StandbyAllowanceType = "16H"
	StandbyAllowance24h StandbyAllowanceType = "24H"
)

// TravelAllowanceOption is one selectable activation or amount-computation
// rule for the daily travel allowance.
type TravelAllowanceOption string

const (
	// Activation rules.
	TravelAllowanceAlways         TravelAllowanceOption = "ALWAYS"
	TravelAllowanceWithTravelOnly TravelAllowanceOption = "WITH_TRAVEL_ONLY"
	TravelAllowanceFullDayOnly    TravelAllowanceOption = "FULL_DAY_ONLY"
	TravelAllowanceAlsoOnStandby  TravelAllowanceOption = "ALSO_ON_STANDBY"
	TravelAllowanceOnSpecialDays  TravelAllowanceOption = "ALSO_ON_SPECIAL_DAYS"

	// Amount-computation methods. At most one is ever applied, in this
	// priority order.
	TravelAllowanceProportionalCCNL TravelAllowanceOption = "PROPORTIONAL_CCNL"
	TravelAllowanceFullHalfDay      TravelAllowanceOption = "FULL_ALLOWANCE_HALF_DAY"
	TravelAllowanceHalfHalfDay      TravelAllowanceOption = "HALF_ALLOWANCE_HALF_DAY"

	// Modifier: the proportional base also counts standby work hours.
	TravelAllowanceCountStandbyHours TravelAllowanceOption = "COUNT_STANDBY_HOURS"
)

// RateTable holds the CCNL percentage premiums over the base hourly rate.
// Overtime variants apply once the day has crossed the standard 8 hours,
// ordinary variants otherwise. Values are percentages (25 = +25%).
type RateTable struct {
	OvertimeDay          decimal.Decimal `json:"overtime_day"`
	OvertimeNightUntil22 decimal.Decimal `json:"overtime_night_until_22"`
	OvertimeNightAfter22 decimal.Decimal `json:"overtime_night_after_22"`
	OvertimeHoliday      decimal.Decimal `json:"overtime_holiday"`
	OvertimeSunday       decimal.Decimal `json:"overtime_sunday"`

	OrdinaryNightUntil22 decimal.Decimal `json:"ordinary_night_until_22"`
	OrdinaryNightAfter22 decimal.Decimal `json:"ordinary_night_after_22"`
	OrdinaryHoliday      decimal.Decimal `json:"ordinary_holiday"`
	OrdinarySunday       decimal.Decimal `json:"ordinary_sunday"`
	OrdinarySaturday     decimal.Decimal `json:"ordinary_saturday"`
	OrdinaryNightHoliday decimal.Decimal `json:"ordinary_night_holiday"`
}

// DefaultRateTable returns the CCNL default premiums.
func DefaultRateTable() RateTable {
	return RateTable{
		OvertimeDay:          decimal.NewFromInt(20),
		OvertimeNightUntil22: decimal.NewFromInt(25),
		OvertimeNightAfter22: decimal.NewFromInt(50),
		OvertimeHoliday:      decimal.NewFromInt(50),
		OvertimeSunday:       decimal.NewFromInt(50),
		OrdinaryNightUntil22: decimal.NewFromInt(20),
		OrdinaryNightAfter22: decimal.NewFromInt(25),
		OrdinaryHoliday:      decimal.NewFromInt(30),
		OrdinarySunday:       decimal.NewFromInt(30),
		OrdinarySaturday:     decimal.NewFromInt(25),
		OrdinaryNightHoliday: decimal.NewFromInt(60),
	}
}

// Fixed CCNL standby allowance tiers, euro per day.
var (
	StandbyRestDayTier    = decimal.RequireFromString("10.07")
	StandbyWeekday16hTier = decimal.RequireFromString("5.03")
	StandbyWeekday24hTier = decimal.RequireFromString("7.55")
)

// Contract is the worker's pay schedule.
type Contract struct {
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Rates         RateTable       `json:"rates"`
}

// StandbySettings configures the on-call subsystem. Calendar maps a
// YYYY-MM-DD date to whether standby is scheduled ("selected") that day.
type StandbySettings struct {
	Enabled        bool            `json:"enabled"`
	Calendar       map[string]bool `json:"calendar,omitempty"`
	SaturdayAsRest bool            `json:"saturday_as_rest"`

	AllowanceType StandbyAllowanceType `json:"allowance_type"`

	// Custom amounts override the fixed CCNL tiers when set.
	CustomRestDayAllowance    *decimal.Decimal `json:"custom_rest_day_allowance,omitempty"`
	CustomWeekday16hAllowance *decimal.Decimal `json:"custom_weekday_16h_allowance,omitempty"`
	CustomWeekday24hAllowance *decimal.Decimal `json:"custom_weekday_24h_allowance,omitempty"`
}

// TravelAllowanceSettings configures the flat daily travel stipend.
type TravelAllowanceSettings struct {
	Enabled     bool                    `json:"enabled"`
	DailyAmount decimal.Decimal         `json:"daily_amount"`
	Options     []TravelAllowanceOption `json:"options,omitempty"`
}

// Selected reports whether an option is part of the configured set.
func (t TravelAllowanceSettings) Selected(opt TravelAllowanceOption) bool {
	for _, o := range t.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// MealSettings holds the standard voucher and cash amounts per meal.
type MealSettings struct {
	LunchVoucherAmount  decimal.Decimal `json:"lunch_voucher_amount"`
	LunchCashAmount     decimal.Decimal `json:"lunch_cash_amount"`
	DinnerVoucherAmount decimal.Decimal `json:"dinner_voucher_amount"`
	DinnerCashAmount    decimal.Decimal `json:"dinner_cash_amount"`
}

// Settings is the full contract configuration consumed by the earnings
// engine. The engine treats it as an immutable snapshot.
type Settings struct {
	ID       string   `json:"id,omitempty"`
	Contract Contract `json:"contract"`

	// TravelCompensationRate is the fraction of the hourly rate paid for
	// travel time (1.0 = full rate).
	TravelCompensationRate decimal.Decimal   `json:"travel_compensation_rate"`
	TravelHoursPolicy      TravelHoursPolicy `json:"travel_hours_policy"`

	Standby         StandbySettings         `json:"standby"`
	TravelAllowance TravelAllowanceSettings `json:"travel_allowance"`
	Meal            MealSettings            `json:"meal"`

	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DefaultSettings returns the configuration used until the worker saves
// their own contract.
func DefaultSettings() Settings {
	return Settings{
		Contract: Contract{
			HourlyRate:    decimal.NewFromFloat(16.41),
			DailyRate:     decimal.NewFromFloat(131.28),
			MonthlySalary: decimal.NewFromFloat(2840.21),
			Rates:         DefaultRateTable(),
		},
		TravelCompensationRate: decimal.NewFromInt(1),
		TravelHoursPolicy:      ExcessAsTravel,
		Standby: StandbySettings{
			AllowanceType: StandbyAllowance16h,
		},
		Meal: MealSettings{
			LunchVoucherAmount: decimal.NewFromFloat(8.00),
		},
	}
}
