package contract

import (
	"github.com/shopspring/decimal"
	"github.com/turniapp/turni-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest replaces whole sections of the configuration.
// Sections left nil keep their current value.
type UpdateSettingsRequest struct {
	Contract               *Contract                `json:"contract,omitempty"`
	TravelCompensationRate *decimal.Decimal         `json:"travel_compensation_rate,omitempty"`
	TravelHoursPolicy      *TravelHoursPolicy       `json:"travel_hours_policy,omitempty"`
	Standby                *StandbySettings         `json:"standby,omitempty"`
	TravelAllowance        *TravelAllowanceSettings `json:"travel_allowance,omitempty"`
	Meal                   *MealSettings            `json:"meal,omitempty"`
}

var validTravelAllowanceOptions = []string{
	string(TravelAllowanceAlways),
	string(TravelAllowanceWithTravelOnly),
	string(TravelAllowanceFullDayOnly),
	string(TravelAllowanceAlsoOnStandby),
	string(TravelAllowanceOnSpecialDays),
	string(TravelAllowanceProportionalCCNL),
	string(TravelAllowanceFullHalfDay),
	string(TravelAllowanceHalfHalfDay),
	string(TravelAllowanceCountStandbyHours),
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Contract != nil {
		if r.Contract.HourlyRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "contract.hourly_rate", Message: "must be non-negative"})
		}
		if r.Contract.DailyRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "contract.daily_rate", Message: "must be non-negative"})
		}
	}

	if r.TravelCompensationRate != nil {
		if r.TravelCompensationRate.IsNegative() || r.TravelCompensationRate.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{Field: "travel_compensation_rate", Message: "must be between 0 and 1"})
		}
	}

	if r.TravelHoursPolicy != nil {
		p := *r.TravelHoursPolicy
		if p != ExcessAsTravel && p != ExcessAsOvertime {
			errs = append(errs, validator.ValidationError{Field: "travel_hours_policy", Message: "must be EXCESS_AS_TRAVEL or EXCESS_AS_OVERTIME"})
		}
	}

	if r.Standby != nil {
		if r.Standby.AllowanceType != StandbyAllowance16h && r.Standby.AllowanceType != StandbyAllowance24h {
			errs = append(errs, validator.ValidationError{Field: "standby.allowance_type", Message: "must be 16H or 24H"})
		}
		for date := range r.Standby.Calendar {
			if _, ok := validator.IsValidDate(date); !ok {
				errs = append(errs, validator.ValidationError{Field: "standby.calendar", Message: "keys must be valid YYYY-MM-DD dates"})
				break
			}
		}
	}

	if r.TravelAllowance != nil {
		if r.TravelAllowance.DailyAmount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "travel_allowance.daily_amount", Message: "must be non-negative"})
		}
		for _, opt := range r.TravelAllowance.Options {
			if !validator.IsInSlice(string(opt), validTravelAllowanceOptions) {
				errs = append(errs, validator.ValidationError{Field: "travel_allowance.options", Message: "unknown option " + string(opt)})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTo merges the request into current and returns the result.
func (r *UpdateSettingsRequest) ApplyTo(current Settings) Settings {
	if r.Contract != nil {
		current.Contract = *r.Contract
	}
	if r.TravelCompensationRate != nil {
		current.TravelCompensationRate = *r.TravelCompensationRate
	}
	if r.TravelHoursPolicy != nil {
		current.TravelHoursPolicy = *r.TravelHoursPolicy
	}
	if r.Standby != nil {
		current.Standby = *r.Standby
	}
	if r.TravelAllowance != nil {
		current.TravelAllowance = *r.TravelAllowance
	}
	if r.Meal != nil {
		current.Meal = *r.Meal
	}
	return current
}
