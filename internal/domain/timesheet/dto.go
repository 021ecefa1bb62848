package timesheet

import (
	"github.com/shopspring/decimal"
	"github.com/turniapp/turni-backend-go/internal/pkg/validator"
)

// SaveWorkEntryRequest upserts the log for one day; the date is the key.
type SaveWorkEntryRequest struct {
	Date string `json:"date"`

	WorkStart1 string `json:"work_start_1,omitempty"`
	WorkEnd1   string `json:"work_end_1,omitempty"`
	WorkStart2 string `json:"work_start_2,omitempty"`
	WorkEnd2   string `json:"work_end_2,omitempty"`

	TravelOutStart    string `json:"travel_out_start,omitempty"`
	TravelOutEnd      string `json:"travel_out_end,omitempty"`
	TravelReturnStart string `json:"travel_return_start,omitempty"`
	TravelReturnEnd   string `json:"travel_return_end,omitempty"`

	Interventi []Intervento `json:"interventi,omitempty"`

	Ferie    Flag `json:"ferie,omitempty"`
	Permesso Flag `json:"permesso,omitempty"`

	Standby          Flag `json:"standby,omitempty"`
	StandbyAllowance Flag `json:"standby_allowance,omitempty"`

	TravelAllowanceOverride Flag `json:"travel_allowance_override,omitempty"`

	LunchVoucher  Flag            `json:"lunch_voucher,omitempty"`
	DinnerVoucher Flag            `json:"dinner_voucher,omitempty"`
	LunchCash     decimal.Decimal `json:"lunch_cash"`
	DinnerCash    decimal.Decimal `json:"dinner_cash"`

	Completed bool   `json:"completed,omitempty"`
	Note      string `json:"note,omitempty"`
}

func (r *SaveWorkEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}

	clocks := map[string]string{
		"work_start_1":        r.WorkStart1,
		"work_end_1":          r.WorkEnd1,
		"work_start_2":        r.WorkStart2,
		"work_end_2":          r.WorkEnd2,
		"travel_out_start":    r.TravelOutStart,
		"travel_out_end":      r.TravelOutEnd,
		"travel_return_start": r.TravelReturnStart,
		"travel_return_end":   r.TravelReturnEnd,
	}
	for field, value := range clocks {
		if !validator.IsValidClock(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a valid HH:MM time"})
		}
	}

	for _, iv := range r.Interventi {
		for field, value := range map[string]string{
			"interventi.travel_out_start":    iv.TravelOutStart,
			"interventi.travel_out_end":      iv.TravelOutEnd,
			"interventi.work_start_1":        iv.WorkStart1,
			"interventi.work_end_1":          iv.WorkEnd1,
			"interventi.work_start_2":        iv.WorkStart2,
			"interventi.work_end_2":          iv.WorkEnd2,
			"interventi.travel_return_start": iv.TravelReturnStart,
			"interventi.travel_return_end":   iv.TravelReturnEnd,
		} {
			if !validator.IsValidClock(value) {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be a valid HH:MM time"})
			}
		}
	}

	if r.LunchCash.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "lunch_cash", Message: "must be non-negative"})
	}
	if r.DinnerCash.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "dinner_cash", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntry maps the request onto a WorkEntry.
func (r *SaveWorkEntryRequest) ToEntry() WorkEntry {
	return WorkEntry{
		Date:                    r.Date,
		WorkStart1:              r.WorkStart1,
		WorkEnd1:                r.WorkEnd1,
		WorkStart2:              r.WorkStart2,
		WorkEnd2:                r.WorkEnd2,
		TravelOutStart:          r.TravelOutStart,
		TravelOutEnd:            r.TravelOutEnd,
		TravelReturnStart:       r.TravelReturnStart,
		TravelReturnEnd:         r.TravelReturnEnd,
		Interventi:              r.Interventi,
		Ferie:                   r.Ferie,
		Permesso:                r.Permesso,
		Standby:                 r.Standby,
		StandbyAllowance:        r.StandbyAllowance,
		TravelAllowanceOverride: r.TravelAllowanceOverride,
		LunchVoucher:            r.LunchVoucher,
		DinnerVoucher:           r.DinnerVoucher,
		LunchCash:               r.LunchCash,
		DinnerCash:              r.DinnerCash,
		Completed:               r.Completed,
		Note:                    r.Note,
	}
}
