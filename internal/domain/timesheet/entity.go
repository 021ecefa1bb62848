package timesheet

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Flag is a tri-state manual override. The mobile client historically sent
// these fields as true/false, 1/0 or omitted them entirely; all of those
// spellings are normalized here, at ingestion, into one of three states.
type Flag int

const (
	FlagUnset Flag = iota
	FlagOn
	FlagOff
)

func (f Flag) On() bool  { return f == FlagOn }
func (f Flag) Off() bool { return f == FlagOff }

func (f Flag) MarshalJSON() ([]byte, error) {
	switch f {
	case FlagOn:
		return []byte("true"), nil
	case FlagOff:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = FlagUnset
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("1")):
		*f = FlagOn
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("0")):
		*f = FlagOff
	default:
		// Anything unrecognized counts as unset rather than failing the
		// whole entry.
		*f = FlagUnset
	}
	return nil
}

// Intervento is one standby intervention segment: travel out, up to two
// work sub-shifts, travel back. Any of the four sub-intervals may be absent.
type Intervento struct {
	TravelOutStart    string `json:"travel_out_start,omitempty"`
	TravelOutEnd      string `json:"travel_out_end,omitempty"`
	WorkStart1        string `json:"work_start_1,omitempty"`
	WorkEnd1          string `json:"work_end_1,omitempty"`
	WorkStart2        string `json:"work_start_2,omitempty"`
	WorkEnd2          string `json:"work_end_2,omitempty"`
	TravelReturnStart string `json:"travel_return_start,omitempty"`
	TravelReturnEnd   string `json:"travel_return_end,omitempty"`
}

// WorkEntry is one calendar day's raw log as recorded by the worker.
// All clock fields are "HH:MM" wall-clock strings; empty means absent.
type WorkEntry struct {
	ID   string `json:"id,omitempty"`
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

	// Standby and StandbyAllowance are two historical spellings of the same
	// manual override; the resolver treats them as equivalent.
	Standby          Flag `json:"standby,omitempty"`
	StandbyAllowance Flag `json:"standby_allowance,omitempty"`

	TravelAllowanceOverride Flag `json:"travel_allowance_override,omitempty"`

	LunchVoucher  Flag            `json:"lunch_voucher,omitempty"`
	DinnerVoucher Flag            `json:"dinner_voucher,omitempty"`
	LunchCash     decimal.Decimal `json:"lunch_cash"`
	DinnerCash    decimal.Decimal `json:"dinner_cash"`

	Completed bool   `json:"completed,omitempty"`
	Note      string `json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Absent reports whether the whole day is an absence (vacation or paid
// leave). An absent day always yields a zero earnings breakdown.
func (e WorkEntry) Absent() bool {
	return e.Ferie.On() || e.Permesso.On()
}

var _ json.Marshaler = FlagUnset
var _ json.Unmarshaler = (*Flag)(nil)
