package earnings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
)

func TestStandbyActivationPrecedence(t *testing.T) {
	calendarOn := contract.StandbySettings{
		Enabled:  true,
		Calendar: map[string]bool{wednesday: true},
	}

	cases := []struct {
		name    string
		entry   timesheet.WorkEntry
		setting contract.StandbySettings
		want    bool
	}{
		{
			name:    "manual off beats selected calendar",
			entry:   timesheet.WorkEntry{Date: wednesday, StandbyAllowance: timesheet.FlagOff},
			setting: calendarOn,
			want:    false,
		},
		{
			name:    "manual off on the other flag also wins",
			entry:   timesheet.WorkEntry{Date: wednesday, Standby: timesheet.FlagOff},
			setting: calendarOn,
			want:    false,
		},
		{
			name:    "manual on beats disabled standby",
			entry:   timesheet.WorkEntry{Date: wednesday, Standby: timesheet.FlagOn},
			setting: contract.StandbySettings{Enabled: false},
			want:    true,
		},
		{
			name:    "calendar selected and enabled",
			entry:   timesheet.WorkEntry{Date: wednesday},
			setting: calendarOn,
			want:    true,
		},
		{
			name:    "calendar selected but globally disabled",
			entry:   timesheet.WorkEntry{Date: wednesday},
			setting: contract.StandbySettings{Enabled: false, Calendar: map[string]bool{wednesday: true}},
			want:    false,
		},
		{
			name:    "date not in calendar",
			entry:   timesheet.WorkEntry{Date: sunday},
			setting: calendarOn,
			want:    false,
		},
		{
			name:    "off wins even when the other flag is on",
			entry:   timesheet.WorkEntry{Date: wednesday, Standby: timesheet.FlagOn, StandbyAllowance: timesheet.FlagOff},
			setting: calendarOn,
			want:    false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, standbyActive(c.entry, c.setting))
		})
	}
}

func TestStandbyAllowanceTiers(t *testing.T) {
	weekday := dayInfo{}
	rest := dayInfo{sunday: true, rest: true}

	s := contract.StandbySettings{Enabled: true, AllowanceType: contract.StandbyAllowance16h}
	assert.True(t, standbyAllowanceFor(weekday, s).Equal(contract.StandbyWeekday16hTier))
	assert.True(t, standbyAllowanceFor(rest, s).Equal(contract.StandbyRestDayTier))

	s.AllowanceType = contract.StandbyAllowance24h
	assert.True(t, standbyAllowanceFor(weekday, s).Equal(contract.StandbyWeekday24hTier))

	custom := decimal.NewFromInt(12)
	s.CustomWeekday24hAllowance = &custom
	assert.True(t, standbyAllowanceFor(weekday, s).Equal(custom))

	customRest := decimal.NewFromInt(20)
	s.CustomRestDayAllowance = &customRest
	assert.True(t, standbyAllowanceFor(rest, s).Equal(customRest))
}

func TestBucketStandbySundayNight(t *testing.T) {
	day := dayInfo{sunday: true, rest: true}
	interventi := []timesheet.Intervento{
		{WorkStart1: "23:00", WorkEnd1: "01:00"},
	}

	sm := bucketStandby(interventi, day)

	// The whole shift lands in night_holiday: 23:00-24:00 is night on a
	// Sunday and 00:00-01:00 stays on the entry's day classification.
	assert.Equal(t, 120, sm.work[earnings.CategoryNightHoliday])
	assert.Equal(t, 120, sm.workTotal)
	assert.Len(t, sm.work, 1)
}

func TestBucketStandbyStraddlesNightWindow(t *testing.T) {
	day := dayInfo{saturday: true}
	interventi := []timesheet.Intervento{
		{WorkStart1: "21:30", WorkEnd1: "23:00"},
	}

	sm := bucketStandby(interventi, day)

	assert.Equal(t, 30, sm.work[earnings.CategorySaturday])
	assert.Equal(t, 60, sm.work[earnings.CategorySaturdayNight])
	assert.Equal(t, 90, sm.workTotal)
}

func TestBucketStandbyTravelSegments(t *testing.T) {
	day := dayInfo{}
	interventi := []timesheet.Intervento{
		{
			TravelOutStart:    "14:00",
			TravelOutEnd:      "14:30",
			WorkStart1:        "14:30",
			WorkEnd1:          "16:00",
			TravelReturnStart: "16:00",
			TravelReturnEnd:   "16:30",
		},
	}

	sm := bucketStandby(interventi, day)

	assert.Equal(t, 90, sm.workTotal)
	assert.Equal(t, 60, sm.travelTotal)
	assert.Equal(t, 90, sm.work[earnings.CategoryOrdinary])
	assert.Equal(t, 60, sm.travel[earnings.CategoryOrdinary])
}

// Saturday(+25) and night(+25) compose additively to +50, never to a
// multiplied +56.25.
func TestStandbyPremiumsAdditive(t *testing.T) {
	rt := contract.DefaultRateTable()
	premiums := standbyPremiums(rt)

	assert.True(t, premiums[earnings.CategorySaturdayNight].Equal(decimal.NewFromInt(50)))
	assert.True(t, premiums[earnings.CategoryNightHoliday].Equal(decimal.NewFromInt(55)))
	assert.True(t, premiums[earnings.CategoryOrdinary].IsZero())
}

func TestPriceBucketsPromotesOrdinaryOnLongWeekdays(t *testing.T) {
	rt := contract.DefaultRateTable()
	base := decimal.NewFromInt(10)
	buckets := map[earnings.RateCategory]int{earnings.CategoryOrdinary: 60}

	assert.True(t, priceBuckets(buckets, base, rt, false).Equal(decimal.NewFromInt(10)))
	// Promoted to the day-overtime premium: 10 * 1.2.
	assert.True(t, priceBuckets(buckets, base, rt, true).Equal(requireDecimal(t, "12")))

	// Promotion never touches the non-ordinary buckets.
	night := map[earnings.RateCategory]int{earnings.CategoryNight: 60}
	assert.True(t, priceBuckets(night, base, rt, true).Equal(requireDecimal(t, "12.5")))
}
