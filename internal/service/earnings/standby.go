package earnings

import (
	"github.com/shopspring/decimal"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
)

// standbyActive decides whether an entry counts as an on-call day.
// Precedence, highest first:
//  1. a manual off on either override field wins over everything,
//  2. a manual on wins over the calendar,
//  3. otherwise the date must be selected in the standby calendar and
//     standby must be enabled globally.
//
// Manual deactivation beating the calendar is the load-bearing invariant of
// the standby subsystem; do not reorder these checks.
func standbyActive(e timesheet.WorkEntry, s contract.StandbySettings) bool {
	if e.Standby.Off() || e.StandbyAllowance.Off() {
		return false
	}
	if e.Standby.On() || e.StandbyAllowance.On() {
		return true
	}
	return s.Enabled && s.Calendar[e.Date]
}

// standbyAllowanceFor returns the daily standby indemnity for a day that is
// standby-active. Exactly one tier applies: the rest-day tier on rest days,
// otherwise the configured weekday tier; each tier's fixed amount may be
// replaced by a custom one. This is the only place the preference order
// lives; every caller goes through it.
func standbyAllowanceFor(day dayInfo, s contract.StandbySettings) decimal.Decimal {
	if day.rest {
		if s.CustomRestDayAllowance != nil {
			return *s.CustomRestDayAllowance
		}
		return contract.StandbyRestDayTier
	}
	if s.AllowanceType == contract.StandbyAllowance24h {
		if s.CustomWeekday24hAllowance != nil {
			return *s.CustomWeekday24hAllowance
		}
		return contract.StandbyWeekday24hTier
	}
	if s.CustomWeekday16hAllowance != nil {
		return *s.CustomWeekday16hAllowance
	}
	return contract.StandbyWeekday16hTier
}

// standbyMinutes is the per-category minute count of a day's interventions,
// split into work and travel segments.
type standbyMinutes struct {
	work   map[earnings.RateCategory]int
	travel map[earnings.RateCategory]int

	workTotal   int
	travelTotal int
}

// bucketStandby walks every intervention segment at minute granularity and
// classifies each minute. A single segment may straddle several windows
// (e.g. 21:30-23:00 is half Saturday, half Saturday-night), which is why
// this is a walk and not an interval lookup.
func bucketStandby(interventi []timesheet.Intervento, day dayInfo) standbyMinutes {
	sm := standbyMinutes{
		work:   make(map[earnings.RateCategory]int),
		travel: make(map[earnings.RateCategory]int),
	}
	for _, iv := range interventi {
		sm.travelTotal += walkSegment(sm.travel, iv.TravelOutStart, iv.TravelOutEnd, day)
		sm.workTotal += walkSegment(sm.work, iv.WorkStart1, iv.WorkEnd1, day)
		sm.workTotal += walkSegment(sm.work, iv.WorkStart2, iv.WorkEnd2, day)
		sm.travelTotal += walkSegment(sm.travel, iv.TravelReturnStart, iv.TravelReturnEnd, day)
	}
	return sm
}

func walkSegment(buckets map[earnings.RateCategory]int, start, end string, day dayInfo) int {
	s, ok := parseClock(start)
	if !ok {
		return 0
	}
	dur := clockDiff(start, end)
	for i := 0; i < dur; i++ {
		m := (s + i) % minutesPerDay
		buckets[standbyCategoryFor(m, day)]++
	}
	return dur
}
