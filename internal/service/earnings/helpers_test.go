package earnings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
)

// stubCalendar marks only the listed dates as holidays.
type stubCalendar map[string]bool

func (c stubCalendar) IsHoliday(date time.Time) bool {
	return c[date.Format("2006-01-02")]
}

func requireDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// testSettings returns a contract where hourlyRate*8 == dailyRate exactly,
// with default CCNL premiums and everything optional disabled.
func testSettings(t *testing.T) contract.Settings {
	t.Helper()
	s := contract.DefaultSettings()
	s.Contract.HourlyRate = requireDecimal(t, "16.41")
	s.Contract.DailyRate = requireDecimal(t, "131.28")
	s.TravelCompensationRate = decimal.NewFromInt(1)
	s.TravelHoursPolicy = contract.ExcessAsTravel
	return s
}

// Fixed reference dates: 2024-03-13 is a Wednesday, 2024-03-09 a Saturday,
// 2024-03-10 a Sunday.
const (
	wednesday = "2024-03-13"
	saturday  = "2024-03-09"
	sunday    = "2024-03-10"
)
