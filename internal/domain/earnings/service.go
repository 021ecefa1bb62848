package earnings

import (
	"context"

	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
)

// Service computes earnings for entries against the stored settings.
type Service interface {
	Daily(ctx context.Context, entry timesheet.WorkEntry) (Breakdown, error)
	DailyDetailed(ctx context.Context, entry timesheet.WorkEntry) (DetailedBreakdown, error)
	Monthly(ctx context.Context, year, month int) (MonthlySummary, error)
}
