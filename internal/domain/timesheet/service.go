package timesheet

import "context"

type Service interface {
	GetByDate(ctx context.Context, date string) (WorkEntry, error)
	ListByMonth(ctx context.Context, year, month int) ([]WorkEntry, error)
	Save(ctx context.Context, req SaveWorkEntryRequest) (WorkEntry, error)
	Delete(ctx context.Context, date string) error
}
