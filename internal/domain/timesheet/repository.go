package timesheet

import "context"

type Repository interface {
	GetByDate(ctx context.Context, date string) (WorkEntry, error)
	ListByMonth(ctx context.Context, year, month int) ([]WorkEntry, error)
	Upsert(ctx context.Context, entry WorkEntry) (WorkEntry, error)
	Delete(ctx context.Context, date string) error
}
