package timesheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/pkg/validator"
)

type timesheetServiceImpl struct {
	repo timesheet.Repository
}

func NewTimesheetService(repo timesheet.Repository) timesheet.Service {
	return &timesheetServiceImpl{repo: repo}
}

func (s *timesheetServiceImpl) GetByDate(ctx context.Context, date string) (timesheet.WorkEntry, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return timesheet.WorkEntry{}, timesheet.ErrInvalidDate
	}

	entry, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return timesheet.WorkEntry{}, err
	}
	return entry, nil
}

func (s *timesheetServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]timesheet.WorkEntry, error) {
	if year < 1 || !validator.IsValidMonth(month) {
		return nil, timesheet.ErrInvalidDate
	}

	entries, err := s.repo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}
	return entries, nil
}

func (s *timesheetServiceImpl) Save(ctx context.Context, req timesheet.SaveWorkEntryRequest) (timesheet.WorkEntry, error) {
	if err := req.Validate(); err != nil {
		return timesheet.WorkEntry{}, err
	}

	entry := req.ToEntry()
	entry.ID = uuid.NewString()

	saved, err := s.repo.Upsert(ctx, entry)
	if err != nil {
		return timesheet.WorkEntry{}, fmt.Errorf("failed to save work entry: %w", err)
	}
	return saved, nil
}

func (s *timesheetServiceImpl) Delete(ctx context.Context, date string) error {
	if _, ok := validator.IsValidDate(date); !ok {
		return timesheet.ErrInvalidDate
	}
	return s.repo.Delete(ctx, date)
}
