package earnings

import (
	"context"
	"errors"
	"fmt"

	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/pkg/holidays"
)

type earningsServiceImpl struct {
	calc         *Calculator
	entryRepo    timesheet.Repository
	settingsRepo contract.Repository
}

func NewEarningsService(cal holidays.Calendar, entryRepo timesheet.Repository, settingsRepo contract.Repository) earnings.Service {
	return &earningsServiceImpl{
		calc:         NewCalculator(cal),
		entryRepo:    entryRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *earningsServiceImpl) settings(ctx context.Context) (contract.Settings, error) {
	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, contract.ErrSettingsNotFound) {
			return contract.DefaultSettings(), nil
		}
		return contract.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return st, nil
}

func (s *earningsServiceImpl) Daily(ctx context.Context, entry timesheet.WorkEntry) (earnings.Breakdown, error) {
	st, err := s.settings(ctx)
	if err != nil {
		return earnings.Breakdown{}, err
	}
	return s.calc.DailyBreakdown(entry, st), nil
}

func (s *earningsServiceImpl) DailyDetailed(ctx context.Context, entry timesheet.WorkEntry) (earnings.DetailedBreakdown, error) {
	st, err := s.settings(ctx)
	if err != nil {
		return earnings.DetailedBreakdown{}, err
	}
	return s.calc.DetailedDailyBreakdown(entry, st), nil
}

func (s *earningsServiceImpl) Monthly(ctx context.Context, year, month int) (earnings.MonthlySummary, error) {
	st, err := s.settings(ctx)
	if err != nil {
		return earnings.MonthlySummary{}, err
	}
	entries, err := s.entryRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return earnings.MonthlySummary{}, fmt.Errorf("failed to list entries for %d-%02d: %w", year, month, err)
	}
	return s.calc.MonthlySummary(entries, st, year, month), nil
}
