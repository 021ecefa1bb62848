package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	earningsService "github.com/turniapp/turni-backend-go/internal/service/earnings"
	timesheetService "github.com/turniapp/turni-backend-go/internal/service/timesheet"
)

// memEntryRepo is an in-memory timesheet.Repository for handler tests.
type memEntryRepo struct {
	entries map[string]timesheet.WorkEntry
}

func newMemEntryRepo() *memEntryRepo {
	return &memEntryRepo{entries: make(map[string]timesheet.WorkEntry)}
}

func (r *memEntryRepo) GetByDate(_ context.Context, date string) (timesheet.WorkEntry, error) {
	entry, ok := r.entries[date]
	if !ok {
		return timesheet.WorkEntry{}, timesheet.ErrWorkEntryNotFound
	}
	return entry, nil
}

func (r *memEntryRepo) ListByMonth(_ context.Context, year, month int) ([]timesheet.WorkEntry, error) {
	var out []timesheet.WorkEntry
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}

func (r *memEntryRepo) Upsert(_ context.Context, entry timesheet.WorkEntry) (timesheet.WorkEntry, error) {
	r.entries[entry.Date] = entry
	return entry, nil
}

func (r *memEntryRepo) Delete(_ context.Context, date string) error {
	if _, ok := r.entries[date]; !ok {
		return timesheet.ErrWorkEntryNotFound
	}
	delete(r.entries, date)
	return nil
}

// memSettingsRepo always reports no stored settings, so services fall back
// to the CCNL defaults.
type memSettingsRepo struct{}

func (memSettingsRepo) Get(_ context.Context) (contract.Settings, error) {
	return contract.Settings{}, contract.ErrSettingsNotFound
}

func (memSettingsRepo) Save(_ context.Context, s contract.Settings) (contract.Settings, error) {
	return s, nil
}

type stubContractService struct{}

func (stubContractService) Get(_ context.Context) (contract.Settings, error) {
	return contract.DefaultSettings(), nil
}

func (stubContractService) Update(_ context.Context, req contract.UpdateSettingsRequest) (contract.Settings, error) {
	if err := req.Validate(); err != nil {
		return contract.Settings{}, err
	}
	return req.ApplyTo(contract.DefaultSettings()), nil
}

type stubCalendar struct{}

func (stubCalendar) IsHoliday(_ time.Time) bool { return false }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	entryRepo := newMemEntryRepo()
	settingsRepo := memSettingsRepo{}

	timesheetSvc := timesheetService.NewTimesheetService(entryRepo)
	earningsSvc := earningsService.NewEarningsService(stubCalendar{}, entryRepo, settingsRepo)

	contractHandler := NewContractHandler(stubContractService{})
	timesheetHandler := NewTimesheetHandler(timesheetSvc)
	earningsHandler := NewEarningsHandler(earningsSvc)

	return NewRouter("test", "http://localhost:3000", timesheetHandler, contractHandler, earningsHandler)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEntryLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/entries/", timesheet.SaveWorkEntryRequest{
		Date:       "2024-03-13",
		WorkStart1: "08:00",
		WorkEnd1:   "17:00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/entries/2024-03-13", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success bool                `json:"success"`
		Data    timesheet.WorkEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "08:00", got.Data.WorkStart1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/entries/month/2024/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Data []timesheet.WorkEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/entries/2024-03-13", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/entries/2024-03-13", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveEntryValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/entries/", timesheet.SaveWorkEntryRequest{
		Date:       "13-03-2024",
		WorkStart1: "25:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
	assert.Contains(t, got.Error.Details, "date")
}

func TestDailyEarningsPreview(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/earnings/daily", timesheet.WorkEntry{
		Date:       "2024-03-13",
		WorkStart1: "08:00",
		WorkEnd1:   "16:00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Data earnings.Breakdown `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	// A standard 8h weekday pays exactly the default daily rate.
	assert.Equal(t, "131.28", got.Data.RegularPay.StringFixed(2))
	assert.Equal(t, "131.28", got.Data.Total.StringFixed(2))
}

func TestMonthlyEarningsRejectsBadMonth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/earnings/monthly/2024/13", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSettingsReturnsDefaults(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/settings/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data contract.Settings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, contract.StandbyAllowance16h, got.Data.Standby.AllowanceType)
}
