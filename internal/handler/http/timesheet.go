package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetByDate(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

func (h *timesheetHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := h.timesheetService.GetByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	results, err := h.timesheetService.ListByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// An empty month is a normal answer, not a 404.
	if results == nil {
		results = []timesheet.WorkEntry{}
	}
	response.Success(w, results)
}

func (h *timesheetHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveWorkEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry saved", result)
}

func (h *timesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.timesheetService.Delete(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry deleted", nil)
}

// yearMonthParams reads {year}/{month} URL params.
func yearMonthParams(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
