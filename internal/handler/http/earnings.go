package http

import (
	"encoding/json"
	"net/http"

	"github.com/turniapp/turni-backend-go/internal/domain/earnings"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/handler/http/response"
)

type EarningsHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	DailyDetailed(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type earningsHandlerImpl struct {
	earningsService earnings.Service
}

func NewEarningsHandler(earningsService earnings.Service) EarningsHandler {
	return &earningsHandlerImpl{
		earningsService: earningsService,
	}
}

// Daily computes the breakdown for the posted entry without persisting it,
// so the mobile client can preview earnings while the day is still being
// edited.
func (h *earningsHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	var entry timesheet.WorkEntry

	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.earningsService.Daily(r.Context(), entry)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *earningsHandlerImpl) DailyDetailed(w http.ResponseWriter, r *http.Request) {
	var entry timesheet.WorkEntry

	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.earningsService.DailyDetailed(r.Context(), entry)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *earningsHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(r)
	if !ok || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	result, err := h.earningsService.Monthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
