package response

import (
	"errors"
	"net/http"

	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/domain/timesheet"
	"github.com/turniapp/turni-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, timesheet.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)

	// Contract domain errors
	case errors.Is(err, contract.ErrSettingsNotFound):
		NotFound(w, "Contract settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
