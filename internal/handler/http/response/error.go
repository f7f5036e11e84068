package response

import (
	"errors"
	"net/http"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrMonthFinalized):
		Locked(w, "Payroll for this month is finalized and locked")
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrNoStaff):
		BadRequest(w, "No staff on the roster for this payroll run", nil)
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction record not found")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffPhoneExists):
		Conflict(w, "Staff member with this phone number already exists")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobNotEditable):
		Conflict(w, "Invoiced job can no longer be edited")
	case errors.Is(err, job.ErrInvalidMonthKey):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Catalog domain errors
	case errors.Is(err, catalog.ErrServiceNotFound):
		NotFound(w, "Catalog service not found")
	case errors.Is(err, catalog.ErrServiceSKUExists):
		Conflict(w, "Catalog service with this SKU already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
