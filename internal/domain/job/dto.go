package job

import (
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type JobResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	TimeIn       string          `json:"time_in"`
	VehicleClass string          `json:"vehicle_class"`
	VehicleRegNo string          `json:"vehicle_reg_no,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	ServiceIDs   []string        `json:"service_ids"`
	StaffIDs     []string        `json:"staff_ids"`
	ReferredBy   *string         `json:"referred_by,omitempty"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
}

type CreateJobRequest struct {
	Date         string          `json:"date"`
	TimeIn       string          `json:"time_in"`
	VehicleClass string          `json:"vehicle_class"`
	VehicleRegNo string          `json:"vehicle_reg_no"`
	CustomerName string          `json:"customer_name"`
	ServiceIDs   []string        `json:"service_ids"`
	StaffIDs     []string        `json:"staff_ids"`
	ReferredBy   *string         `json:"referred_by,omitempty"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// time_in is intentionally not validated beyond presence: legacy
	// tickets carry blank or malformed times and still settle.
	if validator.IsEmpty(r.VehicleClass) {
		errs = append(errs, validator.ValidationError{
			Field:   "vehicle_class",
			Message: "vehicle_class is required",
		})
	}

	if r.Status != "" {
		switch Status(r.Status) {
		case StatusOpen, StatusInProgress, StatusInvoiced, StatusCancelled:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: OPEN, IN_PROGRESS, INVOICED, CANCELLED",
			})
		}
	}

	if r.Total.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total",
			Message: "total must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
