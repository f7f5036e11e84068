package staff

import (
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type StaffResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	Role           string          `json:"role"`
	PhoneNumber    string          `json:"phone_number,omitempty"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	CurrentAdvance decimal.Decimal `json:"current_advance"`
	LoanBalance    decimal.Decimal `json:"loan_balance"`
}

type CreateStaffRequest struct {
	FullName       string           `json:"full_name"`
	Role           string           `json:"role"`
	PhoneNumber    string           `json:"phone_number"`
	BaseSalary     decimal.Decimal  `json:"base_salary"`
	CurrentAdvance *decimal.Decimal `json:"current_advance,omitempty"`
	LoanBalance    *decimal.Decimal `json:"loan_balance,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}

	if !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: Washer, Detailer, Master Detailer, Ops Manager, Admin",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID          string           `json:"id"`
	FullName    *string          `json:"full_name,omitempty"`
	Role        *string          `json:"role,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Role != nil && !ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: Washer, Detailer, Master Detailer, Ops Manager, Admin",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
