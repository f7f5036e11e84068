package payroll

import (
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertDeductionRequest struct {
	StaffID string `json:"staff_id"`
	Month   string `json:"month"`

	LateFine        *decimal.Decimal `json:"late_fine,omitempty"`
	LeaveFine       *decimal.Decimal `json:"leave_fine,omitempty"`
	AdvanceRecovery *decimal.Decimal `json:"advance_recovery,omitempty"`
	LoanEMI         *decimal.Decimal `json:"loan_emi,omitempty"`
	Other           *decimal.Decimal `json:"other,omitempty"`
}

func (r *UpsertDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	for field, amount := range map[string]*decimal.Decimal{
		"late_fine":        r.LateFine,
		"leave_fine":       r.LeaveFine,
		"advance_recovery": r.AdvanceRecovery,
		"loan_emi":         r.LoanEMI,
		"other":            r.Other,
	} {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Amounts folds the optional request fields into a full breakdown,
// treating absent fields as zero.
func (r *UpsertDeductionRequest) Amounts() DeductionAmounts {
	orZero := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}
	return DeductionAmounts{
		LateFine:        orZero(r.LateFine),
		LeaveFine:       orZero(r.LeaveFine),
		AdvanceRecovery: orZero(r.AdvanceRecovery),
		LoanEMI:         orZero(r.LoanEMI),
		Other:           orZero(r.Other),
	}
}

type MonthViewResponse struct {
	Month       string          `json:"month"`
	Status      string          `json:"status"`
	GeneratedAt *string         `json:"generated_at,omitempty"`
	TotalNet    decimal.Decimal `json:"total_net"`
	Items       []LineItem      `json:"items"`
}

type RunResponse struct {
	ID          string          `json:"id"`
	Month       string          `json:"month"`
	GeneratedAt string          `json:"generated_at"`
	TotalNet    decimal.Decimal `json:"total_net"`
	StaffCount  int             `json:"staff_count"`
}

type DeductionResponse struct {
	StaffID string           `json:"staff_id"`
	Month   string           `json:"month"`
	Amounts DeductionAmounts `json:"amounts"`
	Total   decimal.Decimal  `json:"total"`
}
