package payroll

import "errors"

var (
	ErrMonthFinalized    = errors.New("payroll for this month is finalized and locked")
	ErrRunNotFound       = errors.New("payroll run not found")
	ErrInvalidMonth      = errors.New("month must be in YYYY-MM format")
	ErrNoStaff           = errors.New("no staff on the roster for this payroll run")
	ErrDeductionNotFound = errors.New("deduction record not found")
)
