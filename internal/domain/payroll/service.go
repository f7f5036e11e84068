package payroll

import (
	"context"
)

// PayrollService defines business logic for the monthly payroll lifecycle
type PayrollService interface {
	// GetMonth returns the month's line items: the frozen snapshot when
	// the month is finalized, otherwise a live recomputation from
	// current jobs, staff, services and deductions.
	GetMonth(ctx context.Context, month string) (MonthViewResponse, error)

	// UpsertDeduction writes the deduction breakdown for (staff, month);
	// rejected with ErrMonthFinalized once the month is locked.
	UpsertDeduction(ctx context.Context, req UpsertDeductionRequest) (DeductionResponse, error)

	// ListDeductions lists entered deduction records for a month.
	ListDeductions(ctx context.Context, month string) ([]DeductionResponse, error)

	// Finalize freezes the month: persists the snapshot (replacing any
	// prior run for the month), posts the aggregate labor expense and
	// settles staff advance/loan balances, atomically.
	Finalize(ctx context.Context, month string) (MonthViewResponse, error)

	// ListRuns lists finalized runs, newest month first.
	ListRuns(ctx context.Context) ([]RunResponse, error)
}
