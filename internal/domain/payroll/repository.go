package payroll

import (
	"context"

	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
)

type DeductionRepository interface {
	// Upsert writes the deduction breakdown for (staff, month), replacing
	// any previous amounts for that key.
	Upsert(ctx context.Context, rec DeductionRecord) (DeductionRecord, error)
	GetByStaffMonth(ctx context.Context, staffID, month string) (DeductionRecord, error)
	ListByMonth(ctx context.Context, month string) ([]DeductionRecord, error)
}

type RunRepository interface {
	GetByMonth(ctx context.Context, month string) (Run, error)
	List(ctx context.Context) ([]Run, error)

	// Finalize commits the snapshot atomically: it replaces any existing
	// run for the month, stores the line items verbatim, posts the labor
	// expense transaction and reduces staff advance/loan balances by the
	// amounts recovered in the run. Either everything lands or nothing.
	Finalize(ctx context.Context, run Run, expense finance.Transaction) error
}
