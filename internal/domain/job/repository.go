package job

import "context"

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	ListByMonth(ctx context.Context, month string) ([]Job, error)

	// ListInvoicedByMonth returns invoiced jobs whose date carries the
	// YYYY-MM month prefix. This is the payroll engine's job feed.
	ListInvoicedByMonth(ctx context.Context, month string) ([]Job, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
}
