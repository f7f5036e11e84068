package job

import "context"

// JobService defines business logic for service tickets
type JobService interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetJob(ctx context.Context, id string) (JobResponse, error)
	ListJobsByMonth(ctx context.Context, month string) ([]JobResponse, error)
	InvoiceJob(ctx context.Context, id string) (JobResponse, error)
}
