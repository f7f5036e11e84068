package job

import (
	"context"

	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
)

type JobServiceImpl struct {
	jobRepo job.JobRepository
}

func NewJobService(jobRepo job.JobRepository) job.JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	status := job.StatusOpen
	if req.Status != "" {
		status = job.Status(req.Status)
	}

	created, err := s.jobRepo.Create(ctx, job.Job{
		Date:         req.Date,
		TimeIn:       req.TimeIn,
		VehicleClass: job.VehicleClass(req.VehicleClass),
		VehicleRegNo: req.VehicleRegNo,
		CustomerName: req.CustomerName,
		ServiceIDs:   req.ServiceIDs,
		StaffIDs:     req.StaffIDs,
		ReferredBy:   req.ReferredBy,
		Status:       status,
		Total:        req.Total,
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (job.JobResponse, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return mapToResponse(j), nil
}

func (s *JobServiceImpl) ListJobsByMonth(ctx context.Context, month string) ([]job.JobResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, job.ErrInvalidMonthKey
	}

	jobs, err := s.jobRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	result := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		result = append(result, mapToResponse(j))
	}
	return result, nil
}

// InvoiceJob moves a ticket to INVOICED, the point at which it becomes
// immutable and visible to payroll.
func (s *JobServiceImpl) InvoiceJob(ctx context.Context, id string) (job.JobResponse, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	if j.Status == job.StatusInvoiced {
		return job.JobResponse{}, job.ErrJobNotEditable
	}

	if err := s.jobRepo.UpdateStatus(ctx, id, job.StatusInvoiced); err != nil {
		return job.JobResponse{}, err
	}

	return s.GetJob(ctx, id)
}

func mapToResponse(j job.Job) job.JobResponse {
	return job.JobResponse{
		ID:           j.ID,
		Date:         j.Date,
		TimeIn:       j.TimeIn,
		VehicleClass: string(j.VehicleClass),
		VehicleRegNo: j.VehicleRegNo,
		CustomerName: j.CustomerName,
		ServiceIDs:   j.ServiceIDs,
		StaffIDs:     j.StaffIDs,
		ReferredBy:   j.ReferredBy,
		Status:       string(j.Status),
		Total:        j.Total,
	}
}
