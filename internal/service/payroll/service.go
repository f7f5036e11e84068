package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	staffRepo     staff.StaffRepository
	jobRepo       job.JobRepository
	serviceRepo   catalog.ServiceRepository
	deductionRepo payroll.DeductionRepository
	runRepo       payroll.RunRepository

	now func() time.Time
}

func NewPayrollService(
	staffRepo staff.StaffRepository,
	jobRepo job.JobRepository,
	serviceRepo catalog.ServiceRepository,
	deductionRepo payroll.DeductionRepository,
	runRepo payroll.RunRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		staffRepo:     staffRepo,
		jobRepo:       jobRepo,
		serviceRepo:   serviceRepo,
		deductionRepo: deductionRepo,
		runRepo:       runRepo,
		now:           time.Now,
	}
}

func (s *PayrollServiceImpl) GetMonth(ctx context.Context, month string) (payroll.MonthViewResponse, error) {
	if !validator.IsValidMonth(month) {
		return payroll.MonthViewResponse{}, payroll.ErrInvalidMonth
	}

	run, err := s.runRepo.GetByMonth(ctx, month)
	if err == nil {
		generatedAt := run.GeneratedAt.Format(time.RFC3339)
		return payroll.MonthViewResponse{
			Month:       month,
			Status:      string(payroll.RunStatusFinalized),
			GeneratedAt: &generatedAt,
			TotalNet:    run.TotalNet,
			Items:       run.Items,
		}, nil
	}
	if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.MonthViewResponse{}, err
	}

	items, err := s.computeDraft(ctx, month)
	if err != nil {
		return payroll.MonthViewResponse{}, err
	}

	return payroll.MonthViewResponse{
		Month:    month,
		Status:   string(payroll.RunStatusDraft),
		TotalNet: sumNet(items),
		Items:    items,
	}, nil
}

func (s *PayrollServiceImpl) UpsertDeduction(ctx context.Context, req payroll.UpsertDeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}

	// Deductions freeze with the month.
	if _, err := s.runRepo.GetByMonth(ctx, req.Month); err == nil {
		return payroll.DeductionResponse{}, payroll.ErrMonthFinalized
	} else if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.DeductionResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return payroll.DeductionResponse{}, err
	}

	rec, err := s.deductionRepo.Upsert(ctx, payroll.DeductionRecord{
		StaffID: req.StaffID,
		Month:   req.Month,
		Amounts: req.Amounts(),
	})
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	return payroll.DeductionResponse{
		StaffID: rec.StaffID,
		Month:   rec.Month,
		Amounts: rec.Amounts,
		Total:   rec.Amounts.Total(),
	}, nil
}

func (s *PayrollServiceImpl) ListDeductions(ctx context.Context, month string) ([]payroll.DeductionResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	records, err := s.deductionRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.DeductionResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, payroll.DeductionResponse{
			StaffID: rec.StaffID,
			Month:   rec.Month,
			Amounts: rec.Amounts,
			Total:   rec.Amounts.Total(),
		})
	}
	return result, nil
}

// Finalize recomputes the month one last time and freezes it. A month
// that is already finalized is overwritten: the new snapshot replaces
// the old one, there is no run history.
func (s *PayrollServiceImpl) Finalize(ctx context.Context, month string) (payroll.MonthViewResponse, error) {
	if !validator.IsValidMonth(month) {
		return payroll.MonthViewResponse{}, payroll.ErrInvalidMonth
	}

	items, err := s.computeDraft(ctx, month)
	if err != nil {
		return payroll.MonthViewResponse{}, err
	}
	if len(items) == 0 {
		return payroll.MonthViewResponse{}, payroll.ErrNoStaff
	}

	totalNet := sumNet(items)
	generatedAt := s.now()

	run := payroll.Run{
		ID:          uuid.NewString(),
		Month:       month,
		GeneratedAt: generatedAt,
		TotalNet:    totalNet,
		Status:      payroll.RunStatusFinalized,
		Items:       items,
	}

	expense := finance.Transaction{
		ID:          uuid.NewString(),
		Type:        finance.TransactionExpense,
		Category:    finance.CategoryLaborExpense,
		Amount:      totalNet,
		Description: fmt.Sprintf("Salary disbursement for %s (%d staff)", month, len(items)),
		OccurredAt:  generatedAt,
	}

	if err := s.runRepo.Finalize(ctx, run, expense); err != nil {
		return payroll.MonthViewResponse{}, fmt.Errorf("failed to finalize payroll for %s: %w", month, err)
	}

	generatedAtStr := generatedAt.Format(time.RFC3339)
	return payroll.MonthViewResponse{
		Month:       month,
		Status:      string(payroll.RunStatusFinalized),
		GeneratedAt: &generatedAtStr,
		TotalNet:    totalNet,
		Items:       items,
	}, nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context) ([]payroll.RunResponse, error) {
	runs, err := s.runRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, payroll.RunResponse{
			ID:          run.ID,
			Month:       run.Month,
			GeneratedAt: run.GeneratedAt.Format(time.RFC3339),
			TotalNet:    run.TotalNet,
			StaffCount:  len(run.Items),
		})
	}
	return result, nil
}

// computeDraft loads the live collaborators and runs the pure engine.
func (s *PayrollServiceImpl) computeDraft(ctx context.Context, month string) ([]payroll.LineItem, error) {
	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff roster: %w", err)
	}

	jobs, err := s.jobRepo.ListInvoicedByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load job feed: %w", err)
	}

	services, err := s.serviceRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	deductions, err := s.deductionRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load deductions: %w", err)
	}
	deductionMap := make(map[string]payroll.DeductionAmounts, len(deductions))
	for _, rec := range deductions {
		deductionMap[rec.StaffID] = rec.Amounts
	}

	return Compute(Inputs{
		Month:      month,
		Jobs:       jobs,
		Staff:      roster,
		Services:   services,
		Deductions: deductionMap,
	}), nil
}

func sumNet(items []payroll.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.NetPay)
	}
	return total
}
