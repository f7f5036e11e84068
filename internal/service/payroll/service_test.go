package payroll

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
)

// ===== IN-MEMORY FAKES =====

type fakeStaffRepo struct {
	members []staff.Staff
}

func (f *fakeStaffRepo) Create(_ context.Context, s staff.Staff) (staff.Staff, error) {
	f.members = append(f.members, s)
	return s, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(_ context.Context) ([]staff.Staff, error) {
	return f.members, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, _ staff.UpdateStaffRequest) error {
	return nil
}

type fakeJobRepo struct {
	jobs []job.Job
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	f.jobs = append(f.jobs, j)
	return j, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (job.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrJobNotFound
}

func (f *fakeJobRepo) ListByMonth(_ context.Context, month string) ([]job.Job, error) {
	var out []job.Job
	for _, j := range f.jobs {
		if strings.HasPrefix(j.Date, month+"-") {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListInvoicedByMonth(_ context.Context, month string) ([]job.Job, error) {
	var out []job.Job
	for _, j := range f.jobs {
		if j.Status == job.StatusInvoiced && strings.HasPrefix(j.Date, month+"-") {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, _ string, _ job.Status) error {
	return nil
}

type fakeServiceRepo struct {
	services []catalog.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, s catalog.Service) (catalog.Service, error) {
	f.services = append(f.services, s)
	return s, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (catalog.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return catalog.Service{}, catalog.ErrServiceNotFound
}

func (f *fakeServiceRepo) List(_ context.Context, _ bool) ([]catalog.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) Count(_ context.Context) (int, error) {
	return len(f.services), nil
}

type fakeDeductionRepo struct {
	records map[string]payroll.DeductionRecord // staffID|month
}

func newFakeDeductionRepo() *fakeDeductionRepo {
	return &fakeDeductionRepo{records: make(map[string]payroll.DeductionRecord)}
}

func (f *fakeDeductionRepo) Upsert(_ context.Context, rec payroll.DeductionRecord) (payroll.DeductionRecord, error) {
	f.records[rec.StaffID+"|"+rec.Month] = rec
	return rec, nil
}

func (f *fakeDeductionRepo) GetByStaffMonth(_ context.Context, staffID, month string) (payroll.DeductionRecord, error) {
	rec, ok := f.records[staffID+"|"+month]
	if !ok {
		return payroll.DeductionRecord{}, payroll.ErrDeductionNotFound
	}
	return rec, nil
}

func (f *fakeDeductionRepo) ListByMonth(_ context.Context, month string) ([]payroll.DeductionRecord, error) {
	var out []payroll.DeductionRecord
	for _, rec := range f.records {
		if rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeRunRepo struct {
	runs     map[string]payroll.Run
	expenses []finance.Transaction
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[string]payroll.Run)}
}

func (f *fakeRunRepo) GetByMonth(_ context.Context, month string) (payroll.Run, error) {
	run, ok := f.runs[month]
	if !ok {
		return payroll.Run{}, payroll.ErrRunNotFound
	}
	return run, nil
}

func (f *fakeRunRepo) List(_ context.Context) ([]payroll.Run, error) {
	var out []payroll.Run
	for _, run := range f.runs {
		out = append(out, run)
	}
	return out, nil
}

func (f *fakeRunRepo) Finalize(_ context.Context, run payroll.Run, expense finance.Transaction) error {
	f.runs[run.Month] = run
	f.expenses = append(f.expenses, expense)
	return nil
}

type payrollFixture struct {
	staffRepo     *fakeStaffRepo
	jobRepo       *fakeJobRepo
	serviceRepo   *fakeServiceRepo
	deductionRepo *fakeDeductionRepo
	runRepo       *fakeRunRepo
	service       payroll.PayrollService
}

func newPayrollFixture(members []staff.Staff, jobs []job.Job) *payrollFixture {
	f := &payrollFixture{
		staffRepo:     &fakeStaffRepo{members: members},
		jobRepo:       &fakeJobRepo{jobs: jobs},
		serviceRepo:   &fakeServiceRepo{},
		deductionRepo: newFakeDeductionRepo(),
		runRepo:       newFakeRunRepo(),
	}
	f.service = NewPayrollService(f.staffRepo, f.jobRepo, f.serviceRepo, f.deductionRepo, f.runRepo)
	return f
}

// ===== PAYROLL SERVICE TESTS =====

func TestPayrollService_GetMonth_DraftFollowsLiveData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 18000)},
		nil,
	)

	view, err := f.service.GetMonth(ctx, testMonth)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusDraft), view.Status)
	assert.Nil(t, view.GeneratedAt)
	assertAmount(t, 18000, view.TotalNet)

	// New jobs show up on the very next read.
	f.jobRepo.jobs = append(f.jobRepo.jobs, mkJob("2024-06-03", "19:00", job.VehicleSedan, 1000, "A"))

	view, err = f.service.GetMonth(ctx, testMonth)
	require.NoError(t, err)
	assertAmount(t, 18065, view.TotalNet) // base + 25 piece + 40 profit share
}

func TestPayrollService_GetMonth_InvalidMonth(t *testing.T) {
	t.Parallel()

	f := newPayrollFixture(nil, nil)

	_, err := f.service.GetMonth(context.Background(), "June 2024")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)
}

func TestPayrollService_Finalize_FreezesSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 18000)},
		[]job.Job{mkJob("2024-06-03", "19:00", job.VehicleSedan, 1000, "A")},
	)

	view, err := f.service.Finalize(ctx, testMonth)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusFinalized), view.Status)
	require.NotNil(t, view.GeneratedAt)
	assertAmount(t, 18065, view.TotalNet)

	// Jobs added after finalize do not move the frozen month.
	f.jobRepo.jobs = append(f.jobRepo.jobs, mkJob("2024-06-04", "10:00", job.VehicleSedan, 9000, "A"))

	view, err = f.service.GetMonth(ctx, testMonth)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusFinalized), view.Status)
	assertAmount(t, 18065, view.TotalNet)
}

func TestPayrollService_Finalize_OverwritesPriorRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 18000)},
		nil,
	)

	first, err := f.service.Finalize(ctx, testMonth)
	require.NoError(t, err)
	assertAmount(t, 18000, first.TotalNet)

	f.jobRepo.jobs = append(f.jobRepo.jobs, mkJob("2024-06-03", "19:00", job.VehicleSedan, 1000, "A"))

	second, err := f.service.Finalize(ctx, testMonth)
	require.NoError(t, err)
	assertAmount(t, 18065, second.TotalNet)

	// Exactly one run per month, reflecting the second computation.
	require.Len(t, f.runRepo.runs, 1)
	stored := f.runRepo.runs[testMonth]
	assert.True(t, stored.TotalNet.Equal(second.TotalNet))
	assert.NotEqual(t, first.Items, stored.Items)
}

func TestPayrollService_Finalize_PostsLaborExpense(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 18000),
			mkStaff("B", "Bala", staff.RoleWasher, 12000),
		},
		nil,
	)

	_, err := f.service.Finalize(ctx, testMonth)
	require.NoError(t, err)

	require.Len(t, f.runRepo.expenses, 1)
	expense := f.runRepo.expenses[0]
	assert.Equal(t, finance.TransactionExpense, expense.Type)
	assert.Equal(t, finance.CategoryLaborExpense, expense.Category)
	assertAmount(t, 30000, expense.Amount)
	assert.Contains(t, expense.Description, testMonth)
	assert.Contains(t, expense.Description, "2 staff")
}

func TestPayrollService_Finalize_EmptyRoster(t *testing.T) {
	t.Parallel()

	f := newPayrollFixture(nil, nil)

	_, err := f.service.Finalize(context.Background(), testMonth)
	assert.ErrorIs(t, err, payroll.ErrNoStaff)
}

func TestPayrollService_UpsertDeduction_AppliesToDraft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 18000)},
		nil,
	)

	fine := decimal.NewFromInt(500)
	resp, err := f.service.UpsertDeduction(ctx, payroll.UpsertDeductionRequest{
		StaffID:  "A",
		Month:    testMonth,
		LateFine: &fine,
	})
	require.NoError(t, err)
	assertAmount(t, 500, resp.Total)

	view, err := f.service.GetMonth(ctx, testMonth)
	require.NoError(t, err)
	assertAmount(t, 17500, view.TotalNet)
}

func TestPayrollService_UpsertDeduction_LockedAfterFinalize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 18000)},
		nil,
	)

	_, err := f.service.Finalize(ctx, testMonth)
	require.NoError(t, err)

	fine := decimal.NewFromInt(500)
	_, err = f.service.UpsertDeduction(ctx, payroll.UpsertDeductionRequest{
		StaffID:  "A",
		Month:    testMonth,
		LateFine: &fine,
	})
	assert.ErrorIs(t, err, payroll.ErrMonthFinalized)

	// Other months stay editable.
	_, err = f.service.UpsertDeduction(ctx, payroll.UpsertDeductionRequest{
		StaffID:  "A",
		Month:    "2024-07",
		LateFine: &fine,
	})
	assert.NoError(t, err)
}

func TestPayrollService_UpsertDeduction_UnknownStaff(t *testing.T) {
	t.Parallel()

	f := newPayrollFixture(nil, nil)

	fine := decimal.NewFromInt(500)
	_, err := f.service.UpsertDeduction(context.Background(), payroll.UpsertDeductionRequest{
		StaffID:  "ghost",
		Month:    testMonth,
		LateFine: &fine,
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestPayrollService_ListRuns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newPayrollFixture(
		[]staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 18000)},
		nil,
	)

	_, err := f.service.Finalize(ctx, testMonth)
	require.NoError(t, err)

	runs, err := f.service.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, testMonth, runs[0].Month)
	assert.Equal(t, 1, runs[0].StaffCount)
}
