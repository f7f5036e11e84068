package payroll

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
)

const testMonth = "2024-06"

func mkStaff(id, name string, role staff.Role, base int64) staff.Staff {
	return staff.Staff{
		ID:         id,
		FullName:   name,
		Role:       role,
		BaseSalary: decimal.NewFromInt(base),
	}
}

func mkJob(date, timeIn string, class job.VehicleClass, total int64, staffIDs ...string) job.Job {
	return job.Job{
		Date:         date,
		TimeIn:       timeIn,
		VehicleClass: class,
		StaffIDs:     staffIDs,
		Status:       job.StatusInvoiced,
		Total:        decimal.NewFromInt(total),
	}
}

func itemFor(t *testing.T, items []payroll.LineItem, staffID string) payroll.LineItem {
	t.Helper()
	for _, item := range items {
		if item.StaffID == staffID {
			return item
		}
	}
	require.Failf(t, "line item missing", "no line item for staff %s", staffID)
	return payroll.LineItem{}
}

func assertAmount(t *testing.T, expected float64, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.NewFromFloat(expected)),
		"expected %v, got %s", expected, actual)
}

func TestCompute_DailyLimitThreshold(t *testing.T) {
	t.Parallel()

	// 11 normal-hours four-wheelers over the 10-a-day baseline: pool
	// is (11-10)*25, split over the two distinct staff on shift.
	jobs := make([]job.Job, 0, 11)
	for i := 0; i < 11; i++ {
		crew := "A"
		if i%2 == 0 {
			crew = "B"
		}
		jobs = append(jobs, mkJob("2024-06-03", "10:00", job.VehicleSedan, 500, crew))
	}

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  jobs,
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 0),
			mkStaff("B", "Bala", staff.RoleDetailer, 0),
		},
	})

	assertAmount(t, 12.5, itemFor(t, items, "A").DailyLimitIncentive)
	assertAmount(t, 12.5, itemFor(t, items, "B").DailyLimitIncentive)
}

func TestCompute_DailyLimitNotReached(t *testing.T) {
	t.Parallel()

	jobs := make([]job.Job, 0, 10)
	for i := 0; i < 10; i++ {
		jobs = append(jobs, mkJob("2024-06-03", "10:00", job.VehicleSedan, 500, "A"))
	}

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  jobs,
		Staff: []staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 0)},
	})

	assert.True(t, itemFor(t, items, "A").DailyLimitIncentive.IsZero())
}

func TestCompute_EveningSplitIndependence(t *testing.T) {
	t.Parallel()

	// One evening four-wheeler, revenue 1000, crew of two. The piece
	// pool and the profit pool divide separately over the same crew.
	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  []job.Job{mkJob("2024-06-03", "19:00", job.VehicleSUV, 1000, "A", "B")},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 0),
			mkStaff("B", "Bala", staff.RoleWasher, 0),
		},
	})

	for _, id := range []string{"A", "B"} {
		item := itemFor(t, items, id)
		assertAmount(t, 12.5, item.EveningLimitIncentive)
		assertAmount(t, 20, item.EveningProfitShare)
		assertAmount(t, 32.5, item.TotalEvening())
	}
}

func TestCompute_SundayPoolSpansWholeDay(t *testing.T) {
	t.Parallel()

	// 2024-06-02 is a Sunday. The pool covers the full day's revenue
	// and splits across everyone who worked that day, not per job.
	items := Compute(Inputs{
		Month: testMonth,
		Jobs: []job.Job{
			mkJob("2024-06-02", "10:00", job.VehicleSedan, 2000, "A"),
			mkJob("2024-06-02", "11:00", job.VehicleSUV, 3000, "B"),
		},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 0),
			mkStaff("B", "Bala", staff.RoleWasher, 0),
		},
	})

	assertAmount(t, 100, itemFor(t, items, "A").SundayProfitShare)
	assertAmount(t, 100, itemFor(t, items, "B").SundayProfitShare)
}

func TestCompute_ReferralGoesWhollyToReferrer(t *testing.T) {
	t.Parallel()

	referrer := "C"
	j := mkJob("2024-06-03", "10:00", job.VehicleSedan, 5000, "A", "B")
	j.ReferredBy = &referrer

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  []job.Job{j},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 0),
			mkStaff("B", "Bala", staff.RoleWasher, 0),
			mkStaff("C", "Chitra", staff.RoleOpsManager, 0),
		},
	})

	assertAmount(t, 500, itemFor(t, items, "C").ReferralCommission)
	assert.True(t, itemFor(t, items, "A").ReferralCommission.IsZero())
	assert.True(t, itemFor(t, items, "B").ReferralCommission.IsZero())
}

func TestPremiumBonus_Tiers(t *testing.T) {
	t.Parallel()

	services := map[string]catalog.Service{
		"ceramic": {ID: "ceramic", Name: "Ceramic Coating", SKU: "COAT-CERAMIC", Category: catalog.CategoryCoating},
		"polish":  {ID: "polish", Name: "Machine Polish", SKU: "POL-MACHINE", Category: catalog.CategoryDetailing},
		"wash":    {ID: "wash", Name: "Foam Wash", SKU: "WASH-FOAM", Category: catalog.CategoryWashing},
	}

	cases := []struct {
		name      string
		serviceID string
		total     int64
		want      int64
	}{
		{"ceramic at high floor", "ceramic", 30000, 6000},
		{"ceramic below high floor", "ceramic", 29999, 4000},
		{"polish high tier", "polish", 6000, 600},
		{"polish mid tier boundary", "polish", 2500, 400},
		{"polish low tier", "polish", 1999, 200},
		{"polish tier gap pays low", "polish", 2200, 200},
		{"washing is not premium", "wash", 50000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := mkJob("2024-06-03", "10:00", job.VehicleSedan, tc.total, "A")
			j.ServiceIDs = []string{tc.serviceID}

			got := premiumBonus(j, services)
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
				"expected %d, got %s", tc.want, got)
		})
	}
}

func TestPremiumBonus_CoatingWinsOverPolish(t *testing.T) {
	t.Parallel()

	services := map[string]catalog.Service{
		"graphene": {ID: "graphene", Name: "Graphene Coating", SKU: "COAT-GRAPHENE"},
		"polish":   {ID: "polish", Name: "Machine Polish", SKU: "POL-MACHINE"},
	}

	j := mkJob("2024-06-03", "10:00", job.VehicleSedan, 10000, "A")
	j.ServiceIDs = []string{"polish", "graphene"}

	got := premiumBonus(j, services)
	assert.True(t, got.Equal(decimal.NewFromInt(4000)), "got %s", got)
}

func TestPremiumBonus_UnknownServiceIgnored(t *testing.T) {
	t.Parallel()

	j := mkJob("2024-06-03", "10:00", job.VehicleSedan, 40000, "A")
	j.ServiceIDs = []string{"deleted-service"}

	got := premiumBonus(j, map[string]catalog.Service{})
	assert.True(t, got.IsZero())
}

func TestCompute_PremiumSplitAcrossCrew(t *testing.T) {
	t.Parallel()

	j := mkJob("2024-06-03", "10:00", job.VehicleLuxury, 30000, "A", "B")
	j.ServiceIDs = []string{"svc-1"}

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  []job.Job{j},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 0),
			mkStaff("B", "Bala", staff.RoleMasterDetailer, 0),
		},
		Services: []catalog.Service{
			{ID: "svc-1", Name: "Ceramic Coating", SKU: "COAT-CERAMIC", Category: catalog.CategoryCoating},
		},
	})

	assertAmount(t, 3000, itemFor(t, items, "A").PremiumIncentive)
	assertAmount(t, 3000, itemFor(t, items, "B").PremiumIncentive)
}

func TestCompute_ShiftBonusThresholds(t *testing.T) {
	t.Parallel()

	// A works 20 distinct evening dates, B works 15, C works 14.
	var jobs []job.Job
	for d := 1; d <= 20; d++ {
		date := fmt.Sprintf("2024-06-%02d", d)
		crew := []string{"A"}
		if d <= 15 {
			crew = append(crew, "B")
		}
		if d <= 14 {
			crew = append(crew, "C")
		}
		jobs = append(jobs, mkJob(date, "19:00", job.VehicleSedan, 100, crew...))
	}

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  jobs,
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 0),
			mkStaff("B", "Bala", staff.RoleWasher, 0),
			mkStaff("C", "Chitra", staff.RoleWasher, 0),
		},
	})

	assertAmount(t, 2000, itemFor(t, items, "A").ShiftBonus)
	assertAmount(t, 1500, itemFor(t, items, "B").ShiftBonus)
	assert.True(t, itemFor(t, items, "C").ShiftBonus.IsZero())
}

func TestCompute_ShiftBonusCountsDistinctDates(t *testing.T) {
	t.Parallel()

	// 20 evening jobs all on one date count as a single evening day.
	jobs := make([]job.Job, 0, 20)
	for i := 0; i < 20; i++ {
		jobs = append(jobs, mkJob("2024-06-03", "19:00", job.VehicleSedan, 100, "A"))
	}

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  jobs,
		Staff: []staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 0)},
	})

	assert.True(t, itemFor(t, items, "A").ShiftBonus.IsZero())
}

func TestCompute_WashingPoolEmptyGroupShareLost(t *testing.T) {
	t.Parallel()

	j := mkJob("2024-06-03", "10:00", job.VehicleSedan, 10000, "A", "B")
	j.ServiceIDs = []string{"wash"}

	// Pool is 10000*0.40*0.10 = 400. With no detailers on the roster
	// the 40% detailer cut goes undistributed.
	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  []job.Job{j},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleWasher, 0),
			mkStaff("B", "Bala", staff.RoleWasher, 0),
		},
		Services: []catalog.Service{
			{ID: "wash", Name: "Foam Wash", SKU: "WASH-FOAM", Category: catalog.CategoryWashing},
		},
	})

	assertAmount(t, 120, itemFor(t, items, "A").WashingPoolShare)
	assertAmount(t, 120, itemFor(t, items, "B").WashingPoolShare)

	distributed := decimal.Zero
	for _, item := range items {
		distributed = distributed.Add(item.WashingPoolShare)
	}
	assert.True(t, distributed.LessThan(decimal.NewFromInt(400)))
}

func TestCompute_IgnoresOutOfScopeJobs(t *testing.T) {
	t.Parallel()

	open := mkJob("2024-06-03", "19:00", job.VehicleSedan, 1000, "A")
	open.Status = job.StatusOpen
	cancelled := mkJob("2024-06-03", "19:00", job.VehicleSedan, 1000, "A")
	cancelled.Status = job.StatusCancelled
	otherMonth := mkJob("2024-07-01", "19:00", job.VehicleSedan, 1000, "A")

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  []job.Job{open, cancelled, otherMonth},
		Staff: []staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 20000)},
	})

	item := itemFor(t, items, "A")
	assert.True(t, item.GrossIncentives.IsZero())
	assertAmount(t, 20000, item.NetPay)
}

func TestCompute_MalformedTimeFallsOutsideBothWindows(t *testing.T) {
	t.Parallel()

	// Hour 0 is neither normal hours nor evening; the job still counts
	// toward Sunday revenue.
	j := mkJob("2024-06-02", "bogus", job.VehicleSedan, 1000, "A")

	items := Compute(Inputs{
		Month: testMonth,
		Jobs:  []job.Job{j},
		Staff: []staff.Staff{mkStaff("A", "Arjun", staff.RoleDetailer, 0)},
	})

	item := itemFor(t, items, "A")
	assert.True(t, item.EveningLimitIncentive.IsZero())
	assert.True(t, item.DailyLimitIncentive.IsZero())
	assertAmount(t, 40, item.SundayProfitShare)
}

func TestCompute_DraftRecomputationIsPure(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Month: testMonth,
		Jobs: []job.Job{
			mkJob("2024-06-02", "10:00", job.VehicleSedan, 3000, "A", "B"),
			mkJob("2024-06-03", "19:00", job.VehicleBike, 500, "A"),
		},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 18000),
			mkStaff("B", "Bala", staff.RoleWasher, 12000),
		},
		Deductions: map[string]payroll.DeductionAmounts{
			"A": {LateFine: decimal.NewFromInt(100)},
		},
	}

	first := Compute(in)
	second := Compute(in)
	assert.Equal(t, first, second)

	// A changed deduction moves only the deduction side of A's item.
	in.Deductions = map[string]payroll.DeductionAmounts{
		"A": {LateFine: decimal.NewFromInt(500)},
	}
	third := Compute(in)

	before := itemFor(t, first, "A")
	after := itemFor(t, third, "A")
	assert.True(t, before.GrossIncentives.Equal(after.GrossIncentives))
	assert.True(t, before.GrossPay.Equal(after.GrossPay))
	assert.False(t, before.TotalDeduction.Equal(after.TotalDeduction))
	assert.False(t, before.NetPay.Equal(after.NetPay))
	assert.Equal(t, itemFor(t, first, "B"), itemFor(t, third, "B"))
}

func TestCompute_NetPayInvariant(t *testing.T) {
	t.Parallel()

	referrer := "B"
	ceramic := mkJob("2024-06-02", "19:00", job.VehicleLuxury, 35000, "A", "B")
	ceramic.ServiceIDs = []string{"svc-ceramic"}
	ceramic.ReferredBy = &referrer

	items := Compute(Inputs{
		Month: testMonth,
		Jobs: []job.Job{
			ceramic,
			mkJob("2024-06-03", "10:00", job.VehicleBike, 300, "C"),
		},
		Staff: []staff.Staff{
			mkStaff("A", "Arjun", staff.RoleDetailer, 18000),
			mkStaff("B", "Bala", staff.RoleMasterDetailer, 25000),
			mkStaff("C", "Chitra", staff.RoleWasher, 10000),
		},
		Services: []catalog.Service{
			{ID: "svc-ceramic", Name: "Ceramic Coating", SKU: "COAT-CERAMIC", Category: catalog.CategoryCoating},
		},
		Deductions: map[string]payroll.DeductionAmounts{
			"A": {LateFine: decimal.NewFromInt(200), LoanEMI: decimal.NewFromInt(1500)},
			"C": {Other: decimal.NewFromInt(99999)},
		},
	})

	require.Len(t, items, 3)
	for _, item := range items {
		want := item.BaseSalary.Add(item.GrossIncentives).Sub(item.TotalDeduction)
		assert.True(t, item.NetPay.Equal(want), "staff %s: net %s != %s", item.StaffID, item.NetPay, want)
	}

	// Deductions above gross pay push net negative; that is valid output.
	assert.True(t, itemFor(t, items, "C").NetPay.IsNegative())
}
