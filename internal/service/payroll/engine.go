package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
)

var (
	carPieceRate  = decimal.NewFromInt(25)
	bikePieceRate = decimal.NewFromInt(10)

	// profitMargin is the shop's proxy for gross margin on a billed
	// total; staffShare is the slice of that margin handed to staff.
	profitMargin = decimal.NewFromFloat(0.40)
	staffShare   = decimal.NewFromFloat(0.10)

	referralRate = decimal.NewFromFloat(0.10)
)

// Inputs is everything the engine reads. The engine never touches a
// repository or a clock: callers load the collaborators, the engine
// derives line items deterministically from them.
type Inputs struct {
	Month      string // "YYYY-MM"
	Jobs       []job.Job
	Staff      []staff.Staff
	Services   []catalog.Service
	Deductions map[string]payroll.DeductionAmounts // keyed by staff id
}

// Compute derives one line item per roster member for the month. Jobs
// outside the month or not yet invoiced are ignored. Recomputing with
// unchanged inputs yields identical output.
func Compute(in Inputs) []payroll.LineItem {
	jobs := invoicedInMonth(in.Jobs, in.Month)

	led := newLedger()
	eveningDays := applyDailyPools(led, jobs)
	applyJobIncentives(led, jobs, in.Services)
	applyShiftBonus(led, eveningDays)
	applyWashingPool(led, jobs, in.Services, in.Staff)

	items := make([]payroll.LineItem, 0, len(in.Staff))
	for _, member := range in.Staff {
		deductions := in.Deductions[member.ID]

		item := payroll.LineItem{
			StaffID:    member.ID,
			StaffName:  member.FullName,
			Role:       string(member.Role),
			BaseSalary: member.BaseSalary,

			DailyLimitIncentive:   led.dailyLimit.at(member.ID),
			EveningLimitIncentive: led.eveningLimit.at(member.ID),
			EveningProfitShare:    led.eveningProfit.at(member.ID),
			SundayProfitShare:     led.sundayProfit.at(member.ID),
			ReferralCommission:    led.referral.at(member.ID),
			PremiumIncentive:      led.premium.at(member.ID),
			WashingPoolShare:      led.washingPool.at(member.ID),
			ShiftBonus:            led.shiftBonus.at(member.ID),
		}

		item.GrossIncentives = item.DailyLimitIncentive.
			Add(item.EveningLimitIncentive).
			Add(item.EveningProfitShare).
			Add(item.SundayProfitShare).
			Add(item.ReferralCommission).
			Add(item.PremiumIncentive).
			Add(item.WashingPoolShare).
			Add(item.ShiftBonus)
		item.GrossPay = item.BaseSalary.Add(item.GrossIncentives)
		item.Deductions = deductions
		item.TotalDeduction = deductions.Total()
		// No floor: deductions larger than gross pay leave net negative.
		item.NetPay = item.GrossPay.Sub(item.TotalDeduction)

		items = append(items, item)
	}

	return items
}

func invoicedInMonth(jobs []job.Job, month string) []job.Job {
	filtered := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Status != job.StatusInvoiced {
			continue
		}
		if !strings.HasPrefix(j.Date, month+"-") {
			continue
		}
		filtered = append(filtered, j)
	}
	return filtered
}

// bucket accumulates amounts per staff id.
type bucket map[string]decimal.Decimal

func (b bucket) add(staffID string, amount decimal.Decimal) {
	b[staffID] = b[staffID].Add(amount)
}

func (b bucket) at(staffID string) decimal.Decimal {
	return b[staffID]
}

// ledger holds one bucket per incentive scheme for a single computation.
type ledger struct {
	dailyLimit    bucket
	eveningLimit  bucket
	eveningProfit bucket
	sundayProfit  bucket
	referral      bucket
	premium       bucket
	washingPool   bucket
	shiftBonus    bucket
}

func newLedger() *ledger {
	return &ledger{
		dailyLimit:    bucket{},
		eveningLimit:  bucket{},
		eveningProfit: bucket{},
		sundayProfit:  bucket{},
		referral:      bucket{},
		premium:       bucket{},
		washingPool:   bucket{},
		shiftBonus:    bucket{},
	}
}

// staffSet is a set of distinct staff ids within one grouping scope
// (a date, an evening, a job's crew, a role group). Pools always split
// per distinct member, never per job touched.
type staffSet map[string]struct{}

func (s staffSet) add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
}

// splitEvenly divides pool by the member count and credits each member's
// share to b. Empty sets and zero pools distribute nothing.
func (s staffSet) splitEvenly(b bucket, pool decimal.Decimal) {
	if len(s) == 0 || pool.IsZero() {
		return
	}
	share := pool.Div(decimal.NewFromInt(int64(len(s))))
	for id := range s {
		b.add(id, share)
	}
}
