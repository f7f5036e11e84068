package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionAmounts is the per-staff, per-month deduction breakdown. All
// fields default to zero when nothing was entered for the month.
type DeductionAmounts struct {
	LateFine        decimal.Decimal `json:"late_fine"`
	LeaveFine       decimal.Decimal `json:"leave_fine"`
	AdvanceRecovery decimal.Decimal `json:"advance_recovery"`
	LoanEMI         decimal.Decimal `json:"loan_emi"`
	Other           decimal.Decimal `json:"other"`
}

func (d DeductionAmounts) Total() decimal.Decimal {
	return d.LateFine.
		Add(d.LeaveFine).
		Add(d.AdvanceRecovery).
		Add(d.LoanEMI).
		Add(d.Other)
}

// DeductionRecord is editable while the month is in draft and frozen once
// the month's run is finalized.
type DeductionRecord struct {
	ID        string
	StaffID   string
	Month     string // "YYYY-MM"
	Amounts   DeductionAmounts
	UpdatedAt time.Time
}

// LineItem is one staff member's computed pay for a month: base salary,
// the incentive buckets, the deduction breakdown and the derived sums.
// Draft line items are recomputed on every read and never persisted;
// finalized line items are stored verbatim on the run.
type LineItem struct {
	StaffID    string          `json:"staff_id"`
	StaffName  string          `json:"staff_name"`
	Role       string          `json:"role"`
	BaseSalary decimal.Decimal `json:"base_salary"`

	DailyLimitIncentive   decimal.Decimal `json:"daily_limit_incentive"`
	EveningLimitIncentive decimal.Decimal `json:"evening_limit_incentive"`
	EveningProfitShare    decimal.Decimal `json:"evening_profit_share"`
	SundayProfitShare     decimal.Decimal `json:"sunday_profit_share"`
	ReferralCommission    decimal.Decimal `json:"referral_commission"`
	PremiumIncentive      decimal.Decimal `json:"premium_incentive"`
	WashingPoolShare      decimal.Decimal `json:"washing_pool_share"`
	ShiftBonus            decimal.Decimal `json:"shift_bonus"`

	GrossIncentives decimal.Decimal  `json:"gross_incentives"`
	GrossPay        decimal.Decimal  `json:"gross_pay"`
	Deductions      DeductionAmounts `json:"deductions"`
	TotalDeduction  decimal.Decimal  `json:"total_deduction"`
	NetPay          decimal.Decimal  `json:"net_pay"`
}

// TotalEvening is the combined evening compensation (piece-rate plus
// profit share), reported as one figure on salary slips.
func (li LineItem) TotalEvening() decimal.Decimal {
	return li.EveningLimitIncentive.Add(li.EveningProfitShare)
}

type RunStatus string

const (
	// RunStatusDraft is implicit: a month with no stored run is a draft
	// and is recomputed from live data on every read.
	RunStatusDraft     RunStatus = "DRAFT"
	RunStatusFinalized RunStatus = "FINALIZED"
)

// Run is the frozen snapshot of a finalized month. Exactly one run exists
// per month; re-finalizing replaces it.
type Run struct {
	ID          string
	Month       string
	GeneratedAt time.Time
	TotalNet    decimal.Decimal
	Status      RunStatus
	Items       []LineItem
}
