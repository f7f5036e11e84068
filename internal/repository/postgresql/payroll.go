package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autodazzle/detailing-backend-go/internal/domain/finance"
	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/database"
)

// ========== DEDUCTIONS ==========

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) payroll.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

func (r *deductionRepositoryImpl) Upsert(ctx context.Context, rec payroll.DeductionRecord) (payroll.DeductionRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (staff_id, month, late_fine, leave_fine, advance_recovery, loan_emi, other)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (staff_id, month) DO UPDATE SET
			late_fine = EXCLUDED.late_fine,
			leave_fine = EXCLUDED.leave_fine,
			advance_recovery = EXCLUDED.advance_recovery,
			loan_emi = EXCLUDED.loan_emi,
			other = EXCLUDED.other,
			updated_at = NOW()
		RETURNING id, staff_id, month, late_fine, leave_fine, advance_recovery, loan_emi, other, updated_at
	`

	var saved payroll.DeductionRecord
	err := q.QueryRow(ctx, query,
		rec.StaffID, rec.Month,
		rec.Amounts.LateFine, rec.Amounts.LeaveFine, rec.Amounts.AdvanceRecovery,
		rec.Amounts.LoanEMI, rec.Amounts.Other,
	).Scan(
		&saved.ID, &saved.StaffID, &saved.Month,
		&saved.Amounts.LateFine, &saved.Amounts.LeaveFine, &saved.Amounts.AdvanceRecovery,
		&saved.Amounts.LoanEMI, &saved.Amounts.Other, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.DeductionRecord{}, fmt.Errorf("failed to upsert deduction: %w", err)
	}

	return saved, nil
}

func (r *deductionRepositoryImpl) GetByStaffMonth(ctx context.Context, staffID, month string) (payroll.DeductionRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, month, late_fine, leave_fine, advance_recovery, loan_emi, other, updated_at
		FROM deductions
		WHERE staff_id = $1 AND month = $2
	`

	var rec payroll.DeductionRecord
	err := q.QueryRow(ctx, query, staffID, month).Scan(
		&rec.ID, &rec.StaffID, &rec.Month,
		&rec.Amounts.LateFine, &rec.Amounts.LeaveFine, &rec.Amounts.AdvanceRecovery,
		&rec.Amounts.LoanEMI, &rec.Amounts.Other, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.DeductionRecord{}, payroll.ErrDeductionNotFound
		}
		return payroll.DeductionRecord{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return rec, nil
}

func (r *deductionRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]payroll.DeductionRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, month, late_fine, leave_fine, advance_recovery, loan_emi, other, updated_at
		FROM deductions
		WHERE month = $1
		ORDER BY staff_id
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.DeductionRecord
	for rows.Next() {
		var rec payroll.DeductionRecord
		err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Month,
			&rec.Amounts.LateFine, &rec.Amounts.LeaveFine, &rec.Amounts.AdvanceRecovery,
			&rec.Amounts.LoanEMI, &rec.Amounts.Other, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ========== RUNS ==========

type runRepositoryImpl struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payroll.RunRepository {
	return &runRepositoryImpl{db: db}
}

func (r *runRepositoryImpl) GetByMonth(ctx context.Context, month string) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	var run payroll.Run
	err := q.QueryRow(ctx, `
		SELECT id, month, generated_at, total_net, status
		FROM payroll_runs
		WHERE month = $1
	`, month).Scan(&run.ID, &run.Month, &run.GeneratedAt, &run.TotalNet, &run.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	items, err := r.listItems(ctx, run.ID)
	if err != nil {
		return payroll.Run{}, err
	}
	run.Items = items

	return run, nil
}

func (r *runRepositoryImpl) List(ctx context.Context) ([]payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, month, generated_at, total_net, status
		FROM payroll_runs
		ORDER BY month DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		var run payroll.Run
		if err := rows.Scan(&run.ID, &run.Month, &run.GeneratedAt, &run.TotalNet, &run.Status); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		items, err := r.listItems(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Items = items
	}

	return runs, nil
}

// Finalize replaces the month's snapshot, posts the labor expense and
// settles staff balances in one transaction. Re-finalizing a month is
// a silent overwrite, never an error.
func (r *runRepositoryImpl) Finalize(ctx context.Context, run payroll.Run, expense finance.Transaction) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM payroll_runs WHERE month = $1`, run.Month); err != nil {
			return fmt.Errorf("failed to replace prior run for %s: %w", run.Month, err)
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO payroll_runs (id, month, generated_at, total_net, status)
			VALUES ($1, $2, $3, $4, $5)
		`, run.ID, run.Month, run.GeneratedAt, run.TotalNet, run.Status)
		if err != nil {
			return fmt.Errorf("failed to insert payroll run: %w", err)
		}

		for _, item := range run.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO payroll_run_items (
					run_id, staff_id, staff_name, role, base_salary,
					daily_limit_incentive, evening_limit_incentive, evening_profit_share,
					sunday_profit_share, referral_commission, premium_incentive,
					washing_pool_share, shift_bonus,
					gross_incentives, gross_pay,
					late_fine, leave_fine, advance_recovery, loan_emi, other,
					total_deduction, net_pay
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
			`,
				run.ID, item.StaffID, item.StaffName, item.Role, item.BaseSalary,
				item.DailyLimitIncentive, item.EveningLimitIncentive, item.EveningProfitShare,
				item.SundayProfitShare, item.ReferralCommission, item.PremiumIncentive,
				item.WashingPoolShare, item.ShiftBonus,
				item.GrossIncentives, item.GrossPay,
				item.Deductions.LateFine, item.Deductions.LeaveFine, item.Deductions.AdvanceRecovery,
				item.Deductions.LoanEMI, item.Deductions.Other,
				item.TotalDeduction, item.NetPay,
			)
			if err != nil {
				return fmt.Errorf("failed to insert line item for staff %s: %w", item.StaffID, err)
			}

			_, err = tx.Exec(ctx, `
				UPDATE staff
				SET current_advance = GREATEST(current_advance - $1, 0),
					loan_balance = GREATEST(loan_balance - $2, 0),
					updated_at = NOW()
				WHERE id = $3
			`, item.Deductions.AdvanceRecovery, item.Deductions.LoanEMI, item.StaffID)
			if err != nil {
				return fmt.Errorf("failed to settle balances for staff %s: %w", item.StaffID, err)
			}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO transactions (id, type, category, amount, description, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, expense.ID, expense.Type, expense.Category, expense.Amount, expense.Description, expense.OccurredAt)
		if err != nil {
			return fmt.Errorf("failed to post labor expense: %w", err)
		}

		return nil
	})
}

func (r *runRepositoryImpl) listItems(ctx context.Context, runID string) ([]payroll.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT staff_id, staff_name, role, base_salary,
			daily_limit_incentive, evening_limit_incentive, evening_profit_share,
			sunday_profit_share, referral_commission, premium_incentive,
			washing_pool_share, shift_bonus,
			gross_incentives, gross_pay,
			late_fine, leave_fine, advance_recovery, loan_emi, other,
			total_deduction, net_pay
		FROM payroll_run_items
		WHERE run_id = $1
		ORDER BY staff_name, staff_id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []payroll.LineItem
	for rows.Next() {
		var item payroll.LineItem
		err := rows.Scan(
			&item.StaffID, &item.StaffName, &item.Role, &item.BaseSalary,
			&item.DailyLimitIncentive, &item.EveningLimitIncentive, &item.EveningProfitShare,
			&item.SundayProfitShare, &item.ReferralCommission, &item.PremiumIncentive,
			&item.WashingPoolShare, &item.ShiftBonus,
			&item.GrossIncentives, &item.GrossPay,
			&item.Deductions.LateFine, &item.Deductions.LeaveFine, &item.Deductions.AdvanceRecovery,
			&item.Deductions.LoanEMI, &item.Deductions.Other,
			&item.TotalDeduction, &item.NetPay,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
