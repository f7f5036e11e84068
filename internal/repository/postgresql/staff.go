package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (full_name, role, phone_number, base_salary, current_advance, loan_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, full_name, role, phone_number, base_salary, current_advance, loan_balance,
			joined_at, created_at, updated_at
	`

	var created staff.Staff
	err := q.QueryRow(ctx, query,
		s.FullName, s.Role, s.PhoneNumber, s.BaseSalary, s.CurrentAdvance, s.LoanBalance,
	).Scan(
		&created.ID, &created.FullName, &created.Role, &created.PhoneNumber,
		&created.BaseSalary, &created.CurrentAdvance, &created.LoanBalance,
		&created.JoinedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_staff_phone") {
			return staff.Staff{}, staff.ErrStaffPhoneExists
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return created, nil
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, role, phone_number, base_salary, current_advance, loan_balance,
			joined_at, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FullName, &s.Role, &s.PhoneNumber,
		&s.BaseSalary, &s.CurrentAdvance, &s.LoanBalance,
		&s.JoinedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return s, nil
}

func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, role, phone_number, base_salary, current_advance, loan_balance,
			joined_at, created_at, updated_at
		FROM staff
		ORDER BY full_name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var s staff.Staff
		err := rows.Scan(
			&s.ID, &s.FullName, &s.Role, &s.PhoneNumber,
			&s.BaseSalary, &s.CurrentAdvance, &s.LoanBalance,
			&s.JoinedAt, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *staffRepositoryImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.PhoneNumber != nil {
		addSet("phone_number", *req.PhoneNumber)
	}
	if req.BaseSalary != nil {
		addSet("base_salary", *req.BaseSalary)
	}

	query := fmt.Sprintf(`
		UPDATE staff SET %s
		WHERE id = $%d
		RETURNING id
	`, strings.Join(setClauses, ", "), argPos)
	args = append(args, req.ID)

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to update staff member %s: %w", req.ID, err)
	}

	return nil
}
