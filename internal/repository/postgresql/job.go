package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autodazzle/detailing-backend-go/internal/domain/job"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `id, date, time_in, vehicle_class, vehicle_reg_no, customer_name,
	service_ids, staff_ids, referred_by, status, total, created_at, updated_at`

func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (date, time_in, vehicle_class, vehicle_reg_no, customer_name,
			service_ids, staff_ids, referred_by, status, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + jobColumns

	var created job.Job
	err := q.QueryRow(ctx, query,
		j.Date, j.TimeIn, j.VehicleClass, j.VehicleRegNo, j.CustomerName,
		j.ServiceIDs, j.StaffIDs, j.ReferredBy, j.Status, j.Total,
	).Scan(
		&created.ID, &created.Date, &created.TimeIn, &created.VehicleClass,
		&created.VehicleRegNo, &created.CustomerName, &created.ServiceIDs,
		&created.StaffIDs, &created.ReferredBy, &created.Status, &created.Total,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return created, nil
}

func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var j job.Job
	err := q.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.Date, &j.TimeIn, &j.VehicleClass, &j.VehicleRegNo, &j.CustomerName,
		&j.ServiceIDs, &j.StaffIDs, &j.ReferredBy, &j.Status, &j.Total,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

func (r *jobRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]job.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE date LIKE $1 || '-%' ORDER BY date, time_in, id`, month)
}

func (r *jobRepositoryImpl) ListInvoicedByMonth(ctx context.Context, month string) ([]job.Job, error) {
	return r.list(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE date LIKE $1 || '-%' AND status = 'INVOICED'
		ORDER BY date, time_in, id
	`, month)
}

func (r *jobRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		var j job.Job
		err := rows.Scan(
			&j.ID, &j.Date, &j.TimeIn, &j.VehicleClass, &j.VehicleRegNo, &j.CustomerName,
			&j.ServiceIDs, &j.StaffIDs, &j.ReferredBy, &j.Status, &j.Total,
			&j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.ErrJobNotFound
		}
		return fmt.Errorf("failed to update job status for %s: %w", id, err)
	}

	return nil
}
